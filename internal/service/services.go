// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives validated
// data from the handler, applies the booking rules and calls the Query
// Service. Repository failures leave this layer already translated into
// *errs.HTTPError values by sqlerr.HandleError.
package service

import (
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/server"
)

type Services struct {
	Auth         *AuthService
	Properties   *PropertyService
	Reservations *ReservationService
	Reviews      *ReviewService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Auth:         NewAuthService(repos.Users, s.Tokens),
		Properties:   NewPropertyService(repos.Properties),
		Reservations: NewReservationService(repos.Reservations),
		Reviews:      NewReviewService(repos.Reviews),
	}
}
