// Package handler is the HTTP entry point after the router.
//
// It binds and validates requests with the validation package, resolves
// the caller from the auth middleware and calls the service layer.
package handler

import (
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
)

// Handlers groups every HTTP handler for router setup.
type Handlers struct {
	Health       *HealthHandler
	Users        *UserHandler
	Properties   *PropertyHandler
	Reservations *ReservationHandler
	Reviews      *ReviewHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(s),
		Users:        NewUserHandler(s, services.Auth),
		Properties:   NewPropertyHandler(s, services.Properties),
		Reservations: NewReservationHandler(s, services.Reservations),
		Reviews:      NewReviewHandler(s, services.Reviews),
	}
}
