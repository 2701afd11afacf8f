package repository

import (
	"github.com/rs/zerolog"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Users        *UserRepository
	Properties   *PropertyRepository
	Reservations *ReservationRepository
	Reviews      *ReviewRepository
}

// NewRepositories builds every repository on top of the shared executor
// (the database pool in production).
func NewRepositories(db Querier, logger *zerolog.Logger) *Repositories {
	repoLogger := logger.With().Str("component", "repository").Logger()

	return &Repositories{
		Users:        NewUserRepository(db, &repoLogger),
		Properties:   NewPropertyRepository(db, &repoLogger),
		Reservations: NewReservationRepository(db, &repoLogger),
		Reviews:      NewReviewRepository(db, &repoLogger),
	}
}
