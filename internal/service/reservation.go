package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
)

type ReservationStore interface {
	GetAllReservations(ctx context.Context, guestID int64, limit int) ([]model.GuestReservation, error)
	AddReservation(ctx context.Context, r model.NewReservation) (*model.Reservation, error)
}

type ReservationService struct {
	reservations ReservationStore
}

func NewReservationService(reservations ReservationStore) *ReservationService {
	return &ReservationService{reservations: reservations}
}

// List returns the guest's past reservations.
func (s *ReservationService) List(ctx context.Context, guestID int64, limit int) ([]model.GuestReservation, error) {
	reservations, err := s.reservations.GetAllReservations(ctx, guestID, limit)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return reservations, nil
}

func (s *ReservationService) Create(ctx context.Context, r model.NewReservation) (*model.Reservation, error) {
	if !r.EndDate.After(r.StartDate) {
		code := "RESERVATION_INVALID"
		return nil, errs.NewBadRequestError("End date must be after start date", true, &code,
			[]errs.FieldError{{Field: "end_date", Error: "must be after start_date"}}, nil)
	}

	reservation, err := s.reservations.AddReservation(ctx, r)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return reservation, nil
}
