package handler

import (
	"time"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/deppfellow/lightbnb/internal/validation"
	"github.com/labstack/echo/v4"
)

const dateLayout = time.DateOnly

type ReservationHandler struct {
	Handler
	reservations *service.ReservationService
}

func NewReservationHandler(s *server.Server, reservations *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{Handler: NewHandler(s), reservations: reservations}
}

type ListReservationsRequest struct {
	Limit int `query:"limit" validate:"min=0,max=100"`
}

func (r *ListReservationsRequest) Validate() error {
	return validation.Struct(r)
}

type CreateReservationRequest struct {
	PropertyID int64  `json:"property_id" validate:"required,min=1"`
	StartDate  string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

func (r *CreateReservationRequest) Validate() error {
	return validation.Struct(r)
}

func (h *ReservationHandler) List(c echo.Context, req *ListReservationsRequest) ([]model.GuestReservation, error) {
	guestID, err := currentUserID(c)
	if err != nil {
		return nil, err
	}
	return h.reservations.List(c.Request().Context(), guestID, req.Limit)
}

func (h *ReservationHandler) Create(c echo.Context, req *CreateReservationRequest) (*model.Reservation, error) {
	guestID, err := currentUserID(c)
	if err != nil {
		return nil, err
	}

	// Both dates passed the datetime rule.
	start, _ := time.Parse(dateLayout, req.StartDate)
	end, _ := time.Parse(dateLayout, req.EndDate)

	return h.reservations.Create(c.Request().Context(), model.NewReservation{
		GuestID:    guestID,
		PropertyID: req.PropertyID,
		StartDate:  start,
		EndDate:    end,
	})
}
