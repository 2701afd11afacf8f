package handler

import (
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/deppfellow/lightbnb/internal/validation"
	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	Handler
	reviews *service.ReviewService
}

func NewReviewHandler(s *server.Server, reviews *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{Handler: NewHandler(s), reviews: reviews}
}

type ListReviewsRequest struct {
	PropertyID int64 `param:"id" validate:"required,min=1"`
	Limit      int   `query:"limit" validate:"min=0,max=100"`
}

func (r *ListReviewsRequest) Validate() error {
	return validation.Struct(r)
}

type CreateReviewRequest struct {
	PropertyID    int64  `param:"id" json:"-" validate:"required,min=1"`
	ReservationID int64  `json:"reservation_id" validate:"required,min=1"`
	Rating        int    `json:"rating" validate:"min=1,max=5"`
	Message       string `json:"message" validate:"max=2000"`
}

func (r *CreateReviewRequest) Validate() error {
	return validation.Struct(r)
}

func (h *ReviewHandler) List(c echo.Context, req *ListReviewsRequest) ([]model.PropertyReview, error) {
	return h.reviews.ListForProperty(c.Request().Context(), req.PropertyID, req.Limit)
}

func (h *ReviewHandler) Create(c echo.Context, req *CreateReviewRequest) (*model.PropertyReview, error) {
	guestID, err := currentUserID(c)
	if err != nil {
		return nil, err
	}

	return h.reviews.Create(c.Request().Context(), model.NewPropertyReview{
		GuestID:       guestID,
		PropertyID:    req.PropertyID,
		ReservationID: req.ReservationID,
		Rating:        req.Rating,
		Message:       req.Message,
	})
}
