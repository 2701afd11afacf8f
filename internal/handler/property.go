package handler

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/server"
	"github.com/deppfellow/lightbnb/internal/service"
	"github.com/deppfellow/lightbnb/internal/validation"
	"github.com/labstack/echo/v4"
)

type PropertyHandler struct {
	Handler
	properties *service.PropertyService
}

func NewPropertyHandler(s *server.Server, properties *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{Handler: NewHandler(s), properties: properties}
}

// SearchPropertiesRequest holds the listing filters. Absent query params
// add no constraint, so the filters are bound as strings and converted by
// Options.
type SearchPropertiesRequest struct {
	City                 string `query:"city" validate:"max=255"`
	OwnerID              string `query:"owner_id" validate:"omitempty,number"`
	MinimumPricePerNight string `query:"minimum_price_per_night" validate:"omitempty,number"`
	MaximumPricePerNight string `query:"maximum_price_per_night" validate:"omitempty,number"`
	MinimumRating        string `query:"minimum_rating" validate:"omitempty,numeric"`
	Limit                int    `query:"limit" validate:"min=0,max=100"`
}

func (r *SearchPropertiesRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}

	if _, err := r.Options(); err != nil {
		var fieldErr *filterError
		if errors.As(err, &fieldErr) {
			return validation.CustomValidationErrors{{Field: fieldErr.field, Message: fieldErr.msg}}
		}
		return validation.CustomValidationErrors{{Field: "query", Message: err.Error()}}
	}
	return nil
}

// filterError names the query parameter Options could not accept.
type filterError struct {
	field string
	msg   string
}

func (e *filterError) Error() string {
	return e.field + " " + e.msg
}

var priceRangeMsg = fmt.Sprintf("must be between 0 and %d", model.MaxPricePerNight)

// Options converts the present filters into model.SearchOptions. Prices
// outside 0..model.MaxPricePerNight are rejected.
func (r *SearchPropertiesRequest) Options() (model.SearchOptions, error) {
	var opts model.SearchOptions

	if r.City != "" {
		city := r.City
		opts.City = &city
	}

	ints := []struct {
		field string
		raw   string
		price bool
		dst   **int64
	}{
		{"owner_id", r.OwnerID, false, &opts.OwnerID},
		{"minimum_price_per_night", r.MinimumPricePerNight, true, &opts.MinimumPricePerNight},
		{"maximum_price_per_night", r.MaximumPricePerNight, true, &opts.MaximumPricePerNight},
	}
	for _, f := range ints {
		if f.raw == "" {
			continue
		}
		v, err := strconv.ParseInt(f.raw, 10, 64)
		if err != nil {
			return opts, &filterError{field: f.field, msg: "must be a whole number"}
		}
		if f.price && (v < 0 || v > model.MaxPricePerNight) {
			return opts, &filterError{field: f.field, msg: priceRangeMsg}
		}
		*f.dst = &v
	}

	if r.MinimumRating != "" {
		v, err := strconv.ParseFloat(r.MinimumRating, 64)
		if err != nil {
			return opts, &filterError{field: "minimum_rating", msg: "must be a number"}
		}
		opts.MinimumRating = &v
	}

	return opts, nil
}

// CreatePropertyRequest takes cost_per_night in whole currency units; it is
// stored in minor units, so the cap is model.MaxPricePerNight.
type CreatePropertyRequest struct {
	Title             string `json:"title" validate:"required,max=255"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url" validate:"required,url,max=255"`
	CoverPhotoURL     string `json:"cover_photo_url" validate:"required,url,max=255"`
	CostPerNight      int64  `json:"cost_per_night" validate:"min=0,max=21474836"`
	Street            string `json:"street" validate:"required,max=255"`
	City              string `json:"city" validate:"required,max=255"`
	Province          string `json:"province" validate:"required,max=255"`
	PostCode          string `json:"post_code" validate:"required,max=255"`
	Country           string `json:"country" validate:"required,max=255"`
	ParkingSpaces     int    `json:"parking_spaces" validate:"min=0"`
	NumberOfBathrooms int    `json:"number_of_bathrooms" validate:"min=0"`
	NumberOfBedrooms  int    `json:"number_of_bedrooms" validate:"min=0"`
}

func (r *CreatePropertyRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CreatePropertyRequest) toModel() model.NewProperty {
	return model.NewProperty{
		Title:             r.Title,
		Description:       r.Description,
		ThumbnailPhotoURL: r.ThumbnailPhotoURL,
		CoverPhotoURL:     r.CoverPhotoURL,
		CostPerNight:      model.ToMinorUnits(r.CostPerNight),
		Street:            r.Street,
		City:              r.City,
		Province:          r.Province,
		PostCode:          r.PostCode,
		Country:           r.Country,
		ParkingSpaces:     r.ParkingSpaces,
		NumberOfBathrooms: r.NumberOfBathrooms,
		NumberOfBedrooms:  r.NumberOfBedrooms,
	}
}

func (h *PropertyHandler) Search(c echo.Context, req *SearchPropertiesRequest) ([]model.PropertyListing, error) {
	opts, err := req.Options()
	if err != nil {
		return nil, err
	}
	return h.properties.Search(c.Request().Context(), opts, req.Limit)
}

func (h *PropertyHandler) Create(c echo.Context, req *CreatePropertyRequest) (*model.Property, error) {
	ownerID, err := currentUserID(c)
	if err != nil {
		return nil, err
	}
	return h.properties.Create(c.Request().Context(), ownerID, req.toModel())
}
