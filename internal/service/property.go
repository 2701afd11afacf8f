package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
)

type PropertyStore interface {
	GetAllProperties(ctx context.Context, opts model.SearchOptions, limit int) ([]model.PropertyListing, error)
	AddProperty(ctx context.Context, p model.NewProperty) (*model.Property, error)
}

type PropertyService struct {
	properties PropertyStore
}

func NewPropertyService(properties PropertyStore) *PropertyService {
	return &PropertyService{properties: properties}
}

func (s *PropertyService) Search(ctx context.Context, opts model.SearchOptions, limit int) ([]model.PropertyListing, error) {
	listings, err := s.properties.GetAllProperties(ctx, opts, limit)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return listings, nil
}

// Create lists a new property owned by ownerID, whatever owner the payload
// carried.
func (s *PropertyService) Create(ctx context.Context, ownerID int64, p model.NewProperty) (*model.Property, error) {
	p.OwnerID = ownerID

	property, err := s.properties.AddProperty(ctx, p)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return property, nil
}
