package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
)

type ReviewStore interface {
	GetReviewsByProperty(ctx context.Context, propertyID int64, limit int) ([]model.PropertyReview, error)
	AddReview(ctx context.Context, r model.NewPropertyReview) (*model.PropertyReview, error)
}

type ReviewService struct {
	reviews ReviewStore
}

func NewReviewService(reviews ReviewStore) *ReviewService {
	return &ReviewService{reviews: reviews}
}

func (s *ReviewService) ListForProperty(ctx context.Context, propertyID int64, limit int) ([]model.PropertyReview, error) {
	reviews, err := s.reviews.GetReviewsByProperty(ctx, propertyID, limit)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return reviews, nil
}

func (s *ReviewService) Create(ctx context.Context, r model.NewPropertyReview) (*model.PropertyReview, error) {
	review, err := s.reviews.AddReview(ctx, r)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return review, nil
}
