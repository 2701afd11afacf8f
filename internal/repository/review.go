package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/query"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type ReviewRepository struct {
	base
}

func NewReviewRepository(db Querier, logger *zerolog.Logger) *ReviewRepository {
	return &ReviewRepository{base{db: db, log: logger}}
}

const addReviewSQL = `INSERT INTO property_reviews (guest_id, property_id, reservation_id, rating, message)
VALUES ($1, $2, $3, $4, $5)
RETURNING *;`

// GetReviewsByProperty lists a property's reviews, newest first.
func (r *ReviewRepository) GetReviewsByProperty(ctx context.Context, propertyID int64, limit int) ([]model.PropertyReview, error) {
	stmt := query.Select("*").
		From("property_reviews").
		Where("property_id", query.Eq, propertyID).
		OrderBy("id DESC").
		Limit(model.NormalizeLimit(limit)).
		Build()

	rows, err := r.query(ctx, "GetReviewsByProperty", stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute GetReviewsByProperty query: %w", err)
	}

	reviews, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.PropertyReview])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from property_reviews: %w", err)
	}

	if reviews == nil {
		reviews = []model.PropertyReview{}
	}
	return reviews, nil
}

func (r *ReviewRepository) AddReview(ctx context.Context, review model.NewPropertyReview) (*model.PropertyReview, error) {
	rows, err := r.query(ctx, "AddReview", addReviewSQL,
		review.GuestID, review.PropertyID, review.ReservationID, review.Rating, review.Message,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to execute AddReview query: %w", err)
	}

	out, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.PropertyReview])
	if err != nil {
		return nil, fmt.Errorf("failed to collect inserted review: %w", err)
	}

	return out, nil
}
