package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/query"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type PropertyRepository struct {
	base
}

func NewPropertyRepository(db Querier, logger *zerolog.Logger) *PropertyRepository {
	return &PropertyRepository{base{db: db, log: logger}}
}

const addPropertySQL = `INSERT INTO properties (
  owner_id, title, description, thumbnail_photo_url, cover_photo_url,
  cost_per_night, street, city, province, post_code, country,
  parking_spaces, number_of_bathrooms, number_of_bedrooms
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING *;`

// GetAllProperties lists properties matching opts, cheapest first, each with
// its average review rating. No match yields an empty slice.
func (r *PropertyRepository) GetAllProperties(ctx context.Context, opts model.SearchOptions, limit int) ([]model.PropertyListing, error) {
	stmt := query.PropertySearch(opts, limit)

	rows, err := r.query(ctx, "GetAllProperties", stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute GetAllProperties query: %w", err)
	}

	listings, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.PropertyListing])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from properties: %w", err)
	}

	if listings == nil {
		listings = []model.PropertyListing{}
	}
	return listings, nil
}

// AddProperty inserts p and returns the stored row. Insert failures are
// returned like any other failure.
func (r *PropertyRepository) AddProperty(ctx context.Context, p model.NewProperty) (*model.Property, error) {
	rows, err := r.query(ctx, "AddProperty", addPropertySQL, p.Args()...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute AddProperty query: %w", err)
	}

	property, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[model.Property])
	if err != nil {
		return nil, fmt.Errorf("failed to collect inserted property: %w", err)
	}

	return property, nil
}
