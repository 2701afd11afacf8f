package repository

import (
	"context"
	"fmt"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/query"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type ReservationRepository struct {
	base
}

func NewReservationRepository(db Querier, logger *zerolog.Logger) *ReservationRepository {
	return &ReservationRepository{base{db: db, log: logger}}
}

// guestReservationColumns is the select list scanned by scanGuestReservation,
// in scan order.
var guestReservationColumns = []string{
	"reservations.id",
	"reservations.start_date",
	"reservations.end_date",
	"reservations.property_id",
	"reservations.guest_id",
	"properties.id",
	"properties.owner_id",
	"properties.title",
	"properties.description",
	"properties.thumbnail_photo_url",
	"properties.cover_photo_url",
	"properties.cost_per_night",
	"properties.parking_spaces",
	"properties.number_of_bathrooms",
	"properties.number_of_bedrooms",
	"properties.country",
	"properties.street",
	"properties.city",
	"properties.province",
	"properties.post_code",
	"properties.active",
	"avg(property_reviews.rating)::float8 AS average_rating",
}

const addReservationSQL = `INSERT INTO reservations (start_date, end_date, property_id, guest_id)
VALUES ($1, $2, $3, $4)
RETURNING id, start_date, end_date, property_id, guest_id;`

// pastReservations builds the listing of a guest's finished stays.
func pastReservations(guestID int64, limit int) query.Statement {
	return query.Select(guestReservationColumns...).
		From("reservations").
		Join("properties", "reservations.property_id = properties.id").
		LeftJoin("property_reviews", "properties.id = property_reviews.property_id").
		Where("reservations.guest_id", query.Eq, guestID).
		WhereExpr("reservations.end_date < now()::date").
		GroupBy("properties.id", "reservations.id").
		OrderBy("reservations.start_date ASC").
		Limit(model.NormalizeLimit(limit)).
		Build()
}

func scanGuestReservation(row pgx.CollectableRow) (model.GuestReservation, error) {
	var gr model.GuestReservation
	p := &gr.Property

	err := row.Scan(
		&gr.ID, &gr.StartDate, &gr.EndDate, &gr.PropertyID, &gr.GuestID,
		&p.ID, &p.OwnerID, &p.Title, &p.Description, &p.ThumbnailPhotoURL, &p.CoverPhotoURL,
		&p.CostPerNight, &p.ParkingSpaces, &p.NumberOfBathrooms, &p.NumberOfBedrooms,
		&p.Country, &p.Street, &p.City, &p.Province, &p.PostCode, &p.Active,
		&gr.AverageRating,
	)
	return gr, err
}

// GetAllReservations lists a guest's reservations that ended before today,
// earliest start first, each with the reserved property and its average
// rating.
func (r *ReservationRepository) GetAllReservations(ctx context.Context, guestID int64, limit int) ([]model.GuestReservation, error) {
	stmt := pastReservations(guestID, limit)

	rows, err := r.query(ctx, "GetAllReservations", stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute GetAllReservations query: %w", err)
	}

	reservations, err := pgx.CollectRows(rows, scanGuestReservation)
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from reservations: %w", err)
	}

	if reservations == nil {
		reservations = []model.GuestReservation{}
	}
	return reservations, nil
}

func (r *ReservationRepository) AddReservation(ctx context.Context, res model.NewReservation) (*model.Reservation, error) {
	var out model.Reservation

	err := r.queryRow(ctx, "AddReservation", addReservationSQL,
		res.StartDate, res.EndDate, res.PropertyID, res.GuestID,
	).Scan(&out.ID, &out.StartDate, &out.EndDate, &out.PropertyID, &out.GuestID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert reservation: %w", err)
	}

	return &out, nil
}
