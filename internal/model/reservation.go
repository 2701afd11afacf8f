package model

import "time"

// Reservation is a row of the reservations table.
type Reservation struct {
	ID         int64     `db:"id" json:"id"`
	StartDate  time.Time `db:"start_date" json:"start_date"`
	EndDate    time.Time `db:"end_date" json:"end_date"`
	PropertyID int64     `db:"property_id" json:"property_id"`
	GuestID    int64     `db:"guest_id" json:"guest_id"`
}

// GuestReservation is a reservation joined with the reserved property and
// its average rating, as listed for a guest.
type GuestReservation struct {
	Reservation
	Property      Property `json:"property"`
	AverageRating *float64 `json:"average_rating"`
}

// NewReservation is the payload for booking a property.
type NewReservation struct {
	GuestID    int64
	PropertyID int64
	StartDate  time.Time
	EndDate    time.Time
}

// PropertyReview is a row of the property_reviews table.
type PropertyReview struct {
	ID            int64  `db:"id" json:"id"`
	GuestID       int64  `db:"guest_id" json:"guest_id"`
	PropertyID    int64  `db:"property_id" json:"property_id"`
	ReservationID int64  `db:"reservation_id" json:"reservation_id"`
	Rating        int    `db:"rating" json:"rating"`
	Message       string `db:"message" json:"message"`
}

// NewPropertyReview is the payload for reviewing a finished stay.
type NewPropertyReview struct {
	GuestID       int64
	PropertyID    int64
	ReservationID int64
	Rating        int
	Message       string
}
