package models

import "time"

// Review is feedback attached to a reservation.
type Review struct {
	ID            int64     `db:"id" json:"id"`
	Rating        int       `db:"rating" json:"rating"`
	Comment       *string   `db:"comment" json:"comment"`
	ReservationID *int64    `db:"reservationId" json:"reservationId"`
	CreatedAt     time.Time `db:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `db:"updatedAt" json:"updatedAt"`
}
