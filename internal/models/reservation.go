package models

import "time"

// Reservation books a course against an availability slot.
//
// Cancellation and review are one-way flags: nothing in the API clears them.
// Creating a reservation does not touch the slot's isAvailable flag, so the
// same slot can be booked more than once.
type Reservation struct {
	ID             int64     `db:"id" json:"id"`
	IsCancelled    bool      `db:"isCancelled" json:"isCancelled"`
	IsReviewed     bool      `db:"isReviewed" json:"isReviewed"`
	CourseID       *int64    `db:"courseId" json:"courseId"`
	UserID         *int64    `db:"userId" json:"userId"`
	AvailabilityID *int64    `db:"availabilityId" json:"availabilityId"`
	CreatedAt      time.Time `db:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `db:"updatedAt" json:"updatedAt"`
}

// ReservationFilter narrows reservation listings.
type ReservationFilter struct {
	UserID     *int64
	CourseID   *int64
	ActiveOnly bool
	// CreatedOn matches reservations created on that calendar day (UTC).
	CreatedOn *Date
}
