package models

import "time"

// Availability is a time window in which a user can be booked.
type Availability struct {
	ID          int64     `db:"id" json:"id"`
	Date        Date      `db:"date" json:"date"`
	StartTime   TimeOfDay `db:"startTime" json:"startTime"`
	EndTime     TimeOfDay `db:"endTime" json:"endTime"`
	IsAvailable bool      `db:"isAvailable" json:"isAvailable"`
	UserID      *int64    `db:"userId" json:"userId"`
	CreatedAt   time.Time `db:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `db:"updatedAt" json:"updatedAt"`
}

// AvailabilityFilter narrows availability listings. From and To are inclusive.
type AvailabilityFilter struct {
	UserID *int64
	From   *Date
	To     *Date
}
