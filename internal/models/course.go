package models

import "time"

// Course is an offering published by a teacher.
type Course struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Price       int64     `db:"price" json:"price"`
	Description *string   `db:"description" json:"description"`
	Category    *string   `db:"category" json:"category"`
	UserID      *int64    `db:"userId" json:"userId"`
	CreatedAt   time.Time `db:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `db:"updatedAt" json:"updatedAt"`
}

// CourseFilter narrows course listings.
type CourseFilter struct {
	TeacherID *int64
}

// CourseRating is the derived average rating of a course. AverageRating is
// nil when the course has reservations but none carries a review.
type CourseRating struct {
	CourseID      int64    `json:"courseId"`
	AverageRating *float64 `json:"averageRating"`
}

// NoReservationsRating is reported when a course has never been booked.
const NoReservationsRating = -1.0
