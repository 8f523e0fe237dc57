package models

import "time"

// User is a person who can teach courses, publish availability and book.
type User struct {
	ID        int64     `db:"id" json:"id"`
	FirstName string    `db:"firstName" json:"firstName"`
	LastName  string    `db:"lastName" json:"lastName"`
	Email     string    `db:"email" json:"email"`
	Birthdate Date      `db:"birthdate" json:"birthdate"`
	CreatedAt time.Time `db:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `db:"updatedAt" json:"updatedAt"`
}

// AgeOn returns the user's age in whole years on the given day.
func (u User) AgeOn(now time.Time) int {
	return AgeOn(u.Birthdate, now)
}

// AgeOn computes whole years between birth and now by comparing calendar
// year, month and day; the birthday itself counts as completed.
func AgeOn(birth Date, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}
