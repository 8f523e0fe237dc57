package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the wire and column format of calendar dates.
	DateLayout = "2006-01-02"
	// TimeLayout is the wire and column format of times of day.
	TimeLayout = "15:04:05"
)

// Date is a calendar date without time zone, stored in DATE columns.
type Date struct {
	time.Time
}

// ParseDate parses a YYYY-MM-DD string, rejecting impossible dates such as
// 2023-02-30.
func ParseDate(raw string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// NewDate builds a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// AddDays returns the date n days later.
func (d Date) AddDays(n int) Date {
	return Date{Time: d.Time.AddDate(0, 0, n)}
}

// Scan implements sql.Scanner.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	case nil:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("models: cannot scan %T into Date", src)
	}
}

func (d *Date) scanString(raw string) error {
	if len(raw) > len(DateLayout) {
		raw = raw[:len(DateLayout)]
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

// MarshalJSON renders the date as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts a YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// TimeOfDay is a wall clock time stored in TIME columns as HH:MM:SS.
type TimeOfDay string

// ParseTimeOfDay accepts HH:MM or HH:MM:SS and normalises to HH:MM:SS.
func ParseTimeOfDay(raw string) (TimeOfDay, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{TimeLayout, "15:04"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return TimeOfDay(t.Format(TimeLayout)), nil
		}
	}
	return "", fmt.Errorf("models: invalid time of day %q", raw)
}

// Scan implements sql.Scanner.
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*t = TimeOfDay(v.Format(TimeLayout))
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	case nil:
		*t = ""
		return nil
	default:
		return fmt.Errorf("models: cannot scan %T into TimeOfDay", src)
	}
}

func (t *TimeOfDay) scanString(raw string) error {
	if len(raw) > len(TimeLayout) {
		raw = raw[:len(TimeLayout)]
	}
	parsed, err := ParseTimeOfDay(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer.
func (t TimeOfDay) Value() (driver.Value, error) {
	return string(t), nil
}
