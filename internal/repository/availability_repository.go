package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/course-booking-api/internal/models"
)

const availabilityColumns = `id, date, "startTime", "endTime", "isAvailable", "userId", "createdAt", "updatedAt"`

// AvailabilityRepository manages persistence for availability windows.
type AvailabilityRepository struct {
	db *sqlx.DB
}

// NewAvailabilityRepository constructs an AvailabilityRepository.
func NewAvailabilityRepository(db *sqlx.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// List returns availabilities matching filter ordered by date, start time and id.
func (r *AvailabilityRepository) List(ctx context.Context, filter models.AvailabilityFilter) ([]models.Availability, error) {
	var conditions []string
	var args []interface{}
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conditions = append(conditions, `"userId" = `+placeholder(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, "date >= "+placeholder(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, "date <= "+placeholder(args))
	}

	query := `SELECT ` + availabilityColumns + ` FROM "Availabilities"`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY date, "startTime", id`

	var items []models.Availability
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("list availabilities: %w", err)
	}
	return items, nil
}

// FindByID fetches an availability by ID.
func (r *AvailabilityRepository) FindByID(ctx context.Context, id int64) (*models.Availability, error) {
	query := `SELECT ` + availabilityColumns + ` FROM "Availabilities" WHERE id = $1`
	var item models.Availability
	if err := r.db.GetContext(ctx, &item, query, id); err != nil {
		return nil, fmt.Errorf("find availability: %w", err)
	}
	return &item, nil
}

// Create inserts a new availability window.
func (r *AvailabilityRepository) Create(ctx context.Context, item *models.Availability) error {
	query := `INSERT INTO "Availabilities" (date, "startTime", "endTime", "isAvailable", "userId", "createdAt", "updatedAt")
		VALUES ($1, $2, $3, $4, $5, $6, $6) RETURNING ` + availabilityColumns
	if err := r.db.GetContext(ctx, item, query, item.Date, item.StartTime, item.EndTime, item.IsAvailable, item.UserID, time.Now().UTC()); err != nil {
		return fmt.Errorf("create availability: %w", err)
	}
	return nil
}

// Update overwrites the mutable columns of an existing availability.
func (r *AvailabilityRepository) Update(ctx context.Context, item *models.Availability) error {
	query := `UPDATE "Availabilities" SET date = $1, "startTime" = $2, "endTime" = $3, "isAvailable" = $4, "userId" = $5, "updatedAt" = $6
		WHERE id = $7 RETURNING ` + availabilityColumns
	if err := r.db.GetContext(ctx, item, query, item.Date, item.StartTime, item.EndTime, item.IsAvailable, item.UserID, time.Now().UTC(), item.ID); err != nil {
		return fmt.Errorf("update availability: %w", err)
	}
	return nil
}

// SetAvailable flips the isAvailable flag of a window.
func (r *AvailabilityRepository) SetAvailable(ctx context.Context, id int64, available bool) (*models.Availability, error) {
	query := `UPDATE "Availabilities" SET "isAvailable" = $1, "updatedAt" = $2 WHERE id = $3 RETURNING ` + availabilityColumns
	var item models.Availability
	if err := r.db.GetContext(ctx, &item, query, available, time.Now().UTC(), id); err != nil {
		return nil, fmt.Errorf("set availability status: %w", err)
	}
	return &item, nil
}

// Delete removes an availability. Reservations keep living with a NULL availabilityId.
func (r *AvailabilityRepository) Delete(ctx context.Context, id int64) error {
	if err := deleteByID(ctx, r.db, `"Availabilities"`, id); err != nil {
		return fmt.Errorf("delete availability: %w", err)
	}
	return nil
}
