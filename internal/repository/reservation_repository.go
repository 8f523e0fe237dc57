package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/course-booking-api/internal/models"
)

const reservationColumns = `id, "isCancelled", "isReviewed", "courseId", "userId", "availabilityId", "createdAt", "updatedAt"`

// ReservationRepository manages persistence for reservations.
type ReservationRepository struct {
	db *sqlx.DB
}

// NewReservationRepository constructs a ReservationRepository.
func NewReservationRepository(db *sqlx.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// List returns reservations matching filter ordered by id.
func (r *ReservationRepository) List(ctx context.Context, filter models.ReservationFilter) ([]models.Reservation, error) {
	var conditions []string
	var args []interface{}
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conditions = append(conditions, `"userId" = `+placeholder(args))
	}
	if filter.CourseID != nil {
		args = append(args, *filter.CourseID)
		conditions = append(conditions, `"courseId" = `+placeholder(args))
	}
	if filter.ActiveOnly {
		conditions = append(conditions, `"isCancelled" = FALSE`)
	}
	if filter.CreatedOn != nil {
		args = append(args, filter.CreatedOn.Time)
		conditions = append(conditions, `"createdAt" >= `+placeholder(args))
		args = append(args, filter.CreatedOn.AddDays(1).Time)
		conditions = append(conditions, `"createdAt" < `+placeholder(args))
	}

	query := `SELECT ` + reservationColumns + ` FROM "Reservations"`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"

	var items []models.Reservation
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return items, nil
}

// FindByID fetches a reservation by ID.
func (r *ReservationRepository) FindByID(ctx context.Context, id int64) (*models.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM "Reservations" WHERE id = $1`
	var item models.Reservation
	if err := r.db.GetContext(ctx, &item, query, id); err != nil {
		return nil, fmt.Errorf("find reservation: %w", err)
	}
	return &item, nil
}

// Create inserts a new reservation. The referenced availability is not
// locked or updated.
func (r *ReservationRepository) Create(ctx context.Context, item *models.Reservation) error {
	query := `INSERT INTO "Reservations" ("isCancelled", "isReviewed", "courseId", "userId", "availabilityId", "createdAt", "updatedAt")
		VALUES ($1, $2, $3, $4, $5, $6, $6) RETURNING ` + reservationColumns
	if err := r.db.GetContext(ctx, item, query, item.IsCancelled, item.IsReviewed, item.CourseID, item.UserID, item.AvailabilityID, time.Now().UTC()); err != nil {
		return fmt.Errorf("create reservation: %w", err)
	}
	return nil
}

// Update overwrites the references of a reservation. isCancelled can only be
// raised here; an already cancelled reservation stays cancelled.
func (r *ReservationRepository) Update(ctx context.Context, item *models.Reservation) error {
	query := `UPDATE "Reservations" SET "courseId" = $1, "userId" = $2, "availabilityId" = $3, "isCancelled" = ("isCancelled" OR $4), "updatedAt" = $5
		WHERE id = $6 RETURNING ` + reservationColumns
	if err := r.db.GetContext(ctx, item, query, item.CourseID, item.UserID, item.AvailabilityID, item.IsCancelled, time.Now().UTC(), item.ID); err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}
	return nil
}

// MarkCancelled sets isCancelled. Re-cancelling is allowed.
func (r *ReservationRepository) MarkCancelled(ctx context.Context, id int64) (*models.Reservation, error) {
	return r.setFlag(ctx, `"isCancelled"`, id)
}

// MarkReviewed sets isReviewed without checking that a review exists.
func (r *ReservationRepository) MarkReviewed(ctx context.Context, id int64) (*models.Reservation, error) {
	return r.setFlag(ctx, `"isReviewed"`, id)
}

func (r *ReservationRepository) setFlag(ctx context.Context, column string, id int64) (*models.Reservation, error) {
	query := `UPDATE "Reservations" SET ` + column + ` = TRUE, "updatedAt" = $1 WHERE id = $2 RETURNING ` + reservationColumns
	var item models.Reservation
	if err := r.db.GetContext(ctx, &item, query, time.Now().UTC(), id); err != nil {
		return nil, fmt.Errorf("set reservation %s: %w", column, err)
	}
	return &item, nil
}

// Delete removes a reservation. Reviews keep living with a NULL reservationId.
func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	if err := deleteByID(ctx, r.db, `"Reservations"`, id); err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}
	return nil
}
