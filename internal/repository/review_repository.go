package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/course-booking-api/internal/models"
)

const reviewColumns = `id, rating, comment, "reservationId", "createdAt", "updatedAt"`

// ReviewRepository manages persistence for reviews.
type ReviewRepository struct {
	db *sqlx.DB
}

// NewReviewRepository constructs a ReviewRepository.
func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// List returns every review ordered by id.
func (r *ReviewRepository) List(ctx context.Context) ([]models.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM "Reviews" ORDER BY id`
	var items []models.Review
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return items, nil
}

// ListByReservationIDs returns the reviews attached to any of ids.
func (r *ReviewRepository) ListByReservationIDs(ctx context.Context, ids []int64) ([]models.Review, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + reviewColumns + ` FROM "Reviews" WHERE "reservationId" = ANY($1) ORDER BY id`
	var items []models.Review
	if err := r.db.SelectContext(ctx, &items, query, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("list reviews by reservation: %w", err)
	}
	return items, nil
}

// FindByID fetches a review by ID.
func (r *ReviewRepository) FindByID(ctx context.Context, id int64) (*models.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM "Reviews" WHERE id = $1`
	var item models.Review
	if err := r.db.GetContext(ctx, &item, query, id); err != nil {
		return nil, fmt.Errorf("find review: %w", err)
	}
	return &item, nil
}

// Create inserts a new review. The rating range is not enforced here.
func (r *ReviewRepository) Create(ctx context.Context, item *models.Review) error {
	query := `INSERT INTO "Reviews" (rating, comment, "reservationId", "createdAt", "updatedAt")
		VALUES ($1, $2, $3, $4, $4) RETURNING ` + reviewColumns
	if err := r.db.GetContext(ctx, item, query, item.Rating, item.Comment, item.ReservationID, time.Now().UTC()); err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

// Update overwrites the mutable columns of an existing review.
func (r *ReviewRepository) Update(ctx context.Context, item *models.Review) error {
	query := `UPDATE "Reviews" SET rating = $1, comment = $2, "reservationId" = $3, "updatedAt" = $4
		WHERE id = $5 RETURNING ` + reviewColumns
	if err := r.db.GetContext(ctx, item, query, item.Rating, item.Comment, item.ReservationID, time.Now().UTC(), item.ID); err != nil {
		return fmt.Errorf("update review: %w", err)
	}
	return nil
}

// Delete removes a review.
func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	if err := deleteByID(ctx, r.db, `"Reviews"`, id); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}
	return nil
}
