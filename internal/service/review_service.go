package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/course-booking-api/internal/models"
)

type reviewRepository interface {
	List(ctx context.Context) ([]models.Review, error)
	FindByID(ctx context.Context, id int64) (*models.Review, error)
	Create(ctx context.Context, item *models.Review) error
	Update(ctx context.Context, item *models.Review) error
	Delete(ctx context.Context, id int64) error
}

// ReviewRequest is the payload for creating or replacing a review. Rating is
// expected in 1..5 but not range checked.
type ReviewRequest struct {
	Rating        *int   `json:"rating" validate:"required"`
	Comment       string `json:"comment" validate:"required"`
	ReservationID *int64 `json:"reservationId" validate:"required,gt=0"`
}

// ReviewService orchestrates review operations.
type ReviewService struct {
	repo      reviewRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewReviewService constructs a ReviewService.
func NewReviewService(repo reviewRepository, validate *validator.Validate, logger *zap.Logger) *ReviewService {
	validate, logger = defaults(validate, logger)
	return &ReviewService{repo: repo, validator: validate, logger: logger}
}

// List returns every review.
func (s *ReviewService) List(ctx context.Context) ([]models.Review, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeError(s.logger, err, "list reviews", "")
	}
	if items == nil {
		items = []models.Review{}
	}
	return items, nil
}

// Get loads one review.
func (s *ReviewService) Get(ctx context.Context, id int64) (*models.Review, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, err, "get review", "Review not found")
	}
	return item, nil
}

// Create records a review for a reservation.
func (s *ReviewService) Create(ctx context.Context, req ReviewRequest) (*models.Review, error) {
	if err := validatePayload(s.validator, req); err != nil {
		return nil, err
	}
	item := &models.Review{}
	applyReviewRequest(item, req)
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, storeError(s.logger, err, "create review", "")
	}
	return item, nil
}

// Update replaces the rating, comment and reservation of a review.
func (s *ReviewService) Update(ctx context.Context, id int64, req ReviewRequest) (*models.Review, error) {
	if err := validatePayload(s.validator, req); err != nil {
		return nil, err
	}
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, err, "load review", "Review not found")
	}
	applyReviewRequest(item, req)
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, storeError(s.logger, err, "update review", "Review not found")
	}
	return item, nil
}

// Delete removes a review.
func (s *ReviewService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(s.logger, err, "delete review", "Review not found")
	}
	return nil
}

func applyReviewRequest(item *models.Review, req ReviewRequest) {
	comment := req.Comment
	item.Rating = *req.Rating
	item.Comment = &comment
	item.ReservationID = req.ReservationID
}
