package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/course-booking-api/internal/models"
	appErrors "github.com/noah-isme/course-booking-api/pkg/errors"
)

type reservationRepository interface {
	List(ctx context.Context, filter models.ReservationFilter) ([]models.Reservation, error)
	FindByID(ctx context.Context, id int64) (*models.Reservation, error)
	Create(ctx context.Context, item *models.Reservation) error
	Update(ctx context.Context, item *models.Reservation) error
	MarkCancelled(ctx context.Context, id int64) (*models.Reservation, error)
	MarkReviewed(ctx context.Context, id int64) (*models.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

// CreateReservationRequest books a course against an availability slot.
type CreateReservationRequest struct {
	CourseID       *int64 `json:"courseId" validate:"required,gt=0"`
	UserID         *int64 `json:"userId" validate:"required,gt=0"`
	AvailabilityID *int64 `json:"availabilityId" validate:"required,gt=0"`
}

// UpdateReservationRequest re-points a reservation. IsCancelled may only
// cancel; a cancelled reservation stays cancelled.
type UpdateReservationRequest struct {
	CourseID       *int64 `json:"courseId" validate:"required,gt=0"`
	UserID         *int64 `json:"userId" validate:"required,gt=0"`
	AvailabilityID *int64 `json:"availabilityId" validate:"required,gt=0"`
	IsCancelled    *bool  `json:"isCancelled"`
}

// ReservationService orchestrates reservation operations.
type ReservationService struct {
	repo      reservationRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewReservationService constructs a ReservationService.
func NewReservationService(repo reservationRepository, validate *validator.Validate, logger *zap.Logger) *ReservationService {
	validate, logger = defaults(validate, logger)
	return &ReservationService{repo: repo, validator: validate, logger: logger}
}

// List returns every reservation.
func (s *ReservationService) List(ctx context.Context) ([]models.Reservation, error) {
	items, err := s.repo.List(ctx, models.ReservationFilter{})
	if err != nil {
		return nil, storeError(s.logger, err, "list reservations", "")
	}
	if items == nil {
		items = []models.Reservation{}
	}
	return items, nil
}

// Get returns a reservation by id.
func (s *ReservationService) Get(ctx context.Context, id int64) (*models.Reservation, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, err, "get reservation", "Reservation not found")
	}
	return item, nil
}

// ListByUser returns the reservations made by a user.
func (s *ReservationService) ListByUser(ctx context.Context, userID int64) ([]models.Reservation, error) {
	return s.listMatching(ctx, models.ReservationFilter{UserID: &userID}, "list reservations by user", "No reservations found for this user")
}

// ListByCourse returns the reservations made for a course.
func (s *ReservationService) ListByCourse(ctx context.Context, courseID int64) ([]models.Reservation, error) {
	return s.listMatching(ctx, models.ReservationFilter{CourseID: &courseID}, "list reservations by course", "No reservations found for this course")
}

// ListActive returns the reservations that are not cancelled.
func (s *ReservationService) ListActive(ctx context.Context) ([]models.Reservation, error) {
	return s.listMatching(ctx, models.ReservationFilter{ActiveOnly: true}, "list active reservations", "No active reservations found")
}

// ListByDate returns the reservations created on a calendar day given as
// YYYY-MM-DD.
func (s *ReservationService) ListByDate(ctx context.Context, raw string) ([]models.Reservation, error) {
	day, err := parseDateField(raw)
	if err != nil {
		return nil, err
	}
	return s.listMatching(ctx, models.ReservationFilter{CreatedOn: &day}, "list reservations by date", "No reservations found for this date")
}

func (s *ReservationService) listMatching(ctx context.Context, filter models.ReservationFilter, op, emptyMsg string) ([]models.Reservation, error) {
	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, storeError(s.logger, err, op, "")
	}
	if len(items) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, emptyMsg)
	}
	return items, nil
}

// Create books a reservation. The availability slot is left as is.
func (s *ReservationService) Create(ctx context.Context, req CreateReservationRequest) (*models.Reservation, error) {
	if err := validatePayload(s.validator, req); err != nil {
		return nil, err
	}
	item := &models.Reservation{
		CourseID:       req.CourseID,
		UserID:         req.UserID,
		AvailabilityID: req.AvailabilityID,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, storeError(s.logger, err, "create reservation", "")
	}
	return item, nil
}

// Update re-points an existing reservation.
func (s *ReservationService) Update(ctx context.Context, id int64, req UpdateReservationRequest) (*models.Reservation, error) {
	if err := validatePayload(s.validator, req); err != nil {
		return nil, err
	}
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, err, "load reservation", "Reservation not found")
	}
	item.CourseID = req.CourseID
	item.UserID = req.UserID
	item.AvailabilityID = req.AvailabilityID
	if req.IsCancelled != nil && *req.IsCancelled {
		item.IsCancelled = true
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, storeError(s.logger, err, "update reservation", "Reservation not found")
	}
	return item, nil
}

// Cancel marks a reservation cancelled. Cancelling twice is not an error.
func (s *ReservationService) Cancel(ctx context.Context, id int64) (*models.Reservation, error) {
	item, err := s.repo.MarkCancelled(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, err, "cancel reservation", "Reservation not found")
	}
	return item, nil
}

// MarkReviewed flags a reservation as reviewed.
func (s *ReservationService) MarkReviewed(ctx context.Context, id int64) (*models.Reservation, error) {
	item, err := s.repo.MarkReviewed(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, err, "mark reservation reviewed", "Reservation not found")
	}
	return item, nil
}

// Delete removes a reservation.
func (s *ReservationService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(s.logger, err, "delete reservation", "Reservation not found")
	}
	return nil
}
