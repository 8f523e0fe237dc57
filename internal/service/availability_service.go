package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/course-booking-api/internal/models"
	appErrors "github.com/noah-isme/course-booking-api/pkg/errors"
)

type availabilityRepository interface {
	List(ctx context.Context, filter models.AvailabilityFilter) ([]models.Availability, error)
	FindByID(ctx context.Context, id int64) (*models.Availability, error)
	Create(ctx context.Context, item *models.Availability) error
	Update(ctx context.Context, item *models.Availability) error
	SetAvailable(ctx context.Context, id int64, available bool) (*models.Availability, error)
	Delete(ctx context.Context, id int64) error
}

// CreateAvailabilityRequest opens a new time window. IsAvailable defaults to
// true when omitted.
type CreateAvailabilityRequest struct {
	Date        string `json:"date" validate:"required"`
	StartTime   string `json:"startTime" validate:"required"`
	EndTime     string `json:"endTime" validate:"required"`
	IsAvailable *bool  `json:"isAvailable"`
	UserID      *int64 `json:"userId" validate:"required,gt=0"`
}

// UpdateAvailabilityRequest replaces a time window.
type UpdateAvailabilityRequest struct {
	Date        string `json:"date" validate:"required"`
	StartTime   string `json:"startTime" validate:"required"`
	EndTime     string `json:"endTime" validate:"required"`
	IsAvailable *bool  `json:"isAvailable" validate:"required"`
	UserID      *int64 `json:"userId" validate:"required,gt=0"`
}

// DateRangeRequest bounds an availability search, both ends inclusive.
type DateRangeRequest struct {
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate" validate:"required"`
}

// UpdateStatusRequest toggles a window open or closed.
type UpdateStatusRequest struct {
	IsAvailable *bool `json:"isAvailable" validate:"required"`
}

// AvailabilityService orchestrates availability operations.
type AvailabilityService struct {
	repo      availabilityRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAvailabilityService constructs an AvailabilityService.
func NewAvailabilityService(repo availabilityRepository, validate *validator.Validate, logger *zap.Logger) *AvailabilityService {
	validate, logger = defaults(validate, logger)
	return &AvailabilityService{repo: repo, validator: validate, logger: logger}
}

// List returns every availability.
func (s *AvailabilityService) List(ctx context.Context) ([]models.Availability, error) {
	items, err := s.repo.List(ctx, models.AvailabilityFilter{})
	if err != nil {
		return nil, storeError(s.logger, err, "list availabilities", "")
	}
	if items == nil {
		items = []models.Availability{}
	}
	return items, nil
}

// Get returns an availability by id.
func (s *AvailabilityService) Get(ctx context.Context, id int64) (*models.Availability, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, err, "get availability", "Availability not found")
	}
	return item, nil
}

// ListByUser returns the windows offered by a user.
func (s *AvailabilityService) ListByUser(ctx context.Context, userID int64) ([]models.Availability, error) {
	items, err := s.repo.List(ctx, models.AvailabilityFilter{UserID: &userID})
	if err != nil {
		return nil, storeError(s.logger, err, "list availabilities by user", "")
	}
	if len(items) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "No availabilities found for this user")
	}
	return items, nil
}

// ListByDateRange returns the windows whose date falls within the range.
func (s *AvailabilityService) ListByDateRange(ctx context.Context, req DateRangeRequest) ([]models.Availability, error) {
	if err := validatePayload(s.validator, req); err != nil {
		return nil, err
	}
	from, err := parseDateField(req.StartDate)
	if err != nil {
		return nil, err
	}
	to, err := parseDateField(req.EndDate)
	if err != nil {
		return nil, err
	}
	if from.After(to.Time) {
		return nil, appErrors.Clone(appErrors.ErrInvalidFieldType, "startDate must not be after endDate")
	}

	items, err := s.repo.List(ctx, models.AvailabilityFilter{From: &from, To: &to})
	if err != nil {
		return nil, storeError(s.logger, err, "list availabilities by date range", "")
	}
	if len(items) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "No availabilities found for this date range")
	}
	return items, nil
}

// Create opens a new availability window.
func (s *AvailabilityService) Create(ctx context.Context, req CreateAvailabilityRequest) (*models.Availability, error) {
	if err := validatePayload(s.validator, req); err != nil {
		return nil, err
	}
	item := &models.Availability{IsAvailable: true, UserID: req.UserID}
	if err := applyWindow(item, req.Date, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, storeError(s.logger, err, "create availability", "")
	}
	return item, nil
}

// Update replaces an existing availability window.
func (s *AvailabilityService) Update(ctx context.Context, id int64, req UpdateAvailabilityRequest) (*models.Availability, error) {
	if err := validatePayload(s.validator, req); err != nil {
		return nil, err
	}
	patch := &models.Availability{}
	if err := applyWindow(patch, req.Date, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, err, "load availability", "Availability not found")
	}
	item.Date = patch.Date
	item.StartTime = patch.StartTime
	item.EndTime = patch.EndTime
	item.IsAvailable = *req.IsAvailable
	item.UserID = req.UserID

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, storeError(s.logger, err, "update availability", "Availability not found")
	}
	return item, nil
}

// UpdateStatus flips the isAvailable flag.
func (s *AvailabilityService) UpdateStatus(ctx context.Context, id int64, req UpdateStatusRequest) (*models.Availability, error) {
	if err := validatePayload(s.validator, req); err != nil {
		return nil, err
	}
	item, err := s.repo.SetAvailable(ctx, id, *req.IsAvailable)
	if err != nil {
		return nil, storeError(s.logger, err, "update availability status", "Availability not found")
	}
	return item, nil
}

// Delete removes an availability.
func (s *AvailabilityService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(s.logger, err, "delete availability", "Availability not found")
	}
	return nil
}

func applyWindow(item *models.Availability, date, start, end string) error {
	d, err := parseDateField(date)
	if err != nil {
		return err
	}
	startTime, err := parseTimeField(start)
	if err != nil {
		return err
	}
	endTime, err := parseTimeField(end)
	if err != nil {
		return err
	}
	item.Date = d
	item.StartTime = startTime
	item.EndTime = endTime
	return nil
}
