package service

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/course-booking-api/internal/models"
	appErrors "github.com/noah-isme/course-booking-api/pkg/errors"
)

type courseRepository interface {
	List(ctx context.Context, filter models.CourseFilter) ([]models.Course, error)
	FindByID(ctx context.Context, id int64) (*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	UpdatePrice(ctx context.Context, id, price int64) (*models.Course, error)
	Delete(ctx context.Context, id int64) error
}

type courseReservationReader interface {
	List(ctx context.Context, filter models.ReservationFilter) ([]models.Reservation, error)
}

type courseReviewReader interface {
	ListByReservationIDs(ctx context.Context, ids []int64) ([]models.Review, error)
}

// CourseRequest is the payload for creating or replacing a course. An
// omitted category leaves the stored one untouched.
type CourseRequest struct {
	Name        string  `json:"name" validate:"required"`
	Price       *int64  `json:"price" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Category    *string `json:"category"`
	UserID      *int64  `json:"userId" validate:"required,gt=0"`
}

// UpdatePriceRequest changes only the price of a course.
type UpdatePriceRequest struct {
	NewPrice *int64 `json:"newPrice" validate:"required"`
}

// CourseService orchestrates course operations.
type CourseService struct {
	repo         courseRepository
	reservations courseReservationReader
	reviews      courseReviewReader
	metrics      *MetricsService
	validator    *validator.Validate
	logger       *zap.Logger
}

// NewCourseService constructs a CourseService. metrics may be nil.
func NewCourseService(repo courseRepository, reservations courseReservationReader, reviews courseReviewReader, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *CourseService {
	validate, logger = defaults(validate, logger)
	return &CourseService{
		repo:         repo,
		reservations: reservations,
		reviews:      reviews,
		metrics:      metrics,
		validator:    validate,
		logger:       logger,
	}
}

// List returns every course.
func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	courses, err := s.repo.List(ctx, models.CourseFilter{})
	if err != nil {
		return nil, storeError(s.logger, err, "list courses", "")
	}
	if courses == nil {
		courses = []models.Course{}
	}
	return courses, nil
}

// Get returns a course by id.
func (s *CourseService) Get(ctx context.Context, id int64) (*models.Course, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, err, "get course", "Course not found")
	}
	return course, nil
}

// ListByTeacher returns the courses published by a teacher.
func (s *CourseService) ListByTeacher(ctx context.Context, teacherID int64) ([]models.Course, error) {
	courses, err := s.repo.List(ctx, models.CourseFilter{TeacherID: &teacherID})
	if err != nil {
		return nil, storeError(s.logger, err, "list courses by teacher", "")
	}
	if len(courses) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "No courses found for this teacher")
	}
	return courses, nil
}

// Create publishes a new course.
func (s *CourseService) Create(ctx context.Context, req CourseRequest) (*models.Course, error) {
	if err := validatePayload(s.validator, req); err != nil {
		return nil, err
	}
	course := &models.Course{}
	applyCourseRequest(course, req)
	if err := s.repo.Create(ctx, course); err != nil {
		return nil, storeError(s.logger, err, "create course", "")
	}
	return course, nil
}

// Update replaces an existing course.
func (s *CourseService) Update(ctx context.Context, id int64, req CourseRequest) (*models.Course, error) {
	if err := validatePayload(s.validator, req); err != nil {
		return nil, err
	}
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, err, "load course", "Course not found")
	}
	applyCourseRequest(course, req)
	if err := s.repo.Update(ctx, course); err != nil {
		return nil, storeError(s.logger, err, "update course", "Course not found")
	}
	return course, nil
}

// UpdatePrice sets a new price on a course.
func (s *CourseService) UpdatePrice(ctx context.Context, id int64, req UpdatePriceRequest) (*models.Course, error) {
	if err := validatePayload(s.validator, req); err != nil {
		return nil, err
	}
	course, err := s.repo.UpdatePrice(ctx, id, *req.NewPrice)
	if err != nil {
		return nil, storeError(s.logger, err, "update course price", "Course not found")
	}
	return course, nil
}

// Delete removes a course.
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(s.logger, err, "delete course", "Course not found")
	}
	return nil
}

// AverageRating averages the reviews left on a course's reviewed
// reservations. The rating is models.NoReservationsRating when the course
// has never been booked and nil when no review exists yet.
func (s *CourseService) AverageRating(ctx context.Context, courseID int64) (*models.CourseRating, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveDBQuery("course_average_rating", time.Since(start)) }()

	result := &models.CourseRating{CourseID: courseID}

	reservations, err := s.reservations.List(ctx, models.ReservationFilter{CourseID: &courseID})
	if err != nil {
		return nil, storeError(s.logger, err, "list course reservations", "")
	}
	if len(reservations) == 0 {
		none := models.NoReservationsRating
		result.AverageRating = &none
		return result, nil
	}

	ids := make([]int64, 0, len(reservations))
	for _, r := range reservations {
		if r.IsReviewed {
			ids = append(ids, r.ID)
		}
	}
	reviews, err := s.reviews.ListByReservationIDs(ctx, ids)
	if err != nil {
		return nil, storeError(s.logger, err, "list course reviews", "")
	}
	if len(reviews) == 0 {
		return result, nil
	}

	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := math.Round(float64(sum)/float64(len(reviews))*10) / 10
	result.AverageRating = &avg
	return result, nil
}

func applyCourseRequest(course *models.Course, req CourseRequest) {
	course.Name = strings.TrimSpace(req.Name)
	course.Price = *req.Price
	desc := req.Description
	course.Description = &desc
	if category := optionalString(req.Category); category != nil {
		course.Category = category
	}
	course.UserID = req.UserID
}
