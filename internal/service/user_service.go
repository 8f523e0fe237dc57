package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/course-booking-api/internal/models"
	appErrors "github.com/noah-isme/course-booking-api/pkg/errors"
)

// MinimumAge is the youngest age allowed to sign up.
const MinimumAge = 18

type userRepository interface {
	List(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
}

// CreateUserRequest is the signup payload.
type CreateUserRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Birthdate string `json:"birthdate" validate:"required"`
}

// UpdateUserRequest replaces a user's profile. Email is optional and kept
// unchanged when omitted.
type UpdateUserRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email"`
	Birthdate string `json:"birthdate" validate:"required"`
}

// UserService orchestrates user operations.
type UserService struct {
	repo      userRepository
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewUserService constructs a UserService.
func NewUserService(repo userRepository, validate *validator.Validate, logger *zap.Logger) *UserService {
	validate, logger = defaults(validate, logger)
	return &UserService{repo: repo, validator: validate, logger: logger, now: time.Now}
}

// List returns every user.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeError(s.logger, err, "list users", "")
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// Get returns a user by id.
func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, err, "get user", "User not found")
	}
	return user, nil
}

// GetByEmail returns the user registered with email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if !validEmail(email) {
		return nil, appErrors.ErrInvalidEmail
	}
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, storeError(s.logger, err, "get user by email", "User not found")
	}
	return user, nil
}

// Create signs up a new user who must be of age.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	if err := validatePayload(s.validator, req); err != nil {
		return nil, err
	}
	birthdate, err := s.checkBirthdate(req.Birthdate)
	if err != nil {
		return nil, err
	}
	email := strings.TrimSpace(req.Email)
	if !validEmail(email) {
		return nil, appErrors.ErrInvalidEmail
	}

	user := &models.User{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     email,
		Birthdate: birthdate,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, storeError(s.logger, err, "create user", "")
	}
	return user, nil
}

// Update replaces the profile of an existing user. The age rule is not
// re-checked.
func (s *UserService) Update(ctx context.Context, id int64, req UpdateUserRequest) (*models.User, error) {
	if err := validatePayload(s.validator, req); err != nil {
		return nil, err
	}
	birthdate, err := parseBirthdate(req.Birthdate)
	if err != nil {
		return nil, err
	}
	email := strings.TrimSpace(req.Email)
	if email != "" && !validEmail(email) {
		return nil, appErrors.ErrInvalidEmail
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, err, "load user", "User not found")
	}
	user.FirstName = strings.TrimSpace(req.FirstName)
	user.LastName = strings.TrimSpace(req.LastName)
	user.Birthdate = birthdate
	if email != "" {
		user.Email = email
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, storeError(s.logger, err, "update user", "User not found")
	}
	return user, nil
}

// Delete removes a user.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(s.logger, err, "delete user", "User not found")
	}
	return nil
}

// Age is only enforced at sign-up; profile edits just need a real date.
func parseBirthdate(raw string) (models.Date, error) {
	birthdate, err := models.ParseDate(raw)
	if err != nil {
		return models.Date{}, appErrors.Wrap(err, appErrors.ErrInvalidBirthdate.Code, appErrors.ErrInvalidBirthdate.Status, appErrors.ErrInvalidBirthdate.Message)
	}
	return birthdate, nil
}

func (s *UserService) checkBirthdate(raw string) (models.Date, error) {
	birthdate, err := parseBirthdate(raw)
	if err != nil {
		return models.Date{}, err
	}
	if models.AgeOn(birthdate, s.now()) < MinimumAge {
		return models.Date{}, appErrors.ErrUnderage
	}
	return birthdate, nil
}
