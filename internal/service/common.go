package service

import (
	"database/sql"
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/course-booking-api/internal/models"
	appErrors "github.com/noah-isme/course-booking-api/pkg/errors"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validatePayload runs struct validation. Every rule on the request structs
// is a presence rule, so any failure is reported as missing fields.
func validatePayload(v *validator.Validate, payload interface{}) error {
	if err := v.Struct(payload); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return appErrors.Internal(err, "")
		}
		return appErrors.Wrap(err, appErrors.ErrMissingFields.Code, appErrors.ErrMissingFields.Status, appErrors.ErrMissingFields.Message)
	}
	return nil
}

// storeError translates a repository failure. sql.ErrNoRows becomes a
// not-found error carrying notFoundMsg; anything else is logged and hidden
// behind a generic internal error.
func storeError(logger *zap.Logger, err error, op, notFoundMsg string) error {
	if errors.Is(err, sql.ErrNoRows) && notFoundMsg != "" {
		return appErrors.Clone(appErrors.ErrNotFound, notFoundMsg)
	}
	logger.Error("store operation failed", zap.String("op", op), zap.Error(err))
	return appErrors.Internal(err, "")
}

func parseDateField(raw string) (models.Date, error) {
	d, err := models.ParseDate(raw)
	if err != nil {
		return models.Date{}, appErrors.Wrap(err, appErrors.ErrInvalidFieldType.Code, appErrors.ErrInvalidFieldType.Status, "Invalid date format, expected YYYY-MM-DD")
	}
	return d, nil
}

func parseTimeField(raw string) (models.TimeOfDay, error) {
	t, err := models.ParseTimeOfDay(raw)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInvalidFieldType.Code, appErrors.ErrInvalidFieldType.Status, "Invalid time format, expected HH:MM:SS")
	}
	return t, nil
}

func optionalString(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func defaults(validate *validator.Validate, logger *zap.Logger) (*validator.Validate, *zap.Logger) {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return validate, logger
}
