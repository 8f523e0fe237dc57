package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/course-booking-api/pkg/errors"
)

// pathID reads a positive integer path parameter. entity names the resource
// in the error message, e.g. "Invalid course ID".
func pathID(c *gin.Context, param, entity string) (int64, error) {
	raw := c.Param(param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.Clone(appErrors.ErrInvalidIdentifier, fmt.Sprintf("Invalid %s ID", entity))
	}
	return id, nil
}

// bindJSON decodes the request body into dst. A value of the wrong JSON type
// is reported as an invalid field type; an absent or unreadable body as
// missing fields.
func bindJSON(c *gin.Context, dst interface{}) error {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		msg := appErrors.ErrInvalidFieldType.Message
		if typeErr.Field != "" {
			msg = fmt.Sprintf("Invalid type for field %s", typeErr.Field)
		}
		return appErrors.Wrap(err, appErrors.ErrInvalidFieldType.Code, appErrors.ErrInvalidFieldType.Status, msg)
	}
	return appErrors.Wrap(err, appErrors.ErrMissingFields.Code, appErrors.ErrMissingFields.Status, appErrors.ErrMissingFields.Message)
}
