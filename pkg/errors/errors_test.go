package errors

import (
	"database/sql"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCloneKeepsIdentity(t *testing.T) {
	err := Clone(ErrNotFound, "Course not found")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrInternal))
	assert.Equal(t, "Course not found", err.Error())
	assert.Equal(t, "resource not found", ErrNotFound.Message)
}

func TestFromErrorNormalisesUnknownErrors(t *testing.T) {
	err := FromError(sql.ErrConnDone)
	assert.Equal(t, ErrInternal.Code, err.Code)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.True(t, errors.Is(err, sql.ErrConnDone))
}

func TestInternalDefaultsMessage(t *testing.T) {
	err := Internal(sql.ErrTxDone, "")
	assert.Equal(t, ErrInternal.Message, err.Message)
	assert.Contains(t, err.Error(), sql.ErrTxDone.Error())
}
