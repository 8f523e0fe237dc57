package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/course-booking-api/internal/models"
	"github.com/noah-isme/course-booking-api/internal/service"
)

type availabilityServiceMock struct {
	item       *models.Availability
	items      []models.Availability
	err        error
	lastStatus service.UpdateStatusRequest
	lastRange  service.DateRangeRequest
	called     bool
}

func (m *availabilityServiceMock) List(ctx context.Context) ([]models.Availability, error) {
	m.called = true
	return m.items, m.err
}

func (m *availabilityServiceMock) Get(ctx context.Context, id int64) (*models.Availability, error) {
	m.called = true
	return m.item, m.err
}

func (m *availabilityServiceMock) ListByUser(ctx context.Context, userID int64) ([]models.Availability, error) {
	m.called = true
	return m.items, m.err
}

func (m *availabilityServiceMock) ListByDateRange(ctx context.Context, req service.DateRangeRequest) ([]models.Availability, error) {
	m.called = true
	m.lastRange = req
	return m.items, m.err
}

func (m *availabilityServiceMock) Create(ctx context.Context, req service.CreateAvailabilityRequest) (*models.Availability, error) {
	m.called = true
	return m.item, m.err
}

func (m *availabilityServiceMock) Update(ctx context.Context, id int64, req service.UpdateAvailabilityRequest) (*models.Availability, error) {
	m.called = true
	return m.item, m.err
}

func (m *availabilityServiceMock) UpdateStatus(ctx context.Context, id int64, req service.UpdateStatusRequest) (*models.Availability, error) {
	m.called = true
	m.lastStatus = req
	return m.item, m.err
}

func (m *availabilityServiceMock) Delete(ctx context.Context, id int64) error {
	m.called = true
	return m.err
}

func TestAvailabilityHandlerUpdateStatusRejectsStringBoolean(t *testing.T) {
	svc := &availabilityServiceMock{}
	h := NewAvailabilityHandler(svc)

	w := serve(http.MethodPut, "/availabilities/update-status/:id", "/availabilities/update-status/1", `{"isAvailable":"false"}`, h.UpdateStatus)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid type for field isAvailable", decode(t, w)["error"])
	assert.False(t, svc.called)
}

func TestAvailabilityHandlerUpdateStatus(t *testing.T) {
	svc := &availabilityServiceMock{item: &models.Availability{ID: 1, IsAvailable: false}}
	h := NewAvailabilityHandler(svc)

	w := serve(http.MethodPut, "/availabilities/update-status/:id", "/availabilities/update-status/1", `{"isAvailable":false}`, h.UpdateStatus)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.lastStatus.IsAvailable)
	assert.False(t, *svc.lastStatus.IsAvailable)
	item := decode(t, w)["availability"].(map[string]interface{})
	assert.Equal(t, false, item["isAvailable"])
}

func TestAvailabilityHandlerDateRange(t *testing.T) {
	svc := &availabilityServiceMock{items: []models.Availability{{ID: 1, Date: models.NewDate(2024, 6, 18), StartTime: "09:00:00", EndTime: "12:00:00"}}}
	h := NewAvailabilityHandler(svc)

	w := serve(http.MethodPost, "/availabilities/daterange", "/availabilities/daterange", `{"startDate":"2024-06-01","endDate":"2024-06-30"}`, h.ListByDateRange)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2024-06-01", svc.lastRange.StartDate)
	items := decode(t, w)["availabilities"].([]interface{})
	require.Len(t, items, 1)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "2024-06-18", first["date"])
	assert.Equal(t, "09:00:00", first["startTime"])
}

func TestAvailabilityHandlerInvalidID(t *testing.T) {
	svc := &availabilityServiceMock{}
	h := NewAvailabilityHandler(svc)

	w := serve(http.MethodDelete, "/availabilities/:id", "/availabilities/nope", "", h.Delete)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid availability ID", decode(t, w)["error"])
	assert.False(t, svc.called)
}
