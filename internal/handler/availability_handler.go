package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/course-booking-api/internal/models"
	"github.com/noah-isme/course-booking-api/internal/service"
	"github.com/noah-isme/course-booking-api/pkg/response"
)

type availabilityService interface {
	List(ctx context.Context) ([]models.Availability, error)
	Get(ctx context.Context, id int64) (*models.Availability, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Availability, error)
	ListByDateRange(ctx context.Context, req service.DateRangeRequest) ([]models.Availability, error)
	Create(ctx context.Context, req service.CreateAvailabilityRequest) (*models.Availability, error)
	Update(ctx context.Context, id int64, req service.UpdateAvailabilityRequest) (*models.Availability, error)
	UpdateStatus(ctx context.Context, id int64, req service.UpdateStatusRequest) (*models.Availability, error)
	Delete(ctx context.Context, id int64) error
}

// AvailabilityHandler serves the /availabilities routes.
type AvailabilityHandler struct {
	availabilities availabilityService
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(availabilities availabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availabilities: availabilities}
}

// List godoc
// @Summary List availabilities
// @Tags Availabilities
// @Produce json
// @Success 200 {object} map[string][]models.Availability
// @Router /availabilities [get]
func (h *AvailabilityHandler) List(c *gin.Context) {
	items, err := h.availabilities.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "availabilities", items)
}

// Get godoc
// @Summary Get availability
// @Tags Availabilities
// @Produce json
// @Param id path int true "Availability ID"
// @Success 200 {object} map[string]models.Availability
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /availabilities/{id} [get]
func (h *AvailabilityHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id", "availability")
	if err != nil {
		response.Error(c, err)
		return
	}
	item, err := h.availabilities.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "availability", item)
}

// ListByUser godoc
// @Summary List a user's availabilities
// @Tags Availabilities
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} map[string][]models.Availability
// @Failure 404 {object} response.ErrorBody
// @Router /availabilities/user/{userId} [get]
func (h *AvailabilityHandler) ListByUser(c *gin.Context) {
	userID, err := pathID(c, "userId", "user")
	if err != nil {
		response.Error(c, err)
		return
	}
	items, err := h.availabilities.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "availabilities", items)
}

// ListByDateRange godoc
// @Summary List availabilities within a date range
// @Tags Availabilities
// @Accept json
// @Produce json
// @Param payload body service.DateRangeRequest true "Inclusive date range"
// @Success 200 {object} map[string][]models.Availability
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /availabilities/daterange [post]
func (h *AvailabilityHandler) ListByDateRange(c *gin.Context) {
	var req service.DateRangeRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	items, err := h.availabilities.ListByDateRange(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "availabilities", items)
}

// Create godoc
// @Summary Create availability
// @Tags Availabilities
// @Accept json
// @Produce json
// @Param payload body service.CreateAvailabilityRequest true "Availability payload"
// @Success 201 {object} map[string]models.Availability
// @Failure 400 {object} response.ErrorBody
// @Router /availabilities [post]
func (h *AvailabilityHandler) Create(c *gin.Context) {
	var req service.CreateAvailabilityRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	item, err := h.availabilities.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "availability", item)
}

// Update godoc
// @Summary Update availability
// @Tags Availabilities
// @Accept json
// @Produce json
// @Param id path int true "Availability ID"
// @Param payload body service.UpdateAvailabilityRequest true "Availability payload"
// @Success 200 {object} map[string]models.Availability
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /availabilities/{id} [put]
func (h *AvailabilityHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id", "availability")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.UpdateAvailabilityRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	item, err := h.availabilities.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "availability", item)
}

// UpdateStatus godoc
// @Summary Open or close an availability
// @Tags Availabilities
// @Accept json
// @Produce json
// @Param id path int true "Availability ID"
// @Param payload body service.UpdateStatusRequest true "New status"
// @Success 200 {object} map[string]models.Availability
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /availabilities/update-status/{id} [put]
func (h *AvailabilityHandler) UpdateStatus(c *gin.Context) {
	id, err := pathID(c, "id", "availability")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.UpdateStatusRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	item, err := h.availabilities.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "availability", item)
}

// Delete godoc
// @Summary Delete availability
// @Tags Availabilities
// @Produce json
// @Param id path int true "Availability ID"
// @Success 200 {object} response.MessageBody
// @Failure 404 {object} response.ErrorBody
// @Router /availabilities/{id} [delete]
func (h *AvailabilityHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id", "availability")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.availabilities.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Availability deleted successfully")
}
