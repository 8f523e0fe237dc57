package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/course-booking-api/internal/models"
	"github.com/noah-isme/course-booking-api/internal/service"
	"github.com/noah-isme/course-booking-api/pkg/response"
)

type reviewService interface {
	List(ctx context.Context) ([]models.Review, error)
	Get(ctx context.Context, id int64) (*models.Review, error)
	Create(ctx context.Context, req service.ReviewRequest) (*models.Review, error)
	Update(ctx context.Context, id int64, req service.ReviewRequest) (*models.Review, error)
	Delete(ctx context.Context, id int64) error
}

// ReviewHandler serves the /reviews routes.
type ReviewHandler struct {
	reviews reviewService
}

// NewReviewHandler constructs a ReviewHandler.
func NewReviewHandler(reviews reviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// List godoc
// @Summary List reviews
// @Tags Reviews
// @Produce json
// @Success 200 {object} map[string][]models.Review
// @Router /reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	items, err := h.reviews.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "reviews", items)
}

// Get godoc
// @Summary Get review
// @Tags Reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} map[string]models.Review
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id", "review")
	if err != nil {
		response.Error(c, err)
		return
	}
	item, err := h.reviews.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "review", item)
}

// Create godoc
// @Summary Review a reservation
// @Tags Reviews
// @Accept json
// @Produce json
// @Param payload body service.ReviewRequest true "Review payload"
// @Success 201 {object} map[string]models.Review
// @Failure 400 {object} response.ErrorBody
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var req service.ReviewRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	item, err := h.reviews.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "review", item)
}

// Update godoc
// @Summary Update review
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Param payload body service.ReviewRequest true "Review payload"
// @Success 200 {object} map[string]models.Review
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id", "review")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.ReviewRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	item, err := h.reviews.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "review", item)
}

// Delete godoc
// @Summary Delete review
// @Tags Reviews
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} response.MessageBody
// @Failure 404 {object} response.ErrorBody
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id", "review")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.reviews.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Review deleted successfully")
}
