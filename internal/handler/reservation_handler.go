package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/course-booking-api/internal/models"
	"github.com/noah-isme/course-booking-api/internal/service"
	"github.com/noah-isme/course-booking-api/pkg/response"
)

type reservationService interface {
	List(ctx context.Context) ([]models.Reservation, error)
	Get(ctx context.Context, id int64) (*models.Reservation, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Reservation, error)
	ListByCourse(ctx context.Context, courseID int64) ([]models.Reservation, error)
	ListActive(ctx context.Context) ([]models.Reservation, error)
	ListByDate(ctx context.Context, date string) ([]models.Reservation, error)
	Create(ctx context.Context, req service.CreateReservationRequest) (*models.Reservation, error)
	Update(ctx context.Context, id int64, req service.UpdateReservationRequest) (*models.Reservation, error)
	Cancel(ctx context.Context, id int64) (*models.Reservation, error)
	MarkReviewed(ctx context.Context, id int64) (*models.Reservation, error)
	Delete(ctx context.Context, id int64) error
}

// CancelResponse confirms a cancellation and echoes the reservation.
type CancelResponse struct {
	Message     string              `json:"message"`
	Reservation *models.Reservation `json:"reservation"`
}

// ReservationHandler serves the /reservations routes.
type ReservationHandler struct {
	reservations reservationService
}

// NewReservationHandler constructs a ReservationHandler.
func NewReservationHandler(reservations reservationService) *ReservationHandler {
	return &ReservationHandler{reservations: reservations}
}

// List godoc
// @Summary List reservations
// @Tags Reservations
// @Produce json
// @Success 200 {object} map[string][]models.Reservation
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	items, err := h.reservations.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "reservations", items)
}

// Get godoc
// @Summary Get reservation
// @Tags Reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} map[string]models.Reservation
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id", "reservation")
	if err != nil {
		response.Error(c, err)
		return
	}
	item, err := h.reservations.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "reservation", item)
}

// ListByUser godoc
// @Summary List a user's reservations
// @Tags Reservations
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} map[string][]models.Reservation
// @Failure 404 {object} response.ErrorBody
// @Router /reservations/user/{userId} [get]
func (h *ReservationHandler) ListByUser(c *gin.Context) {
	userID, err := pathID(c, "userId", "user")
	if err != nil {
		response.Error(c, err)
		return
	}
	items, err := h.reservations.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "reservations", items)
}

// ListByCourse godoc
// @Summary List a course's reservations
// @Tags Reservations
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} map[string][]models.Reservation
// @Failure 404 {object} response.ErrorBody
// @Router /reservations/course/{courseId} [get]
func (h *ReservationHandler) ListByCourse(c *gin.Context) {
	courseID, err := pathID(c, "courseId", "course")
	if err != nil {
		response.Error(c, err)
		return
	}
	items, err := h.reservations.ListByCourse(c.Request.Context(), courseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "reservations", items)
}

// ListActive godoc
// @Summary List reservations that are not cancelled
// @Tags Reservations
// @Produce json
// @Success 200 {object} map[string][]models.Reservation
// @Failure 404 {object} response.ErrorBody
// @Router /reservations/active [get]
func (h *ReservationHandler) ListActive(c *gin.Context) {
	items, err := h.reservations.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "reservations", items)
}

// ListByDate godoc
// @Summary List reservations created on a day
// @Tags Reservations
// @Produce json
// @Param date path string true "Day (YYYY-MM-DD)"
// @Success 200 {object} map[string][]models.Reservation
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /reservations/date/{date} [get]
func (h *ReservationHandler) ListByDate(c *gin.Context) {
	items, err := h.reservations.ListByDate(c.Request.Context(), c.Param("date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "reservations", items)
}

// Create godoc
// @Summary Book a course
// @Tags Reservations
// @Accept json
// @Produce json
// @Param payload body service.CreateReservationRequest true "Reservation payload"
// @Success 201 {object} map[string]models.Reservation
// @Failure 400 {object} response.ErrorBody
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	var req service.CreateReservationRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	item, err := h.reservations.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "reservation", item)
}

// Update godoc
// @Summary Update reservation
// @Tags Reservations
// @Accept json
// @Produce json
// @Param id path int true "Reservation ID"
// @Param payload body service.UpdateReservationRequest true "Reservation payload"
// @Success 200 {object} map[string]models.Reservation
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /reservations/{id} [put]
func (h *ReservationHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id", "reservation")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.UpdateReservationRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	item, err := h.reservations.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "reservation", item)
}

// Cancel godoc
// @Summary Cancel reservation
// @Tags Reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} CancelResponse
// @Failure 404 {object} response.ErrorBody
// @Router /reservations/cancel/{id} [put]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, err := pathID(c, "id", "reservation")
	if err != nil {
		response.Error(c, err)
		return
	}
	item, err := h.reservations.Cancel(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, CancelResponse{Message: "Reservation cancelled successfully", Reservation: item})
}

// MarkReviewed godoc
// @Summary Mark reservation reviewed
// @Tags Reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} map[string]models.Reservation
// @Failure 404 {object} response.ErrorBody
// @Router /reservations/review/{id} [put]
func (h *ReservationHandler) MarkReviewed(c *gin.Context) {
	id, err := pathID(c, "id", "reservation")
	if err != nil {
		response.Error(c, err)
		return
	}
	item, err := h.reservations.MarkReviewed(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "reservation", item)
}

// Delete godoc
// @Summary Delete reservation
// @Tags Reservations
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} response.MessageBody
// @Failure 404 {object} response.ErrorBody
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id", "reservation")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.reservations.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Reservation deleted successfully")
}
