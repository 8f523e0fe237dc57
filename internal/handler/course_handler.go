package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/course-booking-api/internal/models"
	"github.com/noah-isme/course-booking-api/internal/service"
	"github.com/noah-isme/course-booking-api/pkg/response"
)

type courseService interface {
	List(ctx context.Context) ([]models.Course, error)
	Get(ctx context.Context, id int64) (*models.Course, error)
	ListByTeacher(ctx context.Context, teacherID int64) ([]models.Course, error)
	Create(ctx context.Context, req service.CourseRequest) (*models.Course, error)
	Update(ctx context.Context, id int64, req service.CourseRequest) (*models.Course, error)
	UpdatePrice(ctx context.Context, id int64, req service.UpdatePriceRequest) (*models.Course, error)
	Delete(ctx context.Context, id int64) error
	AverageRating(ctx context.Context, courseID int64) (*models.CourseRating, error)
}

// CourseHandler serves the /courses routes.
type CourseHandler struct {
	courses courseService
}

// NewCourseHandler constructs a CourseHandler.
func NewCourseHandler(courses courseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// List godoc
// @Summary List courses
// @Tags Courses
// @Produce json
// @Success 200 {object} map[string][]models.Course
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courses.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "courses", courses)
}

// Get godoc
// @Summary Get course
// @Tags Courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} map[string]models.Course
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /courses/{id} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id", "course")
	if err != nil {
		response.Error(c, err)
		return
	}
	course, err := h.courses.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "course", course)
}

// ListByTeacher godoc
// @Summary List a teacher's courses
// @Tags Courses
// @Produce json
// @Param teacherId path int true "Teacher (user) ID"
// @Success 200 {object} map[string][]models.Course
// @Failure 404 {object} response.ErrorBody
// @Router /courses/teacher/{teacherId} [get]
func (h *CourseHandler) ListByTeacher(c *gin.Context) {
	teacherID, err := pathID(c, "teacherId", "teacher")
	if err != nil {
		response.Error(c, err)
		return
	}
	courses, err := h.courses.ListByTeacher(c.Request.Context(), teacherID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "courses", courses)
}

// AverageRating godoc
// @Summary Average review rating of a course
// @Description -1 when the course has no reservations, null when none was reviewed.
// @Tags Courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} models.CourseRating
// @Router /courses/avg-rating/{id} [get]
func (h *CourseHandler) AverageRating(c *gin.Context) {
	id, err := pathID(c, "id", "course")
	if err != nil {
		response.Error(c, err)
		return
	}
	rating, err := h.courses.AverageRating(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, rating)
}

// Create godoc
// @Summary Create course
// @Tags Courses
// @Accept json
// @Produce json
// @Param payload body service.CourseRequest true "Course payload"
// @Success 201 {object} map[string]models.Course
// @Failure 400 {object} response.ErrorBody
// @Router /courses [post]
func (h *CourseHandler) Create(c *gin.Context) {
	var req service.CourseRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	course, err := h.courses.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "course", course)
}

// Update godoc
// @Summary Update course
// @Tags Courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param payload body service.CourseRequest true "Course payload"
// @Success 200 {object} map[string]models.Course
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /courses/{id} [put]
func (h *CourseHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id", "course")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.CourseRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	course, err := h.courses.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "course", course)
}

// UpdatePrice godoc
// @Summary Change course price
// @Tags Courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param payload body service.UpdatePriceRequest true "New price"
// @Success 200 {object} map[string]models.Course
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /courses/{id}/price [put]
func (h *CourseHandler) UpdatePrice(c *gin.Context) {
	id, err := pathID(c, "id", "course")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.UpdatePriceRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	course, err := h.courses.UpdatePrice(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "course", course)
}

// Delete godoc
// @Summary Delete course
// @Tags Courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} response.MessageBody
// @Failure 404 {object} response.ErrorBody
// @Router /courses/{id} [delete]
func (h *CourseHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id", "course")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.courses.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Course deleted successfully")
}
