package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/course-booking-api/internal/models"
	"github.com/noah-isme/course-booking-api/internal/service"
	"github.com/noah-isme/course-booking-api/pkg/response"
)

type userService interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, req service.CreateUserRequest) (*models.User, error)
	Update(ctx context.Context, id int64, req service.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id int64) error
}

// UserHandler serves the /users routes.
type UserHandler struct {
	users userService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(users userService) *UserHandler {
	return &UserHandler{users: users}
}

// List godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {object} map[string][]models.User
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "users", users)
}

// Get godoc
// @Summary Get user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} map[string]models.User
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id", "user")
	if err != nil {
		response.Error(c, err)
		return
	}
	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "user", user)
}

// GetByEmail godoc
// @Summary Find user by email
// @Tags Users
// @Produce json
// @Param email path string true "Email address"
// @Success 200 {object} map[string]models.User
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /users/email/{email} [get]
func (h *UserHandler) GetByEmail(c *gin.Context) {
	user, err := h.users.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "user", user)
}

// Create godoc
// @Summary Sign up a user
// @Tags Users
// @Accept json
// @Produce json
// @Param payload body service.CreateUserRequest true "User payload"
// @Success 201 {object} map[string]models.User
// @Failure 400 {object} response.ErrorBody
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req service.CreateUserRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	user, err := h.users.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "user", user)
}

// Update godoc
// @Summary Update user
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param payload body service.UpdateUserRequest true "User payload"
// @Success 200 {object} map[string]models.User
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, err := pathID(c, "id", "user")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.UpdateUserRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	user, err := h.users.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "user", user)
}

// Delete godoc
// @Summary Delete user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} response.MessageBody
// @Failure 404 {object} response.ErrorBody
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id", "user")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "User deleted successfully")
}
