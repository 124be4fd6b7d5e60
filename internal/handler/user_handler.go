package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/edustack/edustack-backend/internal/model"
	"github.com/edustack/edustack-backend/internal/repository"
	"github.com/edustack/edustack-backend/internal/response"
	"github.com/edustack/edustack-backend/internal/service"
	"github.com/edustack/edustack-backend/internal/validator"
)

// UserHandler exposes generic account CRUD under /users. It operates on the
// same student records as the auth routes; register/login stay under /auth.
type UserHandler struct {
	studentService *service.StudentService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(studentService *service.StudentService) *UserHandler {
	return &UserHandler{studentService: studentService}
}

// CreateUser godoc
// POST /api/v1/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req model.RegisterRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailValidation(c, fields)
		return
	}

	user := &model.Student{
		Username: req.Username,
		Role:     model.Role(req.Role),
	}

	if err := h.studentService.Register(c.Request.Context(), user, req.Password); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			response.Fail(c, http.StatusBadRequest, "User already exists")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	response.OK(c, http.StatusCreated, user)
}

// GetUsers godoc
// GET /api/v1/users
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.studentService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	if users == nil {
		users = []model.Student{}
	}
	response.List(c, http.StatusOK, len(users), users)
}

// GetUser godoc
// GET /api/v1/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.studentService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "User", c.Param("id"))
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch user")
		return
	}

	response.OK(c, http.StatusOK, user)
}

// UpdateUser godoc
// PUT /api/v1/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.UpdateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailValidation(c, fields)
		return
	}

	user := &model.Student{
		ID:        id,
		Username:  req.Username,
		Role:      model.Role(req.Role),
		Image:     req.Image,
		BatchID:   req.BatchID,
		CourseIDs: req.CourseIDs,
	}

	if err := h.studentService.Update(c.Request.Context(), user, req.Password); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "User", c.Param("id"))
			return
		}
		if errors.Is(err, repository.ErrDuplicateUsername) {
			response.Fail(c, http.StatusBadRequest, "User already exists")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to update user")
		return
	}

	updated, err := h.studentService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch user")
		return
	}

	response.OK(c, http.StatusOK, updated)
}

// DeleteUser godoc
// DELETE /api/v1/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.studentService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "User", c.Param("id"))
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	response.Message(c, http.StatusOK, "User deleted successfully")
}
