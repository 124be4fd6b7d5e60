package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"github.com/edustack/edustack-backend/internal/model"
	"github.com/edustack/edustack-backend/internal/response"
	"github.com/edustack/edustack-backend/internal/service"
	"github.com/edustack/edustack-backend/internal/validator"
)

// ClassHandler handles class CRUD.
type ClassHandler struct {
	classService *service.ClassService
}

// NewClassHandler creates a new ClassHandler.
func NewClassHandler(classService *service.ClassService) *ClassHandler {
	return &ClassHandler{classService: classService}
}

// GetClasses godoc
// GET /api/v1/classes
func (h *ClassHandler) GetClasses(c *gin.Context) {
	classes, err := h.classService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if classes == nil {
		classes = []model.Class{}
	}
	response.List(c, http.StatusOK, len(classes), classes)
}

// GetClass godoc
// GET /api/v1/classes/:id
func (h *ClassHandler) GetClass(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	class, err := h.classService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "Class", c.Param("id"))
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch class")
		return
	}

	response.OK(c, http.StatusOK, class)
}

// CreateClass godoc
// POST /api/v1/classes
func (h *ClassHandler) CreateClass(c *gin.Context) {
	var req model.ClassRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailValidation(c, fields)
		return
	}

	class := classFromRequest(&req)

	if err := h.classService.Create(c.Request.Context(), class); err != nil {
		response.Fail(c, http.StatusInternalServerError, "Failed to create class")
		return
	}

	response.OK(c, http.StatusCreated, class)
}

// UpdateClass godoc
// PUT /api/v1/classes/:id
func (h *ClassHandler) UpdateClass(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.ClassRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailValidation(c, fields)
		return
	}

	class := classFromRequest(&req)
	class.ID = id

	if err := h.classService.Update(c.Request.Context(), class); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "Class", c.Param("id"))
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to update class")
		return
	}

	response.OK(c, http.StatusOK, class)
}

// DeleteClass godoc
// DELETE /api/v1/classes/:id
func (h *ClassHandler) DeleteClass(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.classService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "Class", c.Param("id"))
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to delete class")
		return
	}

	response.Message(c, http.StatusOK, "Class deleted successfully")
}

func classFromRequest(req *model.ClassRequest) *model.Class {
	return &model.Class{
		ModuleID:    req.ModuleID,
		Name:        req.Name,
		Description: req.Description,
		PDF:         req.PDF,
		Video:       req.Video,
	}
}
