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

// ModuleHandler handles module CRUD. Deleting a module also sweeps its classes.
type ModuleHandler struct {
	moduleService *service.ModuleService
}

// NewModuleHandler creates a new ModuleHandler.
func NewModuleHandler(moduleService *service.ModuleService) *ModuleHandler {
	return &ModuleHandler{moduleService: moduleService}
}

// GetModules godoc
// GET /api/v1/modules
func (h *ModuleHandler) GetModules(c *gin.Context) {
	modules, err := h.moduleService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if modules == nil {
		modules = []model.Module{}
	}
	response.List(c, http.StatusOK, len(modules), modules)
}

// GetModule godoc
// GET /api/v1/modules/:id
func (h *ModuleHandler) GetModule(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	module, err := h.moduleService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "Module", c.Param("id"))
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch module")
		return
	}

	response.OK(c, http.StatusOK, module)
}

// CreateModule godoc
// POST /api/v1/modules
func (h *ModuleHandler) CreateModule(c *gin.Context) {
	var req model.ModuleRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailValidation(c, fields)
		return
	}

	module := moduleFromRequest(&req)

	if err := h.moduleService.Create(c.Request.Context(), module); err != nil {
		response.Fail(c, http.StatusInternalServerError, "Failed to create module")
		return
	}

	response.OK(c, http.StatusCreated, module)
}

// UpdateModule godoc
// PUT /api/v1/modules/:id
func (h *ModuleHandler) UpdateModule(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.ModuleRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailValidation(c, fields)
		return
	}

	module := moduleFromRequest(&req)
	module.ID = id

	if err := h.moduleService.Update(c.Request.Context(), module); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "Module", c.Param("id"))
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to update module")
		return
	}

	response.OK(c, http.StatusOK, module)
}

// DeleteModule godoc
// DELETE /api/v1/modules/:id
func (h *ModuleHandler) DeleteModule(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.moduleService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "Module", c.Param("id"))
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to delete module")
		return
	}

	response.Message(c, http.StatusOK, "Module deleted successfully")
}

func moduleFromRequest(req *model.ModuleRequest) *model.Module {
	return &model.Module{
		Name:        req.Name,
		Type:        model.ModuleType(req.Type),
		Price:       *req.Price,
		Description: req.Description,
		Subheader:   req.Subheader,
		Img:         req.Img,
		StarRating:  *req.StarRating,
		Author:      req.Author,
		Category:    req.Category,
	}
}
