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

// CategoryHandler handles category CRUD.
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// GetCategories godoc
// GET /api/v1/category
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if categories == nil {
		categories = []model.Category{}
	}
	response.List(c, http.StatusOK, len(categories), categories)
}

// GetCategory godoc
// GET /api/v1/category/:id
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	category, err := h.categoryService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "Category", c.Param("id"))
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch category")
		return
	}

	response.OK(c, http.StatusOK, category)
}

// CreateCategory godoc
// POST /api/v1/category
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req model.CategoryRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailValidation(c, fields)
		return
	}

	category := &model.Category{Name: req.Name, Description: req.Description}

	if err := h.categoryService.Create(c.Request.Context(), category); err != nil {
		if errors.Is(err, repository.ErrDuplicateCategory) {
			response.Fail(c, http.StatusBadRequest, "Category already exists")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to create category")
		return
	}

	response.OK(c, http.StatusCreated, category)
}

// UpdateCategory godoc
// PUT /api/v1/category/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.CategoryRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailValidation(c, fields)
		return
	}

	category := &model.Category{ID: id, Name: req.Name, Description: req.Description}

	if err := h.categoryService.Update(c.Request.Context(), category); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "Category", c.Param("id"))
			return
		}
		if errors.Is(err, repository.ErrDuplicateCategory) {
			response.Fail(c, http.StatusBadRequest, "Category already exists")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to update category")
		return
	}

	response.OK(c, http.StatusOK, category)
}

// DeleteCategory godoc
// DELETE /api/v1/category/:id
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "Category", c.Param("id"))
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to delete category")
		return
	}

	response.Message(c, http.StatusOK, "Category deleted successfully")
}
