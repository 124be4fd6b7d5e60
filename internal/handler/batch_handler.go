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

// BatchHandler handles batch CRUD.
type BatchHandler struct {
	batchService *service.BatchService
}

// NewBatchHandler creates a new BatchHandler.
func NewBatchHandler(batchService *service.BatchService) *BatchHandler {
	return &BatchHandler{batchService: batchService}
}

// GetBatches godoc
// GET /api/v1/batch/getAllBatches
func (h *BatchHandler) GetBatches(c *gin.Context) {
	batches, err := h.batchService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if batches == nil {
		batches = []model.Batch{}
	}
	response.List(c, http.StatusOK, len(batches), batches)
}

// GetBatch godoc
// GET /api/v1/batch/:id
func (h *BatchHandler) GetBatch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	batch, err := h.batchService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "Batch", c.Param("id"))
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to fetch batch")
		return
	}

	response.OK(c, http.StatusOK, batch)
}

// CreateBatch godoc
// POST /api/v1/batch/createBatch
func (h *BatchHandler) CreateBatch(c *gin.Context) {
	var req model.BatchRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailValidation(c, fields)
		return
	}

	batch := &model.Batch{BatchName: req.BatchName}

	if err := h.batchService.Create(c.Request.Context(), batch); err != nil {
		if errors.Is(err, repository.ErrDuplicateBatch) {
			response.Fail(c, http.StatusBadRequest, "Batch already exists")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to create batch")
		return
	}

	response.OK(c, http.StatusCreated, batch)
}

// UpdateBatch godoc
// PUT /api/v1/batch/:id
func (h *BatchHandler) UpdateBatch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req model.BatchRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailValidation(c, fields)
		return
	}

	batch := &model.Batch{ID: id, BatchName: req.BatchName}

	if err := h.batchService.Update(c.Request.Context(), batch); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "Batch", c.Param("id"))
			return
		}
		if errors.Is(err, repository.ErrDuplicateBatch) {
			response.Fail(c, http.StatusBadRequest, "Batch already exists")
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to update batch")
		return
	}

	response.OK(c, http.StatusOK, batch)
}

// DeleteBatch godoc
// DELETE /api/v1/batch/:id
func (h *BatchHandler) DeleteBatch(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.batchService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.NotFound(c, "Batch", c.Param("id"))
			return
		}
		response.Fail(c, http.StatusInternalServerError, "Failed to delete batch")
		return
	}

	response.Message(c, http.StatusOK, "Batch deleted successfully")
}
