package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/atharvgarg18/iet-csbs-backend/internal/model"
	"github.com/atharvgarg18/iet-csbs-backend/internal/response"
	"github.com/atharvgarg18/iet-csbs-backend/internal/service"
	"github.com/atharvgarg18/iet-csbs-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// BatchHandler handles batch management (CRUD) and the public batch list.
type BatchHandler struct {
	batchService *service.BatchService
}

// NewBatchHandler creates a new BatchHandler.
func NewBatchHandler(batchService *service.BatchService) *BatchHandler {
	return &BatchHandler{batchService: batchService}
}

// ListPublicBatches godoc
// GET /api/v1/public/batches
func (h *BatchHandler) ListPublicBatches(c *gin.Context) {
	batches, err := h.batchService.ListPublic(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"batches": batches})
}

// ListBatches godoc
// GET /api/v1/admin/batches
func (h *BatchHandler) ListBatches(c *gin.Context) {
	batches, err := h.batchService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"batches": batches})
}

// CreateBatchRequest is the payload for creating or updating a batch.
type CreateBatchRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=50"`
	StartYear int    `json:"start_year" binding:"required,min=2000,max=2100"`
	EndYear   int    `json:"end_year" binding:"required,min=2000,max=2100,gtefield=StartYear"`
}

// CreateBatch godoc
// POST /api/v1/admin/batches
func (h *BatchHandler) CreateBatch(c *gin.Context) {
	var req CreateBatchRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	batch := &model.Batch{
		Name:      req.Name,
		StartYear: req.StartYear,
		EndYear:   req.EndYear,
	}

	if err := h.batchService.Create(c.Request.Context(), batch); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"batch": batch})
}

// UpdateBatch godoc
// PUT /api/v1/admin/batches/:id
func (h *BatchHandler) UpdateBatch(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req CreateBatchRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	batch := &model.Batch{
		ID:        id,
		Name:      req.Name,
		StartYear: req.StartYear,
		EndYear:   req.EndYear,
	}

	if err := h.batchService.Update(c.Request.Context(), batch); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	// Fetch updated to get the current updated_at timestamp.
	updated, _ := h.batchService.GetByID(c.Request.Context(), id)

	response.Success(c, http.StatusOK, gin.H{"batch": updated})
}

// DeleteBatch godoc
// DELETE /api/v1/admin/batches/:id
// Deletes a batch; its sections, notes, and papers cascade.
func (h *BatchHandler) DeleteBatch(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.batchService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "batch deleted successfully"})
}
