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

// SectionHandler handles section management (CRUD) and public section lists.
type SectionHandler struct {
	sectionService *service.SectionService
}

// NewSectionHandler creates a new SectionHandler.
func NewSectionHandler(sectionService *service.SectionService) *SectionHandler {
	return &SectionHandler{sectionService: sectionService}
}

// ListPublicSections godoc
// GET /api/v1/public/batches/:id/sections
func (h *SectionHandler) ListPublicSections(c *gin.Context) {
	batchID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	sections, err := h.sectionService.ListPublic(c.Request.Context(), batchID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sections": sections})
}

// ListSections godoc
// GET /api/v1/admin/sections?batch_id=N
func (h *SectionHandler) ListSections(c *gin.Context) {
	batchID, err := queryID(c, "batch_id")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	sections, err := h.sectionService.List(c.Request.Context(), batchID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sections": sections})
}

// CreateSectionRequest is the payload for creating or updating a section.
type CreateSectionRequest struct {
	BatchID int    `json:"batch_id" binding:"required,min=1"`
	Name    string `json:"name" binding:"required,min=1,max=50"`
}

// CreateSection godoc
// POST /api/v1/admin/sections
func (h *SectionHandler) CreateSection(c *gin.Context) {
	var req CreateSectionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	section := &model.Section{BatchID: req.BatchID, Name: req.Name}

	if err := h.sectionService.Create(c.Request.Context(), section); err != nil {
		if code := pgErrCode(err); code != "" {
			switch code {
			case "23505":
				response.Fail(c, http.StatusConflict, response.ErrConflict)
			case "23503": // Referenced batch does not exist
				response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			default:
				response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
			}
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"section": section})
}

// UpdateSection godoc
// PUT /api/v1/admin/sections/:id
func (h *SectionHandler) UpdateSection(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req CreateSectionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	section := &model.Section{ID: id, BatchID: req.BatchID, Name: req.Name}

	if err := h.sectionService.Update(c.Request.Context(), section); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		switch pgErrCode(err) {
		case "23505":
			response.Fail(c, http.StatusConflict, response.ErrConflict)
		case "23503":
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	updated, _ := h.sectionService.GetByID(c.Request.Context(), id)

	response.Success(c, http.StatusOK, gin.H{"section": updated})
}

// DeleteSection godoc
// DELETE /api/v1/admin/sections/:id
// Deletes a section; its notes and papers cascade.
func (h *SectionHandler) DeleteSection(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.sectionService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "section deleted successfully"})
}

// pgErrCode returns the PostgreSQL error code, or "" for other errors.
func pgErrCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// queryID parses an optional positive-integer query parameter; absent means 0.
func queryID(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
