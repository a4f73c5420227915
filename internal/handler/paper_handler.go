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
)

// PaperHandler handles exam paper management (CRUD) and the public paper list.
type PaperHandler struct {
	paperService *service.PaperService
}

// NewPaperHandler creates a new PaperHandler.
func NewPaperHandler(paperService *service.PaperService) *PaperHandler {
	return &PaperHandler{paperService: paperService}
}

// ListPublicPapers godoc
// GET /api/v1/public/papers?section_id=N
func (h *PaperHandler) ListPublicPapers(c *gin.Context) {
	sectionID, err := queryID(c, "section_id")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	papers, err := h.paperService.ListPublic(c.Request.Context(), sectionID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"papers": papers})
}

// ListPapers godoc
// GET /api/v1/admin/papers?section_id=N
func (h *PaperHandler) ListPapers(c *gin.Context) {
	sectionID, err := queryID(c, "section_id")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	papers, err := h.paperService.List(c.Request.Context(), sectionID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"papers": papers})
}

// CreatePaperRequest is the payload for creating or updating a paper.
type CreatePaperRequest struct {
	SectionID int    `json:"section_id" binding:"required,min=1"`
	Title     string `json:"title" binding:"omitempty,max=200"`
	DriveLink string `json:"drive_link" binding:"required,url,max=500"`
	ExamType  string `json:"exam_type" binding:"required,oneof=mst endsem quiz assignment other"`
	Year      int    `json:"year" binding:"required,min=2000,max=2100"`
}

// CreatePaper godoc
// POST /api/v1/admin/papers
func (h *PaperHandler) CreatePaper(c *gin.Context) {
	var req CreatePaperRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	paper := &model.Paper{
		SectionID: req.SectionID,
		Title:     req.Title,
		DriveLink: req.DriveLink,
		ExamType:  req.ExamType,
		Year:      req.Year,
	}

	if err := h.paperService.Create(c.Request.Context(), paper); err != nil {
		if pgErrCode(err) == "23503" {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"paper": paper})
}

// UpdatePaper godoc
// PUT /api/v1/admin/papers/:id
func (h *PaperHandler) UpdatePaper(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req CreatePaperRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	paper := &model.Paper{
		ID:        id,
		SectionID: req.SectionID,
		Title:     req.Title,
		DriveLink: req.DriveLink,
		ExamType:  req.ExamType,
		Year:      req.Year,
	}

	if err := h.paperService.Update(c.Request.Context(), paper); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pgErrCode(err) == "23503" {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	updated, _ := h.paperService.GetByID(c.Request.Context(), id)

	response.Success(c, http.StatusOK, gin.H{"paper": updated})
}

// DeletePaper godoc
// DELETE /api/v1/admin/papers/:id
func (h *PaperHandler) DeletePaper(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.paperService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "paper deleted successfully"})
}
