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

// NoteHandler handles note management (CRUD) and the public note list.
type NoteHandler struct {
	noteService *service.NoteService
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(noteService *service.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// ListPublicNotes godoc
// GET /api/v1/public/notes?section_id=N
func (h *NoteHandler) ListPublicNotes(c *gin.Context) {
	sectionID, err := queryID(c, "section_id")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	notes, err := h.noteService.ListPublic(c.Request.Context(), sectionID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"notes": notes})
}

// ListNotes godoc
// GET /api/v1/admin/notes?section_id=N
// Lists notes with their section→batch chain resolved.
func (h *NoteHandler) ListNotes(c *gin.Context) {
	sectionID, err := queryID(c, "section_id")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	notes, err := h.noteService.List(c.Request.Context(), sectionID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"notes": notes})
}

// CreateNoteRequest is the payload for creating or updating a note.
type CreateNoteRequest struct {
	SectionID   int    `json:"section_id" binding:"required,min=1"`
	Title       string `json:"title" binding:"omitempty,max=200"`
	DriveLink   string `json:"drive_link" binding:"required,url,max=500"`
	Description string `json:"description" binding:"omitempty,max=1000"`
}

// CreateNote godoc
// POST /api/v1/admin/notes
func (h *NoteHandler) CreateNote(c *gin.Context) {
	var req CreateNoteRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	note := &model.Note{
		SectionID:   req.SectionID,
		Title:       req.Title,
		DriveLink:   req.DriveLink,
		Description: req.Description,
	}

	if err := h.noteService.Create(c.Request.Context(), note); err != nil {
		if pgErrCode(err) == "23503" { // Referenced section does not exist
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"note": note})
}

// UpdateNote godoc
// PUT /api/v1/admin/notes/:id
func (h *NoteHandler) UpdateNote(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req CreateNoteRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	note := &model.Note{
		ID:          id,
		SectionID:   req.SectionID,
		Title:       req.Title,
		DriveLink:   req.DriveLink,
		Description: req.Description,
	}

	if err := h.noteService.Update(c.Request.Context(), note); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pgErrCode(err) == "23503" {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	updated, _ := h.noteService.GetByID(c.Request.Context(), id)

	response.Success(c, http.StatusOK, gin.H{"note": updated})
}

// DeleteNote godoc
// DELETE /api/v1/admin/notes/:id
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.noteService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "note deleted successfully"})
}
