package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/atharvgarg18/iet-csbs-backend/internal/model"
	"github.com/atharvgarg18/iet-csbs-backend/internal/response"
	"github.com/atharvgarg18/iet-csbs-backend/internal/service"
	"github.com/atharvgarg18/iet-csbs-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// NoticeHandler handles notice and notice category management plus the
// public notice board endpoints.
type NoticeHandler struct {
	noticeService *service.NoticeService
}

// NewNoticeHandler creates a new NoticeHandler.
func NewNoticeHandler(noticeService *service.NoticeService) *NoticeHandler {
	return &NoticeHandler{noticeService: noticeService}
}

// ListPublicCategories godoc
// GET /api/v1/public/notices/categories
func (h *NoticeHandler) ListPublicCategories(c *gin.Context) {
	categories, err := h.noticeService.ListCategoriesPublic(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"categories": categories})
}

// ListPublicNotices godoc
// GET /api/v1/public/notices?category_id=N
// Pinned notices come first, then newest publications.
func (h *NoticeHandler) ListPublicNotices(c *gin.Context) {
	categoryID, err := queryID(c, "category_id")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	notices, err := h.noticeService.ListPublic(c.Request.Context(), categoryID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"notices": notices})
}

// ListCategories godoc
// GET /api/v1/admin/notices/categories
func (h *NoticeHandler) ListCategories(c *gin.Context) {
	categories, err := h.noticeService.ListCategories(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"categories": categories})
}

// CreateNoticeCategoryRequest is the payload for a notice category.
type CreateNoticeCategoryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// CreateCategory godoc
// POST /api/v1/admin/notices/categories
func (h *NoticeHandler) CreateCategory(c *gin.Context) {
	var req CreateNoticeCategoryRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	category := &model.NoticeCategory{Name: req.Name}

	if err := h.noticeService.CreateCategory(c.Request.Context(), category); err != nil {
		if pgErrCode(err) == "23505" {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"category": category})
}

// UpdateCategory godoc
// PUT /api/v1/admin/notices/categories/:id
func (h *NoticeHandler) UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req CreateNoticeCategoryRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	category := &model.NoticeCategory{ID: id, Name: req.Name}

	if err := h.noticeService.UpdateCategory(c.Request.Context(), category); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		if pgErrCode(err) == "23505" {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"category": category})
}

// DeleteCategory godoc
// DELETE /api/v1/admin/notices/categories/:id
// Deletes a notice category; its notices cascade.
func (h *NoticeHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.noticeService.DeleteCategory(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "notice category deleted successfully"})
}

// ListNotices godoc
// GET /api/v1/admin/notices?category_id=N
func (h *NoticeHandler) ListNotices(c *gin.Context) {
	categoryID, err := queryID(c, "category_id")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	notices, err := h.noticeService.List(c.Request.Context(), categoryID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"notices": notices})
}

// CreateNoticeRequest is the payload for creating or updating a notice.
// PublishedAt defaults to the current time when omitted.
type CreateNoticeRequest struct {
	CategoryID    int        `json:"category_id" binding:"required,min=1"`
	Title         string     `json:"title" binding:"required,min=2,max=200"`
	Body          string     `json:"body" binding:"required"`
	AttachmentURL *string    `json:"attachment_url" binding:"omitempty,url,max=500"`
	IsPinned      bool       `json:"is_pinned"`
	PublishedAt   *time.Time `json:"published_at" binding:"omitempty"`
}

// CreateNotice godoc
// POST /api/v1/admin/notices
func (h *NoticeHandler) CreateNotice(c *gin.Context) {
	var req CreateNoticeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	notice := &model.Notice{
		CategoryID:    req.CategoryID,
		Title:         req.Title,
		Body:          req.Body,
		AttachmentURL: req.AttachmentURL,
		IsPinned:      req.IsPinned,
	}
	if req.PublishedAt != nil {
		notice.PublishedAt = *req.PublishedAt
	}

	if err := h.noticeService.Create(c.Request.Context(), notice); err != nil {
		if pgErrCode(err) == "23503" { // Referenced category does not exist
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"notice": notice})
}

// UpdateNotice godoc
// PUT /api/v1/admin/notices/:id
func (h *NoticeHandler) UpdateNotice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req CreateNoticeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	notice := &model.Notice{
		ID:            id,
		CategoryID:    req.CategoryID,
		Title:         req.Title,
		Body:          req.Body,
		AttachmentURL: req.AttachmentURL,
		IsPinned:      req.IsPinned,
	}
	if req.PublishedAt != nil {
		notice.PublishedAt = *req.PublishedAt
	}

	if err := h.noticeService.Update(c.Request.Context(), notice); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pgErrCode(err) == "23503" {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	updated, _ := h.noticeService.GetByID(c.Request.Context(), id)

	response.Success(c, http.StatusOK, gin.H{"notice": updated})
}

// DeleteNotice godoc
// DELETE /api/v1/admin/notices/:id
func (h *NoticeHandler) DeleteNotice(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.noticeService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "notice deleted successfully"})
}
