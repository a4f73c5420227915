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

// GalleryHandler handles gallery category and image management plus the
// public gallery endpoints.
type GalleryHandler struct {
	galleryService *service.GalleryService
}

// NewGalleryHandler creates a new GalleryHandler.
func NewGalleryHandler(galleryService *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService}
}

// ListPublicCategories godoc
// GET /api/v1/public/gallery/categories
func (h *GalleryHandler) ListPublicCategories(c *gin.Context) {
	categories, err := h.galleryService.ListCategoriesPublic(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"categories": categories})
}

// ListPublicImages godoc
// GET /api/v1/public/gallery/categories/:id/images
func (h *GalleryHandler) ListPublicImages(c *gin.Context) {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	images, err := h.galleryService.ListImagesPublic(c.Request.Context(), categoryID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"images": images})
}

// ListCategories godoc
// GET /api/v1/admin/gallery/categories
func (h *GalleryHandler) ListCategories(c *gin.Context) {
	categories, err := h.galleryService.ListCategories(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"categories": categories})
}

// CreateGalleryCategoryRequest is the payload for a gallery category.
type CreateGalleryCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

// CreateCategory godoc
// POST /api/v1/admin/gallery/categories
func (h *GalleryHandler) CreateCategory(c *gin.Context) {
	var req CreateGalleryCategoryRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	category := &model.GalleryCategory{Name: req.Name, Description: req.Description}

	if err := h.galleryService.CreateCategory(c.Request.Context(), category); err != nil {
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
// PUT /api/v1/admin/gallery/categories/:id
func (h *GalleryHandler) UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req CreateGalleryCategoryRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	category := &model.GalleryCategory{ID: id, Name: req.Name, Description: req.Description}

	if err := h.galleryService.UpdateCategory(c.Request.Context(), category); err != nil {
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
// DELETE /api/v1/admin/gallery/categories/:id
// Deletes a gallery category; its images cascade.
func (h *GalleryHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.galleryService.DeleteCategory(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "gallery category deleted successfully"})
}

// ListImages godoc
// GET /api/v1/admin/gallery/images?category_id=N
func (h *GalleryHandler) ListImages(c *gin.Context) {
	categoryID, err := queryID(c, "category_id")
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	images, err := h.galleryService.ListImages(c.Request.Context(), categoryID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"images": images})
}

// CreateGalleryImageRequest is the payload for a gallery image.
type CreateGalleryImageRequest struct {
	CategoryID int    `json:"category_id" binding:"required,min=1"`
	Title      string `json:"title" binding:"omitempty,max=200"`
	ImageURL   string `json:"image_url" binding:"required,url,max=500"`
}

// CreateImage godoc
// POST /api/v1/admin/gallery/images
func (h *GalleryHandler) CreateImage(c *gin.Context) {
	var req CreateGalleryImageRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	image := &model.GalleryImage{
		CategoryID: req.CategoryID,
		Title:      req.Title,
		ImageURL:   req.ImageURL,
	}

	if err := h.galleryService.CreateImage(c.Request.Context(), image); err != nil {
		if pgErrCode(err) == "23503" { // Referenced category does not exist
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"image": image})
}

// UpdateImage godoc
// PUT /api/v1/admin/gallery/images/:id
func (h *GalleryHandler) UpdateImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req CreateGalleryImageRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	image := &model.GalleryImage{
		ID:         id,
		CategoryID: req.CategoryID,
		Title:      req.Title,
		ImageURL:   req.ImageURL,
	}

	if err := h.galleryService.UpdateImage(c.Request.Context(), image); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pgErrCode(err) == "23503" {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"image": image})
}

// DeleteImage godoc
// DELETE /api/v1/admin/gallery/images/:id
func (h *GalleryHandler) DeleteImage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.galleryService.DeleteImage(c.Request.Context(), id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "image deleted successfully"})
}
