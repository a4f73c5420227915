package service

import (
	"context"
	"encoding/json"

	"github.com/atharvgarg18/iet-csbs-backend/internal/config"
	"github.com/atharvgarg18/iet-csbs-backend/internal/model"
	"github.com/atharvgarg18/iet-csbs-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// GalleryService handles gallery category and image business logic.
type GalleryService struct {
	cfg         *config.Config
	galleryRepo *repository.GalleryRepository
	rdb         *redis.Client
	log         zerolog.Logger
}

// NewGalleryService creates a new GalleryService.
func NewGalleryService(cfg *config.Config, galleryRepo *repository.GalleryRepository, rdb *redis.Client, log zerolog.Logger) *GalleryService {
	return &GalleryService{
		cfg:         cfg,
		galleryRepo: galleryRepo,
		rdb:         rdb,
		log:         log.With().Str("component", "gallery_service").Logger(),
	}
}

// ListCategories retrieves all gallery categories (admin view).
func (s *GalleryService) ListCategories(ctx context.Context) ([]model.GalleryCategory, error) {
	return s.galleryRepo.ListCategories(ctx)
}

// ListCategoriesPublic retrieves gallery categories, served from Redis when warm.
func (s *GalleryService) ListCategoriesPublic(ctx context.Context) ([]model.GalleryCategory, error) {
	key := config.CacheKey.PublicGalleryCategoriesKey()

	if raw, err := s.rdb.Get(ctx, key).Result(); err == nil {
		var categories []model.GalleryCategory
		if err := json.Unmarshal([]byte(raw), &categories); err == nil {
			return categories, nil
		}
	}

	categories, err := s.galleryRepo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(categories); err == nil {
		if err := s.rdb.Set(ctx, key, data, s.cfg.PublicCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}
	return categories, nil
}

// CreateCategory creates a gallery category.
func (s *GalleryService) CreateCategory(ctx context.Context, gc *model.GalleryCategory) error {
	if err := s.galleryRepo.CreateCategory(ctx, gc); err != nil {
		return err
	}
	s.invalidateCategories(ctx)
	return nil
}

// UpdateCategory modifies a gallery category.
func (s *GalleryService) UpdateCategory(ctx context.Context, gc *model.GalleryCategory) error {
	if _, err := s.galleryRepo.GetCategoryByID(ctx, gc.ID); err != nil {
		return err
	}
	if err := s.galleryRepo.UpdateCategory(ctx, gc); err != nil {
		return err
	}
	s.invalidateCategories(ctx)
	return nil
}

// DeleteCategory removes a gallery category. Its images cascade.
func (s *GalleryService) DeleteCategory(ctx context.Context, id int) error {
	if _, err := s.galleryRepo.GetCategoryByID(ctx, id); err != nil {
		return err
	}
	if err := s.galleryRepo.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.invalidateCategories(ctx)
	s.invalidateImages(ctx, id)
	return nil
}

// ListImages retrieves images (admin view). categoryID 0 = all.
func (s *GalleryService) ListImages(ctx context.Context, categoryID int) ([]model.GalleryImage, error) {
	return s.galleryRepo.ListImages(ctx, categoryID)
}

// ListImagesPublic retrieves a category's images, served from Redis when warm.
func (s *GalleryService) ListImagesPublic(ctx context.Context, categoryID int) ([]model.GalleryImage, error) {
	key := config.CacheKey.PublicGalleryImagesKey(categoryID)

	if raw, err := s.rdb.Get(ctx, key).Result(); err == nil {
		var images []model.GalleryImage
		if err := json.Unmarshal([]byte(raw), &images); err == nil {
			return images, nil
		}
	}

	images, err := s.galleryRepo.ListImages(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(images); err == nil {
		if err := s.rdb.Set(ctx, key, data, s.cfg.PublicCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}
	return images, nil
}

// CreateImage adds an image to a category.
func (s *GalleryService) CreateImage(ctx context.Context, img *model.GalleryImage) error {
	if err := s.galleryRepo.CreateImage(ctx, img); err != nil {
		return err
	}
	s.invalidateImages(ctx, img.CategoryID)
	return nil
}

// UpdateImage modifies a gallery image, invalidating both category caches
// when it moved between categories.
func (s *GalleryService) UpdateImage(ctx context.Context, img *model.GalleryImage) error {
	old, err := s.galleryRepo.GetImageByID(ctx, img.ID)
	if err != nil {
		return err
	}
	if err := s.galleryRepo.UpdateImage(ctx, img); err != nil {
		return err
	}
	s.invalidateImages(ctx, img.CategoryID)
	if old.CategoryID != img.CategoryID {
		s.invalidateImages(ctx, old.CategoryID)
	}
	return nil
}

// DeleteImage removes an image.
func (s *GalleryService) DeleteImage(ctx context.Context, id int) error {
	old, err := s.galleryRepo.GetImageByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.galleryRepo.DeleteImage(ctx, id); err != nil {
		return err
	}
	s.invalidateImages(ctx, old.CategoryID)
	return nil
}

func (s *GalleryService) invalidateCategories(ctx context.Context) {
	if err := s.rdb.Del(ctx, config.CacheKey.PublicGalleryCategoriesKey()).Err(); err != nil {
		s.log.Warn().Err(err).Msg("cache invalidation failed")
	}
}

func (s *GalleryService) invalidateImages(ctx context.Context, categoryID int) {
	keys := []string{
		config.CacheKey.PublicGalleryImagesKey(categoryID),
		config.CacheKey.PublicGalleryImagesKey(0),
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.log.Warn().Err(err).Int("category_id", categoryID).Msg("cache invalidation failed")
	}
}
