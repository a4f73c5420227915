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

// NoticeService handles notice and notice category business logic.
type NoticeService struct {
	cfg        *config.Config
	noticeRepo *repository.NoticeRepository
	rdb        *redis.Client
	log        zerolog.Logger
}

// NewNoticeService creates a new NoticeService.
func NewNoticeService(cfg *config.Config, noticeRepo *repository.NoticeRepository, rdb *redis.Client, log zerolog.Logger) *NoticeService {
	return &NoticeService{
		cfg:        cfg,
		noticeRepo: noticeRepo,
		rdb:        rdb,
		log:        log.With().Str("component", "notice_service").Logger(),
	}
}

// ListCategories retrieves all notice categories (admin view).
func (s *NoticeService) ListCategories(ctx context.Context) ([]model.NoticeCategory, error) {
	return s.noticeRepo.ListCategories(ctx)
}

// ListCategoriesPublic retrieves notice categories, served from Redis when warm.
func (s *NoticeService) ListCategoriesPublic(ctx context.Context) ([]model.NoticeCategory, error) {
	key := config.CacheKey.PublicNoticeCategoriesKey()

	if raw, err := s.rdb.Get(ctx, key).Result(); err == nil {
		var categories []model.NoticeCategory
		if err := json.Unmarshal([]byte(raw), &categories); err == nil {
			return categories, nil
		}
	}

	categories, err := s.noticeRepo.ListCategories(ctx)
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

// CreateCategory creates a notice category.
func (s *NoticeService) CreateCategory(ctx context.Context, nc *model.NoticeCategory) error {
	if err := s.noticeRepo.CreateCategory(ctx, nc); err != nil {
		return err
	}
	s.invalidateCategories(ctx)
	return nil
}

// UpdateCategory renames a notice category.
func (s *NoticeService) UpdateCategory(ctx context.Context, nc *model.NoticeCategory) error {
	if _, err := s.noticeRepo.GetCategoryByID(ctx, nc.ID); err != nil {
		return err
	}
	if err := s.noticeRepo.UpdateCategory(ctx, nc); err != nil {
		return err
	}
	s.invalidateCategories(ctx)
	return nil
}

// DeleteCategory removes a notice category. Its notices cascade.
func (s *NoticeService) DeleteCategory(ctx context.Context, id int) error {
	if _, err := s.noticeRepo.GetCategoryByID(ctx, id); err != nil {
		return err
	}
	if err := s.noticeRepo.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.invalidateCategories(ctx)
	s.invalidateNotices(ctx, id)
	return nil
}

// GetByID retrieves a notice.
func (s *NoticeService) GetByID(ctx context.Context, id int) (*model.Notice, error) {
	return s.noticeRepo.GetByID(ctx, id)
}

// List retrieves notices from the database (admin view). categoryID 0 = all.
func (s *NoticeService) List(ctx context.Context, categoryID int) ([]model.Notice, error) {
	return s.noticeRepo.List(ctx, categoryID)
}

// ListPublic retrieves notices pinned-first, served from Redis when warm.
func (s *NoticeService) ListPublic(ctx context.Context, categoryID int) ([]model.Notice, error) {
	key := config.CacheKey.PublicNoticesKey(categoryID)

	if raw, err := s.rdb.Get(ctx, key).Result(); err == nil {
		var notices []model.Notice
		if err := json.Unmarshal([]byte(raw), &notices); err == nil {
			return notices, nil
		}
	}

	notices, err := s.noticeRepo.List(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(notices); err == nil {
		if err := s.rdb.Set(ctx, key, data, s.cfg.PublicCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}
	return notices, nil
}

// Create publishes a new notice.
func (s *NoticeService) Create(ctx context.Context, n *model.Notice) error {
	if err := s.noticeRepo.Create(ctx, n); err != nil {
		return err
	}
	s.invalidateNotices(ctx, n.CategoryID)
	return nil
}

// Update modifies a notice, invalidating both category caches when it moved.
func (s *NoticeService) Update(ctx context.Context, n *model.Notice) error {
	old, err := s.noticeRepo.GetByID(ctx, n.ID)
	if err != nil {
		return err
	}
	if err := s.noticeRepo.Update(ctx, n); err != nil {
		return err
	}
	s.invalidateNotices(ctx, n.CategoryID)
	if old.CategoryID != n.CategoryID {
		s.invalidateNotices(ctx, old.CategoryID)
	}
	return nil
}

// Delete removes a notice.
func (s *NoticeService) Delete(ctx context.Context, id int) error {
	old, err := s.noticeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.noticeRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateNotices(ctx, old.CategoryID)
	return nil
}

func (s *NoticeService) invalidateCategories(ctx context.Context) {
	if err := s.rdb.Del(ctx, config.CacheKey.PublicNoticeCategoriesKey()).Err(); err != nil {
		s.log.Warn().Err(err).Msg("cache invalidation failed")
	}
}

func (s *NoticeService) invalidateNotices(ctx context.Context, categoryID int) {
	keys := []string{
		config.CacheKey.PublicNoticesKey(categoryID),
		config.CacheKey.PublicNoticesKey(0),
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.log.Warn().Err(err).Int("category_id", categoryID).Msg("cache invalidation failed")
	}
}
