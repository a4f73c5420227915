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

// SectionService handles section business logic.
type SectionService struct {
	cfg         *config.Config
	sectionRepo *repository.SectionRepository
	rdb         *redis.Client
	log         zerolog.Logger
}

// NewSectionService creates a new SectionService.
func NewSectionService(cfg *config.Config, sectionRepo *repository.SectionRepository, rdb *redis.Client, log zerolog.Logger) *SectionService {
	return &SectionService{
		cfg:         cfg,
		sectionRepo: sectionRepo,
		rdb:         rdb,
		log:         log.With().Str("component", "section_service").Logger(),
	}
}

// GetByID retrieves a section with its batch.
func (s *SectionService) GetByID(ctx context.Context, id int) (*model.Section, error) {
	return s.sectionRepo.GetByID(ctx, id)
}

// List retrieves sections from the database (admin view). batchID 0 = all.
func (s *SectionService) List(ctx context.Context, batchID int) ([]model.Section, error) {
	return s.sectionRepo.List(ctx, batchID)
}

// ListPublic retrieves a batch's sections, served from Redis when warm.
func (s *SectionService) ListPublic(ctx context.Context, batchID int) ([]model.Section, error) {
	key := config.CacheKey.PublicSectionsKey(batchID)

	if raw, err := s.rdb.Get(ctx, key).Result(); err == nil {
		var sections []model.Section
		if err := json.Unmarshal([]byte(raw), &sections); err == nil {
			return sections, nil
		}
	}

	sections, err := s.sectionRepo.List(ctx, batchID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(sections); err == nil {
		if err := s.rdb.Set(ctx, key, data, s.cfg.PublicCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}
	return sections, nil
}

// Create creates a new section and invalidates its batch's cache.
func (s *SectionService) Create(ctx context.Context, sec *model.Section) error {
	if err := s.sectionRepo.Create(ctx, sec); err != nil {
		return err
	}
	s.invalidate(ctx, sec.BatchID)
	return nil
}

// Update modifies a section, invalidating both the old and new batch caches
// when the section moved between batches.
func (s *SectionService) Update(ctx context.Context, sec *model.Section) error {
	old, err := s.sectionRepo.GetByID(ctx, sec.ID)
	if err != nil {
		return err
	}
	if err := s.sectionRepo.Update(ctx, sec); err != nil {
		return err
	}
	s.invalidate(ctx, sec.BatchID)
	if old.BatchID != sec.BatchID {
		s.invalidate(ctx, old.BatchID)
	}
	return nil
}

// Delete removes a section. Notes and papers underneath cascade.
func (s *SectionService) Delete(ctx context.Context, id int) error {
	old, err := s.sectionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.sectionRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, old.BatchID)

	// The section's notes and papers are gone, so the aggregate lists
	// changed too.
	keys := []string{
		config.CacheKey.PublicNotesKey(id), config.CacheKey.PublicNotesKey(0),
		config.CacheKey.PublicPapersKey(id), config.CacheKey.PublicPapersKey(0),
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.log.Warn().Err(err).Int("section_id", id).Msg("cache invalidation failed")
	}
	return nil
}

func (s *SectionService) invalidate(ctx context.Context, batchID int) {
	if err := s.rdb.Del(ctx, config.CacheKey.PublicSectionsKey(batchID)).Err(); err != nil {
		s.log.Warn().Err(err).Int("batch_id", batchID).Msg("cache invalidation failed")
	}
}
