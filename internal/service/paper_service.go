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

// PaperService handles exam paper business logic.
type PaperService struct {
	cfg       *config.Config
	paperRepo *repository.PaperRepository
	rdb       *redis.Client
	log       zerolog.Logger
}

// NewPaperService creates a new PaperService.
func NewPaperService(cfg *config.Config, paperRepo *repository.PaperRepository, rdb *redis.Client, log zerolog.Logger) *PaperService {
	return &PaperService{
		cfg:       cfg,
		paperRepo: paperRepo,
		rdb:       rdb,
		log:       log.With().Str("component", "paper_service").Logger(),
	}
}

// GetByID retrieves a paper with its section→batch chain resolved.
func (s *PaperService) GetByID(ctx context.Context, id int) (*model.Paper, error) {
	return s.paperRepo.GetByID(ctx, id)
}

// List retrieves papers from the database (admin view). sectionID 0 = all.
func (s *PaperService) List(ctx context.Context, sectionID int) ([]model.Paper, error) {
	return s.paperRepo.List(ctx, sectionID)
}

// ListPublic retrieves papers, served from Redis when warm.
func (s *PaperService) ListPublic(ctx context.Context, sectionID int) ([]model.Paper, error) {
	key := config.CacheKey.PublicPapersKey(sectionID)

	if raw, err := s.rdb.Get(ctx, key).Result(); err == nil {
		var papers []model.Paper
		if err := json.Unmarshal([]byte(raw), &papers); err == nil {
			return papers, nil
		}
	}

	papers, err := s.paperRepo.List(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(papers); err == nil {
		if err := s.rdb.Set(ctx, key, data, s.cfg.PublicCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}
	return papers, nil
}

// Create creates a new paper and invalidates its section's cache.
func (s *PaperService) Create(ctx context.Context, p *model.Paper) error {
	if err := s.paperRepo.Create(ctx, p); err != nil {
		return err
	}
	s.invalidate(ctx, p.SectionID)
	return nil
}

// Update modifies a paper, invalidating both section caches when it moved.
func (s *PaperService) Update(ctx context.Context, p *model.Paper) error {
	old, err := s.paperRepo.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	if err := s.paperRepo.Update(ctx, p); err != nil {
		return err
	}
	s.invalidate(ctx, p.SectionID)
	if old.SectionID != p.SectionID {
		s.invalidate(ctx, old.SectionID)
	}
	return nil
}

// Delete removes a paper.
func (s *PaperService) Delete(ctx context.Context, id int) error {
	old, err := s.paperRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.paperRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, old.SectionID)
	return nil
}

func (s *PaperService) invalidate(ctx context.Context, sectionID int) {
	keys := []string{
		config.CacheKey.PublicPapersKey(sectionID),
		config.CacheKey.PublicPapersKey(0),
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.log.Warn().Err(err).Int("section_id", sectionID).Msg("cache invalidation failed")
	}
}
