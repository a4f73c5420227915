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

// BatchService handles batch business logic with a Redis read-through cache
// for the public list.
type BatchService struct {
	cfg       *config.Config
	batchRepo *repository.BatchRepository
	rdb       *redis.Client
	log       zerolog.Logger
}

// NewBatchService creates a new BatchService.
func NewBatchService(cfg *config.Config, batchRepo *repository.BatchRepository, rdb *redis.Client, log zerolog.Logger) *BatchService {
	return &BatchService{
		cfg:       cfg,
		batchRepo: batchRepo,
		rdb:       rdb,
		log:       log.With().Str("component", "batch_service").Logger(),
	}
}

// GetByID retrieves a batch by its ID.
func (s *BatchService) GetByID(ctx context.Context, id int) (*model.Batch, error) {
	return s.batchRepo.GetByID(ctx, id)
}

// List retrieves all batches straight from the database (admin view).
func (s *BatchService) List(ctx context.Context) ([]model.Batch, error) {
	return s.batchRepo.List(ctx)
}

// ListPublic retrieves all batches, served from Redis when warm.
func (s *BatchService) ListPublic(ctx context.Context) ([]model.Batch, error) {
	key := config.CacheKey.PublicBatchesKey()

	if raw, err := s.rdb.Get(ctx, key).Result(); err == nil {
		var batches []model.Batch
		if err := json.Unmarshal([]byte(raw), &batches); err == nil {
			return batches, nil
		}
	}

	batches, err := s.batchRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(batches); err == nil {
		if err := s.rdb.Set(ctx, key, data, s.cfg.PublicCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}
	return batches, nil
}

// Create creates a new batch and invalidates the public cache.
func (s *BatchService) Create(ctx context.Context, b *model.Batch) error {
	if err := s.batchRepo.Create(ctx, b); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Update modifies an existing batch and invalidates the public cache.
func (s *BatchService) Update(ctx context.Context, b *model.Batch) error {
	if _, err := s.batchRepo.GetByID(ctx, b.ID); err != nil {
		return err
	}
	if err := s.batchRepo.Update(ctx, b); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Delete removes a batch. Dependent sections, notes, and papers cascade, so
// every section's cached note and paper lists are flushed along with the
// aggregate lists and the batch list.
func (s *BatchService) Delete(ctx context.Context, id int) error {
	if _, err := s.batchRepo.GetByID(ctx, id); err != nil {
		return err
	}
	sectionIDs, err := s.batchRepo.SectionIDs(ctx, id)
	if err != nil {
		return err
	}
	if err := s.batchRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)

	keys := []string{
		config.CacheKey.PublicSectionsKey(id),
		config.CacheKey.PublicNotesKey(0),
		config.CacheKey.PublicPapersKey(0),
	}
	for _, sectionID := range sectionIDs {
		keys = append(keys,
			config.CacheKey.PublicNotesKey(sectionID),
			config.CacheKey.PublicPapersKey(sectionID))
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.log.Warn().Err(err).Int("batch_id", id).Msg("cache invalidation failed")
	}
	return nil
}

func (s *BatchService) invalidate(ctx context.Context) {
	if err := s.rdb.Del(ctx, config.CacheKey.PublicBatchesKey()).Err(); err != nil {
		s.log.Warn().Err(err).Msg("cache invalidation failed")
	}
}
