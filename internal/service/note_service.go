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

// NoteService handles note business logic.
type NoteService struct {
	cfg      *config.Config
	noteRepo *repository.NoteRepository
	rdb      *redis.Client
	log      zerolog.Logger
}

// NewNoteService creates a new NoteService.
func NewNoteService(cfg *config.Config, noteRepo *repository.NoteRepository, rdb *redis.Client, log zerolog.Logger) *NoteService {
	return &NoteService{
		cfg:      cfg,
		noteRepo: noteRepo,
		rdb:      rdb,
		log:      log.With().Str("component", "note_service").Logger(),
	}
}

// GetByID retrieves a note with its section→batch chain resolved.
func (s *NoteService) GetByID(ctx context.Context, id int) (*model.Note, error) {
	return s.noteRepo.GetByID(ctx, id)
}

// List retrieves notes from the database (admin view). sectionID 0 = all.
func (s *NoteService) List(ctx context.Context, sectionID int) ([]model.Note, error) {
	return s.noteRepo.List(ctx, sectionID)
}

// ListPublic retrieves notes, served from Redis when warm.
func (s *NoteService) ListPublic(ctx context.Context, sectionID int) ([]model.Note, error) {
	key := config.CacheKey.PublicNotesKey(sectionID)

	if raw, err := s.rdb.Get(ctx, key).Result(); err == nil {
		var notes []model.Note
		if err := json.Unmarshal([]byte(raw), &notes); err == nil {
			return notes, nil
		}
	}

	notes, err := s.noteRepo.List(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(notes); err == nil {
		if err := s.rdb.Set(ctx, key, data, s.cfg.PublicCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}
	return notes, nil
}

// Create creates a new note and invalidates its section's cache.
func (s *NoteService) Create(ctx context.Context, n *model.Note) error {
	if err := s.noteRepo.Create(ctx, n); err != nil {
		return err
	}
	s.invalidate(ctx, n.SectionID)
	return nil
}

// Update modifies a note, invalidating both section caches when it moved.
func (s *NoteService) Update(ctx context.Context, n *model.Note) error {
	old, err := s.noteRepo.GetByID(ctx, n.ID)
	if err != nil {
		return err
	}
	if err := s.noteRepo.Update(ctx, n); err != nil {
		return err
	}
	s.invalidate(ctx, n.SectionID)
	if old.SectionID != n.SectionID {
		s.invalidate(ctx, old.SectionID)
	}
	return nil
}

// Delete removes a note.
func (s *NoteService) Delete(ctx context.Context, id int) error {
	old, err := s.noteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.noteRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, old.SectionID)
	return nil
}

func (s *NoteService) invalidate(ctx context.Context, sectionID int) {
	keys := []string{
		config.CacheKey.PublicNotesKey(sectionID),
		config.CacheKey.PublicNotesKey(0),
	}
	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		s.log.Warn().Err(err).Int("section_id", sectionID).Msg("cache invalidation failed")
	}
}
