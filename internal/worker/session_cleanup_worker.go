package worker

import (
	"context"
	"time"

	"github.com/atharvgarg18/iet-csbs-backend/internal/repository"
	"github.com/rs/zerolog"
)

// SessionCleanupWorker periodically purges expired session rows. Expired
// sessions are already rejected (and lazily deleted) at auth-check time; this
// worker sweeps the tokens that never come back.
type SessionCleanupWorker struct {
	sessionRepo *repository.SessionRepository
	interval    time.Duration
	log         zerolog.Logger
}

// NewSessionCleanupWorker creates a new SessionCleanupWorker.
func NewSessionCleanupWorker(sessionRepo *repository.SessionRepository, log zerolog.Logger) *SessionCleanupWorker {
	return &SessionCleanupWorker{
		sessionRepo: sessionRepo,
		interval:    time.Hour,
		log:         log.With().Str("component", "session_cleanup_worker").Logger(),
	}
}

// Start begins the worker loop. Call in a goroutine; stops when ctx is done.
func (w *SessionCleanupWorker) Start(ctx context.Context) {
	w.log.Info().Dur("interval", w.interval).Msg("Worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Sweep once at startup so a long-stopped server doesn't hold a backlog
	// for another full interval.
	w.purge(ctx)

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopped")
			return
		case <-ticker.C:
			w.purge(ctx)
		}
	}
}

func (w *SessionCleanupWorker) purge(ctx context.Context) {
	n, err := w.sessionRepo.DeleteExpired(ctx, time.Now())
	if err != nil {
		if ctx.Err() == nil {
			w.log.Error().Err(err).Msg("Purge failed")
		}
		return
	}
	if n > 0 {
		w.log.Info().Int64("count", n).Msg("Purged expired sessions")
	}
}
