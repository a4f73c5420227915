package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atharvgarg18/iet-csbs-backend/internal/config"
	"github.com/atharvgarg18/iet-csbs-backend/internal/database"
	"github.com/atharvgarg18/iet-csbs-backend/internal/handler"
	"github.com/atharvgarg18/iet-csbs-backend/internal/logger"
	"github.com/atharvgarg18/iet-csbs-backend/internal/repository"
	"github.com/atharvgarg18/iet-csbs-backend/internal/router"
	"github.com/atharvgarg18/iet-csbs-backend/internal/service"
	"github.com/atharvgarg18/iet-csbs-backend/internal/validator"
	"github.com/atharvgarg18/iet-csbs-backend/internal/worker"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting IET CSBS Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	userRepo := repository.NewUserRepository(pool)
	sessionRepo := repository.NewSessionRepository(pool)
	batchRepo := repository.NewBatchRepository(pool)
	sectionRepo := repository.NewSectionRepository(pool)
	noteRepo := repository.NewNoteRepository(pool)
	paperRepo := repository.NewPaperRepository(pool)
	galleryRepo := repository.NewGalleryRepository(pool)
	noticeRepo := repository.NewNoticeRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, userRepo, sessionRepo, log)
	userService := service.NewUserService(userRepo, authService)
	batchService := service.NewBatchService(cfg, batchRepo, rdb, log)
	sectionService := service.NewSectionService(cfg, sectionRepo, rdb, log)
	noteService := service.NewNoteService(cfg, noteRepo, rdb, log)
	paperService := service.NewPaperService(cfg, paperRepo, rdb, log)
	galleryService := service.NewGalleryService(cfg, galleryRepo, rdb, log)
	noticeService := service.NewNoticeService(cfg, noticeRepo, rdb, log)
	dashboardService := service.NewDashboardService(dashboardRepo, rdb, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Batch:     handler.NewBatchHandler(batchService),
		Section:   handler.NewSectionHandler(sectionService),
		Note:      handler.NewNoteHandler(noteService),
		Paper:     handler.NewPaperHandler(paperService),
		Gallery:   handler.NewGalleryHandler(galleryService),
		Notice:    handler.NewNoticeHandler(noticeService),
		User:      handler.NewUserHandler(userService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	cleanupWorker := worker.NewSessionCleanupWorker(sessionRepo, log)
	go cleanupWorker.Start(workerCtx)

	// ─── Prewarm Redis Caches ─────────────────────────────────────────
	// Warm the hottest public lists before accepting traffic so the first
	// visitors after a deploy don't all fall through to PostgreSQL.
	if _, err := batchService.ListPublic(ctx); err != nil {
		log.Warn().Err(err).Msg("Cache prewarm failed: batches")
	}
	if _, err := noticeService.ListCategoriesPublic(ctx); err != nil {
		log.Warn().Err(err).Msg("Cache prewarm failed: notice categories")
	}
	if _, err := noticeService.ListPublic(ctx, 0); err != nil {
		log.Warn().Err(err).Msg("Cache prewarm failed: notices")
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	workerCancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
