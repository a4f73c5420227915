package router

import (
	"net/http"
	"time"

	"github.com/atharvgarg18/iet-csbs-backend/internal/config"
	"github.com/atharvgarg18/iet-csbs-backend/internal/handler"
	"github.com/atharvgarg18/iet-csbs-backend/internal/middleware"
	"github.com/atharvgarg18/iet-csbs-backend/internal/model"
	"github.com/atharvgarg18/iet-csbs-backend/internal/response"
	"github.com/atharvgarg18/iet-csbs-backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth      *handler.AuthHandler
	Batch     *handler.BatchHandler
	Section   *handler.SectionHandler
	Note      *handler.NoteHandler
	Paper     *handler.PaperHandler
	Gallery   *handler.GalleryHandler
	Notice    *handler.NoticeHandler
	User      *handler.UserHandler
	Dashboard *handler.DashboardHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// Every admin route carries a server-side role gate; the portal frontend's
// role-aware navigation is presentation only.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	// Credentials are required for the session cookie, and the CORS spec
	// forbids them together with a wildcard origin.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// ─── 0. Public Group (No Auth, Cacheable) ──────────────────────────
	publicAPI := router.Group("/api/v1/public")
	publicAPI.Use(middleware.CacheControl(int(cfg.PublicCacheTTL.Seconds())))
	{
		publicAPI.GET("/batches", handlers.Batch.ListPublicBatches)
		publicAPI.GET("/batches/:id/sections", handlers.Section.ListPublicSections)
		publicAPI.GET("/notes", handlers.Note.ListPublicNotes)
		publicAPI.GET("/papers", handlers.Paper.ListPublicPapers)
		publicAPI.GET("/gallery/categories", handlers.Gallery.ListPublicCategories)
		publicAPI.GET("/gallery/categories/:id/images", handlers.Gallery.ListPublicImages)
		publicAPI.GET("/notices/categories", handlers.Notice.ListPublicCategories)
		publicAPI.GET("/notices", handlers.Notice.ListPublicNotices)
	}

	// Rate limiter for the login endpoint (30 requests per minute per IP).
	loginLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group ─────────────────────────────────────────────────
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/login", loginLimiter.Middleware(), handlers.Auth.Login)
		auth.POST("/logout", handlers.Auth.Logout)

		auth.GET("/check", middleware.RequireSession(authService), handlers.Auth.Check)
		auth.GET("/me", middleware.RequireSession(authService), handlers.Auth.Me)
	}

	// ─── 2. Admin Group (Session + RBAC) ───────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(middleware.RequireSession(authService))
	{
		// Dashboard, open to every signed-in role.
		adminAPI.GET("/dashboard",
			middleware.RequireRole(model.RoleViewer),
			handlers.Dashboard.GetDashboard,
		)

		editor := middleware.RequireRole(model.RoleEditor)
		admin := middleware.RequireRole(model.RoleAdmin)

		// Batch management. Deleting a batch cascades through sections,
		// notes, and papers, so it stays admin-only.
		adminAPI.GET("/batches", editor, handlers.Batch.ListBatches)
		adminAPI.POST("/batches", editor, handlers.Batch.CreateBatch)
		adminAPI.PUT("/batches/:id", editor, handlers.Batch.UpdateBatch)
		adminAPI.DELETE("/batches/:id", admin, handlers.Batch.DeleteBatch)

		// Section management.
		adminAPI.GET("/sections", editor, handlers.Section.ListSections)
		adminAPI.POST("/sections", editor, handlers.Section.CreateSection)
		adminAPI.PUT("/sections/:id", editor, handlers.Section.UpdateSection)
		adminAPI.DELETE("/sections/:id", admin, handlers.Section.DeleteSection)

		// Note management.
		adminAPI.GET("/notes", editor, handlers.Note.ListNotes)
		adminAPI.POST("/notes", editor, handlers.Note.CreateNote)
		adminAPI.PUT("/notes/:id", editor, handlers.Note.UpdateNote)
		adminAPI.DELETE("/notes/:id", editor, handlers.Note.DeleteNote)

		// Paper management.
		adminAPI.GET("/papers", editor, handlers.Paper.ListPapers)
		adminAPI.POST("/papers", editor, handlers.Paper.CreatePaper)
		adminAPI.PUT("/papers/:id", editor, handlers.Paper.UpdatePaper)
		adminAPI.DELETE("/papers/:id", editor, handlers.Paper.DeletePaper)

		// Gallery management.
		galleryGroup := adminAPI.Group("/gallery")
		{
			galleryGroup.GET("/categories", editor, handlers.Gallery.ListCategories)
			galleryGroup.POST("/categories", editor, handlers.Gallery.CreateCategory)
			galleryGroup.PUT("/categories/:id", editor, handlers.Gallery.UpdateCategory)
			galleryGroup.DELETE("/categories/:id", admin, handlers.Gallery.DeleteCategory)
			galleryGroup.GET("/images", editor, handlers.Gallery.ListImages)
			galleryGroup.POST("/images", editor, handlers.Gallery.CreateImage)
			galleryGroup.PUT("/images/:id", editor, handlers.Gallery.UpdateImage)
			galleryGroup.DELETE("/images/:id", editor, handlers.Gallery.DeleteImage)
		}

		// Notice management.
		noticesGroup := adminAPI.Group("/notices")
		{
			noticesGroup.GET("/categories", editor, handlers.Notice.ListCategories)
			noticesGroup.POST("/categories", editor, handlers.Notice.CreateCategory)
			noticesGroup.PUT("/categories/:id", editor, handlers.Notice.UpdateCategory)
			noticesGroup.DELETE("/categories/:id", admin, handlers.Notice.DeleteCategory)
			noticesGroup.GET("", editor, handlers.Notice.ListNotices)
			noticesGroup.POST("", editor, handlers.Notice.CreateNotice)
			noticesGroup.PUT("/:id", editor, handlers.Notice.UpdateNotice)
			noticesGroup.DELETE("/:id", editor, handlers.Notice.DeleteNotice)
		}

		// User management, admin only.
		usersGroup := adminAPI.Group("/users")
		usersGroup.Use(admin)
		{
			usersGroup.GET("", handlers.User.ListUsers)
			usersGroup.POST("", handlers.User.CreateUser)
			usersGroup.PUT("/:id", handlers.User.UpdateUser)
			usersGroup.PUT("/:id/password", handlers.User.ChangePassword)
			usersGroup.DELETE("/:id", handlers.User.DeactivateUser)
		}
	}

	return router
}
