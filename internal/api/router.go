package api

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/barelyrics/barelyrics-api/internal/config"
	"github.com/barelyrics/barelyrics-api/internal/models"
	"github.com/barelyrics/barelyrics-api/internal/service"
	"github.com/barelyrics/barelyrics-api/internal/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HealthStore reports store connectivity and connection pool statistics
// for the health and metrics endpoints.
type HealthStore interface {
	HealthCheck(ctx context.Context) error
	Stats() sql.DBStats
}

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, uploads storage.Uploader, store HealthStore, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// Handlers
	songHandler := NewSongHandler(services, log)
	submissionHandler := NewSubmissionHandler(services, log)
	adminHandler := NewAdminHandler(services, uploads, cfg, log)

	// Health check
	router.GET("/health", healthCheck(store))
	router.GET("/metrics", metricsHandler(services, store))

	// API v1
	v1 := router.Group("/v1")
	{
		songs := v1.Group("/songs")
		{
			songs.GET("", songHandler.ListSongs)
			songs.GET("/:id", songHandler.GetSong)
			songs.GET("/:id/similar", songHandler.SimilarSongs)
			songs.GET("/:id/comments", songHandler.ListComments)
			songs.POST("/:id/comments", songHandler.CreateComment)
		}

		artists := v1.Group("/artists")
		{
			artists.GET("", songHandler.ListArtists)
			artists.GET("/:name/songs", songHandler.SongsByArtist)
		}

		v1.POST("/submissions", submissionHandler.CreateSubmission)
		v1.POST("/contact", submissionHandler.CreateContactMessage)

		admin := v1.Group("/admin")
		{
			admin.POST("/login", adminHandler.Login)

			// Moderator-level operations
			reviewed := admin.Group("")
			reviewed.Use(requireAuth(services.Auth, log))
			reviewed.Use(requireRole(models.RoleModerator))
			{
				reviewed.GET("/submissions", adminHandler.ListSubmissions)
				reviewed.POST("/submissions/:id/approve", adminHandler.ApproveSubmission)
				reviewed.POST("/submissions/:id/reject", adminHandler.RejectSubmission)
				reviewed.POST("/songs", adminHandler.CreateSong)
				reviewed.PUT("/songs/:id", adminHandler.UpdateSong)
				reviewed.GET("/comments", adminHandler.ListAllComments)
				reviewed.PUT("/comments/:id", adminHandler.ModerateComment)
				reviewed.POST("/uploads", adminHandler.UploadCover)
			}

			// Admin-level operations
			privileged := admin.Group("")
			privileged.Use(requireAuth(services.Auth, log))
			privileged.Use(requireRole(models.RoleAdmin))
			{
				privileged.DELETE("/songs/:id", adminHandler.DeleteSong)
				privileged.GET("/users", adminHandler.ListAdminUsers)
				privileged.POST("/users", adminHandler.CreateAdminUser)
			}
		}
	}

	return router
}

// healthCheck pings the store and reports the result
func healthCheck(store HealthStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := store.HealthCheck(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     "database unreachable",
				"timestamp": time.Now().Format(time.RFC3339),
				"service":   "barelyrics-api",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "barelyrics-api",
		})
	}
}

// metricsHandler returns catalog and moderation counters plus connection
// pool statistics.
func metricsHandler(services *service.Services, store HealthStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		songCount, _ := services.Catalog.Count(ctx)
		submissionCount, _ := services.Submission.Count(ctx)
		pendingCount, _ := services.Submission.CountPending(ctx)
		commentCount, _ := services.Comment.Count(ctx)
		pool := store.Stats()

		c.JSON(http.StatusOK, gin.H{
			"database": gin.H{
				"songs":               songCount,
				"submissions":         submissionCount,
				"pending_submissions": pendingCount,
				"comments":            commentCount,
			},
			"connection_pool": gin.H{
				"open_connections": pool.OpenConnections,
				"in_use":           pool.InUse,
				"idle":             pool.Idle,
			},
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}
