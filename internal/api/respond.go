package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/barelyrics/barelyrics-api/internal/repository"
	"github.com/barelyrics/barelyrics-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// writeServiceError maps service-layer failures onto HTTP responses.
// Validation and not-found details are surfaced; everything else is an
// opaque 500 so store errors do not leak.
func writeServiceError(c *gin.Context, log zerolog.Logger, err error) {
	var validationErr *service.ValidationFailed
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation error",
			"fields": validationErr.FieldMap(),
		})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, repository.ErrAlreadyReviewed):
		c.JSON(http.StatusConflict, gin.H{"error": "Submission has already been reviewed"})
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Email already in use"})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// pathID parses the :id route parameter
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}
