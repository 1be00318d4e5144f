package api

import (
	"net/http"

	"github.com/barelyrics/barelyrics-api/internal/models"
	"github.com/barelyrics/barelyrics-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SubmissionHandler handles the public submission and contact endpoints
type SubmissionHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewSubmissionHandler creates a new SubmissionHandler
func NewSubmissionHandler(services *service.Services, log zerolog.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		services: services,
		log:      log.With().Str("handler", "submissions").Logger(),
	}
}

// CreateSubmission handles POST /v1/submissions. Whatever status the
// payload carries, the stored submission is pending.
func (h *SubmissionHandler) CreateSubmission(c *gin.Context) {
	var input models.SubmissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	sub, err := h.services.Submission.Submit(c.Request.Context(), &input)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Song submitted for review! Our team will review it shortly.",
		"submission": sub,
	})
}

// CreateContactMessage handles POST /v1/contact
func (h *SubmissionHandler) CreateContactMessage(c *gin.Context) {
	var input models.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	if _, err := h.services.Contact.Submit(c.Request.Context(), &input); err != nil {
		writeServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Message sent successfully! We'll get back to you soon.",
	})
}
