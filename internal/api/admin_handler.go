package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/barelyrics/barelyrics-api/internal/config"
	"github.com/barelyrics/barelyrics-api/internal/models"
	"github.com/barelyrics/barelyrics-api/internal/service"
	"github.com/barelyrics/barelyrics-api/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AdminHandler handles the admin panel endpoints
type AdminHandler struct {
	services *service.Services
	uploads  storage.Uploader
	cfg      *config.Config
	log      zerolog.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(services *service.Services, uploads storage.Uploader, cfg *config.Config, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		services: services,
		uploads:  uploads,
		cfg:      cfg,
		log:      log.With().Str("handler", "admin").Logger(),
	}
}

// Login handles POST /v1/admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	user, err := h.services.Auth.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}

	token, err := h.services.Auth.IssueToken(user)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// ListSubmissions handles GET /v1/admin/submissions, optionally filtered
// with ?status=
func (h *AdminHandler) ListSubmissions(c *gin.Context) {
	status := c.Query("status")
	if status != "" && status != models.SubmissionPending &&
		status != models.SubmissionApproved && status != models.SubmissionRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be one of: pending, approved, rejected"})
		return
	}

	subs, err := h.services.Submission.List(c.Request.Context(), status)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	if subs == nil {
		subs = []*models.SongSubmission{}
	}
	c.JSON(http.StatusOK, gin.H{"submissions": subs, "count": len(subs)})
}

// ApproveSubmission handles POST /v1/admin/submissions/:id/approve
func (h *AdminHandler) ApproveSubmission(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	reviewer := ""
	if admin := currentAdmin(c); admin != nil {
		reviewer = admin.Name
	}

	song, err := h.services.Submission.Approve(c.Request.Context(), id, reviewer)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Submission approved",
		"song":    song,
	})
}

// RejectSubmission handles POST /v1/admin/submissions/:id/reject
func (h *AdminHandler) RejectSubmission(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Reason) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A rejection reason is required"})
		return
	}

	reviewer := ""
	if admin := currentAdmin(c); admin != nil {
		reviewer = admin.Name
	}

	sub, err := h.services.Submission.Reject(c.Request.Context(), id, req.Reason, reviewer)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Submission rejected",
		"submission": sub,
	})
}

// CreateSong handles POST /v1/admin/songs (direct catalog insert)
func (h *AdminHandler) CreateSong(c *gin.Context) {
	var input models.SongInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	song, err := h.services.Catalog.CreateDirect(c.Request.Context(), &input)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Song created successfully!", "song": song})
}

// UpdateSong handles PUT /v1/admin/songs/:id
func (h *AdminHandler) UpdateSong(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var upd models.SongUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	song, err := h.services.Catalog.Update(c.Request.Context(), id, &upd)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, song)
}

// DeleteSong handles DELETE /v1/admin/songs/:id
func (h *AdminHandler) DeleteSong(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.services.Catalog.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Song deleted"})
}

// ListAdminUsers handles GET /v1/admin/users
func (h *AdminHandler) ListAdminUsers(c *gin.Context) {
	users, err := h.services.Auth.ListAdminUsers(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	if users == nil {
		users = []*models.AdminUser{}
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// CreateAdminUser handles POST /v1/admin/users
func (h *AdminHandler) CreateAdminUser(c *gin.Context) {
	var input models.AdminUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	user, err := h.services.Auth.CreateAdminUser(c.Request.Context(), &input)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// ListAllComments handles GET /v1/admin/comments
func (h *AdminHandler) ListAllComments(c *gin.Context) {
	comments, err := h.services.Comment.ListAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	if comments == nil {
		comments = []*models.SongComment{}
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// ModerateComment handles PUT /v1/admin/comments/:id
func (h *AdminHandler) ModerateComment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		IsApproved *bool `json:"is_approved"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.IsApproved == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "is_approved is required"})
		return
	}

	if err := h.services.Comment.Moderate(c.Request.Context(), id, *req.IsApproved); err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Comment updated"})
}

// UploadCover handles POST /v1/admin/uploads. Accepts a multipart image
// and returns its public URL.
func (h *AdminHandler) UploadCover(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "An image file is required"})
		return
	}
	defer file.Close()

	if header.Size > h.cfg.Upload.MaxSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Image too large, max size is %d MB", h.cfg.Upload.MaxSize/(1024*1024)),
		})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a valid image file"})
		return
	}

	url, err := h.uploads.Upload(c.Request.Context(), file, header.Filename, h.cfg.Upload.Folder)
	if err != nil {
		h.log.Error().Err(err).Msg("Cover upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
