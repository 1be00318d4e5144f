package api

import (
	"net/http"

	"github.com/barelyrics/barelyrics-api/internal/models"
	"github.com/barelyrics/barelyrics-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SongHandler handles the public catalog endpoints
type SongHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewSongHandler creates a new SongHandler
func NewSongHandler(services *service.Services, log zerolog.Logger) *SongHandler {
	return &SongHandler{
		services: services,
		log:      log.With().Str("handler", "songs").Logger(),
	}
}

// ListSongs handles GET /v1/songs. With ?q= it performs a substring
// search across title, artist and album.
func (h *SongHandler) ListSongs(c *gin.Context) {
	ctx := c.Request.Context()

	var songs []*models.Song
	var err error
	if query := c.Query("q"); query != "" {
		songs, err = h.services.Catalog.Search(ctx, query)
	} else {
		songs, err = h.services.Catalog.ListAll(ctx)
	}
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}

	if songs == nil {
		songs = []*models.Song{}
	}
	c.JSON(http.StatusOK, gin.H{"songs": songs, "count": len(songs)})
}

// GetSong handles GET /v1/songs/:id
func (h *SongHandler) GetSong(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	song, err := h.services.Catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, song)
}

// SimilarSongs handles GET /v1/songs/:id/similar
func (h *SongHandler) SimilarSongs(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	song, err := h.services.Catalog.GetByID(ctx, id)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}

	similar, err := h.services.Catalog.Similar(ctx, song.ID, song.Artist, song.Genre)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	if similar == nil {
		similar = []*models.Song{}
	}
	c.JSON(http.StatusOK, gin.H{"songs": similar})
}

// ListArtists handles GET /v1/artists
func (h *SongHandler) ListArtists(c *gin.Context) {
	artists, err := h.services.Catalog.ListArtists(c.Request.Context())
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	if artists == nil {
		artists = []*models.ArtistSummary{}
	}
	c.JSON(http.StatusOK, gin.H{"artists": artists})
}

// SongsByArtist handles GET /v1/artists/:name/songs
func (h *SongHandler) SongsByArtist(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Artist name is required"})
		return
	}

	songs, err := h.services.Catalog.GetByArtist(c.Request.Context(), name)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	if songs == nil {
		songs = []*models.Song{}
	}
	c.JSON(http.StatusOK, gin.H{"songs": songs, "count": len(songs)})
}

// ListComments handles GET /v1/songs/:id/comments
func (h *SongHandler) ListComments(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	comments, err := h.services.Comment.ListForSong(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	if comments == nil {
		comments = []*models.SongComment{}
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// CreateComment handles POST /v1/songs/:id/comments
func (h *SongHandler) CreateComment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input models.CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	comment, err := h.services.Comment.Create(c.Request.Context(), id, &input)
	if err != nil {
		writeServiceError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}
