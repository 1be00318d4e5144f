package service

import (
	"context"

	"github.com/barelyrics/barelyrics-api/internal/config"
	"github.com/barelyrics/barelyrics-api/internal/models"
	"github.com/barelyrics/barelyrics-api/internal/repository"
	"github.com/rs/zerolog"
)

// CatalogService defines catalog read and direct-mutation operations
type CatalogService interface {
	ListAll(ctx context.Context) ([]*models.Song, error)
	Search(ctx context.Context, query string) ([]*models.Song, error)
	GetByID(ctx context.Context, id int64) (*models.Song, error)
	GetByArtist(ctx context.Context, artist string) ([]*models.Song, error)
	Similar(ctx context.Context, currentID int64, artist, genre string) ([]*models.Song, error)
	ListArtists(ctx context.Context) ([]*models.ArtistSummary, error)
	CreateDirect(ctx context.Context, in *models.SongInput) (*models.Song, error)
	Update(ctx context.Context, id int64, upd *models.SongUpdate) (*models.Song, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// SubmissionService defines the submission lifecycle operations
type SubmissionService interface {
	Submit(ctx context.Context, in *models.SubmissionInput) (*models.SongSubmission, error)
	List(ctx context.Context, status string) ([]*models.SongSubmission, error)
	GetByID(ctx context.Context, id int64) (*models.SongSubmission, error)
	Approve(ctx context.Context, id int64, reviewedBy string) (*models.Song, error)
	Reject(ctx context.Context, id int64, reason, reviewedBy string) (*models.SongSubmission, error)
	Count(ctx context.Context) (int, error)
	CountPending(ctx context.Context) (int, error)
}

// AuthService defines admin authentication and user management
type AuthService interface {
	SeedBreakGlass(ctx context.Context) error
	Authenticate(ctx context.Context, email, password string) (*models.AdminUser, error)
	IssueToken(user *models.AdminUser) (string, error)
	ValidateToken(token string) (*models.AdminUser, error)
	CreateAdminUser(ctx context.Context, in *models.AdminUserInput) (*models.AdminUser, error)
	ListAdminUsers(ctx context.Context) ([]*models.AdminUser, error)
}

// CommentService defines song comment operations
type CommentService interface {
	Create(ctx context.Context, songID int64, in *models.CommentInput) (*models.SongComment, error)
	ListForSong(ctx context.Context, songID int64) ([]*models.SongComment, error)
	ListAll(ctx context.Context) ([]*models.SongComment, error)
	Moderate(ctx context.Context, id int64, approved bool) error
	Count(ctx context.Context) (int, error)
}

// ContactService defines contact form handling
type ContactService interface {
	Submit(ctx context.Context, in *models.ContactInput) (*models.ContactMessage, error)
}

// Services holds all service interfaces
type Services struct {
	Catalog    CatalogService
	Submission SubmissionService
	Auth       AuthService
	Comment    CommentService
	Contact    ContactService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Catalog:    newCatalogService(repos.Song, cfg, log),
		Submission: newSubmissionService(repos.Submission, log),
		Auth:       newAuthService(repos.AdminUser, &cfg.Auth, log),
		Comment:    newCommentService(repos.Comment, repos.Song, log),
		Contact:    newContactService(repos.Contact, log),
	}
}
