package repository

import (
	"context"
	"errors"

	"github.com/barelyrics/barelyrics-api/internal/database"
	"github.com/barelyrics/barelyrics-api/internal/models"
)

// ErrNotFound indicates the referenced record does not exist
var ErrNotFound = errors.New("record not found")

// ErrAlreadyReviewed indicates a submission has already left the pending
// state; approve/reject are terminal, one-way transitions.
var ErrAlreadyReviewed = errors.New("submission already reviewed")

// SongRepository defines the interface for catalog data operations
type SongRepository interface {
	Create(ctx context.Context, in *models.SongInput) (*models.Song, error)
	GetByID(ctx context.Context, id int64) (*models.Song, error)
	List(ctx context.Context) ([]*models.Song, error)
	Search(ctx context.Context, query string) ([]*models.Song, error)
	GetByArtist(ctx context.Context, artist string) ([]*models.Song, error)
	Similar(ctx context.Context, currentID int64, artist, genre string, limit int) ([]*models.Song, error)
	ListArtists(ctx context.Context) ([]*models.ArtistSummary, error)
	Update(ctx context.Context, id int64, upd *models.SongUpdate) (*models.Song, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// SubmissionRepository defines the interface for submission data operations
type SubmissionRepository interface {
	Create(ctx context.Context, in *models.SubmissionInput) (*models.SongSubmission, error)
	GetByID(ctx context.Context, id int64) (*models.SongSubmission, error)
	List(ctx context.Context) ([]*models.SongSubmission, error)
	ListByStatus(ctx context.Context, status string) ([]*models.SongSubmission, error)
	Approve(ctx context.Context, id int64, adminNotes, reviewedBy string) (*models.Song, error)
	Reject(ctx context.Context, id int64, reason, reviewedBy string) (*models.SongSubmission, error)
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status string) (int, error)
}

// AdminUserRepository defines the interface for admin user data operations
type AdminUserRepository interface {
	Create(ctx context.Context, user *models.AdminUser) (*models.AdminUser, error)
	GetByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	List(ctx context.Context) ([]*models.AdminUser, error)
	UpsertByEmail(ctx context.Context, user *models.AdminUser) error
	EmailExists(ctx context.Context, email string) (bool, error)
}

// CommentRepository defines the interface for song comment data operations
type CommentRepository interface {
	Create(ctx context.Context, songID int64, in *models.CommentInput) (*models.SongComment, error)
	ListBySong(ctx context.Context, songID int64) ([]*models.SongComment, error)
	ListAll(ctx context.Context) ([]*models.SongComment, error)
	SetApproved(ctx context.Context, id int64, approved bool) error
	Count(ctx context.Context) (int, error)
}

// ContactRepository defines the interface for contact message persistence
type ContactRepository interface {
	Create(ctx context.Context, in *models.ContactInput) (*models.ContactMessage, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Song       SongRepository
	Submission SubmissionRepository
	AdminUser  AdminUserRepository
	Comment    CommentRepository
	Contact    ContactRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Song:       NewSongRepo(db),
		Submission: NewSubmissionRepo(db),
		AdminUser:  NewAdminUserRepo(db),
		Comment:    NewCommentRepo(db),
		Contact:    NewContactRepo(db),
	}
}
