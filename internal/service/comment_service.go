package service

import (
	"context"

	"github.com/barelyrics/barelyrics-api/internal/models"
	"github.com/barelyrics/barelyrics-api/internal/repository"
	"github.com/barelyrics/barelyrics-api/internal/validation"
	"github.com/rs/zerolog"
)

// commentService implements CommentService
type commentService struct {
	comments repository.CommentRepository
	songs    repository.SongRepository
	log      zerolog.Logger
}

func newCommentService(comments repository.CommentRepository, songs repository.SongRepository, log zerolog.Logger) CommentService {
	return &commentService{
		comments: comments,
		songs:    songs,
		log:      log.With().Str("component", "comments").Logger(),
	}
}

// Create validates and persists a comment on a song. The song must exist;
// comments are auto-approved.
func (s *commentService) Create(ctx context.Context, songID int64, in *models.CommentInput) (*models.SongComment, error) {
	if errs := validation.ValidateComment(in); len(errs) > 0 {
		return nil, &ValidationFailed{Errors: errs}
	}

	if _, err := s.songs.GetByID(ctx, songID); err != nil {
		return nil, err
	}

	comment, err := s.comments.Create(ctx, songID, in)
	if err != nil {
		s.log.Error().Err(err).Int64("song_id", songID).Msg("Failed to create comment")
		return nil, err
	}

	s.log.Info().
		Int64("comment_id", comment.ID).
		Int64("song_id", songID).
		Str("type", comment.CommentType).
		Msg("Comment created")
	return comment, nil
}

// ListForSong returns the approved comments on a song, newest first
func (s *commentService) ListForSong(ctx context.Context, songID int64) ([]*models.SongComment, error) {
	return s.comments.ListBySong(ctx, songID)
}

// ListAll returns every comment regardless of moderation state
func (s *commentService) ListAll(ctx context.Context) ([]*models.SongComment, error) {
	return s.comments.ListAll(ctx)
}

// Moderate flips a comment's approval flag
func (s *commentService) Moderate(ctx context.Context, id int64, approved bool) error {
	if err := s.comments.SetApproved(ctx, id, approved); err != nil {
		return err
	}
	s.log.Info().Int64("comment_id", id).Bool("approved", approved).Msg("Comment moderated")
	return nil
}

// Count returns the total number of comments
func (s *commentService) Count(ctx context.Context) (int, error) {
	return s.comments.Count(ctx)
}
