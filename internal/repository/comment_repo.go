package repository

import (
	"context"
	"database/sql"

	"github.com/barelyrics/barelyrics-api/internal/database"
	"github.com/barelyrics/barelyrics-api/internal/models"
)

const commentColumns = `id, song_id, user_name, user_email, comment_text,
	selected_lyrics, lyrics_start_position, lyrics_end_position,
	comment_type, rating, is_approved, created_at, updated_at`

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// Create inserts a new comment. Comments are auto-approved on creation;
// moderation can flip the flag later.
func (r *commentRepo) Create(ctx context.Context, songID int64, in *models.CommentInput) (*models.SongComment, error) {
	query := `
		INSERT INTO song_comments
			(song_id, user_name, user_email, comment_text, selected_lyrics,
			 lyrics_start_position, lyrics_end_position, comment_type, rating, is_approved)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE)
		RETURNING ` + commentColumns

	row := r.db.QueryRowContext(ctx, query,
		songID, nullString(in.UserName), nullString(in.UserEmail), in.CommentText,
		nullString(in.SelectedLyrics), nullInt(in.LyricsStartPos), nullInt(in.LyricsEndPos),
		in.CommentType, nullInt(in.Rating),
	)
	return scanComment(row)
}

// ListBySong retrieves approved comments for a song, newest first
func (r *commentRepo) ListBySong(ctx context.Context, songID int64) ([]*models.SongComment, error) {
	query := `
		SELECT ` + commentColumns + ` FROM song_comments
		WHERE song_id = $1 AND is_approved = TRUE
		ORDER BY created_at DESC`
	return r.queryComments(ctx, query, songID)
}

// ListAll retrieves all comments regardless of moderation state, newest first
func (r *commentRepo) ListAll(ctx context.Context) ([]*models.SongComment, error) {
	query := `SELECT ` + commentColumns + ` FROM song_comments ORDER BY created_at DESC`
	return r.queryComments(ctx, query)
}

// SetApproved updates the moderation flag on a comment
func (r *commentRepo) SetApproved(ctx context.Context, id int64, approved bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE song_comments SET is_approved = $1 WHERE id = $2`, approved, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of comments
func (r *commentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM song_comments`).Scan(&count)
	return count, err
}

func (r *commentRepo) queryComments(ctx context.Context, query string, args ...interface{}) ([]*models.SongComment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.SongComment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

func scanComment(row rowScanner) (*models.SongComment, error) {
	var c models.SongComment
	var userName, userEmail, selectedLyrics sql.NullString
	var startPos, endPos, rating sql.NullInt64

	err := row.Scan(
		&c.ID, &c.SongID, &userName, &userEmail, &c.CommentText,
		&selectedLyrics, &startPos, &endPos, &c.CommentType, &rating,
		&c.IsApproved, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	c.UserName = userName.String
	c.UserEmail = userEmail.String
	c.SelectedLyrics = selectedLyrics.String
	if startPos.Valid {
		v := int(startPos.Int64)
		c.LyricsStartPos = &v
	}
	if endPos.Valid {
		v := int(endPos.Int64)
		c.LyricsEndPos = &v
	}
	if rating.Valid {
		v := int(rating.Int64)
		c.Rating = &v
	}
	return &c, nil
}
