package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/barelyrics/barelyrics-api/internal/database"
	"github.com/barelyrics/barelyrics-api/internal/models"
)

const submissionColumns = `id, title, artist, album, genre, year, cover, lyrics,
	submitter_name, submitter_email, submission_type, original_song_id,
	status, admin_notes, reviewed_by, reviewed_at, created_at, updated_at`

// submissionRepo is the concrete implementation of SubmissionRepository
type submissionRepo struct {
	db *database.DB
}

// NewSubmissionRepo creates a new submission repository
func NewSubmissionRepo(db *database.DB) SubmissionRepository {
	return &submissionRepo{db: db}
}

// Create inserts a new submission. The status column is always written as
// pending; whatever the caller put in the payload is ignored.
func (r *submissionRepo) Create(ctx context.Context, in *models.SubmissionInput) (*models.SongSubmission, error) {
	query := `
		INSERT INTO song_submissions
			(title, artist, album, genre, year, cover, lyrics,
			 submitter_name, submitter_email, submission_type, original_song_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 'pending')
		RETURNING ` + submissionColumns

	row := r.db.QueryRowContext(ctx, query,
		in.Title, in.Artist, nullString(in.Album), nullString(in.Genre),
		nullInt(in.Year), nullString(in.Cover), in.Lyrics,
		nullString(in.SubmitterName), nullString(in.SubmitterEmail),
		in.SubmissionType, nullInt64(in.OriginalSongID),
	)
	return scanSubmission(row)
}

// GetByID retrieves a submission by id
func (r *submissionRepo) GetByID(ctx context.Context, id int64) (*models.SongSubmission, error) {
	query := `SELECT ` + submissionColumns + ` FROM song_submissions WHERE id = $1`
	sub, err := scanSubmission(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return sub, err
}

// List retrieves all submissions, newest first
func (r *submissionRepo) List(ctx context.Context) ([]*models.SongSubmission, error) {
	query := `SELECT ` + submissionColumns + ` FROM song_submissions ORDER BY created_at DESC`
	return r.querySubmissions(ctx, query)
}

// ListByStatus retrieves submissions in the given status, newest first
func (r *submissionRepo) ListByStatus(ctx context.Context, status string) ([]*models.SongSubmission, error) {
	query := `SELECT ` + submissionColumns + ` FROM song_submissions WHERE status = $1 ORDER BY created_at DESC`
	return r.querySubmissions(ctx, query, status)
}

// Approve flips a pending submission to approved and creates the catalog
// song in a single transaction. The conditional update means a submission
// that already left the pending state approves zero rows and the whole
// operation fails with ErrAlreadyReviewed, so two concurrent approves
// cannot both create a song.
func (r *submissionRepo) Approve(ctx context.Context, id int64, adminNotes, reviewedBy string) (*models.Song, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin approval transaction: %w", err)
	}
	defer tx.Rollback()

	updateQuery := `
		UPDATE song_submissions
		SET status = 'approved', admin_notes = $1, reviewed_by = $2, reviewed_at = $3
		WHERE id = $4 AND status = 'pending'
		RETURNING ` + submissionColumns

	sub, err := scanSubmission(tx.QueryRowContext(ctx, updateQuery, adminNotes, nullString(reviewedBy), time.Now(), id))
	if err == sql.ErrNoRows {
		return nil, r.reviewConflict(ctx, id)
	}
	if err != nil {
		return nil, err
	}

	insertQuery := `
		INSERT INTO songs (title, artist, album, genre, year, cover, lyrics, submitter_name, submitter_email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + songColumns

	song, err := scanSong(tx.QueryRowContext(ctx, insertQuery,
		sub.Title, sub.Artist, nullString(sub.Album), nullString(sub.Genre),
		nullInt(sub.Year), nullString(sub.Cover), sub.Lyrics,
		nullString(sub.SubmitterName), nullString(sub.SubmitterEmail),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create song from submission: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit approval: %w", err)
	}
	return song, nil
}

// Reject flips a pending submission to rejected, storing the reason
// verbatim as admin notes. The catalog is not touched.
func (r *submissionRepo) Reject(ctx context.Context, id int64, reason, reviewedBy string) (*models.SongSubmission, error) {
	query := `
		UPDATE song_submissions
		SET status = 'rejected', admin_notes = $1, reviewed_by = $2, reviewed_at = $3
		WHERE id = $4 AND status = 'pending'
		RETURNING ` + submissionColumns

	sub, err := scanSubmission(r.db.QueryRowContext(ctx, query, reason, nullString(reviewedBy), time.Now(), id))
	if err == sql.ErrNoRows {
		return nil, r.reviewConflict(ctx, id)
	}
	return sub, err
}

// Count returns the total number of submissions
func (r *submissionRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM song_submissions`).Scan(&count)
	return count, err
}

// CountByStatus returns the number of submissions in the given status
func (r *submissionRepo) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM song_submissions WHERE status = $1`, status).Scan(&count)
	return count, err
}

// reviewConflict distinguishes a missing submission from one that has
// already been reviewed.
func (r *submissionRepo) reviewConflict(ctx context.Context, id int64) error {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM song_submissions WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return ErrAlreadyReviewed
}

func (r *submissionRepo) querySubmissions(ctx context.Context, query string, args ...interface{}) ([]*models.SongSubmission, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*models.SongSubmission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

func scanSubmission(row rowScanner) (*models.SongSubmission, error) {
	var sub models.SongSubmission
	var album, genre, cover, subName, subEmail, adminNotes, reviewedBy sql.NullString
	var year, originalSongID sql.NullInt64
	var reviewedAt sql.NullTime

	err := row.Scan(
		&sub.ID, &sub.Title, &sub.Artist, &album, &genre, &year, &cover,
		&sub.Lyrics, &subName, &subEmail, &sub.SubmissionType, &originalSongID,
		&sub.Status, &adminNotes, &reviewedBy, &reviewedAt,
		&sub.CreatedAt, &sub.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	sub.Album = album.String
	sub.Genre = genre.String
	sub.Cover = cover.String
	sub.SubmitterName = subName.String
	sub.SubmitterEmail = subEmail.String
	sub.AdminNotes = adminNotes.String
	sub.ReviewedBy = reviewedBy.String
	if year.Valid {
		y := int(year.Int64)
		sub.Year = &y
	}
	if originalSongID.Valid {
		sub.OriginalSongID = &originalSongID.Int64
	}
	if reviewedAt.Valid {
		sub.ReviewedAt = &reviewedAt.Time
	}
	return &sub, nil
}
