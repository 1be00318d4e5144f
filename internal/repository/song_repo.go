package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/barelyrics/barelyrics-api/internal/database"
	"github.com/barelyrics/barelyrics-api/internal/models"
)

const songColumns = `id, title, artist, album, genre, year, cover, lyrics,
	submitter_name, submitter_email, created_at, updated_at`

// songRepo is the concrete implementation of SongRepository
type songRepo struct {
	db *database.DB
}

// NewSongRepo creates a new song repository
func NewSongRepo(db *database.DB) SongRepository {
	return &songRepo{db: db}
}

// Create inserts a new song and returns it with its store-assigned id
func (r *songRepo) Create(ctx context.Context, in *models.SongInput) (*models.Song, error) {
	query := `
		INSERT INTO songs (title, artist, album, genre, year, cover, lyrics, submitter_name, submitter_email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + songColumns

	row := r.db.QueryRowContext(ctx, query,
		in.Title, in.Artist, nullString(in.Album), nullString(in.Genre),
		nullInt(in.Year), nullString(in.Cover), in.Lyrics,
		nullString(in.SubmitterName), nullString(in.SubmitterEmail),
	)
	return scanSong(row)
}

// GetByID retrieves a song by id
func (r *songRepo) GetByID(ctx context.Context, id int64) (*models.Song, error) {
	query := `SELECT ` + songColumns + ` FROM songs WHERE id = $1`
	song, err := scanSong(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return song, err
}

// List retrieves all songs, newest first
func (r *songRepo) List(ctx context.Context) ([]*models.Song, error) {
	query := `SELECT ` + songColumns + ` FROM songs ORDER BY created_at DESC`
	return r.querySongs(ctx, query)
}

// Search performs a case-insensitive substring match across title, artist
// and album, newest first.
func (r *songRepo) Search(ctx context.Context, q string) ([]*models.Song, error) {
	query := `
		SELECT ` + songColumns + ` FROM songs
		WHERE title ILIKE $1 OR artist ILIKE $1 OR album ILIKE $1
		ORDER BY created_at DESC`
	pattern := "%" + escapeLike(q) + "%"
	return r.querySongs(ctx, query, pattern)
}

// GetByArtist retrieves all songs by an artist (case-insensitive exact match)
func (r *songRepo) GetByArtist(ctx context.Context, artist string) ([]*models.Song, error) {
	query := `
		SELECT ` + songColumns + ` FROM songs
		WHERE LOWER(artist) = LOWER($1)
		ORDER BY created_at DESC`
	return r.querySongs(ctx, query, artist)
}

// Similar returns other songs sharing the artist or, when genre is given,
// the genre. Excludes currentID, newest first, capped at limit.
func (r *songRepo) Similar(ctx context.Context, currentID int64, artist, genre string, limit int) ([]*models.Song, error) {
	if genre != "" {
		query := `
			SELECT ` + songColumns + ` FROM songs
			WHERE id <> $1 AND (LOWER(artist) = LOWER($2) OR LOWER(genre) = LOWER($3))
			ORDER BY created_at DESC
			LIMIT $4`
		return r.querySongs(ctx, query, currentID, artist, genre, limit)
	}
	query := `
		SELECT ` + songColumns + ` FROM songs
		WHERE id <> $1 AND LOWER(artist) = LOWER($2)
		ORDER BY created_at DESC
		LIMIT $3`
	return r.querySongs(ctx, query, currentID, artist, limit)
}

// ListArtists aggregates distinct artist names with per-artist song counts
func (r *songRepo) ListArtists(ctx context.Context) ([]*models.ArtistSummary, error) {
	query := `
		SELECT artist, COUNT(*) FROM songs
		GROUP BY artist
		ORDER BY COUNT(*) DESC, artist`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var artists []*models.ArtistSummary
	for rows.Next() {
		var a models.ArtistSummary
		if err := rows.Scan(&a.Name, &a.SongCount); err != nil {
			return nil, err
		}
		artists = append(artists, &a)
	}
	return artists, rows.Err()
}

// Update applies a partial edit; nil fields are left unchanged
func (r *songRepo) Update(ctx context.Context, id int64, upd *models.SongUpdate) (*models.Song, error) {
	sets := []string{}
	args := []interface{}{}
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Artist != nil {
		add("artist", *upd.Artist)
	}
	if upd.Album != nil {
		add("album", nullString(*upd.Album))
	}
	if upd.Genre != nil {
		add("genre", nullString(*upd.Genre))
	}
	if upd.Year != nil {
		add("year", *upd.Year)
	}
	if upd.Cover != nil {
		add("cover", nullString(*upd.Cover))
	}
	if upd.Lyrics != nil {
		add("lyrics", *upd.Lyrics)
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE songs SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), songColumns,
	)

	song, err := scanSong(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return song, err
}

// Delete removes a song from the catalog
func (r *songRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM songs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of songs
func (r *songRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM songs`).Scan(&count)
	return count, err
}

func (r *songRepo) querySongs(ctx context.Context, query string, args ...interface{}) ([]*models.Song, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var songs []*models.Song
	for rows.Next() {
		song, err := scanSong(rows)
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	return songs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSong(row rowScanner) (*models.Song, error) {
	var song models.Song
	var album, genre, cover, subName, subEmail sql.NullString
	var year sql.NullInt64

	err := row.Scan(
		&song.ID, &song.Title, &song.Artist, &album, &genre, &year, &cover,
		&song.Lyrics, &subName, &subEmail, &song.CreatedAt, &song.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	song.Album = album.String
	song.Genre = genre.String
	song.Cover = cover.String
	song.SubmitterName = subName.String
	song.SubmitterEmail = subEmail.String
	if year.Valid {
		y := int(year.Int64)
		song.Year = &y
	}
	return &song, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

func nullInt64(i *int64) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *i, Valid: true}
}

// escapeLike escapes LIKE metacharacters in user-supplied search input
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
