package models

import (
	"time"
)

// Song represents a published catalog entry
type Song struct {
	ID             int64     `json:"id" db:"id"`
	Title          string    `json:"title" db:"title"`
	Artist         string    `json:"artist" db:"artist"`
	Album          string    `json:"album,omitempty" db:"album"`
	Genre          string    `json:"genre,omitempty" db:"genre"`
	Year           *int      `json:"year,omitempty" db:"year"`
	Cover          string    `json:"cover,omitempty" db:"cover"`
	Lyrics         string    `json:"lyrics" db:"lyrics"`
	SubmitterName  string    `json:"submitter_name,omitempty" db:"submitter_name"`
	SubmitterEmail string    `json:"submitter_email,omitempty" db:"submitter_email"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// SongInput is the payload for creating a song directly (admin bypass)
type SongInput struct {
	Title          string `json:"title"`
	Artist         string `json:"artist"`
	Album          string `json:"album"`
	Genre          string `json:"genre"`
	Year           *int   `json:"year"`
	Cover          string `json:"cover"`
	Lyrics         string `json:"lyrics"`
	SubmitterName  string `json:"submitter_name"`
	SubmitterEmail string `json:"submitter_email"`
}

// SongUpdate carries partial fields for an admin edit; nil means unchanged
type SongUpdate struct {
	Title  *string `json:"title"`
	Artist *string `json:"artist"`
	Album  *string `json:"album"`
	Genre  *string `json:"genre"`
	Year   *int    `json:"year"`
	Cover  *string `json:"cover"`
	Lyrics *string `json:"lyrics"`
}

// ArtistSummary aggregates a distinct artist with its song count
type ArtistSummary struct {
	Name      string `json:"name"`
	SongCount int    `json:"song_count"`
}
