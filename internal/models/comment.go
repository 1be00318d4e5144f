package models

import (
	"time"
)

// Comment types
const (
	CommentGeneral    = "general"
	CommentAnnotation = "annotation"
	CommentReview     = "review"
)

// ValidCommentTypes defines allowed comment types
var ValidCommentTypes = map[string]bool{
	CommentGeneral:    true,
	CommentAnnotation: true,
	CommentReview:     true,
}

// SongComment is a community annotation or review attached to a song.
// It references the song by id; deleting a song does not cascade here in
// application code (the schema handles it).
type SongComment struct {
	ID             int64     `json:"id" db:"id"`
	SongID         int64     `json:"song_id" db:"song_id"`
	UserName       string    `json:"user_name,omitempty" db:"user_name"`
	UserEmail      string    `json:"user_email,omitempty" db:"user_email"`
	CommentText    string    `json:"comment_text" db:"comment_text"`
	SelectedLyrics string    `json:"selected_lyrics,omitempty" db:"selected_lyrics"`
	LyricsStartPos *int      `json:"lyrics_start_position,omitempty" db:"lyrics_start_position"`
	LyricsEndPos   *int      `json:"lyrics_end_position,omitempty" db:"lyrics_end_position"`
	CommentType    string    `json:"comment_type" db:"comment_type"`
	Rating         *int      `json:"rating,omitempty" db:"rating"`
	IsApproved     bool      `json:"is_approved" db:"is_approved"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// CommentInput is the visitor-facing comment payload
type CommentInput struct {
	UserName       string `json:"user_name"`
	UserEmail      string `json:"user_email"`
	CommentText    string `json:"comment_text"`
	SelectedLyrics string `json:"selected_lyrics"`
	LyricsStartPos *int   `json:"lyrics_start_position"`
	LyricsEndPos   *int   `json:"lyrics_end_position"`
	CommentType    string `json:"comment_type"`
	Rating         *int   `json:"rating"`
}
