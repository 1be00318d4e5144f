package models

import (
	"time"
)

// Submission statuses
const (
	SubmissionPending  = "pending"
	SubmissionApproved = "approved"
	SubmissionRejected = "rejected"
)

// Submission types
const (
	SubmissionTypeNew        = "new"
	SubmissionTypeCorrection = "correction"
)

// ValidSubmissionTypes defines allowed submission types
var ValidSubmissionTypes = map[string]bool{
	SubmissionTypeNew:        true,
	SubmissionTypeCorrection: true,
}

// SongSubmission is a proposed song or correction awaiting review.
// Submissions are never deleted; approved/rejected rows remain as an
// audit trail.
type SongSubmission struct {
	ID             int64      `json:"id" db:"id"`
	Title          string     `json:"title" db:"title"`
	Artist         string     `json:"artist" db:"artist"`
	Album          string     `json:"album,omitempty" db:"album"`
	Genre          string     `json:"genre,omitempty" db:"genre"`
	Year           *int       `json:"year,omitempty" db:"year"`
	Cover          string     `json:"cover,omitempty" db:"cover"`
	Lyrics         string     `json:"lyrics" db:"lyrics"`
	SubmitterName  string     `json:"submitter_name,omitempty" db:"submitter_name"`
	SubmitterEmail string     `json:"submitter_email,omitempty" db:"submitter_email"`
	SubmissionType string     `json:"submission_type" db:"submission_type"`
	OriginalSongID *int64     `json:"original_song_id,omitempty" db:"original_song_id"`
	Status         string     `json:"status" db:"status"`
	AdminNotes     string     `json:"admin_notes,omitempty" db:"admin_notes"`
	ReviewedBy     string     `json:"reviewed_by,omitempty" db:"reviewed_by"`
	ReviewedAt     *time.Time `json:"reviewed_at,omitempty" db:"reviewed_at"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// SubmissionInput is the visitor-facing payload. Status is not part of the
// input: submissions always enter the queue as pending.
type SubmissionInput struct {
	Title          string `json:"title"`
	Artist         string `json:"artist"`
	Album          string `json:"album"`
	Genre          string `json:"genre"`
	Year           *int   `json:"year"`
	Cover          string `json:"cover"`
	Lyrics         string `json:"lyrics"`
	SubmitterName  string `json:"submitter_name"`
	SubmitterEmail string `json:"submitter_email"`
	SubmissionType string `json:"submission_type"`
	OriginalSongID *int64 `json:"original_song_id"`
	Status         string `json:"status"`
}
