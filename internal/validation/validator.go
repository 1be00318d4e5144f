package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/barelyrics/barelyrics-api/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// FieldMap collapses a slice of errors into a field -> message map for
// 400 response bodies. The first error per field wins.
func FieldMap(errs []ValidationError) map[string]string {
	m := make(map[string]string, len(errs))
	for _, e := range errs {
		if _, ok := m[e.Field]; !ok {
			m[e.Field] = e.Message
		}
	}
	return m
}

// ValidateSubmission validates a visitor song submission payload.
// All field errors are accumulated rather than failing fast.
func ValidateSubmission(in *models.SubmissionInput) []ValidationError {
	errors := validateSongFields(in.Title, in.Artist, in.Album, in.Genre, in.Year, in.Cover, in.Lyrics)

	if utf8.RuneCountInString(in.SubmitterName) > 100 {
		errors = append(errors, ValidationError{Field: "submitter_name", Message: "Name too long"})
	}
	if in.SubmitterEmail != "" && !emailRegex.MatchString(in.SubmitterEmail) {
		errors = append(errors, ValidationError{Field: "submitter_email", Message: "Must be a valid email", Value: in.SubmitterEmail})
	}

	if in.SubmissionType == "" {
		errors = append(errors, ValidationError{Field: "submission_type", Message: "Submission type is required"})
	} else if !models.ValidSubmissionTypes[in.SubmissionType] {
		errors = append(errors, ValidationError{
			Field:   "submission_type",
			Message: "Submission type must be one of: new, correction",
			Value:   in.SubmissionType,
		})
	}
	if in.OriginalSongID != nil && *in.OriginalSongID <= 0 {
		errors = append(errors, ValidationError{Field: "original_song_id", Message: "Original song id must be positive"})
	}

	return errors
}

// ValidateAdminSong validates a direct admin song payload
func ValidateAdminSong(in *models.SongInput) []ValidationError {
	errors := validateSongFields(in.Title, in.Artist, in.Album, in.Genre, in.Year, in.Cover, in.Lyrics)

	if utf8.RuneCountInString(in.SubmitterName) > 100 {
		errors = append(errors, ValidationError{Field: "submitter_name", Message: "Name too long"})
	}
	if in.SubmitterEmail != "" && !emailRegex.MatchString(in.SubmitterEmail) {
		errors = append(errors, ValidationError{Field: "submitter_email", Message: "Must be a valid email", Value: in.SubmitterEmail})
	}

	return errors
}

// ValidateContact validates a contact form payload
func ValidateContact(in *models.ContactInput) []ValidationError {
	var errors []ValidationError

	if in.FirstName == "" {
		errors = append(errors, ValidationError{Field: "first_name", Message: "First name is required"})
	} else if utf8.RuneCountInString(in.FirstName) > 50 {
		errors = append(errors, ValidationError{Field: "first_name", Message: "First name too long"})
	}

	if in.LastName == "" {
		errors = append(errors, ValidationError{Field: "last_name", Message: "Last name is required"})
	} else if utf8.RuneCountInString(in.LastName) > 50 {
		errors = append(errors, ValidationError{Field: "last_name", Message: "Last name too long"})
	}

	if in.Email == "" {
		errors = append(errors, ValidationError{Field: "email", Message: "Email is required"})
	} else if !emailRegex.MatchString(in.Email) {
		errors = append(errors, ValidationError{Field: "email", Message: "Must be a valid email", Value: in.Email})
	}

	if in.Subject == "" {
		errors = append(errors, ValidationError{Field: "subject", Message: "Subject is required"})
	} else if utf8.RuneCountInString(in.Subject) > 200 {
		errors = append(errors, ValidationError{Field: "subject", Message: "Subject too long"})
	}

	if utf8.RuneCountInString(in.Message) < 10 {
		errors = append(errors, ValidationError{Field: "message", Message: "Message must be at least 10 characters long"})
	} else if utf8.RuneCountInString(in.Message) > 2000 {
		errors = append(errors, ValidationError{Field: "message", Message: "Message too long"})
	}

	return errors
}

// ValidateComment validates a song comment payload
func ValidateComment(in *models.CommentInput) []ValidationError {
	var errors []ValidationError

	if in.CommentText == "" {
		errors = append(errors, ValidationError{Field: "comment_text", Message: "Comment text is required"})
	} else if utf8.RuneCountInString(in.CommentText) > 2000 {
		errors = append(errors, ValidationError{Field: "comment_text", Message: "Comment too long"})
	}

	if in.UserName != "" && utf8.RuneCountInString(in.UserName) > 100 {
		errors = append(errors, ValidationError{Field: "user_name", Message: "Name too long"})
	}
	if in.UserEmail != "" && !emailRegex.MatchString(in.UserEmail) {
		errors = append(errors, ValidationError{Field: "user_email", Message: "Must be a valid email", Value: in.UserEmail})
	}

	if in.CommentType == "" {
		errors = append(errors, ValidationError{Field: "comment_type", Message: "Comment type is required"})
	} else if !models.ValidCommentTypes[in.CommentType] {
		errors = append(errors, ValidationError{
			Field:   "comment_type",
			Message: "Comment type must be one of: general, annotation, review",
			Value:   in.CommentType,
		})
	}

	// Ratings only make sense on reviews
	if in.Rating != nil {
		if in.CommentType != models.CommentReview {
			errors = append(errors, ValidationError{Field: "rating", Message: "Rating is only allowed on reviews"})
		} else if *in.Rating < 1 || *in.Rating > 5 {
			errors = append(errors, ValidationError{Field: "rating", Message: "Rating must be between 1 and 5", Value: *in.Rating})
		}
	}

	return errors
}

// ValidateAdminUser validates a managed admin user creation payload
func ValidateAdminUser(in *models.AdminUserInput) []ValidationError {
	var errors []ValidationError

	if in.Email == "" {
		errors = append(errors, ValidationError{Field: "email", Message: "Email is required"})
	} else if !emailRegex.MatchString(in.Email) {
		errors = append(errors, ValidationError{Field: "email", Message: "Must be a valid email", Value: in.Email})
	}

	if in.Name == "" {
		errors = append(errors, ValidationError{Field: "name", Message: "Name is required"})
	} else if utf8.RuneCountInString(in.Name) > 100 {
		errors = append(errors, ValidationError{Field: "name", Message: "Name too long"})
	}

	if utf8.RuneCountInString(in.Password) < 8 {
		errors = append(errors, ValidationError{Field: "password", Message: "Password must be at least 8 characters long"})
	}

	// Developer role is reserved for the break-glass identity
	if in.Role != models.RoleModerator && in.Role != models.RoleAdmin {
		errors = append(errors, ValidationError{
			Field:   "role",
			Message: "Role must be one of: moderator, admin",
			Value:   in.Role,
		})
	}

	return errors
}

func validateSongFields(title, artist, album, genre string, year *int, cover, lyrics string) []ValidationError {
	var errors []ValidationError

	if title == "" {
		errors = append(errors, ValidationError{Field: "title", Message: "Song title is required"})
	} else if utf8.RuneCountInString(title) > 200 {
		errors = append(errors, ValidationError{Field: "title", Message: "Title too long"})
	}

	if artist == "" {
		errors = append(errors, ValidationError{Field: "artist", Message: "Artist name is required"})
	} else if utf8.RuneCountInString(artist) > 100 {
		errors = append(errors, ValidationError{Field: "artist", Message: "Artist name too long"})
	}

	if utf8.RuneCountInString(album) > 200 {
		errors = append(errors, ValidationError{Field: "album", Message: "Album name too long"})
	}
	if utf8.RuneCountInString(genre) > 50 {
		errors = append(errors, ValidationError{Field: "genre", Message: "Genre too long"})
	}

	if year != nil {
		maxYear := time.Now().Year() + 1
		if *year < 1900 {
			errors = append(errors, ValidationError{Field: "year", Message: "Year must be after 1900", Value: *year})
		} else if *year > maxYear {
			errors = append(errors, ValidationError{Field: "year", Message: "Year cannot be in the future", Value: *year})
		}
	}

	if cover != "" && !isValidURL(cover) {
		errors = append(errors, ValidationError{Field: "cover", Message: "Must be a valid URL", Value: cover})
	}

	if utf8.RuneCountInString(lyrics) < 10 {
		errors = append(errors, ValidationError{Field: "lyrics", Message: "Lyrics must be at least 10 characters long"})
	} else if utf8.RuneCountInString(lyrics) > 10000 {
		errors = append(errors, ValidationError{Field: "lyrics", Message: fmt.Sprintf("Lyrics too long (max %d characters)", 10000)})
	}

	return errors
}

func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	// Accept site-relative paths like the placeholder covers
	if u.Scheme == "" && u.Host == "" {
		return len(raw) > 0 && raw[0] == '/'
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
