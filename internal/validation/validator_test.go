package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/barelyrics/barelyrics-api/internal/models"
)

func intPtr(i int) *int { return &i }

func validSubmission() *models.SubmissionInput {
	return &models.SubmissionInput{
		Title:          "Test Song",
		Artist:         "Test Artist",
		Album:          "Test Album",
		Genre:          "Rock",
		Year:           intPtr(2023),
		Cover:          "https://example.com/cover.jpg",
		Lyrics:         "These are test lyrics for review.",
		SubmitterName:  "Test User",
		SubmitterEmail: "test@example.com",
		SubmissionType: "new",
	}
}

func TestValidateSubmission(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*models.SubmissionInput)
		wantErrors int
		wantFields []string
	}{
		{
			name:   "valid submission with all fields",
			mutate: func(in *models.SubmissionInput) {},
		},
		{
			name: "missing title",
			mutate: func(in *models.SubmissionInput) {
				in.Title = ""
			},
			wantErrors: 1,
			wantFields: []string{"title"},
		},
		{
			name: "title too long",
			mutate: func(in *models.SubmissionInput) {
				in.Title = strings.Repeat("a", 201)
			},
			wantErrors: 1,
			wantFields: []string{"title"},
		},
		{
			name: "multibyte title within the character limit",
			mutate: func(in *models.SubmissionInput) {
				in.Title = strings.Repeat("ü", 150)
			},
		},
		{
			name: "multibyte title over the character limit",
			mutate: func(in *models.SubmissionInput) {
				in.Title = strings.Repeat("ü", 201)
			},
			wantErrors: 1,
			wantFields: []string{"title"},
		},
		{
			name: "artist too long",
			mutate: func(in *models.SubmissionInput) {
				in.Artist = strings.Repeat("a", 101)
			},
			wantErrors: 1,
			wantFields: []string{"artist"},
		},
		{
			name: "year before 1900",
			mutate: func(in *models.SubmissionInput) {
				in.Year = intPtr(1850)
			},
			wantErrors: 1,
			wantFields: []string{"year"},
		},
		{
			name: "year too far in the future",
			mutate: func(in *models.SubmissionInput) {
				in.Year = intPtr(time.Now().Year() + 2)
			},
			wantErrors: 1,
			wantFields: []string{"year"},
		},
		{
			name: "next year is allowed",
			mutate: func(in *models.SubmissionInput) {
				in.Year = intPtr(time.Now().Year() + 1)
			},
		},
		{
			name: "missing year is allowed",
			mutate: func(in *models.SubmissionInput) {
				in.Year = nil
			},
		},
		{
			name: "invalid cover URL",
			mutate: func(in *models.SubmissionInput) {
				in.Cover = "not a url"
			},
			wantErrors: 1,
			wantFields: []string{"cover"},
		},
		{
			name: "empty cover is allowed",
			mutate: func(in *models.SubmissionInput) {
				in.Cover = ""
			},
		},
		{
			name: "relative placeholder cover is allowed",
			mutate: func(in *models.SubmissionInput) {
				in.Cover = "/placeholder.svg?height=300&width=300"
			},
		},
		{
			name: "lyrics too short",
			mutate: func(in *models.SubmissionInput) {
				in.Lyrics = "too short"
			},
			wantErrors: 1,
			wantFields: []string{"lyrics"},
		},
		{
			name: "short multibyte lyrics are rejected",
			mutate: func(in *models.SubmissionInput) {
				in.Lyrics = strings.Repeat("歌", 5)
			},
			wantErrors: 1,
			wantFields: []string{"lyrics"},
		},
		{
			name: "multibyte lyrics count characters not bytes",
			mutate: func(in *models.SubmissionInput) {
				in.Lyrics = strings.Repeat("歌", 10)
			},
		},
		{
			name: "lyrics too long",
			mutate: func(in *models.SubmissionInput) {
				in.Lyrics = strings.Repeat("a", 10001)
			},
			wantErrors: 1,
			wantFields: []string{"lyrics"},
		},
		{
			name: "invalid submitter email",
			mutate: func(in *models.SubmissionInput) {
				in.SubmitterEmail = "not-an-email"
			},
			wantErrors: 1,
			wantFields: []string{"submitter_email"},
		},
		{
			name: "empty submitter email is allowed",
			mutate: func(in *models.SubmissionInput) {
				in.SubmitterEmail = ""
			},
		},
		{
			name: "invalid submission type",
			mutate: func(in *models.SubmissionInput) {
				in.SubmissionType = "remix"
			},
			wantErrors: 1,
			wantFields: []string{"submission_type"},
		},
		{
			name: "missing submission type",
			mutate: func(in *models.SubmissionInput) {
				in.SubmissionType = ""
			},
			wantErrors: 1,
			wantFields: []string{"submission_type"},
		},
		{
			name: "multiple validation errors",
			mutate: func(in *models.SubmissionInput) {
				in.Title = ""
				in.Artist = ""
				in.Lyrics = "short"
				in.SubmitterEmail = "invalid"
				in.SubmissionType = "unknown"
			},
			wantErrors: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validSubmission()
			tt.mutate(in)

			errors := ValidateSubmission(in)
			if len(errors) != tt.wantErrors {
				t.Errorf("ValidateSubmission() got %d errors, want %d. Errors: %v", len(errors), tt.wantErrors, errors)
			}

			for _, wantField := range tt.wantFields {
				found := false
				for _, err := range errors {
					if err.Field == wantField {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, got %v", wantField, errors)
				}
			}
		})
	}
}

func TestValidateContact(t *testing.T) {
	valid := func() *models.ContactInput {
		return &models.ContactInput{
			FirstName: "Jamie",
			LastName:  "Doe",
			Email:     "jamie@example.com",
			Subject:   "Feedback",
			Message:   "The lyrics page for my favorite song is great.",
		}
	}

	tests := []struct {
		name       string
		mutate     func(*models.ContactInput)
		wantErrors int
		wantFields []string
	}{
		{
			name:   "valid contact message",
			mutate: func(in *models.ContactInput) {},
		},
		{
			name: "missing first name",
			mutate: func(in *models.ContactInput) {
				in.FirstName = ""
			},
			wantErrors: 1,
			wantFields: []string{"first_name"},
		},
		{
			name: "last name too long",
			mutate: func(in *models.ContactInput) {
				in.LastName = strings.Repeat("a", 51)
			},
			wantErrors: 1,
			wantFields: []string{"last_name"},
		},
		{
			name: "multibyte last name within the character limit",
			mutate: func(in *models.ContactInput) {
				in.LastName = strings.Repeat("é", 50)
			},
		},
		{
			name: "invalid email",
			mutate: func(in *models.ContactInput) {
				in.Email = "invalid"
			},
			wantErrors: 1,
			wantFields: []string{"email"},
		},
		{
			name: "missing subject",
			mutate: func(in *models.ContactInput) {
				in.Subject = ""
			},
			wantErrors: 1,
			wantFields: []string{"subject"},
		},
		{
			name: "message too short",
			mutate: func(in *models.ContactInput) {
				in.Message = "hi"
			},
			wantErrors: 1,
			wantFields: []string{"message"},
		},
		{
			name: "message too long",
			mutate: func(in *models.ContactInput) {
				in.Message = strings.Repeat("a", 2001)
			},
			wantErrors: 1,
			wantFields: []string{"message"},
		},
		{
			name: "everything wrong at once",
			mutate: func(in *models.ContactInput) {
				in.FirstName = ""
				in.LastName = ""
				in.Email = "bad"
				in.Subject = ""
				in.Message = "short"
			},
			wantErrors: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(in)

			errors := ValidateContact(in)
			if len(errors) != tt.wantErrors {
				t.Errorf("ValidateContact() got %d errors, want %d. Errors: %v", len(errors), tt.wantErrors, errors)
			}

			for _, wantField := range tt.wantFields {
				found := false
				for _, err := range errors {
					if err.Field == wantField {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, got %v", wantField, errors)
				}
			}
		})
	}
}

func TestValidateComment(t *testing.T) {
	tests := []struct {
		name       string
		input      *models.CommentInput
		wantErrors int
		wantFields []string
	}{
		{
			name: "valid general comment",
			input: &models.CommentInput{
				UserName:    "Jamie",
				CommentText: "Love this one",
				CommentType: "general",
			},
		},
		{
			name: "valid review with rating",
			input: &models.CommentInput{
				CommentText: "A classic",
				CommentType: "review",
				Rating:      intPtr(5),
			},
		},
		{
			name: "missing text",
			input: &models.CommentInput{
				CommentType: "general",
			},
			wantErrors: 1,
			wantFields: []string{"comment_text"},
		},
		{
			name: "rating out of range",
			input: &models.CommentInput{
				CommentText: "A classic",
				CommentType: "review",
				Rating:      intPtr(6),
			},
			wantErrors: 1,
			wantFields: []string{"rating"},
		},
		{
			name: "rating on non-review",
			input: &models.CommentInput{
				CommentText: "A classic",
				CommentType: "general",
				Rating:      intPtr(4),
			},
			wantErrors: 1,
			wantFields: []string{"rating"},
		},
		{
			name: "unknown comment type",
			input: &models.CommentInput{
				CommentText: "A classic",
				CommentType: "rant",
			},
			wantErrors: 1,
			wantFields: []string{"comment_type"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errors := ValidateComment(tt.input)
			if len(errors) != tt.wantErrors {
				t.Errorf("ValidateComment() got %d errors, want %d. Errors: %v", len(errors), tt.wantErrors, errors)
			}

			for _, wantField := range tt.wantFields {
				found := false
				for _, err := range errors {
					if err.Field == wantField {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, got %v", wantField, errors)
				}
			}
		})
	}
}

func TestValidateAdminUser(t *testing.T) {
	tests := []struct {
		name       string
		input      *models.AdminUserInput
		wantErrors int
		wantFields []string
	}{
		{
			name: "valid moderator",
			input: &models.AdminUserInput{
				Email:    "mod@example.com",
				Name:     "Moderator",
				Password: "long-enough-password",
				Role:     "moderator",
			},
		},
		{
			name: "developer role is not assignable",
			input: &models.AdminUserInput{
				Email:    "dev@example.com",
				Name:     "Developer",
				Password: "long-enough-password",
				Role:     "developer",
			},
			wantErrors: 1,
			wantFields: []string{"role"},
		},
		{
			name: "short password",
			input: &models.AdminUserInput{
				Email:    "mod@example.com",
				Name:     "Moderator",
				Password: "short",
				Role:     "admin",
			},
			wantErrors: 1,
			wantFields: []string{"password"},
		},
		{
			name: "invalid email",
			input: &models.AdminUserInput{
				Email:    "nope",
				Name:     "Moderator",
				Password: "long-enough-password",
				Role:     "admin",
			},
			wantErrors: 1,
			wantFields: []string{"email"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errors := ValidateAdminUser(tt.input)
			if len(errors) != tt.wantErrors {
				t.Errorf("ValidateAdminUser() got %d errors, want %d. Errors: %v", len(errors), tt.wantErrors, errors)
			}

			for _, wantField := range tt.wantFields {
				found := false
				for _, err := range errors {
					if err.Field == wantField {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, got %v", wantField, errors)
				}
			}
		})
	}
}

func TestFieldMap(t *testing.T) {
	errs := []ValidationError{
		{Field: "title", Message: "Song title is required"},
		{Field: "title", Message: "also bad"},
		{Field: "lyrics", Message: "Lyrics must be at least 10 characters long"},
	}

	m := FieldMap(errs)
	if len(m) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(m))
	}
	if m["title"] != "Song title is required" {
		t.Errorf("expected first error per field to win, got %q", m["title"])
	}
}
