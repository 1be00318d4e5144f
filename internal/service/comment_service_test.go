package service

import (
	"context"
	"errors"
	"testing"

	"github.com/barelyrics/barelyrics-api/internal/mocks"
	"github.com/barelyrics/barelyrics-api/internal/models"
	"github.com/barelyrics/barelyrics-api/internal/repository"
	"github.com/rs/zerolog"
)

func newCommentFixture() (*mocks.MockCommentRepository, CommentService) {
	songs := mocks.NewMockSongRepository()
	seedCatalog(songs)
	comments := mocks.NewMockCommentRepository()
	svc := newCommentService(comments, songs, zerolog.Nop())
	return comments, svc
}

func validComment() *models.CommentInput {
	return &models.CommentInput{
		UserName:    "Jamie",
		CommentText: "This bridge gets me every time.",
		CommentType: models.CommentGeneral,
	}
}

func TestCreateCommentRequiresExistingSong(t *testing.T) {
	comments, svc := newCommentFixture()

	if _, err := svc.Create(context.Background(), 999, validComment()); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for a missing song, got %v", err)
	}
	if len(comments.Comments) != 0 {
		t.Error("comment on a missing song must not be persisted")
	}
}

func TestCreateCommentIsAutoApproved(t *testing.T) {
	_, svc := newCommentFixture()

	comment, err := svc.Create(context.Background(), 1, validComment())
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if !comment.IsApproved {
		t.Error("new comments should be approved by default")
	}

	visible, err := svc.ListForSong(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListForSong() error: %v", err)
	}
	if len(visible) != 1 {
		t.Errorf("expected 1 visible comment, got %d", len(visible))
	}
}

func TestCreateCommentValidation(t *testing.T) {
	comments, svc := newCommentFixture()

	in := validComment()
	in.UserName = ""
	in.CommentText = ""

	_, err := svc.Create(context.Background(), 1, in)
	var validationErr *ValidationFailed
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationFailed, got %v", err)
	}
	if len(comments.Comments) != 0 {
		t.Error("invalid comment must not be persisted")
	}
}

func TestModerateHidesComment(t *testing.T) {
	_, svc := newCommentFixture()
	ctx := context.Background()

	comment, err := svc.Create(ctx, 1, validComment())
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if err := svc.Moderate(ctx, comment.ID, false); err != nil {
		t.Fatalf("Moderate() error: %v", err)
	}

	visible, err := svc.ListForSong(ctx, 1)
	if err != nil {
		t.Fatalf("ListForSong() error: %v", err)
	}
	if len(visible) != 0 {
		t.Errorf("hidden comment still visible: %d comments", len(visible))
	}

	// Admin listing still sees it
	all, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected the hidden comment in the admin listing, got %d", len(all))
	}
}

func TestModerateUnknownComment(t *testing.T) {
	_, svc := newCommentFixture()

	if err := svc.Moderate(context.Background(), 404, true); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
