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

func newSubmissionFixture() (*mocks.MockSongRepository, *mocks.MockSubmissionRepository, SubmissionService) {
	songs := mocks.NewMockSongRepository()
	subs := mocks.NewMockSubmissionRepository(songs)
	svc := newSubmissionService(subs, zerolog.Nop())
	return songs, subs, svc
}

func validInput() *models.SubmissionInput {
	return &models.SubmissionInput{
		Title:          "Test Song",
		Artist:         "Test Artist",
		Lyrics:         "Twenty characters!!!",
		SubmissionType: models.SubmissionTypeNew,
	}
}

func TestSubmitForcesPendingStatus(t *testing.T) {
	_, _, svc := newSubmissionFixture()

	in := validInput()
	in.Status = "approved" // caller-supplied status must be ignored

	sub, err := svc.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if sub.Status != models.SubmissionPending {
		t.Errorf("status: got %q, want %q", sub.Status, models.SubmissionPending)
	}
	if sub.ID == 0 {
		t.Error("expected a store-assigned id")
	}
}

func TestSubmitSurfacesFieldErrors(t *testing.T) {
	_, subs, svc := newSubmissionFixture()

	in := validInput()
	in.Title = ""
	in.Lyrics = "short"

	_, err := svc.Submit(context.Background(), in)
	var validationErr *ValidationFailed
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationFailed, got %v", err)
	}

	fields := validationErr.FieldMap()
	if _, ok := fields["title"]; !ok {
		t.Error("expected a title error")
	}
	if _, ok := fields["lyrics"]; !ok {
		t.Error("expected a lyrics error")
	}
	if len(subs.Submissions) != 0 {
		t.Errorf("invalid payload must not be persisted, found %d submissions", len(subs.Submissions))
	}
}

func TestApproveCreatesExactlyOneSong(t *testing.T) {
	songs, subs, svc := newSubmissionFixture()
	ctx := context.Background()

	created, err := svc.Submit(ctx, validInput())
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}

	song, err := svc.Approve(ctx, created.ID, "Admin")
	if err != nil {
		t.Fatalf("Approve() error: %v", err)
	}

	if song.Title != created.Title || song.Artist != created.Artist || song.Lyrics != created.Lyrics {
		t.Errorf("song fields do not match the submission: %+v", song)
	}
	if len(songs.Songs) != 1 {
		t.Fatalf("expected exactly one song, got %d", len(songs.Songs))
	}

	sub := subs.Submissions[created.ID]
	if sub.Status != models.SubmissionApproved {
		t.Errorf("status: got %q, want %q", sub.Status, models.SubmissionApproved)
	}
	if sub.ReviewedBy != "Admin" {
		t.Errorf("reviewed_by: got %q, want %q", sub.ReviewedBy, "Admin")
	}
	if sub.ReviewedAt == nil {
		t.Error("expected reviewed_at to be set")
	}
	if sub.AdminNotes == "" {
		t.Error("expected the fixed approval note to be set")
	}

	// A second approval of a terminal submission must fail and must not
	// create another song.
	if _, err := svc.Approve(ctx, created.ID, "Admin"); !errors.Is(err, repository.ErrAlreadyReviewed) {
		t.Errorf("expected ErrAlreadyReviewed on double approve, got %v", err)
	}
	if len(songs.Songs) != 1 {
		t.Errorf("double approve created a second song: %d songs", len(songs.Songs))
	}
}

func TestApproveFailureLeavesSubmissionPending(t *testing.T) {
	songs, subs, svc := newSubmissionFixture()
	ctx := context.Background()

	created, err := svc.Submit(ctx, validInput())
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}

	songs.WriteError = errors.New("store rejected the write")
	if _, err := svc.Approve(ctx, created.ID, "Admin"); err == nil {
		t.Fatal("expected approval to fail")
	}

	if got := subs.Submissions[created.ID].Status; got != models.SubmissionPending {
		t.Errorf("failed approval must leave the submission pending, got %q", got)
	}
}

func TestRejectStoresReasonAndLeavesCatalogAlone(t *testing.T) {
	songs, _, svc := newSubmissionFixture()
	ctx := context.Background()

	created, err := svc.Submit(ctx, validInput())
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}

	reason := "Lyrics appear to be incomplete"
	sub, err := svc.Reject(ctx, created.ID, reason, "Admin")
	if err != nil {
		t.Fatalf("Reject() error: %v", err)
	}

	if sub.Status != models.SubmissionRejected {
		t.Errorf("status: got %q, want %q", sub.Status, models.SubmissionRejected)
	}
	if sub.AdminNotes != reason {
		t.Errorf("admin_notes: got %q, want the reason verbatim %q", sub.AdminNotes, reason)
	}
	if len(songs.Songs) != 0 {
		t.Errorf("rejection must not touch the catalog, found %d songs", len(songs.Songs))
	}

	// Rejected is terminal: no re-review in either direction
	if _, err := svc.Approve(ctx, created.ID, "Admin"); !errors.Is(err, repository.ErrAlreadyReviewed) {
		t.Errorf("expected ErrAlreadyReviewed approving a rejected submission, got %v", err)
	}
	if _, err := svc.Reject(ctx, created.ID, "again", "Admin"); !errors.Is(err, repository.ErrAlreadyReviewed) {
		t.Errorf("expected ErrAlreadyReviewed rejecting twice, got %v", err)
	}
}

func TestApproveUnknownSubmission(t *testing.T) {
	_, _, svc := newSubmissionFixture()

	if _, err := svc.Approve(context.Background(), 999, "Admin"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSubmissionLifecycleEndToEnd(t *testing.T) {
	songs := mocks.NewMockSongRepository()
	subs := mocks.NewMockSubmissionRepository(songs)
	submissionSvc := newSubmissionService(subs, zerolog.Nop())
	catalogSvc := newCatalogService(songs, testConfig(false), zerolog.Nop())
	ctx := context.Background()

	created, err := submissionSvc.Submit(ctx, &models.SubmissionInput{
		Title:          "Test Song",
		Artist:         "Test Artist",
		Lyrics:         "Twenty characters!!!",
		SubmissionType: models.SubmissionTypeNew,
	})
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if created.Status != models.SubmissionPending {
		t.Fatalf("expected pending submission, got %q", created.Status)
	}

	song, err := submissionSvc.Approve(ctx, created.ID, "Admin")
	if err != nil {
		t.Fatalf("Approve() error: %v", err)
	}

	catalog, err := catalogSvc.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error: %v", err)
	}
	found := false
	for _, entry := range catalog {
		if entry.ID == song.ID && entry.Title == "Test Song" {
			found = true
		}
	}
	if !found {
		t.Error("approved song is missing from the catalog")
	}

	if got := subs.Submissions[created.ID].Status; got != models.SubmissionApproved {
		t.Errorf("submission status: got %q, want %q", got, models.SubmissionApproved)
	}
}
