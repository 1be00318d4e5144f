package service

import (
	"context"

	"github.com/barelyrics/barelyrics-api/internal/models"
	"github.com/barelyrics/barelyrics-api/internal/repository"
	"github.com/barelyrics/barelyrics-api/internal/validation"
	"github.com/rs/zerolog"
)

// approvalNote is the fixed admin note written on approval
const approvalNote = "Song approved and added to database"

// submissionService implements SubmissionService
type submissionService struct {
	submissions repository.SubmissionRepository
	log         zerolog.Logger
}

func newSubmissionService(submissions repository.SubmissionRepository, log zerolog.Logger) SubmissionService {
	return &submissionService{
		submissions: submissions,
		log:         log.With().Str("component", "submissions").Logger(),
	}
}

// Submit validates a visitor payload and persists it as a pending
// submission. Any status supplied by the caller is discarded.
func (s *submissionService) Submit(ctx context.Context, in *models.SubmissionInput) (*models.SongSubmission, error) {
	if errs := validation.ValidateSubmission(in); len(errs) > 0 {
		return nil, &ValidationFailed{Errors: errs}
	}

	sub, err := s.submissions.Create(ctx, in)
	if err != nil {
		s.log.Error().Err(err).Str("title", in.Title).Msg("Failed to persist submission")
		return nil, err
	}

	s.log.Info().
		Int64("submission_id", sub.ID).
		Str("title", sub.Title).
		Str("type", sub.SubmissionType).
		Msg("Submission received")
	return sub, nil
}

// List returns submissions, optionally filtered by status
func (s *submissionService) List(ctx context.Context, status string) ([]*models.SongSubmission, error) {
	if status == "" {
		return s.submissions.List(ctx)
	}
	return s.submissions.ListByStatus(ctx, status)
}

// GetByID returns a single submission
func (s *submissionService) GetByID(ctx context.Context, id int64) (*models.SongSubmission, error) {
	return s.submissions.GetByID(ctx, id)
}

// Approve promotes a pending submission into the catalog. The store layer
// performs both mutations in one transaction and rejects submissions that
// have already been reviewed.
func (s *submissionService) Approve(ctx context.Context, id int64, reviewedBy string) (*models.Song, error) {
	song, err := s.submissions.Approve(ctx, id, approvalNote, reviewedBy)
	if err != nil {
		s.log.Warn().Err(err).Int64("submission_id", id).Msg("Approval failed")
		return nil, err
	}

	s.log.Info().
		Int64("submission_id", id).
		Int64("song_id", song.ID).
		Str("reviewed_by", reviewedBy).
		Msg("Submission approved")
	return song, nil
}

// Reject marks a pending submission rejected with the given reason. The
// catalog is never touched.
func (s *submissionService) Reject(ctx context.Context, id int64, reason, reviewedBy string) (*models.SongSubmission, error) {
	sub, err := s.submissions.Reject(ctx, id, reason, reviewedBy)
	if err != nil {
		s.log.Warn().Err(err).Int64("submission_id", id).Msg("Rejection failed")
		return nil, err
	}

	s.log.Info().
		Int64("submission_id", id).
		Str("reviewed_by", reviewedBy).
		Msg("Submission rejected")
	return sub, nil
}

// Count returns the total number of submissions
func (s *submissionService) Count(ctx context.Context) (int, error) {
	return s.submissions.Count(ctx)
}

// CountPending returns the number of submissions awaiting review
func (s *submissionService) CountPending(ctx context.Context) (int, error) {
	return s.submissions.CountByStatus(ctx, models.SubmissionPending)
}
