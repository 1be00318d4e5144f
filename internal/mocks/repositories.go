package mocks

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/barelyrics/barelyrics-api/internal/models"
	"github.com/barelyrics/barelyrics-api/internal/repository"
)

// MockSongRepository is a mock implementation of SongRepository
type MockSongRepository struct {
	Songs      map[int64]*models.Song
	NextID     int64
	ReadError  error
	WriteError error
}

func NewMockSongRepository() *MockSongRepository {
	return &MockSongRepository{
		Songs:  make(map[int64]*models.Song),
		NextID: 1,
	}
}

// Seed inserts a song with an explicit id and creation time
func (m *MockSongRepository) Seed(song *models.Song) {
	m.Songs[song.ID] = song
	if song.ID >= m.NextID {
		m.NextID = song.ID + 1
	}
}

func (m *MockSongRepository) Create(ctx context.Context, in *models.SongInput) (*models.Song, error) {
	if m.WriteError != nil {
		return nil, m.WriteError
	}
	now := time.Now()
	song := &models.Song{
		ID:             m.NextID,
		Title:          in.Title,
		Artist:         in.Artist,
		Album:          in.Album,
		Genre:          in.Genre,
		Year:           in.Year,
		Cover:          in.Cover,
		Lyrics:         in.Lyrics,
		SubmitterName:  in.SubmitterName,
		SubmitterEmail: in.SubmitterEmail,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	m.NextID++
	m.Songs[song.ID] = song
	return song, nil
}

func (m *MockSongRepository) GetByID(ctx context.Context, id int64) (*models.Song, error) {
	if m.ReadError != nil {
		return nil, m.ReadError
	}
	song, ok := m.Songs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return song, nil
}

func (m *MockSongRepository) List(ctx context.Context) ([]*models.Song, error) {
	if m.ReadError != nil {
		return nil, m.ReadError
	}
	return m.sorted(func(*models.Song) bool { return true }), nil
}

func (m *MockSongRepository) Search(ctx context.Context, query string) ([]*models.Song, error) {
	if m.ReadError != nil {
		return nil, m.ReadError
	}
	q := strings.ToLower(query)
	return m.sorted(func(song *models.Song) bool {
		return strings.Contains(strings.ToLower(song.Title), q) ||
			strings.Contains(strings.ToLower(song.Artist), q) ||
			strings.Contains(strings.ToLower(song.Album), q)
	}), nil
}

func (m *MockSongRepository) GetByArtist(ctx context.Context, artist string) ([]*models.Song, error) {
	if m.ReadError != nil {
		return nil, m.ReadError
	}
	return m.sorted(func(song *models.Song) bool {
		return strings.EqualFold(song.Artist, artist)
	}), nil
}

func (m *MockSongRepository) Similar(ctx context.Context, currentID int64, artist, genre string, limit int) ([]*models.Song, error) {
	if m.ReadError != nil {
		return nil, m.ReadError
	}
	matched := m.sorted(func(song *models.Song) bool {
		if song.ID == currentID {
			return false
		}
		if strings.EqualFold(song.Artist, artist) {
			return true
		}
		return genre != "" && strings.EqualFold(song.Genre, genre)
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (m *MockSongRepository) ListArtists(ctx context.Context) ([]*models.ArtistSummary, error) {
	if m.ReadError != nil {
		return nil, m.ReadError
	}
	counts := make(map[string]int)
	for _, song := range m.Songs {
		counts[song.Artist]++
	}
	var artists []*models.ArtistSummary
	for name, count := range counts {
		artists = append(artists, &models.ArtistSummary{Name: name, SongCount: count})
	}
	sort.Slice(artists, func(i, j int) bool {
		if artists[i].SongCount != artists[j].SongCount {
			return artists[i].SongCount > artists[j].SongCount
		}
		return artists[i].Name < artists[j].Name
	})
	return artists, nil
}

func (m *MockSongRepository) Update(ctx context.Context, id int64, upd *models.SongUpdate) (*models.Song, error) {
	if m.WriteError != nil {
		return nil, m.WriteError
	}
	song, ok := m.Songs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if upd.Title != nil {
		song.Title = *upd.Title
	}
	if upd.Artist != nil {
		song.Artist = *upd.Artist
	}
	if upd.Album != nil {
		song.Album = *upd.Album
	}
	if upd.Genre != nil {
		song.Genre = *upd.Genre
	}
	if upd.Year != nil {
		song.Year = upd.Year
	}
	if upd.Cover != nil {
		song.Cover = *upd.Cover
	}
	if upd.Lyrics != nil {
		song.Lyrics = *upd.Lyrics
	}
	song.UpdatedAt = time.Now()
	return song, nil
}

func (m *MockSongRepository) Delete(ctx context.Context, id int64) error {
	if m.WriteError != nil {
		return m.WriteError
	}
	if _, ok := m.Songs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.Songs, id)
	return nil
}

func (m *MockSongRepository) Count(ctx context.Context) (int, error) {
	if m.ReadError != nil {
		return 0, m.ReadError
	}
	return len(m.Songs), nil
}

// sorted returns matching songs newest-created first, ties by higher id
func (m *MockSongRepository) sorted(keep func(*models.Song) bool) []*models.Song {
	var out []*models.Song
	for _, song := range m.Songs {
		if keep(song) {
			out = append(out, song)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

// MockSubmissionRepository is a mock implementation of SubmissionRepository.
// Approve mirrors the transactional store behavior: the song insert and the
// status flip succeed or fail together.
type MockSubmissionRepository struct {
	Submissions map[int64]*models.SongSubmission
	NextID      int64
	Songs       *MockSongRepository
	ReadError   error
	WriteError  error
}

func NewMockSubmissionRepository(songs *MockSongRepository) *MockSubmissionRepository {
	return &MockSubmissionRepository{
		Submissions: make(map[int64]*models.SongSubmission),
		NextID:      1,
		Songs:       songs,
	}
}

func (m *MockSubmissionRepository) Create(ctx context.Context, in *models.SubmissionInput) (*models.SongSubmission, error) {
	if m.WriteError != nil {
		return nil, m.WriteError
	}
	now := time.Now()
	sub := &models.SongSubmission{
		ID:             m.NextID,
		Title:          in.Title,
		Artist:         in.Artist,
		Album:          in.Album,
		Genre:          in.Genre,
		Year:           in.Year,
		Cover:          in.Cover,
		Lyrics:         in.Lyrics,
		SubmitterName:  in.SubmitterName,
		SubmitterEmail: in.SubmitterEmail,
		SubmissionType: in.SubmissionType,
		OriginalSongID: in.OriginalSongID,
		Status:         models.SubmissionPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	m.NextID++
	m.Submissions[sub.ID] = sub
	return sub, nil
}

func (m *MockSubmissionRepository) GetByID(ctx context.Context, id int64) (*models.SongSubmission, error) {
	if m.ReadError != nil {
		return nil, m.ReadError
	}
	sub, ok := m.Submissions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return sub, nil
}

func (m *MockSubmissionRepository) List(ctx context.Context) ([]*models.SongSubmission, error) {
	if m.ReadError != nil {
		return nil, m.ReadError
	}
	return m.sorted(""), nil
}

func (m *MockSubmissionRepository) ListByStatus(ctx context.Context, status string) ([]*models.SongSubmission, error) {
	if m.ReadError != nil {
		return nil, m.ReadError
	}
	return m.sorted(status), nil
}

func (m *MockSubmissionRepository) Approve(ctx context.Context, id int64, adminNotes, reviewedBy string) (*models.Song, error) {
	if m.WriteError != nil {
		return nil, m.WriteError
	}
	sub, ok := m.Submissions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if sub.Status != models.SubmissionPending {
		return nil, repository.ErrAlreadyReviewed
	}

	song, err := m.Songs.Create(ctx, &models.SongInput{
		Title:          sub.Title,
		Artist:         sub.Artist,
		Album:          sub.Album,
		Genre:          sub.Genre,
		Year:           sub.Year,
		Cover:          sub.Cover,
		Lyrics:         sub.Lyrics,
		SubmitterName:  sub.SubmitterName,
		SubmitterEmail: sub.SubmitterEmail,
	})
	if err != nil {
		// Rolled back: the submission stays pending
		return nil, err
	}

	now := time.Now()
	sub.Status = models.SubmissionApproved
	sub.AdminNotes = adminNotes
	sub.ReviewedBy = reviewedBy
	sub.ReviewedAt = &now
	return song, nil
}

func (m *MockSubmissionRepository) Reject(ctx context.Context, id int64, reason, reviewedBy string) (*models.SongSubmission, error) {
	if m.WriteError != nil {
		return nil, m.WriteError
	}
	sub, ok := m.Submissions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if sub.Status != models.SubmissionPending {
		return nil, repository.ErrAlreadyReviewed
	}
	now := time.Now()
	sub.Status = models.SubmissionRejected
	sub.AdminNotes = reason
	sub.ReviewedBy = reviewedBy
	sub.ReviewedAt = &now
	return sub, nil
}

func (m *MockSubmissionRepository) Count(ctx context.Context) (int, error) {
	if m.ReadError != nil {
		return 0, m.ReadError
	}
	return len(m.Submissions), nil
}

func (m *MockSubmissionRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	if m.ReadError != nil {
		return 0, m.ReadError
	}
	count := 0
	for _, sub := range m.Submissions {
		if sub.Status == status {
			count++
		}
	}
	return count, nil
}

func (m *MockSubmissionRepository) sorted(status string) []*models.SongSubmission {
	var out []*models.SongSubmission
	for _, sub := range m.Submissions {
		if status == "" || sub.Status == status {
			out = append(out, sub)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

// MockAdminUserRepository is a mock implementation of AdminUserRepository
type MockAdminUserRepository struct {
	Users      map[string]*models.AdminUser // keyed by lowercase email
	NextID     int64
	ReadError  error
	WriteError error
}

func NewMockAdminUserRepository() *MockAdminUserRepository {
	return &MockAdminUserRepository{
		Users:  make(map[string]*models.AdminUser),
		NextID: 1,
	}
}

func (m *MockAdminUserRepository) Create(ctx context.Context, user *models.AdminUser) (*models.AdminUser, error) {
	if m.WriteError != nil {
		return nil, m.WriteError
	}
	now := time.Now()
	created := *user
	created.ID = m.NextID
	created.CreatedAt = now
	created.UpdatedAt = now
	m.NextID++
	m.Users[strings.ToLower(user.Email)] = &created
	return &created, nil
}

func (m *MockAdminUserRepository) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	if m.ReadError != nil {
		return nil, m.ReadError
	}
	user, ok := m.Users[strings.ToLower(email)]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (m *MockAdminUserRepository) List(ctx context.Context) ([]*models.AdminUser, error) {
	if m.ReadError != nil {
		return nil, m.ReadError
	}
	var users []*models.AdminUser
	for _, user := range m.Users {
		listed := *user
		listed.PasswordHash = ""
		users = append(users, &listed)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID > users[j].ID })
	return users, nil
}

func (m *MockAdminUserRepository) UpsertByEmail(ctx context.Context, user *models.AdminUser) error {
	if m.WriteError != nil {
		return m.WriteError
	}
	key := strings.ToLower(user.Email)
	if existing, ok := m.Users[key]; ok {
		existing.Name = user.Name
		existing.Role = user.Role
		existing.PasswordHash = user.PasswordHash
		existing.UpdatedAt = time.Now()
		return nil
	}
	_, err := m.Create(ctx, user)
	return err
}

func (m *MockAdminUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.ReadError != nil {
		return false, m.ReadError
	}
	_, ok := m.Users[strings.ToLower(email)]
	return ok, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	Comments   map[int64]*models.SongComment
	NextID     int64
	ReadError  error
	WriteError error
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make(map[int64]*models.SongComment),
		NextID:   1,
	}
}

func (m *MockCommentRepository) Create(ctx context.Context, songID int64, in *models.CommentInput) (*models.SongComment, error) {
	if m.WriteError != nil {
		return nil, m.WriteError
	}
	now := time.Now()
	comment := &models.SongComment{
		ID:             m.NextID,
		SongID:         songID,
		UserName:       in.UserName,
		UserEmail:      in.UserEmail,
		CommentText:    in.CommentText,
		SelectedLyrics: in.SelectedLyrics,
		LyricsStartPos: in.LyricsStartPos,
		LyricsEndPos:   in.LyricsEndPos,
		CommentType:    in.CommentType,
		Rating:         in.Rating,
		IsApproved:     true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	m.NextID++
	m.Comments[comment.ID] = comment
	return comment, nil
}

func (m *MockCommentRepository) ListBySong(ctx context.Context, songID int64) ([]*models.SongComment, error) {
	if m.ReadError != nil {
		return nil, m.ReadError
	}
	var out []*models.SongComment
	for _, comment := range m.Comments {
		if comment.SongID == songID && comment.IsApproved {
			out = append(out, comment)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *MockCommentRepository) ListAll(ctx context.Context) ([]*models.SongComment, error) {
	if m.ReadError != nil {
		return nil, m.ReadError
	}
	var out []*models.SongComment
	for _, comment := range m.Comments {
		out = append(out, comment)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *MockCommentRepository) SetApproved(ctx context.Context, id int64, approved bool) error {
	if m.WriteError != nil {
		return m.WriteError
	}
	comment, ok := m.Comments[id]
	if !ok {
		return repository.ErrNotFound
	}
	comment.IsApproved = approved
	comment.UpdatedAt = time.Now()
	return nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int, error) {
	if m.ReadError != nil {
		return 0, m.ReadError
	}
	return len(m.Comments), nil
}

// MockContactRepository is a mock implementation of ContactRepository
type MockContactRepository struct {
	Messages   []*models.ContactMessage
	WriteError error
}

func NewMockContactRepository() *MockContactRepository {
	return &MockContactRepository{}
}

func (m *MockContactRepository) Create(ctx context.Context, in *models.ContactInput) (*models.ContactMessage, error) {
	if m.WriteError != nil {
		return nil, m.WriteError
	}
	msg := &models.ContactMessage{
		ID:        int64(len(m.Messages) + 1),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: time.Now(),
	}
	m.Messages = append(m.Messages, msg)
	return msg, nil
}
