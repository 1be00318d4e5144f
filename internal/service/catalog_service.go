package service

import (
	"context"
	"errors"
	"strings"

	"github.com/barelyrics/barelyrics-api/internal/config"
	"github.com/barelyrics/barelyrics-api/internal/models"
	"github.com/barelyrics/barelyrics-api/internal/repository"
	"github.com/barelyrics/barelyrics-api/internal/validation"
	"github.com/rs/zerolog"
)

// similarLimit caps the number of similar songs returned
const similarLimit = 5

// catalogService implements CatalogService
type catalogService struct {
	songs           repository.SongRepository
	fixtureFallback bool
	log             zerolog.Logger
}

func newCatalogService(songs repository.SongRepository, cfg *config.Config, log zerolog.Logger) CatalogService {
	return &catalogService{
		songs:           songs,
		fixtureFallback: cfg.Catalog.FixtureFallback,
		log:             log.With().Str("component", "catalog").Logger(),
	}
}

// ListAll returns all songs, newest first. When the store is unreachable
// and fixture fallback is enabled, the demo catalog is served instead and
// the degradation is logged.
func (s *catalogService) ListAll(ctx context.Context) ([]*models.Song, error) {
	songs, err := s.songs.List(ctx)
	if err != nil {
		return s.degrade(err, "list")
	}
	return songs, nil
}

// Search matches the query case-insensitively against title, artist and
// album.
func (s *catalogService) Search(ctx context.Context, query string) ([]*models.Song, error) {
	songs, err := s.songs.Search(ctx, query)
	if err != nil {
		fixtures, ferr := s.degrade(err, "search")
		if ferr != nil {
			return nil, ferr
		}
		return filterSongs(fixtures, func(song *models.Song) bool {
			q := strings.ToLower(query)
			return strings.Contains(strings.ToLower(song.Title), q) ||
				strings.Contains(strings.ToLower(song.Artist), q) ||
				strings.Contains(strings.ToLower(song.Album), q)
		}), nil
	}
	return songs, nil
}

// GetByID returns a single song. ErrNotFound is a legitimate miss, not a
// store failure, so it never triggers the fixture fallback.
func (s *catalogService) GetByID(ctx context.Context, id int64) (*models.Song, error) {
	song, err := s.songs.GetByID(ctx, id)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		fixtures, ferr := s.degrade(err, "get_by_id")
		if ferr != nil {
			return nil, ferr
		}
		for _, fixture := range fixtures {
			if fixture.ID == id {
				return fixture, nil
			}
		}
		return nil, repository.ErrNotFound
	}
	return song, err
}

// GetByArtist returns all songs by an artist, case-insensitively
func (s *catalogService) GetByArtist(ctx context.Context, artist string) ([]*models.Song, error) {
	songs, err := s.songs.GetByArtist(ctx, artist)
	if err != nil {
		fixtures, ferr := s.degrade(err, "get_by_artist")
		if ferr != nil {
			return nil, ferr
		}
		return filterSongs(fixtures, func(song *models.Song) bool {
			return strings.EqualFold(song.Artist, artist)
		}), nil
	}
	return songs, nil
}

// Similar returns up to 5 other songs sharing the artist or, when genre is
// given, the genre. A filter, not a ranking: ties break on creation order.
func (s *catalogService) Similar(ctx context.Context, currentID int64, artist, genre string) ([]*models.Song, error) {
	songs, err := s.songs.Similar(ctx, currentID, artist, genre, similarLimit)
	if err != nil {
		fixtures, ferr := s.degrade(err, "similar")
		if ferr != nil {
			return nil, ferr
		}
		matched := filterSongs(fixtures, func(song *models.Song) bool {
			if song.ID == currentID {
				return false
			}
			if strings.EqualFold(song.Artist, artist) {
				return true
			}
			return genre != "" && strings.EqualFold(song.Genre, genre)
		})
		if len(matched) > similarLimit {
			matched = matched[:similarLimit]
		}
		return matched, nil
	}
	return songs, nil
}

// ListArtists aggregates distinct artists with song counts
func (s *catalogService) ListArtists(ctx context.Context) ([]*models.ArtistSummary, error) {
	artists, err := s.songs.ListArtists(ctx)
	if err != nil {
		fixtures, ferr := s.degrade(err, "list_artists")
		if ferr != nil {
			return nil, ferr
		}
		counts := make(map[string]int)
		var order []string
		for _, song := range fixtures {
			if counts[song.Artist] == 0 {
				order = append(order, song.Artist)
			}
			counts[song.Artist]++
		}
		summaries := make([]*models.ArtistSummary, 0, len(order))
		for _, name := range order {
			summaries = append(summaries, &models.ArtistSummary{Name: name, SongCount: counts[name]})
		}
		return summaries, nil
	}
	return artists, nil
}

// CreateDirect validates and persists a song, bypassing the submission
// queue. Writes never degrade to fixtures.
func (s *catalogService) CreateDirect(ctx context.Context, in *models.SongInput) (*models.Song, error) {
	if errs := validation.ValidateAdminSong(in); len(errs) > 0 {
		return nil, &ValidationFailed{Errors: errs}
	}
	song, err := s.songs.Create(ctx, in)
	if err != nil {
		s.log.Error().Err(err).Str("title", in.Title).Msg("Failed to create song")
		return nil, err
	}
	s.log.Info().Int64("song_id", song.ID).Str("title", song.Title).Msg("Song created directly")
	return song, nil
}

// Update applies a partial edit to a song
func (s *catalogService) Update(ctx context.Context, id int64, upd *models.SongUpdate) (*models.Song, error) {
	if errs := validateUpdate(upd); len(errs) > 0 {
		return nil, &ValidationFailed{Errors: errs}
	}
	song, err := s.songs.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("song_id", id).Msg("Song updated")
	return song, nil
}

// Delete removes a song from the catalog
func (s *catalogService) Delete(ctx context.Context, id int64) error {
	if err := s.songs.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("song_id", id).Msg("Song deleted")
	return nil
}

// Count returns the catalog size
func (s *catalogService) Count(ctx context.Context) (int, error) {
	return s.songs.Count(ctx)
}

// degrade returns the fixture catalog when fallback is enabled, otherwise
// propagates the store error. Every fallback is logged; serving demo data
// silently is exactly the failure mode this flag exists to avoid.
func (s *catalogService) degrade(err error, op string) ([]*models.Song, error) {
	if !s.fixtureFallback {
		return nil, err
	}
	s.log.Warn().Err(err).Str("op", op).Msg("Store unavailable, serving fixture catalog")
	return models.FixtureSongs(), nil
}

func filterSongs(songs []*models.Song, keep func(*models.Song) bool) []*models.Song {
	var out []*models.Song
	for _, song := range songs {
		if keep(song) {
			out = append(out, song)
		}
	}
	return out
}

// validateUpdate checks the fields present in a partial edit against the
// same bounds as a full song payload.
func validateUpdate(upd *models.SongUpdate) []validation.ValidationError {
	probe := models.SongInput{
		Title:  "placeholder",
		Artist: "placeholder",
		Lyrics: "placeholder lyrics text",
	}
	if upd.Title != nil {
		probe.Title = *upd.Title
	}
	if upd.Artist != nil {
		probe.Artist = *upd.Artist
	}
	if upd.Album != nil {
		probe.Album = *upd.Album
	}
	if upd.Genre != nil {
		probe.Genre = *upd.Genre
	}
	if upd.Year != nil {
		probe.Year = upd.Year
	}
	if upd.Cover != nil {
		probe.Cover = *upd.Cover
	}
	if upd.Lyrics != nil {
		probe.Lyrics = *upd.Lyrics
	}
	return validation.ValidateAdminSong(&probe)
}
