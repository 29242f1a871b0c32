package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pkordes/fyyur/internal/domain"
	"github.com/pkordes/fyyur/internal/repo"
)

// ArtistService implements the artist listing, search, detail and write operations.
type ArtistService struct {
	repos repo.Repos
	tx    repo.TxManager
	now   func() time.Time
}

// NewArtistService constructs an ArtistService. See NewVenueService for the arguments.
func NewArtistService(repos repo.Repos, tx repo.TxManager, now func() time.Time) *ArtistService {
	if now == nil {
		now = time.Now
	}
	return &ArtistService{repos: repos, tx: tx, now: now}
}

// List returns all artists ordered by name.
func (s *ArtistService) List(ctx context.Context) ([]domain.Artist, error) {
	artists, err := s.repos.Artists.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ArtistService.List: %w", err)
	}
	return artists, nil
}

// ListRecent returns the most recently listed artists, newest first.
func (s *ArtistService) ListRecent(ctx context.Context) ([]domain.Artist, error) {
	artists, err := s.repos.Artists.ListRecent(ctx, RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("service.ArtistService.ListRecent: %w", err)
	}
	return artists, nil
}

// Search returns artists whose name contains term, ignoring case.
func (s *ArtistService) Search(ctx context.Context, term string) (domain.SearchResult, error) {
	now := s.now()

	artists, err := s.repos.Artists.Search(ctx, normalizeTerm(term))
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("service.ArtistService.Search: %w", err)
	}
	counts, err := s.repos.Shows.CountUpcomingByArtist(ctx, now)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("service.ArtistService.Search: %w", err)
	}
	return searchResult(artists, func(a domain.Artist) domain.SearchHit {
		return domain.SearchHit{ID: a.ID, Name: a.Name, NumUpcomingShows: counts[a.ID]}
	}), nil
}

// Get returns a single artist by ID.
func (s *ArtistService) Get(ctx context.Context, id int64) (domain.Artist, error) {
	a, err := s.repos.Artists.GetByID(ctx, id)
	if err != nil {
		return domain.Artist{}, fmt.Errorf("service.ArtistService.Get: %w", err)
	}
	return a, nil
}

// GetDetail returns the artist with its shows split into past and upcoming.
// Returns domain.ErrNotFound if no artist with that ID exists.
func (s *ArtistService) GetDetail(ctx context.Context, id int64) (domain.ArtistDetail, error) {
	now := s.now()

	a, err := s.repos.Artists.GetByID(ctx, id)
	if err != nil {
		return domain.ArtistDetail{}, fmt.Errorf("service.ArtistService.GetDetail: %w", err)
	}
	shows, err := s.repos.Shows.ListByArtist(ctx, id)
	if err != nil {
		return domain.ArtistDetail{}, fmt.Errorf("service.ArtistService.GetDetail: %w", err)
	}

	past, upcoming := partitionShows(shows, now)
	return domain.ArtistDetail{
		Artist:             a,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

// Create validates and persists a new artist.
func (s *ArtistService) Create(ctx context.Context, in domain.ArtistInput) (domain.Artist, error) {
	in = normalizeArtist(in)
	if err := validateArtist(in); err != nil {
		return domain.Artist{}, fmt.Errorf("service.ArtistService.Create: %w", err)
	}

	var a domain.Artist
	in.Apply(&a)

	var created domain.Artist
	err := s.tx.WithinTx(ctx, func(r repo.Repos) error {
		var err error
		created, err = r.Artists.Create(ctx, a)
		return err
	})
	if err != nil {
		return domain.Artist{}, fmt.Errorf("service.ArtistService.Create: %w", err)
	}
	return created, nil
}

// Update validates input and overwrites the artist's mutable fields.
func (s *ArtistService) Update(ctx context.Context, id int64, in domain.ArtistInput) (domain.Artist, error) {
	in = normalizeArtist(in)
	if err := validateArtist(in); err != nil {
		return domain.Artist{}, fmt.Errorf("service.ArtistService.Update: %w", err)
	}

	var updated domain.Artist
	err := s.tx.WithinTx(ctx, func(r repo.Repos) error {
		a, err := r.Artists.GetByID(ctx, id)
		if err != nil {
			return err
		}
		in.Apply(&a)
		updated, err = r.Artists.Update(ctx, a)
		return err
	})
	if err != nil {
		return domain.Artist{}, fmt.Errorf("service.ArtistService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes an artist and its shows. A missing ID is a no-op.
func (s *ArtistService) Delete(ctx context.Context, id int64) error {
	err := s.tx.WithinTx(ctx, func(r repo.Repos) error {
		return r.Artists.Delete(ctx, id)
	})
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("service.ArtistService.Delete: %w", err)
	}
	return nil
}

// normalizeTerm trims surrounding whitespace from a search term.
func normalizeTerm(term string) string {
	return strings.TrimSpace(term)
}
