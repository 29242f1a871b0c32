// Package service contains the business logic for the Fyyur booking site.
// Services validate inputs, shape rows into the view models the pages render,
// and run every write inside a transaction.
// No SQL lives here: services depend on repo interfaces.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pkordes/fyyur/internal/domain"
	"github.com/pkordes/fyyur/internal/repo"
)

// RecentLimit is the number of recently listed venues and artists shown on the home page.
const RecentLimit = 10

// VenueService implements the venue listing, search, detail and write operations.
type VenueService struct {
	repos repo.Repos
	tx    repo.TxManager
	now   func() time.Time
}

// NewVenueService constructs a VenueService. Reads go through repos; writes run
// in transactions started by tx. now supplies the reference time for the
// upcoming/past split; nil means time.Now.
func NewVenueService(repos repo.Repos, tx repo.TxManager, now func() time.Time) *VenueService {
	if now == nil {
		now = time.Now
	}
	return &VenueService{repos: repos, tx: tx, now: now}
}

// ListByArea returns every venue grouped by exact (city, state), each with its
// number of upcoming shows. Always returns a non-nil slice.
func (s *VenueService) ListByArea(ctx context.Context) ([]domain.Area, error) {
	now := s.now()

	venues, err := s.repos.Venues.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.VenueService.ListByArea: %w", err)
	}
	counts, err := s.repos.Shows.CountUpcomingByVenue(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("service.VenueService.ListByArea: %w", err)
	}
	return groupByArea(venues, counts), nil
}

// ListRecent returns the most recently listed venues, newest first.
func (s *VenueService) ListRecent(ctx context.Context) ([]domain.Venue, error) {
	venues, err := s.repos.Venues.ListRecent(ctx, RecentLimit)
	if err != nil {
		return nil, fmt.Errorf("service.VenueService.ListRecent: %w", err)
	}
	return venues, nil
}

// Search returns venues whose name contains term, ignoring case.
// An empty term matches every venue.
func (s *VenueService) Search(ctx context.Context, term string) (domain.SearchResult, error) {
	now := s.now()

	venues, err := s.repos.Venues.Search(ctx, normalizeTerm(term))
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("service.VenueService.Search: %w", err)
	}
	counts, err := s.repos.Shows.CountUpcomingByVenue(ctx, now)
	if err != nil {
		return domain.SearchResult{}, fmt.Errorf("service.VenueService.Search: %w", err)
	}
	return searchResult(venues, func(v domain.Venue) domain.SearchHit {
		return domain.SearchHit{ID: v.ID, Name: v.Name, NumUpcomingShows: counts[v.ID]}
	}), nil
}

// Get returns a single venue by ID.
// Returns domain.ErrNotFound if no venue with that ID exists.
func (s *VenueService) Get(ctx context.Context, id int64) (domain.Venue, error) {
	v, err := s.repos.Venues.GetByID(ctx, id)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("service.VenueService.Get: %w", err)
	}
	return v, nil
}

// GetDetail returns the venue with its shows split into past and upcoming
// relative to a single reference time captured at the start of the call.
// Returns domain.ErrNotFound if no venue with that ID exists.
func (s *VenueService) GetDetail(ctx context.Context, id int64) (domain.VenueDetail, error) {
	now := s.now()

	v, err := s.repos.Venues.GetByID(ctx, id)
	if err != nil {
		return domain.VenueDetail{}, fmt.Errorf("service.VenueService.GetDetail: %w", err)
	}
	shows, err := s.repos.Shows.ListByVenue(ctx, id)
	if err != nil {
		return domain.VenueDetail{}, fmt.Errorf("service.VenueService.GetDetail: %w", err)
	}

	past, upcoming := partitionShows(shows, now)
	return domain.VenueDetail{
		Venue:              v,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

// Create validates and persists a new venue.
// Returns an error matching domain.ErrValidation if input violates the form rules.
func (s *VenueService) Create(ctx context.Context, in domain.VenueInput) (domain.Venue, error) {
	in = normalizeVenue(in)
	if err := validateVenue(in); err != nil {
		return domain.Venue{}, fmt.Errorf("service.VenueService.Create: %w", err)
	}

	var v domain.Venue
	in.Apply(&v)

	var created domain.Venue
	err := s.tx.WithinTx(ctx, func(r repo.Repos) error {
		var err error
		created, err = r.Venues.Create(ctx, v)
		return err
	})
	if err != nil {
		return domain.Venue{}, fmt.Errorf("service.VenueService.Create: %w", err)
	}
	return created, nil
}

// Update validates input and overwrites the venue's mutable fields.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// venue does not exist.
func (s *VenueService) Update(ctx context.Context, id int64, in domain.VenueInput) (domain.Venue, error) {
	in = normalizeVenue(in)
	if err := validateVenue(in); err != nil {
		return domain.Venue{}, fmt.Errorf("service.VenueService.Update: %w", err)
	}

	var updated domain.Venue
	err := s.tx.WithinTx(ctx, func(r repo.Repos) error {
		v, err := r.Venues.GetByID(ctx, id)
		if err != nil {
			return err
		}
		in.Apply(&v)
		updated, err = r.Venues.Update(ctx, v)
		return err
	})
	if err != nil {
		return domain.Venue{}, fmt.Errorf("service.VenueService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a venue and its shows. Deleting an ID that does not exist
// is a no-op and returns nil.
func (s *VenueService) Delete(ctx context.Context, id int64) error {
	err := s.tx.WithinTx(ctx, func(r repo.Repos) error {
		return r.Venues.Delete(ctx, id)
	})
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("service.VenueService.Delete: %w", err)
	}
	return nil
}
