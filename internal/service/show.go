package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pkordes/fyyur/internal/domain"
	"github.com/pkordes/fyyur/internal/repo"
)

// ShowService implements the show listing and booking operations.
type ShowService struct {
	repos repo.Repos
	tx    repo.TxManager
}

// NewShowService constructs a ShowService.
func NewShowService(repos repo.Repos, tx repo.TxManager) *ShowService {
	return &ShowService{repos: repos, tx: tx}
}

// List returns every show joined with its venue and artist, earliest first.
func (s *ShowService) List(ctx context.Context) ([]domain.ShowListing, error) {
	shows, err := s.repos.Shows.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ShowService.List: %w", err)
	}
	return shows, nil
}

// Create books an artist at a venue. Both must exist; a missing side is
// reported as a field validation error rather than NotFound because the IDs
// come from the submitted form.
func (s *ShowService) Create(ctx context.Context, in domain.ShowInput) (domain.Show, error) {
	if err := validateShow(in); err != nil {
		return domain.Show{}, fmt.Errorf("service.ShowService.Create: %w", err)
	}

	var created domain.Show
	err := s.tx.WithinTx(ctx, func(r repo.Repos) error {
		fe := domain.FieldErrors{}
		if err := exists(ctx, r.Artists.GetByID, in.ArtistID); err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return err
			}
			fe.Add("artist_id", "No artist with this ID.")
		}
		if err := exists(ctx, r.Venues.GetByID, in.VenueID); err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return err
			}
			fe.Add("venue_id", "No venue with this ID.")
		}
		if err := fe.Err(); err != nil {
			return err
		}

		var err error
		created, err = r.Shows.Create(ctx, domain.Show{
			ArtistID:  in.ArtistID,
			VenueID:   in.VenueID,
			StartTime: in.StartTime,
		})
		return err
	})
	if err != nil {
		return domain.Show{}, fmt.Errorf("service.ShowService.Create: %w", err)
	}
	return created, nil
}

func exists[T any](ctx context.Context, get func(context.Context, int64) (T, error), id int64) error {
	_, err := get(ctx, id)
	return err
}
