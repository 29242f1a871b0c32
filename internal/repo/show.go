package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/fyyur/internal/domain"
)

// ShowRepo defines the persistence operations for Shows.
// Every listing joins both sides of the booking so callers never issue
// follow-up lookups per row.
type ShowRepo interface {
	// Create inserts a new show. A missing artist or venue surfaces as a
	// domain.FieldErrors naming the offending field.
	Create(ctx context.Context, show domain.Show) (domain.Show, error)

	// List returns every show ordered by start_time, id.
	List(ctx context.Context) ([]domain.ShowListing, error)

	// ListByVenue returns the shows hosted by venueID ordered by start_time, id.
	ListByVenue(ctx context.Context, venueID int64) ([]domain.ShowListing, error)

	// ListByArtist returns the shows played by artistID ordered by start_time, id.
	ListByArtist(ctx context.Context, artistID int64) ([]domain.ShowListing, error)

	// CountUpcomingByVenue returns, per venue id, the number of shows starting
	// strictly after now. Venues without upcoming shows are absent from the map.
	CountUpcomingByVenue(ctx context.Context, now time.Time) (map[int64]int, error)

	// CountUpcomingByArtist is CountUpcomingByVenue keyed by artist id.
	CountUpcomingByArtist(ctx context.Context, now time.Time) (map[int64]int, error)
}

type pgShowRepo struct {
	db db
}

// NewShowRepo constructs a ShowRepo backed by the provided db connection.
func NewShowRepo(db db) ShowRepo {
	return &pgShowRepo{db: db}
}

// showConstraintFields maps foreign key names to the form field they guard.
var showConstraintFields = map[string]string{
	"shows_artist_id_fkey": "artist_id",
	"shows_venue_id_fkey":  "venue_id",
}

func (r *pgShowRepo) Create(ctx context.Context, show domain.Show) (domain.Show, error) {
	const q = `
		INSERT INTO shows (artist_id, venue_id, start_time)
		VALUES (@artist_id, @venue_id, @start_time)
		RETURNING id, artist_id, venue_id, start_time, created_at`

	args := pgx.NamedArgs{
		"artist_id":  show.ArtistID,
		"venue_id":   show.VenueID,
		"start_time": show.StartTime,
	}

	var s domain.Show
	err := r.db.QueryRow(ctx, q, args).Scan(&s.ID, &s.ArtistID, &s.VenueID, &s.StartTime, &s.CreatedAt)
	if err != nil {
		if constraint, ok := foreignKeyConstraint(err); ok {
			fe := domain.FieldErrors{}
			if field, known := showConstraintFields[constraint]; known {
				fe.Add(field, "Does not reference an existing record.")
			} else {
				fe.Add("show", "References a missing artist or venue.")
			}
			return domain.Show{}, fmt.Errorf("repo.ShowRepo.Create: %w", fe)
		}
		return domain.Show{}, fmt.Errorf("repo.ShowRepo.Create: %w", err)
	}
	return s, nil
}

const showListingSelect = `
	SELECT s.id, v.id, v.name, v.image_link, a.id, a.name, a.image_link, s.start_time
	FROM shows s
	JOIN venues  v ON v.id = s.venue_id
	JOIN artists a ON a.id = s.artist_id`

func (r *pgShowRepo) List(ctx context.Context) ([]domain.ShowListing, error) {
	q := showListingSelect + ` ORDER BY s.start_time, s.id`

	shows, err := r.queryListings(ctx, q, pgx.NamedArgs{})
	if err != nil {
		return nil, fmt.Errorf("repo.ShowRepo.List: %w", err)
	}
	return shows, nil
}

// ListByVenue filters on the venue_id foreign key directly.
func (r *pgShowRepo) ListByVenue(ctx context.Context, venueID int64) ([]domain.ShowListing, error) {
	q := showListingSelect + ` WHERE s.venue_id = @venue_id ORDER BY s.start_time, s.id`

	shows, err := r.queryListings(ctx, q, pgx.NamedArgs{"venue_id": venueID})
	if err != nil {
		return nil, fmt.Errorf("repo.ShowRepo.ListByVenue: %w", err)
	}
	return shows, nil
}

func (r *pgShowRepo) ListByArtist(ctx context.Context, artistID int64) ([]domain.ShowListing, error) {
	q := showListingSelect + ` WHERE s.artist_id = @artist_id ORDER BY s.start_time, s.id`

	shows, err := r.queryListings(ctx, q, pgx.NamedArgs{"artist_id": artistID})
	if err != nil {
		return nil, fmt.Errorf("repo.ShowRepo.ListByArtist: %w", err)
	}
	return shows, nil
}

func (r *pgShowRepo) CountUpcomingByVenue(ctx context.Context, now time.Time) (map[int64]int, error) {
	const q = `
		SELECT venue_id, count(*)
		FROM shows
		WHERE start_time > @now
		GROUP BY venue_id`

	counts, err := r.queryCounts(ctx, q, now)
	if err != nil {
		return nil, fmt.Errorf("repo.ShowRepo.CountUpcomingByVenue: %w", err)
	}
	return counts, nil
}

func (r *pgShowRepo) CountUpcomingByArtist(ctx context.Context, now time.Time) (map[int64]int, error) {
	const q = `
		SELECT artist_id, count(*)
		FROM shows
		WHERE start_time > @now
		GROUP BY artist_id`

	counts, err := r.queryCounts(ctx, q, now)
	if err != nil {
		return nil, fmt.Errorf("repo.ShowRepo.CountUpcomingByArtist: %w", err)
	}
	return counts, nil
}

func (r *pgShowRepo) queryListings(ctx context.Context, q string, args pgx.NamedArgs) ([]domain.ShowListing, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanShowListing)
}

func (r *pgShowRepo) queryCounts(ctx context.Context, q string, now time.Time) (map[int64]int, error) {
	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"now": now})
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var (
			id    int64
			count int
		)
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		counts[id] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return counts, nil
}

func scanShowListing(s scanner) (domain.ShowListing, error) {
	var l domain.ShowListing
	err := s.Scan(
		&l.ShowID, &l.VenueID, &l.VenueName, &l.VenueImageLink,
		&l.ArtistID, &l.ArtistName, &l.ArtistImageLink, &l.StartTime,
	)
	return l, err
}
