package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/fyyur/internal/domain"
)

// VenueRepo defines the persistence operations for Venues.
// The service layer depends on this interface, not the concrete Postgres implementation,
// which allows the service to be unit-tested with a mock.
type VenueRepo interface {
	// Create inserts a new venue and returns the persisted record (with DB-generated
	// id, created_at, and updated_at populated).
	Create(ctx context.Context, venue domain.Venue) (domain.Venue, error)

	// GetByID retrieves a single venue by primary key.
	// Returns domain.ErrNotFound if no venue with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Venue, error)

	// List returns all venues ordered by city, state, name, id.
	List(ctx context.Context) ([]domain.Venue, error)

	// ListRecent returns the most recently created venues, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.Venue, error)

	// Search returns venues whose name contains term, ignoring case, ordered by name.
	Search(ctx context.Context, term string) ([]domain.Venue, error)

	// Update overwrites the mutable fields of an existing venue and returns the
	// updated record. Returns domain.ErrNotFound if no venue with that ID exists.
	Update(ctx context.Context, venue domain.Venue) (domain.Venue, error)

	// Delete removes a venue by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
}

// pgVenueRepo is the Postgres implementation of VenueRepo.
type pgVenueRepo struct {
	db db
}

// NewVenueRepo constructs a VenueRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewVenueRepo(db db) VenueRepo {
	return &pgVenueRepo{db: db}
}

const venueColumns = `
	id, name, city, state, address, phone, image_link, facebook_link,
	website, genres, seeking_talent, seeking_description, created_at, updated_at`

// Create inserts a new venue row and returns the full persisted record.
func (r *pgVenueRepo) Create(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	q := `
		INSERT INTO venues (name, city, state, address, phone, image_link, facebook_link,
		                    website, genres, seeking_talent, seeking_description)
		VALUES (@name, @city, @state, @address, @phone, @image_link, @facebook_link,
		        @website, @genres, @seeking_talent, @seeking_description)
		RETURNING` + venueColumns

	row := r.db.QueryRow(ctx, q, venueArgs(venue))
	result, err := scanVenue(row)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("repo.VenueRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a venue by primary key.
func (r *pgVenueRepo) GetByID(ctx context.Context, id int64) (domain.Venue, error) {
	q := `SELECT` + venueColumns + ` FROM venues WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanVenue(row)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("repo.VenueRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns every venue. The (city, state) ordering is a convenience for
// readers of the table; grouping never relies on it.
func (r *pgVenueRepo) List(ctx context.Context) ([]domain.Venue, error) {
	q := `SELECT` + venueColumns + ` FROM venues ORDER BY city, state, name, id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.VenueRepo.List: %w", err)
	}
	venues, err := collect(rows, scanVenue)
	if err != nil {
		return nil, fmt.Errorf("repo.VenueRepo.List: %w", err)
	}
	return venues, nil
}

// ListRecent returns up to limit venues ordered by created_at descending.
func (r *pgVenueRepo) ListRecent(ctx context.Context, limit int) ([]domain.Venue, error) {
	q := `SELECT` + venueColumns + ` FROM venues ORDER BY created_at DESC, id DESC LIMIT @limit`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("repo.VenueRepo.ListRecent: %w", err)
	}
	venues, err := collect(rows, scanVenue)
	if err != nil {
		return nil, fmt.Errorf("repo.VenueRepo.ListRecent: %w", err)
	}
	return venues, nil
}

// Search runs a case-insensitive substring match on name.
func (r *pgVenueRepo) Search(ctx context.Context, term string) ([]domain.Venue, error) {
	q := `SELECT` + venueColumns + `
		FROM venues
		WHERE name ILIKE @pattern ESCAPE '\'
		ORDER BY name, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"pattern": containsPattern(term)})
	if err != nil {
		return nil, fmt.Errorf("repo.VenueRepo.Search: %w", err)
	}
	venues, err := collect(rows, scanVenue)
	if err != nil {
		return nil, fmt.Errorf("repo.VenueRepo.Search: %w", err)
	}
	return venues, nil
}

// Update overwrites the mutable fields of a venue and returns the updated record.
func (r *pgVenueRepo) Update(ctx context.Context, venue domain.Venue) (domain.Venue, error) {
	q := `
		UPDATE venues
		SET name                = @name,
		    city                = @city,
		    state               = @state,
		    address             = @address,
		    phone               = @phone,
		    image_link          = @image_link,
		    facebook_link       = @facebook_link,
		    website             = @website,
		    genres              = @genres,
		    seeking_talent      = @seeking_talent,
		    seeking_description = @seeking_description,
		    updated_at          = now()
		WHERE id = @id
		RETURNING` + venueColumns

	args := venueArgs(venue)
	args["id"] = venue.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanVenue(row)
	if err != nil {
		return domain.Venue{}, fmt.Errorf("repo.VenueRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a venue by primary key. Its shows go with it (ON DELETE CASCADE).
func (r *pgVenueRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM venues WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.VenueRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.VenueRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func venueArgs(v domain.Venue) pgx.NamedArgs {
	return pgx.NamedArgs{
		"name":                v.Name,
		"city":                v.City,
		"state":               v.State,
		"address":             v.Address,
		"phone":               v.Phone,
		"image_link":          v.ImageLink,
		"facebook_link":       v.FacebookLink,
		"website":             v.Website,
		"genres":              v.Genres,
		"seeking_talent":      v.SeekingTalent,
		"seeking_description": v.SeekingDescription,
	}
}

// scanVenue maps a single database row into a domain.Venue.
func scanVenue(s scanner) (domain.Venue, error) {
	var v domain.Venue
	err := s.Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.ImageLink,
		&v.FacebookLink, &v.Website, &v.Genres, &v.SeekingTalent,
		&v.SeekingDescription, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Venue{}, domain.ErrNotFound
		}
		return domain.Venue{}, err
	}
	return v, nil
}
