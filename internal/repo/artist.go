package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/fyyur/internal/domain"
)

// ArtistRepo defines the persistence operations for Artists.
type ArtistRepo interface {
	// Create inserts a new artist and returns the persisted record.
	Create(ctx context.Context, artist domain.Artist) (domain.Artist, error)

	// GetByID retrieves a single artist by primary key.
	// Returns domain.ErrNotFound if no artist with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Artist, error)

	// List returns all artists ordered by name, id.
	List(ctx context.Context) ([]domain.Artist, error)

	// ListRecent returns the most recently created artists, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.Artist, error)

	// Search returns artists whose name contains term, ignoring case, ordered by name.
	Search(ctx context.Context, term string) ([]domain.Artist, error)

	// Update overwrites the mutable fields of an existing artist.
	// Returns domain.ErrNotFound if no artist with that ID exists.
	Update(ctx context.Context, artist domain.Artist) (domain.Artist, error)

	// Delete removes an artist by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
}

type pgArtistRepo struct {
	db db
}

// NewArtistRepo constructs an ArtistRepo backed by the provided db connection.
func NewArtistRepo(db db) ArtistRepo {
	return &pgArtistRepo{db: db}
}

const artistColumns = `
	id, name, city, state, phone, genres, image_link, facebook_link,
	website, seeking_venue, seeking_description, created_at, updated_at`

func (r *pgArtistRepo) Create(ctx context.Context, artist domain.Artist) (domain.Artist, error) {
	q := `
		INSERT INTO artists (name, city, state, phone, genres, image_link, facebook_link,
		                     website, seeking_venue, seeking_description)
		VALUES (@name, @city, @state, @phone, @genres, @image_link, @facebook_link,
		        @website, @seeking_venue, @seeking_description)
		RETURNING` + artistColumns

	row := r.db.QueryRow(ctx, q, artistArgs(artist))
	result, err := scanArtist(row)
	if err != nil {
		return domain.Artist{}, fmt.Errorf("repo.ArtistRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgArtistRepo) GetByID(ctx context.Context, id int64) (domain.Artist, error) {
	q := `SELECT` + artistColumns + ` FROM artists WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanArtist(row)
	if err != nil {
		return domain.Artist{}, fmt.Errorf("repo.ArtistRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgArtistRepo) List(ctx context.Context) ([]domain.Artist, error) {
	q := `SELECT` + artistColumns + ` FROM artists ORDER BY name, id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.ArtistRepo.List: %w", err)
	}
	artists, err := collect(rows, scanArtist)
	if err != nil {
		return nil, fmt.Errorf("repo.ArtistRepo.List: %w", err)
	}
	return artists, nil
}

func (r *pgArtistRepo) ListRecent(ctx context.Context, limit int) ([]domain.Artist, error) {
	q := `SELECT` + artistColumns + ` FROM artists ORDER BY created_at DESC, id DESC LIMIT @limit`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("repo.ArtistRepo.ListRecent: %w", err)
	}
	artists, err := collect(rows, scanArtist)
	if err != nil {
		return nil, fmt.Errorf("repo.ArtistRepo.ListRecent: %w", err)
	}
	return artists, nil
}

// Search uses the same pattern escaping as VenueRepo.Search so both pages
// behave identically.
func (r *pgArtistRepo) Search(ctx context.Context, term string) ([]domain.Artist, error) {
	q := `SELECT` + artistColumns + `
		FROM artists
		WHERE name ILIKE @pattern ESCAPE '\'
		ORDER BY name, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"pattern": containsPattern(term)})
	if err != nil {
		return nil, fmt.Errorf("repo.ArtistRepo.Search: %w", err)
	}
	artists, err := collect(rows, scanArtist)
	if err != nil {
		return nil, fmt.Errorf("repo.ArtistRepo.Search: %w", err)
	}
	return artists, nil
}

func (r *pgArtistRepo) Update(ctx context.Context, artist domain.Artist) (domain.Artist, error) {
	q := `
		UPDATE artists
		SET name                = @name,
		    city                = @city,
		    state               = @state,
		    phone               = @phone,
		    genres              = @genres,
		    image_link          = @image_link,
		    facebook_link       = @facebook_link,
		    website             = @website,
		    seeking_venue       = @seeking_venue,
		    seeking_description = @seeking_description,
		    updated_at          = now()
		WHERE id = @id
		RETURNING` + artistColumns

	args := artistArgs(artist)
	args["id"] = artist.ID

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanArtist(row)
	if err != nil {
		return domain.Artist{}, fmt.Errorf("repo.ArtistRepo.Update: %w", err)
	}
	return result, nil
}

func (r *pgArtistRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM artists WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ArtistRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ArtistRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func artistArgs(a domain.Artist) pgx.NamedArgs {
	return pgx.NamedArgs{
		"name":                a.Name,
		"city":                a.City,
		"state":               a.State,
		"phone":               a.Phone,
		"genres":              a.Genres,
		"image_link":          a.ImageLink,
		"facebook_link":       a.FacebookLink,
		"website":             a.Website,
		"seeking_venue":       a.SeekingVenue,
		"seeking_description": a.SeekingDescription,
	}
}

func scanArtist(s scanner) (domain.Artist, error) {
	var a domain.Artist
	err := s.Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.Genres, &a.ImageLink,
		&a.FacebookLink, &a.Website, &a.SeekingVenue, &a.SeekingDescription,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Artist{}, domain.ErrNotFound
		}
		return domain.Artist{}, err
	}
	return a, nil
}
