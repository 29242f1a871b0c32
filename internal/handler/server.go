// Package handler implements the HTTP handlers for the Fyyur booking site.
// All handlers are methods on Server and render server-side HTML from the
// templates embedded in package web. Methods are split into domain-specific
// files (venue.go, artist.go, show.go) but share the same Server struct.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"

	"github.com/pkordes/fyyur/internal/domain"
	"github.com/pkordes/fyyur/web"
)

// VenueServicer defines the venue operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type VenueServicer interface {
	ListByArea(ctx context.Context) ([]domain.Area, error)
	ListRecent(ctx context.Context) ([]domain.Venue, error)
	Search(ctx context.Context, term string) (domain.SearchResult, error)
	Get(ctx context.Context, id int64) (domain.Venue, error)
	GetDetail(ctx context.Context, id int64) (domain.VenueDetail, error)
	Create(ctx context.Context, in domain.VenueInput) (domain.Venue, error)
	Update(ctx context.Context, id int64, in domain.VenueInput) (domain.Venue, error)
	Delete(ctx context.Context, id int64) error
}

// ArtistServicer defines the artist operations the handlers depend on.
type ArtistServicer interface {
	List(ctx context.Context) ([]domain.Artist, error)
	ListRecent(ctx context.Context) ([]domain.Artist, error)
	Search(ctx context.Context, term string) (domain.SearchResult, error)
	Get(ctx context.Context, id int64) (domain.Artist, error)
	GetDetail(ctx context.Context, id int64) (domain.ArtistDetail, error)
	Create(ctx context.Context, in domain.ArtistInput) (domain.Artist, error)
	Update(ctx context.Context, id int64, in domain.ArtistInput) (domain.Artist, error)
	Delete(ctx context.Context, id int64) error
}

// ShowServicer defines the show operations the handlers depend on.
type ShowServicer interface {
	List(ctx context.Context) ([]domain.ShowListing, error)
	Create(ctx context.Context, in domain.ShowInput) (domain.Show, error)
}

// Pinger reports whether the database is reachable. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds the dependencies shared by every handler.
type Server struct {
	venues   VenueServicer
	artists  ArtistServicer
	shows    ShowServicer
	db       Pinger
	sessions sessions.Store
	log      *slog.Logger
	views    *views
}

// NewServer constructs the Server and parses the embedded templates.
// A nil logger falls back to slog.Default.
func NewServer(venues VenueServicer, artists ArtistServicer, shows ShowServicer,
	db Pinger, store sessions.Store, log *slog.Logger) (*Server, error) {
	if log == nil {
		log = slog.Default()
	}
	v, err := newViews(web.Templates)
	if err != nil {
		return nil, err
	}
	return &Server{
		venues:   venues,
		artists:  artists,
		shows:    shows,
		db:       db,
		sessions: store,
		log:      log,
		views:    v,
	}, nil
}

// Routes returns the router for every page and the health check.
// Cross-cutting middleware (request ID, logging, CORS, metrics) is applied by the caller.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.NotFound(s.notFound)

	r.Get("/", s.home)
	r.Get("/healthz", s.health)

	r.Route("/venues", func(r chi.Router) {
		r.Get("/", s.listVenues)
		r.Post("/search", s.searchVenues)
		r.Get("/create", s.newVenueForm)
		r.Post("/create", s.createVenue)
		r.Get("/{id}", s.showVenue)
		r.Delete("/{id}", s.deleteVenue)
		r.Get("/{id}/edit", s.editVenueForm)
		r.Post("/{id}/edit", s.updateVenue)
	})

	r.Route("/artists", func(r chi.Router) {
		r.Get("/", s.listArtists)
		r.Post("/search", s.searchArtists)
		r.Get("/create", s.newArtistForm)
		r.Post("/create", s.createArtist)
		r.Get("/{id}", s.showArtist)
		r.Delete("/{id}", s.deleteArtist)
		r.Get("/{id}/edit", s.editArtistForm)
		r.Post("/{id}/edit", s.updateArtist)
	})

	r.Route("/shows", func(r chi.Router) {
		r.Get("/", s.listShows)
		r.Get("/create", s.newShowForm)
		r.Post("/create", s.createShow)
	})

	return r
}
