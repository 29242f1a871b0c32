package handler_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/pkordes/fyyur/internal/domain"
	"github.com/pkordes/fyyur/internal/handler"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// ---- mock servicers --------------------------------------------------------

// mockVenueServicer is a test double for handler.VenueServicer.
// Set only the method fields your test needs.
type mockVenueServicer struct {
	listByArea func(ctx context.Context) ([]domain.Area, error)
	listRecent func(ctx context.Context) ([]domain.Venue, error)
	search     func(ctx context.Context, term string) (domain.SearchResult, error)
	get        func(ctx context.Context, id int64) (domain.Venue, error)
	getDetail  func(ctx context.Context, id int64) (domain.VenueDetail, error)
	create     func(ctx context.Context, in domain.VenueInput) (domain.Venue, error)
	update     func(ctx context.Context, id int64, in domain.VenueInput) (domain.Venue, error)
	delete     func(ctx context.Context, id int64) error
}

func (m *mockVenueServicer) ListByArea(ctx context.Context) ([]domain.Area, error) {
	return m.listByArea(ctx)
}
func (m *mockVenueServicer) ListRecent(ctx context.Context) ([]domain.Venue, error) {
	return m.listRecent(ctx)
}
func (m *mockVenueServicer) Search(ctx context.Context, term string) (domain.SearchResult, error) {
	return m.search(ctx, term)
}
func (m *mockVenueServicer) Get(ctx context.Context, id int64) (domain.Venue, error) {
	return m.get(ctx, id)
}
func (m *mockVenueServicer) GetDetail(ctx context.Context, id int64) (domain.VenueDetail, error) {
	return m.getDetail(ctx, id)
}
func (m *mockVenueServicer) Create(ctx context.Context, in domain.VenueInput) (domain.Venue, error) {
	return m.create(ctx, in)
}
func (m *mockVenueServicer) Update(ctx context.Context, id int64, in domain.VenueInput) (domain.Venue, error) {
	return m.update(ctx, id, in)
}
func (m *mockVenueServicer) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

// compile-time check: mockVenueServicer must satisfy handler.VenueServicer.
var _ handler.VenueServicer = (*mockVenueServicer)(nil)

type mockArtistServicer struct {
	list       func(ctx context.Context) ([]domain.Artist, error)
	listRecent func(ctx context.Context) ([]domain.Artist, error)
	search     func(ctx context.Context, term string) (domain.SearchResult, error)
	get        func(ctx context.Context, id int64) (domain.Artist, error)
	getDetail  func(ctx context.Context, id int64) (domain.ArtistDetail, error)
	create     func(ctx context.Context, in domain.ArtistInput) (domain.Artist, error)
	update     func(ctx context.Context, id int64, in domain.ArtistInput) (domain.Artist, error)
	delete     func(ctx context.Context, id int64) error
}

func (m *mockArtistServicer) List(ctx context.Context) ([]domain.Artist, error) {
	return m.list(ctx)
}
func (m *mockArtistServicer) ListRecent(ctx context.Context) ([]domain.Artist, error) {
	return m.listRecent(ctx)
}
func (m *mockArtistServicer) Search(ctx context.Context, term string) (domain.SearchResult, error) {
	return m.search(ctx, term)
}
func (m *mockArtistServicer) Get(ctx context.Context, id int64) (domain.Artist, error) {
	return m.get(ctx, id)
}
func (m *mockArtistServicer) GetDetail(ctx context.Context, id int64) (domain.ArtistDetail, error) {
	return m.getDetail(ctx, id)
}
func (m *mockArtistServicer) Create(ctx context.Context, in domain.ArtistInput) (domain.Artist, error) {
	return m.create(ctx, in)
}
func (m *mockArtistServicer) Update(ctx context.Context, id int64, in domain.ArtistInput) (domain.Artist, error) {
	return m.update(ctx, id, in)
}
func (m *mockArtistServicer) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

var _ handler.ArtistServicer = (*mockArtistServicer)(nil)

type mockShowServicer struct {
	list   func(ctx context.Context) ([]domain.ShowListing, error)
	create func(ctx context.Context, in domain.ShowInput) (domain.Show, error)
}

func (m *mockShowServicer) List(ctx context.Context) ([]domain.ShowListing, error) {
	return m.list(ctx)
}
func (m *mockShowServicer) Create(ctx context.Context, in domain.ShowInput) (domain.Show, error) {
	return m.create(ctx, in)
}

var _ handler.ShowServicer = (*mockShowServicer)(nil)

type mockPinger struct {
	err error
}

func (m mockPinger) Ping(context.Context) error { return m.err }

// ---- helpers ---------------------------------------------------------------

const testSecret = "0123456789abcdef0123456789abcdef"

// deps bundles the mocks for one test; nil fields become empty mocks whose
// methods panic if called.
type deps struct {
	venues  *mockVenueServicer
	artists *mockArtistServicer
	shows   *mockShowServicer
	db      handler.Pinger
}

// newHTTPHandler wires a Server with the given mocks into its chi router,
// the same way main.go does in production.
func newHTTPHandler(t *testing.T, d deps) http.Handler {
	t.Helper()
	if d.venues == nil {
		d.venues = &mockVenueServicer{}
	}
	if d.artists == nil {
		d.artists = &mockArtistServicer{}
	}
	if d.shows == nil {
		d.shows = &mockShowServicer{}
	}
	if d.db == nil {
		d.db = mockPinger{}
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv, err := handler.NewServer(d.venues, d.artists, d.shows, d.db,
		handler.NewSessionStore([]byte(testSecret), false), log)
	require.NoError(t, err)
	return srv.Routes()
}

func get(h http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func postForm(h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func del(h http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// followFlash replays the cookies set by rec on a GET to path, the way a
// browser follows a 303 after a form post.
func followFlash(h http.Handler, rec *httptest.ResponseRecorder, path string) *httptest.ResponseRecorder {
	return get(h, path, rec.Result().Cookies()...)
}

func venueForm() url.Values {
	return url.Values{
		"name":                {"The Musical Hop"},
		"city":                {"San Francisco"},
		"state":               {"CA"},
		"address":             {"1015 Folsom Street"},
		"phone":               {"123-123-1234"},
		"genres":              {"Jazz", "Reggae"},
		"facebook_link":       {"https://www.facebook.com/TheMusicalHop"},
		"website_link":        {"https://www.themusicalhop.com"},
		"seeking_talent":      {"y"},
		"seeking_description": {"We are on the lookout for a local artist."},
	}
}

func artistForm() url.Values {
	return url.Values{
		"name":   {"Guns N Petals"},
		"city":   {"San Francisco"},
		"state":  {"CA"},
		"phone":  {"326-123-5000"},
		"genres": {"Rock n Roll"},
	}
}
