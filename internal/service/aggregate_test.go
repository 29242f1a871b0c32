package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/fyyur/internal/domain"
	"github.com/pkordes/fyyur/internal/service"
)

func venuesRepo(venues ...domain.Venue) *mockVenueRepo {
	return &mockVenueRepo{
		list: func(_ context.Context) ([]domain.Venue, error) { return venues, nil },
	}
}

func countsRepo(counts map[int64]int) *mockShowRepo {
	return &mockShowRepo{
		countUpcomingByVenue: func(_ context.Context, _ time.Time) (map[int64]int, error) {
			return counts, nil
		},
		countUpcomingByArtist: func(_ context.Context, _ time.Time) (map[int64]int, error) {
			return counts, nil
		},
	}
}

func TestVenueService_ListByArea_GroupsExactCityState(t *testing.T) {
	// Deliberately interleaved: naive sequential grouping would split San Francisco.
	r, tx := newRepos(venuesRepo(
		domain.Venue{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA"},
		domain.Venue{ID: 2, Name: "The Dueling Pianos Bar", City: "New York", State: "NY"},
		domain.Venue{ID: 3, Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA"},
		domain.Venue{ID: 4, Name: "Lowercase Lounge", City: "san francisco", State: "CA"},
		domain.Venue{ID: 5, Name: "Other State", City: "San Francisco", State: "NY"},
	), nil, countsRepo(map[int64]int{1: 2, 3: 1}))
	svc := service.NewVenueService(r, tx, fixedClock)

	areas, err := svc.ListByArea(context.Background())

	require.NoError(t, err)
	require.Len(t, areas, 4)

	byKey := map[[2]string]domain.Area{}
	for _, a := range areas {
		key := [2]string{a.City, a.State}
		_, dup := byKey[key]
		require.False(t, dup, "area %v appears twice", key)
		byKey[key] = a
	}

	sf := byKey[[2]string{"San Francisco", "CA"}]
	assert.Equal(t, []domain.VenueSummary{
		{ID: 3, Name: "Park Square Live Music & Coffee", NumUpcomingShows: 1},
		{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 2},
	}, sf.Venues)

	assert.Len(t, byKey[[2]string{"san francisco", "CA"}].Venues, 1, "case differences are distinct areas")
	assert.Len(t, byKey[[2]string{"San Francisco", "NY"}].Venues, 1, "state differences are distinct areas")
	assert.Equal(t, 0, byKey[[2]string{"New York", "NY"}].Venues[0].NumUpcomingShows)
}

func TestVenueService_ListByArea_IndependentOfInputOrder(t *testing.T) {
	venues := []domain.Venue{
		{ID: 1, Name: "A", City: "Austin", State: "TX"},
		{ID: 2, Name: "B", City: "Boston", State: "MA"},
		{ID: 3, Name: "C", City: "Austin", State: "TX"},
	}
	reversed := []domain.Venue{venues[2], venues[1], venues[0]}

	r1, tx1 := newRepos(venuesRepo(venues...), nil, countsRepo(nil))
	r2, tx2 := newRepos(venuesRepo(reversed...), nil, countsRepo(nil))

	a1, err := service.NewVenueService(r1, tx1, fixedClock).ListByArea(context.Background())
	require.NoError(t, err)
	a2, err := service.NewVenueService(r2, tx2, fixedClock).ListByArea(context.Background())
	require.NoError(t, err)

	assert.Equal(t, a1, a2)
	require.Len(t, a1, 2)
	assert.Equal(t, "Austin", a1[0].City)
}

func TestVenueService_ListByArea_Empty(t *testing.T) {
	r, tx := newRepos(venuesRepo(), nil, countsRepo(map[int64]int{}))

	areas, err := service.NewVenueService(r, tx, fixedClock).ListByArea(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, areas)
	assert.Empty(t, areas)
}

func TestVenueService_ListByArea_PassesCapturedNow(t *testing.T) {
	var got time.Time
	shows := &mockShowRepo{
		countUpcomingByVenue: func(_ context.Context, now time.Time) (map[int64]int, error) {
			got = now
			return nil, nil
		},
	}
	r, tx := newRepos(venuesRepo(), nil, shows)

	_, err := service.NewVenueService(r, tx, fixedClock).ListByArea(context.Background())

	require.NoError(t, err)
	assert.True(t, got.Equal(refNow))
}

func showAt(id int64, start time.Time) domain.ShowListing {
	return domain.ShowListing{ShowID: id, ArtistID: 10, ArtistName: "Guns N Petals", VenueID: 1, VenueName: "The Musical Hop", StartTime: start}
}

func TestVenueService_GetDetail_PartitionsAroundNow(t *testing.T) {
	shows := []domain.ShowListing{
		showAt(1, refNow.Add(-48*time.Hour)),
		showAt(2, refNow), // exactly now: past
		showAt(3, refNow.Add(time.Nanosecond)),
		showAt(4, refNow.Add(72*time.Hour)),
	}
	venues := &mockVenueRepo{
		getByID: func(_ context.Context, id int64) (domain.Venue, error) {
			return domain.Venue{ID: id, Name: "The Musical Hop"}, nil
		},
	}
	showRepo := &mockShowRepo{
		listByVenue: func(_ context.Context, venueID int64) ([]domain.ShowListing, error) {
			assert.Equal(t, int64(1), venueID)
			return shows, nil
		},
	}
	r, tx := newRepos(venues, nil, showRepo)

	got, err := service.NewVenueService(r, tx, fixedClock).GetDetail(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop", got.Name)
	assert.Equal(t, []int64{1, 2}, showIDs(got.PastShows))
	assert.Equal(t, []int64{3, 4}, showIDs(got.UpcomingShows))
	assert.Equal(t, 2, got.PastShowsCount)
	assert.Equal(t, 2, got.UpcomingShowsCount)
	assert.Equal(t, len(shows), got.PastShowsCount+got.UpcomingShowsCount, "every show is classified exactly once")
}

func TestVenueService_GetDetail_NoShows(t *testing.T) {
	venues := &mockVenueRepo{
		getByID: func(_ context.Context, id int64) (domain.Venue, error) { return domain.Venue{ID: id}, nil },
	}
	showRepo := &mockShowRepo{
		listByVenue: func(_ context.Context, _ int64) ([]domain.ShowListing, error) { return nil, nil },
	}
	r, tx := newRepos(venues, nil, showRepo)

	got, err := service.NewVenueService(r, tx, fixedClock).GetDetail(context.Background(), 9)

	require.NoError(t, err)
	assert.NotNil(t, got.PastShows)
	assert.NotNil(t, got.UpcomingShows)
	assert.Zero(t, got.PastShowsCount)
	assert.Zero(t, got.UpcomingShowsCount)
}

func TestVenueService_GetDetail_NotFound(t *testing.T) {
	venues := &mockVenueRepo{
		getByID: func(_ context.Context, _ int64) (domain.Venue, error) { return domain.Venue{}, domain.ErrNotFound },
	}
	r, tx := newRepos(venues, nil, nil)

	_, err := service.NewVenueService(r, tx, fixedClock).GetDetail(context.Background(), 404)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestArtistService_GetDetail_PartitionsAroundNow(t *testing.T) {
	artists := &mockArtistRepo{
		getByID: func(_ context.Context, id int64) (domain.Artist, error) {
			return domain.Artist{ID: id, Name: "The Wild Sax Band"}, nil
		},
	}
	showRepo := &mockShowRepo{
		listByArtist: func(_ context.Context, _ int64) ([]domain.ShowListing, error) {
			return []domain.ShowListing{
				showAt(7, refNow.Add(-time.Minute)),
				showAt(8, refNow.Add(time.Minute)),
			}, nil
		},
	}
	r, tx := newRepos(nil, artists, showRepo)

	got, err := service.NewArtistService(r, tx, fixedClock).GetDetail(context.Background(), 6)

	require.NoError(t, err)
	assert.Equal(t, []int64{7}, showIDs(got.PastShows))
	assert.Equal(t, []int64{8}, showIDs(got.UpcomingShows))
}

func TestArtistService_GetDetail_NotFound(t *testing.T) {
	artists := &mockArtistRepo{
		getByID: func(_ context.Context, _ int64) (domain.Artist, error) { return domain.Artist{}, domain.ErrNotFound },
	}
	r, tx := newRepos(nil, artists, nil)

	_, err := service.NewArtistService(r, tx, fixedClock).GetDetail(context.Background(), 404)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func showIDs(shows []domain.ShowListing) []int64 {
	ids := make([]int64, 0, len(shows))
	for _, s := range shows {
		ids = append(ids, s.ShowID)
	}
	return ids
}
