package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/fyyur/internal/domain"
	"github.com/pkordes/fyyur/internal/repo"
	"github.com/pkordes/fyyur/testutil"
)

// newTestTx opens a transaction against the test database that is rolled
// back when the test finishes, giving free per-test isolation.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		// Rollback discards all changes made during the test, so no cleanup SQL is needed.
		_ = tx.Rollback(context.Background())
	})
	return tx
}

// newTestRepos returns every repo bound to a rolled-back-per-test transaction.
func newTestRepos(t *testing.T) repo.Repos {
	t.Helper()
	return repo.NewRepos(newTestTx(t))
}

func venueFixture() domain.Venue {
	return domain.Venue{
		Name:               "The Musical Hop",
		City:               "San Francisco",
		State:              "CA",
		Address:            "1015 Folsom Street",
		Phone:              "123-123-1234",
		ImageLink:          "https://images.example.com/hop.jpg",
		FacebookLink:       "https://www.facebook.com/TheMusicalHop",
		Website:            "https://www.themusicalhop.com",
		Genres:             []string{"Jazz", "Reggae", "Swing"},
		SeekingTalent:      true,
		SeekingDescription: "We are on the lookout for a local artist to play every two weeks.",
	}
}

func artistFixture() domain.Artist {
	return domain.Artist{
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		Genres:             []string{"Rock n Roll"},
		ImageLink:          "https://images.example.com/gnp.jpg",
		FacebookLink:       "https://www.facebook.com/GunsNPetals",
		Website:            "https://www.gunsnpetalsband.com",
		SeekingVenue:       true,
		SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
	}
}

// createShow inserts a show for the given pair starting at start.
func createShow(t *testing.T, r repo.Repos, artistID, venueID int64, start time.Time) domain.Show {
	t.Helper()
	s, err := r.Shows.Create(context.Background(), domain.Show{ArtistID: artistID, VenueID: venueID, StartTime: start})
	require.NoError(t, err)
	return s
}
