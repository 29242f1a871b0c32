// Package seed loads the sample venues, artists and shows used for demos and
// local development.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/pkordes/fyyur/internal/domain"
	"github.com/pkordes/fyyur/internal/repo"
)

// Summary counts the rows Run inserted.
type Summary struct {
	Venues  int
	Artists int
	Shows   int
}

type sampleShow struct {
	venue  string
	artist string
	start  time.Time
}

var venues = []domain.Venue{
	{
		Name:               "The Musical Hop",
		Genres:             []string{"Jazz", "Reggae", "Classical", "Folk"},
		Address:            "1015 Folsom Street",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "123-123-1234",
		Website:            "https://www.themusicalhop.com",
		FacebookLink:       "https://www.facebook.com/TheMusicalHop",
		SeekingTalent:      true,
		SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
		ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?w=400",
	},
	{
		Name:         "The Dueling Pianos Bar",
		Genres:       []string{"Classical", "R&B", "Hip-Hop"},
		Address:      "335 Delancey Street",
		City:         "New York",
		State:        "NY",
		Phone:        "914-003-1132",
		Website:      "https://www.theduelingpianos.com",
		FacebookLink: "https://www.facebook.com/theduelingpianos",
		ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?w=750",
	},
	{
		Name:         "Park Square Live Music & Coffee",
		Genres:       []string{"Rock n Roll", "Jazz", "Classical", "Folk"},
		Address:      "34 Whiskey Moore Ave",
		City:         "San Francisco",
		State:        "CA",
		Phone:        "415-000-1234",
		Website:      "https://www.parksquarelivemusicandcoffee.com",
		FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
		ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?w=747",
	},
}

var artists = []domain.Artist{
	{
		Name:               "Guns N Petals",
		Genres:             []string{"Rock n Roll"},
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		Website:            "https://www.gunsnpetalsband.com",
		FacebookLink:       "https://www.facebook.com/GunsNPetals",
		SeekingVenue:       true,
		SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
		ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?w=300",
	},
	{
		Name:         "Matt Quevedo",
		Genres:       []string{"Jazz"},
		City:         "New York",
		State:        "NY",
		Phone:        "300-400-5000",
		FacebookLink: "https://www.facebook.com/mattquevedo923251523",
		ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?w=334",
	},
	{
		Name:      "The Wild Sax Band",
		Genres:    []string{"Jazz", "Classical"},
		City:      "San Francisco",
		State:     "CA",
		Phone:     "432-325-5432",
		ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?w=794",
	},
}

var shows = []sampleShow{
	{"The Musical Hop", "Guns N Petals", time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)},
	{"Park Square Live Music & Coffee", "Matt Quevedo", time.Date(2019, 6, 15, 23, 0, 0, 0, time.UTC)},
	{"Park Square Live Music & Coffee", "The Wild Sax Band", time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)},
	{"Park Square Live Music & Coffee", "The Wild Sax Band", time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC)},
	{"Park Square Live Music & Coffee", "The Wild Sax Band", time.Date(2035, 4, 15, 20, 0, 0, 0, time.UTC)},
}

// Run inserts the sample data in a single transaction. Either everything is
// inserted or nothing is.
func Run(ctx context.Context, tx repo.TxManager) (Summary, error) {
	var sum Summary
	err := tx.WithinTx(ctx, func(r repo.Repos) error {
		sum = Summary{}
		venueIDs := make(map[string]int64, len(venues))
		for _, v := range venues {
			created, err := r.Venues.Create(ctx, v)
			if err != nil {
				return fmt.Errorf("venue %q: %w", v.Name, err)
			}
			venueIDs[v.Name] = created.ID
			sum.Venues++
		}

		artistIDs := make(map[string]int64, len(artists))
		for _, a := range artists {
			created, err := r.Artists.Create(ctx, a)
			if err != nil {
				return fmt.Errorf("artist %q: %w", a.Name, err)
			}
			artistIDs[a.Name] = created.ID
			sum.Artists++
		}

		for _, s := range shows {
			_, err := r.Shows.Create(ctx, domain.Show{
				VenueID:   venueIDs[s.venue],
				ArtistID:  artistIDs[s.artist],
				StartTime: s.start,
			})
			if err != nil {
				return fmt.Errorf("show %s at %s: %w", s.artist, s.venue, err)
			}
			sum.Shows++
		}
		return nil
	})
	if err != nil {
		return Summary{}, fmt.Errorf("seed.Run: %w", err)
	}
	return sum, nil
}
