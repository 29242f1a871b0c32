package service

import (
	"cmp"
	"slices"
	"time"

	"github.com/samber/lo"

	"github.com/pkordes/fyyur/internal/domain"
)

// areaKey is the exact grouping key for the venue listing.
// Differently-cased or padded city names are distinct areas.
type areaKey struct {
	city  string
	state string
}

// groupByArea buckets venues by exact (city, state) and attaches each venue's
// upcoming-show count from counts (missing ids count as zero).
// Input order does not matter: venues are sorted by city, state, name, id first.
func groupByArea(venues []domain.Venue, counts map[int64]int) []domain.Area {
	sorted := slices.Clone(venues)
	slices.SortStableFunc(sorted, func(a, b domain.Venue) int {
		return cmp.Or(
			cmp.Compare(a.City, b.City),
			cmp.Compare(a.State, b.State),
			cmp.Compare(a.Name, b.Name),
			cmp.Compare(a.ID, b.ID),
		)
	})

	groups := lo.PartitionBy(sorted, func(v domain.Venue) areaKey {
		return areaKey{city: v.City, state: v.State}
	})

	areas := make([]domain.Area, 0, len(groups))
	for _, g := range groups {
		areas = append(areas, domain.Area{
			City:  g[0].City,
			State: g[0].State,
			Venues: lo.Map(g, func(v domain.Venue, _ int) domain.VenueSummary {
				return domain.VenueSummary{ID: v.ID, Name: v.Name, NumUpcomingShows: counts[v.ID]}
			}),
		})
	}
	return areas
}

// partitionShows splits shows around now: past is start_time <= now,
// upcoming is start_time > now. Every show lands in exactly one slice and the
// relative order of shows is preserved. Both slices are non-nil.
func partitionShows(shows []domain.ShowListing, now time.Time) (past, upcoming []domain.ShowListing) {
	past = []domain.ShowListing{}
	upcoming = []domain.ShowListing{}
	for _, s := range shows {
		if s.IsUpcoming(now) {
			upcoming = append(upcoming, s)
		} else {
			past = append(past, s)
		}
	}
	return past, upcoming
}

// searchResult shapes named rows into a SearchResult.
func searchResult[T any](rows []T, hit func(T) domain.SearchHit) domain.SearchResult {
	data := lo.Map(rows, func(r T, _ int) domain.SearchHit { return hit(r) })
	return domain.SearchResult{Count: len(data), Data: data}
}
