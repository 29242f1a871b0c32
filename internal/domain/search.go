package domain

// SearchHit is one row of a venue or artist search.
type SearchHit struct {
	ID               int64
	Name             string
	NumUpcomingShows int
}

// SearchResult holds every match for a search term.
type SearchResult struct {
	Count int
	Data  []SearchHit
}
