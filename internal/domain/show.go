package domain

import "time"

// Show is a booking of one artist at one venue.
type Show struct {
	ID        int64
	ArtistID  int64
	VenueID   int64
	StartTime time.Time
	CreatedAt time.Time
}

// ShowInput carries the fields submitted on the new-show form.
type ShowInput struct {
	ArtistID  int64
	VenueID   int64
	StartTime time.Time
}

// ShowListing is a show joined with both sides of the booking.
// It backs the /shows page and the show lines on venue and artist pages.
type ShowListing struct {
	ShowID          int64
	VenueID         int64
	VenueName       string
	VenueImageLink  string
	ArtistID        int64
	ArtistName      string
	ArtistImageLink string
	StartTime       time.Time
}

// IsUpcoming reports whether the show starts strictly after now.
// A show starting exactly at now counts as past.
func (s ShowListing) IsUpcoming(now time.Time) bool {
	return s.StartTime.After(now)
}
