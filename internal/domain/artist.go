package domain

import "time"

// Artist is a performer that can be booked at venues.
type Artist struct {
	ID                 int64
	Name               string
	City               string
	State              string
	Phone              string
	Genres             []string
	ImageLink          string
	FacebookLink       string
	Website            string
	SeekingVenue       bool
	SeekingDescription string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ArtistInput carries the user-editable fields of an artist for create and update.
type ArtistInput struct {
	Name               string
	City               string
	State              string
	Phone              string
	Genres             []string
	ImageLink          string
	FacebookLink       string
	Website            string
	SeekingVenue       bool
	SeekingDescription string
}

// Apply copies the input fields onto a. ID and timestamps are left untouched.
func (in ArtistInput) Apply(a *Artist) {
	a.Name = in.Name
	a.City = in.City
	a.State = in.State
	a.Phone = in.Phone
	a.Genres = in.Genres
	a.ImageLink = in.ImageLink
	a.FacebookLink = in.FacebookLink
	a.Website = in.Website
	a.SeekingVenue = in.SeekingVenue
	a.SeekingDescription = in.SeekingDescription
}

// ArtistInputFrom returns the input that would reproduce a.
func ArtistInputFrom(a Artist) ArtistInput {
	return ArtistInput{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             a.Genres,
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
}

// ArtistDetail is an artist plus its shows split around the moment the view was built.
// Each ShowListing line describes the venue hosting.
type ArtistDetail struct {
	Artist
	PastShows          []ShowListing
	UpcomingShows      []ShowListing
	PastShowsCount     int
	UpcomingShowsCount int
}
