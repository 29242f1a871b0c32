// Package domain contains the core data types for the Fyyur booking site.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import "time"

// Venue is a place that hosts shows.
// Genres is never empty for a persisted venue.
type Venue struct {
	ID                 int64
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	ImageLink          string
	FacebookLink       string
	Website            string
	Genres             []string
	SeekingTalent      bool
	SeekingDescription string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// VenueInput carries the user-editable fields of a venue for create and update.
type VenueInput struct {
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	ImageLink          string
	FacebookLink       string
	Website            string
	Genres             []string
	SeekingTalent      bool
	SeekingDescription string
}

// Apply copies the input fields onto v. ID and timestamps are left untouched.
func (in VenueInput) Apply(v *Venue) {
	v.Name = in.Name
	v.City = in.City
	v.State = in.State
	v.Address = in.Address
	v.Phone = in.Phone
	v.ImageLink = in.ImageLink
	v.FacebookLink = in.FacebookLink
	v.Website = in.Website
	v.Genres = in.Genres
	v.SeekingTalent = in.SeekingTalent
	v.SeekingDescription = in.SeekingDescription
}

// VenueInputFrom returns the input that would reproduce v. Used to pre-fill edit forms.
func VenueInputFrom(v Venue) VenueInput {
	return VenueInput{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		Website:            v.Website,
		Genres:             v.Genres,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}

// VenueSummary is one line of the grouped venue listing.
type VenueSummary struct {
	ID               int64
	Name             string
	NumUpcomingShows int
}

// Area groups the venues sharing an exact (City, State) pair.
// City and State are compared case-sensitively and without trimming.
type Area struct {
	City   string
	State  string
	Venues []VenueSummary
}

// VenueDetail is a venue plus its shows split around the moment the view was built.
// Each ShowListing line describes the artist playing.
type VenueDetail struct {
	Venue
	PastShows          []ShowListing
	UpcomingShows      []ShowListing
	PastShowsCount     int
	UpcomingShowsCount int
}
