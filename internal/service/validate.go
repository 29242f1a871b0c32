package service

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/pkordes/fyyur/internal/domain"
)

const msgRequired = "This field is required."

// Column widths from the migrations.
const (
	maxShortText = 120
	maxLongText  = 500
)

var phonePattern = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)

// normalizeVenue trims free-text fields and de-duplicates genres.
func normalizeVenue(in domain.VenueInput) domain.VenueInput {
	in.Name = strings.TrimSpace(in.Name)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.TrimSpace(in.State)
	in.Address = strings.TrimSpace(in.Address)
	in.Phone = strings.TrimSpace(in.Phone)
	in.ImageLink = strings.TrimSpace(in.ImageLink)
	in.FacebookLink = strings.TrimSpace(in.FacebookLink)
	in.Website = strings.TrimSpace(in.Website)
	in.SeekingDescription = strings.TrimSpace(in.SeekingDescription)
	in.Genres = lo.Uniq(in.Genres)
	return in
}

func normalizeArtist(in domain.ArtistInput) domain.ArtistInput {
	in.Name = strings.TrimSpace(in.Name)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.TrimSpace(in.State)
	in.Phone = strings.TrimSpace(in.Phone)
	in.ImageLink = strings.TrimSpace(in.ImageLink)
	in.FacebookLink = strings.TrimSpace(in.FacebookLink)
	in.Website = strings.TrimSpace(in.Website)
	in.SeekingDescription = strings.TrimSpace(in.SeekingDescription)
	in.Genres = lo.Uniq(in.Genres)
	return in
}

// validateVenue enforces the venue form rules. Input must already be normalized.
func validateVenue(in domain.VenueInput) error {
	fe := domain.FieldErrors{}
	checkRequired(fe, "name", in.Name)
	checkRequired(fe, "city", in.City)
	checkMaxLen(fe, "city", in.City, maxShortText)
	checkState(fe, in.State)
	checkRequired(fe, "address", in.Address)
	checkMaxLen(fe, "address", in.Address, maxShortText)
	checkPhone(fe, in.Phone)
	checkGenres(fe, in.Genres)
	checkURL(fe, "image_link", in.ImageLink, maxLongText)
	checkURL(fe, "facebook_link", in.FacebookLink, maxShortText)
	checkURL(fe, "website_link", in.Website, maxShortText)
	checkMaxLen(fe, "seeking_description", in.SeekingDescription, maxLongText)
	return fe.Err()
}

// validateArtist enforces the artist form rules. Input must already be normalized.
func validateArtist(in domain.ArtistInput) error {
	fe := domain.FieldErrors{}
	checkRequired(fe, "name", in.Name)
	checkRequired(fe, "city", in.City)
	checkMaxLen(fe, "city", in.City, maxShortText)
	checkState(fe, in.State)
	checkPhone(fe, in.Phone)
	checkGenres(fe, in.Genres)
	checkURL(fe, "image_link", in.ImageLink, maxLongText)
	checkURL(fe, "facebook_link", in.FacebookLink, maxShortText)
	checkURL(fe, "website_link", in.Website, maxShortText)
	checkMaxLen(fe, "seeking_description", in.SeekingDescription, maxLongText)
	return fe.Err()
}

func validateShow(in domain.ShowInput) error {
	fe := domain.FieldErrors{}
	if in.ArtistID <= 0 {
		fe.Add("artist_id", msgRequired)
	}
	if in.VenueID <= 0 {
		fe.Add("venue_id", msgRequired)
	}
	if in.StartTime.IsZero() {
		fe.Add("start_time", msgRequired)
	}
	return fe.Err()
}

func checkRequired(fe domain.FieldErrors, field, value string) {
	if value == "" {
		fe.Add(field, msgRequired)
	}
}

func checkState(fe domain.FieldErrors, state string) {
	switch {
	case state == "":
		fe.Add("state", msgRequired)
	case !domain.IsState(state):
		fe.Add("state", "Not a valid choice.")
	}
}

func checkPhone(fe domain.FieldErrors, phone string) {
	if phone != "" && !phonePattern.MatchString(phone) {
		fe.Add("phone", "Use the format xxx-xxx-xxxx.")
	}
}

func checkGenres(fe domain.FieldErrors, genres []string) {
	if len(genres) == 0 {
		fe.Add("genres", msgRequired)
		return
	}
	for _, g := range genres {
		if !domain.IsGenre(g) {
			fe.Add("genres", "'"+g+"' is not a valid choice.")
			return
		}
	}
}

// checkMaxLen counts characters, as varchar(n) does.
func checkMaxLen(fe domain.FieldErrors, field, value string, limit int) {
	if utf8.RuneCountInString(value) > limit {
		fe.Add(field, fmt.Sprintf("Field cannot be longer than %d characters.", limit))
	}
}

// checkURL accepts an empty value or an absolute http(s) URL with a host
// and at most limit characters.
func checkURL(fe domain.FieldErrors, field, raw string, limit int) {
	if raw == "" {
		return
	}
	if utf8.RuneCountInString(raw) > limit {
		checkMaxLen(fe, field, raw, limit)
		return
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		fe.Add(field, "Invalid URL.")
	}
}
