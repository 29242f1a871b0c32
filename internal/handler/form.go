package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/pkordes/fyyur/internal/domain"
)

// startTimeLayouts are accepted for the show start_time field, in order.
// The first is also how the form pre-fills the current time.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

// pathID binds the {id} path parameter as a positive int64.
// ok is false for anything else, which callers answer with 404.
func pathID(r *http.Request) (id int64, ok bool) {
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false})
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parseForm parses the request body. It reports false after writing the
// response when the body is too large or malformed.
func (s *Server) parseForm(w http.ResponseWriter, r *http.Request) bool {
	err := r.ParseForm()
	if err == nil {
		return true
	}
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
		return false
	}
	http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
	return false
}

// checked reports whether an HTML checkbox was ticked.
func checked(v string) bool {
	switch strings.ToLower(v) {
	case "y", "yes", "on", "true", "1":
		return true
	}
	return false
}

func venueInputFromForm(r *http.Request) domain.VenueInput {
	f := r.PostForm
	return domain.VenueInput{
		Name:               f.Get("name"),
		City:               f.Get("city"),
		State:              f.Get("state"),
		Address:            f.Get("address"),
		Phone:              f.Get("phone"),
		ImageLink:          f.Get("image_link"),
		FacebookLink:       f.Get("facebook_link"),
		Website:            f.Get("website_link"),
		Genres:             f["genres"],
		SeekingTalent:      checked(f.Get("seeking_talent")),
		SeekingDescription: f.Get("seeking_description"),
	}
}

func artistInputFromForm(r *http.Request) domain.ArtistInput {
	f := r.PostForm
	return domain.ArtistInput{
		Name:               f.Get("name"),
		City:               f.Get("city"),
		State:              f.Get("state"),
		Phone:              f.Get("phone"),
		ImageLink:          f.Get("image_link"),
		FacebookLink:       f.Get("facebook_link"),
		Website:            f.Get("website_link"),
		Genres:             f["genres"],
		SeekingVenue:       checked(f.Get("seeking_venue")),
		SeekingDescription: f.Get("seeking_description"),
	}
}

// showForm is the raw show form, kept as strings so invalid values can be
// echoed back to the user.
type showForm struct {
	ArtistID  string
	VenueID   string
	StartTime string
	Errors    domain.FieldErrors
}

func showFormFromRequest(r *http.Request) showForm {
	f := r.PostForm
	return showForm{
		ArtistID:  strings.TrimSpace(f.Get("artist_id")),
		VenueID:   strings.TrimSpace(f.Get("venue_id")),
		StartTime: strings.TrimSpace(f.Get("start_time")),
	}
}

// input converts the raw form into a ShowInput. Values that do not parse are
// reported as field errors; values that are merely missing are left zero for
// the service to reject.
func (f showForm) input() (domain.ShowInput, error) {
	var in domain.ShowInput
	fe := domain.FieldErrors{}

	if f.ArtistID != "" {
		id, err := strconv.ParseInt(f.ArtistID, 10, 64)
		if err != nil {
			fe.Add("artist_id", "Not a valid integer value.")
		}
		in.ArtistID = id
	}
	if f.VenueID != "" {
		id, err := strconv.ParseInt(f.VenueID, 10, 64)
		if err != nil {
			fe.Add("venue_id", "Not a valid integer value.")
		}
		in.VenueID = id
	}
	if f.StartTime != "" {
		t, ok := parseStartTime(f.StartTime)
		if !ok {
			fe.Add("start_time", "Not a valid datetime value.")
		}
		in.StartTime = t
	}
	return in, fe.Err()
}

// parseStartTime accepts the layouts in startTimeLayouts. Times without a
// zone are taken as UTC.
func parseStartTime(v string) (time.Time, bool) {
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, v, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
