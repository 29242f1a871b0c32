package handler

import (
	"fmt"
	"net/http"

	"github.com/pkordes/fyyur/internal/domain"
)

// venueFormPage backs venue_form.html for both create and edit.
type venueFormPage struct {
	Heading string
	Action  string
	Submit  string
	Input   domain.VenueInput
	Errors  domain.FieldErrors
}

type searchPage struct {
	Kind   string
	Base   string
	Term   string
	Result domain.SearchResult
}

// listVenues handles GET /venues.
func (s *Server) listVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := s.venues.ListByArea(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "venues", "Venues", areas)
}

// searchVenues handles POST /venues/search.
func (s *Server) searchVenues(w http.ResponseWriter, r *http.Request) {
	if !s.parseForm(w, r) {
		return
	}
	term := r.PostForm.Get("search_term")
	result, err := s.venues.Search(r.Context(), term)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "search", "Venue search",
		searchPage{Kind: "venues", Base: "/venues", Term: term, Result: result})
}

// showVenue handles GET /venues/{id}.
func (s *Server) showVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return
	}
	detail, err := s.venues.GetDetail(r.Context(), id)
	if err != nil {
		s.readError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "venue", detail.Name, detail)
}

// newVenueForm handles GET /venues/create.
func (s *Server) newVenueForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "venue_form", "New venue", newVenuePage(domain.VenueInput{}, nil))
}

// createVenue handles POST /venues/create.
func (s *Server) createVenue(w http.ResponseWriter, r *http.Request) {
	if !s.parseForm(w, r) {
		return
	}
	in := venueInputFromForm(r)

	created, err := s.venues.Create(r.Context(), in)
	if err != nil {
		s.formError(w, r, err, "Venue "+in.Name, "listed", func(status int, fe domain.FieldErrors) {
			s.render(w, r, status, "venue_form", "New venue", newVenuePage(in, fe))
		})
		return
	}

	s.flash(w, r, "Venue "+created.Name+" was successfully listed!")
	http.Redirect(w, r, fmt.Sprintf("/venues/%d", created.ID), http.StatusSeeOther)
}

// editVenueForm handles GET /venues/{id}/edit.
func (s *Server) editVenueForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return
	}
	v, err := s.venues.Get(r.Context(), id)
	if err != nil {
		s.readError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "venue_form", "Edit venue", editVenuePage(id, domain.VenueInputFrom(v), nil))
}

// updateVenue handles POST /venues/{id}/edit.
func (s *Server) updateVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return
	}
	if !s.parseForm(w, r) {
		return
	}
	in := venueInputFromForm(r)

	updated, err := s.venues.Update(r.Context(), id, in)
	if err != nil {
		s.formError(w, r, err, "Venue "+in.Name, "updated", func(status int, fe domain.FieldErrors) {
			s.render(w, r, status, "venue_form", "Edit venue", editVenuePage(id, in, fe))
		})
		return
	}

	s.flash(w, r, "Venue "+updated.Name+" was successfully updated!")
	http.Redirect(w, r, fmt.Sprintf("/venues/%d", id), http.StatusSeeOther)
}

// deleteVenue handles DELETE /venues/{id}. Deleting a venue that does not
// exist also answers 204.
func (s *Server) deleteVenue(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return
	}
	if err := s.venues.Delete(r.Context(), id); err != nil {
		s.log.ErrorContext(r.Context(), "delete venue failed", "id", id, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func newVenuePage(in domain.VenueInput, fe domain.FieldErrors) venueFormPage {
	return venueFormPage{Heading: "List a new venue", Action: "/venues/create", Submit: "Create Venue", Input: in, Errors: fe}
}

func editVenuePage(id int64, in domain.VenueInput, fe domain.FieldErrors) venueFormPage {
	return venueFormPage{
		Heading: "Edit venue " + in.Name,
		Action:  fmt.Sprintf("/venues/%d/edit", id),
		Submit:  "Save Venue",
		Input:   in,
		Errors:  fe,
	}
}
