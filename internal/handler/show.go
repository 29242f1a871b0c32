package handler

import (
	"net/http"
	"time"

	"github.com/pkordes/fyyur/internal/domain"
)

// listShows handles GET /shows.
func (s *Server) listShows(w http.ResponseWriter, r *http.Request) {
	shows, err := s.shows.List(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "shows", "Shows", shows)
}

// newShowForm handles GET /shows/create. The start time is pre-filled with
// the current time.
func (s *Server) newShowForm(w http.ResponseWriter, r *http.Request) {
	form := showForm{StartTime: time.Now().UTC().Format(startTimeLayouts[0])}
	s.render(w, r, http.StatusOK, "show_form", "New show", form)
}

// createShow handles POST /shows/create.
func (s *Server) createShow(w http.ResponseWriter, r *http.Request) {
	if !s.parseForm(w, r) {
		return
	}
	form := showFormFromRequest(r)
	rerender := func(status int, fe domain.FieldErrors) {
		form.Errors = fe
		s.render(w, r, status, "show_form", "New show", form)
	}

	in, err := form.input()
	if err == nil {
		_, err = s.shows.Create(r.Context(), in)
	}
	if err != nil {
		s.formError(w, r, err, "Show", "listed", rerender)
		return
	}

	s.flash(w, r, "Show was successfully listed!")
	http.Redirect(w, r, "/shows", http.StatusSeeOther)
}
