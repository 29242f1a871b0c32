package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/pkordes/fyyur/internal/domain"
)

// errorPage is the data for the error template.
type errorPage struct {
	Status  int
	Message string
	Ref     string
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, "error", "Not found",
		errorPage{Status: http.StatusNotFound, Message: "The page you are looking for does not exist."})
}

// serverError logs err under a fresh reference id and shows that id to the
// user so a report can be matched to the log line.
func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	ref := uuid.NewString()
	s.log.ErrorContext(r.Context(), "request failed",
		"error", err,
		"ref", ref,
		"method", r.Method,
		"path", r.URL.Path,
	)
	s.render(w, r, http.StatusInternalServerError, "error", "Server error",
		errorPage{Status: http.StatusInternalServerError, Message: "Something went wrong on our end.", Ref: ref})
}

// readError maps an error from a read path: NotFound renders the 404 page,
// anything else the 500 page.
func (s *Server) readError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		s.notFound(w, r)
		return
	}
	s.serverError(w, r, err)
}

// formError decides what a failed form submission renders. Validation
// failures re-render the form with 200 and per-field messages. Missing
// entities on edit are 404. Anything else re-renders the form with 500 and
// flashes "An error occurred. <kind> could not be <verb>.".
// rerender receives the field errors to display.
func (s *Server) formError(w http.ResponseWriter, r *http.Request, err error, kind, verb string,
	rerender func(status int, fe domain.FieldErrors)) {
	var fe domain.FieldErrors
	switch {
	case errors.As(err, &fe):
		s.flash(w, r, "Please correct the errors below.")
		rerender(http.StatusOK, fe)
	case errors.Is(err, domain.ErrNotFound):
		s.notFound(w, r)
	default:
		ref := uuid.NewString()
		s.log.ErrorContext(r.Context(), "form submission failed", "kind", kind, "error", err, "ref", ref)
		s.flash(w, r, "An error occurred. "+kind+" could not be "+verb+".")
		rerender(http.StatusInternalServerError, nil)
	}
}
