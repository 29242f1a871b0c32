package handler

import (
	"fmt"
	"net/http"

	"github.com/pkordes/fyyur/internal/domain"
)

// artistFormPage backs artist_form.html for both create and edit.
type artistFormPage struct {
	Heading string
	Action  string
	Submit  string
	Input   domain.ArtistInput
	Errors  domain.FieldErrors
}

// listArtists handles GET /artists.
func (s *Server) listArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := s.artists.List(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "artists", "Artists", artists)
}

// searchArtists handles POST /artists/search.
func (s *Server) searchArtists(w http.ResponseWriter, r *http.Request) {
	if !s.parseForm(w, r) {
		return
	}
	term := r.PostForm.Get("search_term")
	result, err := s.artists.Search(r.Context(), term)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "search", "Artist search",
		searchPage{Kind: "artists", Base: "/artists", Term: term, Result: result})
}

// showArtist handles GET /artists/{id}.
func (s *Server) showArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return
	}
	detail, err := s.artists.GetDetail(r.Context(), id)
	if err != nil {
		s.readError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "artist", detail.Name, detail)
}

// newArtistForm handles GET /artists/create.
func (s *Server) newArtistForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "artist_form", "New artist", newArtistPage(domain.ArtistInput{}, nil))
}

// createArtist handles POST /artists/create.
func (s *Server) createArtist(w http.ResponseWriter, r *http.Request) {
	if !s.parseForm(w, r) {
		return
	}
	in := artistInputFromForm(r)

	created, err := s.artists.Create(r.Context(), in)
	if err != nil {
		s.formError(w, r, err, "Artist "+in.Name, "listed", func(status int, fe domain.FieldErrors) {
			s.render(w, r, status, "artist_form", "New artist", newArtistPage(in, fe))
		})
		return
	}

	s.flash(w, r, "Artist "+created.Name+" was successfully listed!")
	http.Redirect(w, r, fmt.Sprintf("/artists/%d", created.ID), http.StatusSeeOther)
}

// editArtistForm handles GET /artists/{id}/edit.
func (s *Server) editArtistForm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return
	}
	a, err := s.artists.Get(r.Context(), id)
	if err != nil {
		s.readError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "artist_form", "Edit artist", editArtistPage(id, domain.ArtistInputFrom(a), nil))
}

// updateArtist handles POST /artists/{id}/edit.
func (s *Server) updateArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return
	}
	if !s.parseForm(w, r) {
		return
	}
	in := artistInputFromForm(r)

	updated, err := s.artists.Update(r.Context(), id, in)
	if err != nil {
		s.formError(w, r, err, "Artist "+in.Name, "updated", func(status int, fe domain.FieldErrors) {
			s.render(w, r, status, "artist_form", "Edit artist", editArtistPage(id, in, fe))
		})
		return
	}

	s.flash(w, r, "Artist "+updated.Name+" was successfully updated!")
	http.Redirect(w, r, fmt.Sprintf("/artists/%d", id), http.StatusSeeOther)
}

// deleteArtist handles DELETE /artists/{id}.
func (s *Server) deleteArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.notFound(w, r)
		return
	}
	if err := s.artists.Delete(r.Context(), id); err != nil {
		s.log.ErrorContext(r.Context(), "delete artist failed", "id", id, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func newArtistPage(in domain.ArtistInput, fe domain.FieldErrors) artistFormPage {
	return artistFormPage{Heading: "List a new artist", Action: "/artists/create", Submit: "Create Artist", Input: in, Errors: fe}
}

func editArtistPage(id int64, in domain.ArtistInput, fe domain.FieldErrors) artistFormPage {
	return artistFormPage{
		Heading: "Edit artist " + in.Name,
		Action:  fmt.Sprintf("/artists/%d/edit", id),
		Submit:  "Save Artist",
		Input:   in,
		Errors:  fe,
	}
}
