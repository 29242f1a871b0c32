package handler

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
)

// sessionName is the cookie that carries flash messages between a POST and
// the page it redirects to.
const sessionName = "fyyur"

// NewSessionStore returns the cookie store used for flash messages.
// secret signs the cookie; it is not encrypted because it only carries
// status messages.
func NewSessionStore(secret []byte, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// flash queues msg for the next rendered page.
func (s *Server) flash(w http.ResponseWriter, r *http.Request, msg string) {
	// Get returns a usable new session alongside a decode error, e.g. after a secret rotation.
	sess, err := s.sessions.Get(r, sessionName)
	if err != nil {
		s.log.WarnContext(r.Context(), "discarding unreadable session", "error", err)
	}
	sess.AddFlash(msg)
	if err := sess.Save(r, w); err != nil {
		s.log.ErrorContext(r.Context(), "saving flash failed", "error", err)
	}
}

// takeFlashes pops every queued message. It must run before the response
// status is written because clearing the flashes rewrites the cookie.
func (s *Server) takeFlashes(w http.ResponseWriter, r *http.Request) []string {
	sess, err := s.sessions.Get(r, sessionName)
	if err != nil {
		return nil
	}
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(r, w); err != nil {
		s.log.ErrorContext(r.Context(), "clearing flashes failed", "error", err)
	}

	msgs := make([]string, 0, len(raw))
	for _, f := range raw {
		msgs = append(msgs, fmt.Sprint(f))
	}
	return msgs
}
