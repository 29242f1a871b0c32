package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkordes/fyyur/internal/domain"
)

type homePage struct {
	Venues  []domain.Venue
	Artists []domain.Artist
}

// home handles GET /.
func (s *Server) home(w http.ResponseWriter, r *http.Request) {
	venues, err := s.venues.ListRecent(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	artists, err := s.artists.ListRecent(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.render(w, r, http.StatusOK, "home", "Home", homePage{Venues: venues, Artists: artists})
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// health handles GET /healthz. It answers 503 when the database does not
// respond to a ping.
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Database: "ok"}
	status := http.StatusOK
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			s.log.WarnContext(r.Context(), "health check: database unreachable", "error", err)
			resp = healthResponse{Status: "degraded", Database: "unreachable"}
			status = http.StatusServiceUnavailable
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
