package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/jrsteele09/trovo-auth-bridge/internal/i18n"
	"github.com/rs/zerolog"
)

// AuthorizeHandler sends the browser to the provider login page, which
// redirects back to the callback with a code. The state is a fresh uuid that
// the callback logs; it is not stored, so it is not verified.
func (s *Server) AuthorizeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.configErr != nil {
			s.renderConfigError(w, r, negotiateFormat(r), i18n.ForRequest(r))
			return
		}
		state := uuid.NewString()
		zerolog.Ctx(r.Context()).Info().Str("state", state).Msg("redirecting to provider login")
		http.Redirect(w, r, s.exchanger.AuthCodeURL(state), http.StatusFound)
	}
}

type healthResponse struct {
	Status     string `json:"status"`
	Configured bool   `json:"configured"`
}

// HealthHandler reports liveness. It stays 200 while unconfigured so the
// process is not restarted for a credentials problem.
func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Configured: s.Configured()})
	}
}
