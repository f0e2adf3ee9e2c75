package server

import (
	"net/http"

	"github.com/jrsteele09/trovo-auth-bridge/internal/i18n"
	"github.com/rs/zerolog"
)

// pageData is shared by every page. The embedded Translator gives
// templates {{.T "key"}} and {{.Lang}}.
type pageData struct {
	i18n.Translator
	Title string

	// Landing
	DownloadURL string
	SourceURL   string

	// Error pages
	Heading string
	Detail  string

	// Success page
	Handoff *tokenHandoff
}

// tokenHandoff is what the success page script delivers to the local plugin.
type tokenHandoff struct {
	ListenerURL      string
	Token            string
	RefreshToken     string
	CloseDelayMillis int64
}

// renderLanding renders the download page shown when no code is present.
func (s *Server) renderLanding(w http.ResponseWriter, r *http.Request, t i18n.Translator) {
	data := pageData{
		Translator:  t,
		Title:       t.T(i18n.Title),
		DownloadURL: s.config.Landing.DownloadURL,
		SourceURL:   s.config.Landing.SourceURL,
	}
	if err := renderPage(w, http.StatusOK, s.pages.landing, data); err != nil {
		zerolog.Ctx(r.Context()).Err(err).Msg("failed to render landing page")
	}
}

// renderErrorPage renders the shared error layout with heading and detail.
func (s *Server) renderErrorPage(w http.ResponseWriter, r *http.Request, status int, t i18n.Translator, heading, detail string) {
	data := pageData{
		Translator: t,
		Title:      heading,
		Heading:    heading,
		Detail:     detail,
	}
	if err := renderPage(w, status, s.pages.failure, data); err != nil {
		zerolog.Ctx(r.Context()).Err(err).Msg("failed to render error page")
	}
}

// renderConfigError answers a request made while credentials are missing.
func (s *Server) renderConfigError(w http.ResponseWriter, r *http.Request, format responseFormat, t i18n.Translator) {
	if format == formatJSON {
		writeJSONError(w, http.StatusInternalServerError, t.T(i18n.ConfigMissing))
		return
	}
	s.renderErrorPage(w, r, http.StatusInternalServerError, t, t.T(i18n.ConfigError), t.T(i18n.ConfigMissing))
}
