package server

import (
	"net/http"

	"github.com/jrsteele09/trovo-auth-bridge/exchange"
	autherrors "github.com/jrsteele09/trovo-auth-bridge/internal/errors"
	"github.com/jrsteele09/trovo-auth-bridge/internal/i18n"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

// CallbackHandler is the provider redirect target. Without a code it renders
// the landing page; with one it exchanges the code and hands the token to the
// local plugin through the browser.
func (s *Server) CallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := i18n.ForRequest(r)
		format := negotiateFormat(r)

		if s.configErr != nil {
			s.renderConfigError(w, r, format, t)
			return
		}
		if format == formatJSON {
			writeJSONError(w, http.StatusMethodNotAllowed, t.T(i18n.MethodNotAllowed))
			return
		}

		query := r.URL.Query()
		if !query.Has("code") {
			s.renderLanding(w, r, t)
			return
		}

		token, err := s.exchanger.Exchange(r.Context(), query.Get("code"))
		if err != nil {
			s.renderExchangeError(w, r, t, err)
			return
		}

		zerolog.Ctx(r.Context()).Info().
			Str("state", query.Get("state")).
			Bool("refresh_token", token.RefreshToken != "").
			Time("expiry", token.Expiry).
			Msg("authorization code exchanged")
		s.renderSuccess(w, r, t, token)
	}
}

func (s *Server) renderSuccess(w http.ResponseWriter, r *http.Request, t i18n.Translator, token *oauth2.Token) {
	data := pageData{
		Translator: t,
		Title:      t.T(i18n.AuthSuccessTitle),
		Handoff: &tokenHandoff{
			ListenerURL:      s.config.Landing.LocalListenerURL,
			Token:            token.AccessToken,
			RefreshToken:     token.RefreshToken,
			CloseDelayMillis: s.config.Landing.CloseDelay.Milliseconds(),
		},
	}
	w.Header().Set("Cache-Control", "no-store")
	if err := renderPage(w, http.StatusOK, s.pages.success, data); err != nil {
		zerolog.Ctx(r.Context()).Err(err).Msg("failed to render success page")
	}
}

// renderExchangeError shows the provider's own message when it sent one and a
// generic one otherwise. Transport and decoding failures are not told apart.
func (s *Server) renderExchangeError(w http.ResponseWriter, r *http.Request, t i18n.Translator, err error) {
	logger := zerolog.Ctx(r.Context())

	if autherrors.Is(err, autherrors.ErrInvalidCode) {
		logger.Warn().Err(err).Msg("rejected authorization code")
		s.renderErrorPage(w, r, http.StatusBadRequest, t, t.T(i18n.AuthErrorTitle), t.T(i18n.AuthErrorMessage)+t.T(i18n.InvalidCode))
		return
	}

	message := t.T(i18n.UnknownError)
	var providerErr *exchange.ProviderError
	if autherrors.As(err, &providerErr) {
		if providerErr.Message != "" {
			message = providerErr.Message
		}
		logger.Warn().
			Int("provider_status", providerErr.StatusCode).
			Str("provider_message", providerErr.Message).
			AnErr("decode_error", providerErr.DecodeErr).
			Msg("token exchange rejected")
	} else {
		logger.Error().Err(err).Msg("token exchange failed")
	}
	s.renderErrorPage(w, r, http.StatusBadGateway, t, t.T(i18n.AuthErrorTitle), t.T(i18n.AuthErrorMessage)+message)
}
