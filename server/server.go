package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jrsteele09/trovo-auth-bridge/exchange"
	"github.com/jrsteele09/trovo-auth-bridge/internal/config"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

// TokenExchanger trades an authorization code for a token at the provider.
type TokenExchanger interface {
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	AuthCodeURL(state string) string
}

type Server struct {
	env       string // Environment (e.g., "DEV", "PROD")
	mux       *http.ServeMux
	routes    []string
	config    config.Config
	configErr error // non-nil when the credentials are missing or placeholders
	exchanger TokenExchanger
	pages     *pages
	assets    staticAssets
}

// New builds the server. A nil exchanger is replaced by an exchange.Client
// built from cfg. Missing credentials do not fail New; every request reports them instead.
func New(cfg config.Config, exchanger TokenExchanger) (*Server, error) {
	if exchanger == nil {
		exchanger = exchange.NewClient(cfg.Credentials, cfg.Provider, nil)
	}

	p, err := parsePages()
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to parse templates: %w", err)
	}
	assets, err := loadStaticAssets(StaticFilesFS())
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to load static files: %w", err)
	}

	s := &Server{
		env:       strings.ToUpper(cfg.Env),
		mux:       http.NewServeMux(),
		config:    cfg,
		configErr: cfg.Credentials.Validate(),
		exchanger: exchanger,
		pages:     p,
		assets:    assets,
	}
	if s.configErr != nil {
		log.Warn().Err(s.configErr).Msg("credentials missing, every request will report a configuration error")
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

// Configured reports whether the provider credentials are usable.
func (s *Server) Configured() bool {
	return s.configErr == nil
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("*", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Info().Msgf("[%-19s] %s", displayMethod, path)
}
