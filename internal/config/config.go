package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	autherrors "github.com/jrsteele09/trovo-auth-bridge/internal/errors"
)

// PlaceholderClientID is the value shipped in the sample secrets file.
// A client id equal to it is treated as not configured.
const PlaceholderClientID = "SEU_CLIENT_ID_DA_TROVO"

// Credentials identify this application to the provider.
type Credentials struct {
	ClientID     string `env:"CLIENT_ID"     toml:"client_id"`
	ClientSecret string `env:"CLIENT_SECRET" toml:"client_secret"`
	RedirectURI  string `env:"REDIRECT_URI"  toml:"redirect_uri"`
}

// Validate returns ErrNotConfigured when the client id is missing or still the placeholder.
func (c Credentials) Validate() error {
	id := strings.TrimSpace(c.ClientID)
	if id == "" || id == PlaceholderClientID {
		return autherrors.ErrNotConfigured
	}
	return nil
}

// Provider holds the identity provider endpoints.
type Provider struct {
	AuthURL  string   `env:"AUTH_URL"  envDefault:"https://open.trovo.live/page/login.html"`
	TokenURL string   `env:"TOKEN_URL" envDefault:"https://open-api.trovo.live/openplatform/exchangetoken"`
	Scopes   []string `env:"SCOPES"    envDefault:"channel_details_self,channel_update_self,user_details_self,chat_send_self" envSeparator:","`

	// ExchangeTimeout bounds the outbound token exchange call.
	ExchangeTimeout time.Duration `env:"EXCHANGE_TIMEOUT" envDefault:"10s"`
}

// Landing holds the links and handoff settings rendered into pages.
type Landing struct {
	DownloadURL string `env:"DOWNLOAD_URL" envDefault:"https://obsproject.com/forum/resources/game-detector.2260/"`
	SourceURL   string `env:"SOURCE_URL"   envDefault:"https://github.com/FabioZumbi12/OBSGameDetector"`

	// LocalListenerURL is where the browser delivers the token to the plugin.
	LocalListenerURL string        `env:"LOCAL_LISTENER_URL" envDefault:"http://localhost:31000/"`
	CloseDelay       time.Duration `env:"CLOSE_DELAY"        envDefault:"3s"`
}

// Config is loaded once at start up and never mutated afterwards.
type Config struct {
	Port        string `env:"PORT"         envDefault:"8080"`
	AppName     string `env:"APP_NAME"     envDefault:"Trovo Auth"`
	Env         string `env:"ENV"          envDefault:"DEV"`
	LogLevel    string `env:"LOG_LEVEL"    envDefault:"info"`
	SecretsFile string `env:"SECRETS_FILE"`

	Credentials Credentials
	Provider    Provider
	Landing     Landing
}

// Load reads the environment and, when SECRETS_FILE is set, overlays the secrets file.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if c.SecretsFile != "" {
		secrets, err := readSecretsFile(c.SecretsFile)
		if err != nil {
			return Config{}, err
		}
		c.Credentials = secrets.overlay(c.Credentials)
	}
	return c, nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// IsDev reports whether the service runs in the development environment.
func (c Config) IsDev() bool {
	return strings.EqualFold(c.Env, "DEV")
}
