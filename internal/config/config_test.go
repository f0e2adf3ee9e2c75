package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jrsteele09/trovo-auth-bridge/internal/config"
	autherrors "github.com/jrsteele09/trovo-auth-bridge/internal/errors"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CLIENT_ID", "CLIENT_SECRET", "REDIRECT_URI", "SECRETS_FILE", "PORT", "ENV",
		"TOKEN_URL", "SCOPES", "EXCHANGE_TIMEOUT", "LOCAL_LISTENER_URL", "CLOSE_DELAY",
	} {
		// Setenv registers the restore, Unsetenv leaves the key absent for the test.
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	c, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", c.Addr())
	require.True(t, c.IsDev())
	require.Equal(t, "https://open-api.trovo.live/openplatform/exchangetoken", c.Provider.TokenURL)
	require.Equal(t, 10*time.Second, c.Provider.ExchangeTimeout)
	require.Equal(t, "http://localhost:31000/", c.Landing.LocalListenerURL)
	require.Equal(t, 3*time.Second, c.Landing.CloseDelay)
	require.Len(t, c.Provider.Scopes, 4)
	require.ErrorIs(t, c.Credentials.Validate(), autherrors.ErrNotConfigured)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CLIENT_ID", "client-123")
	t.Setenv("CLIENT_SECRET", "secret")
	t.Setenv("REDIRECT_URI", "https://example.com/trovo/")
	t.Setenv("PORT", ":9000")

	c, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, ":9000", c.Addr())
	require.Equal(t, "client-123", c.Credentials.ClientID)
	require.Equal(t, "secret", c.Credentials.ClientSecret)
	require.Equal(t, "https://example.com/trovo/", c.Credentials.RedirectURI)
	require.NoError(t, c.Credentials.Validate())
}

func TestLoad_SecretsFileOverridesEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "secrets.toml")
	content := "client_id = \"from-file\"\nclient_secret = \"file-secret\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("SECRETS_FILE", path)
	t.Setenv("CLIENT_ID", "from-env")
	t.Setenv("REDIRECT_URI", "https://env.example.com/")

	c, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "from-file", c.Credentials.ClientID)
	require.Equal(t, "file-secret", c.Credentials.ClientSecret)
	require.Equal(t, "https://env.example.com/", c.Credentials.RedirectURI)
}

func TestLoad_SecretsFileErrors(t *testing.T) {
	clearEnv(t)

	t.Run("missing file", func(t *testing.T) {
		t.Setenv("SECRETS_FILE", filepath.Join(t.TempDir(), "nope.toml"))
		_, err := config.Load()
		require.Error(t, err)
		require.Contains(t, err.Error(), "read secrets file")
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("client_id = "), 0o600))
		t.Setenv("SECRETS_FILE", path)
		_, err := config.Load()
		require.Error(t, err)
		require.Contains(t, err.Error(), "parse secrets file")
	})
}

func TestCredentials_Validate(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		require.ErrorIs(t, config.Credentials{}.Validate(), autherrors.ErrNotConfigured)
	})

	t.Run("placeholder", func(t *testing.T) {
		c := config.Credentials{ClientID: config.PlaceholderClientID, ClientSecret: "x"}
		require.ErrorIs(t, c.Validate(), autherrors.ErrNotConfigured)
	})

	t.Run("whitespace only", func(t *testing.T) {
		require.ErrorIs(t, config.Credentials{ClientID: "  "}.Validate(), autherrors.ErrNotConfigured)
	})

	t.Run("configured", func(t *testing.T) {
		require.NoError(t, config.Credentials{ClientID: "abc"}.Validate())
	})
}
