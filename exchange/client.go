package exchange

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jrsteele09/trovo-auth-bridge/internal/config"
	autherrors "github.com/jrsteele09/trovo-auth-bridge/internal/errors"
	"github.com/jrsteele09/trovo-auth-bridge/oauthmodel"
	"golang.org/x/oauth2"
)

const (
	contentTypeJSON  = "application/json"
	clientIDHeader   = "client-id"
	maxResponseBytes = 1 << 20
)

// ProviderError is returned when the provider answers without a usable token.
// Message is the provider's own message field, empty when it sent none.
// DecodeErr is set when the provider sent a body that was not JSON.
type ProviderError struct {
	StatusCode int
	Message    string
	DecodeErr  error
}

func (e *ProviderError) Error() string {
	msg := fmt.Sprintf("provider returned status %d without access token", e.StatusCode)
	if e.Message != "" {
		msg = fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Message)
	}
	if e.DecodeErr != nil {
		msg += fmt.Sprintf(" (decode response: %v)", e.DecodeErr)
	}
	return msg
}

func (e *ProviderError) Unwrap() []error {
	if e.DecodeErr != nil {
		return []error{autherrors.ErrExchangeFailed, e.DecodeErr}
	}
	return []error{autherrors.ErrExchangeFailed}
}

// Client exchanges authorization codes at the provider's token endpoint.
type Client struct {
	httpClient  *http.Client
	endpoint    oauth2.Endpoint
	credentials config.Credentials
	scopes      []string
	now         func() time.Time
}

// NewClient returns a client for the given credentials and provider.
// A nil httpClient gets one bounded by provider.ExchangeTimeout.
func NewClient(credentials config.Credentials, provider config.Provider, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: provider.ExchangeTimeout}
	}
	return &Client{
		httpClient: httpClient,
		endpoint: oauth2.Endpoint{
			AuthURL:  provider.AuthURL,
			TokenURL: provider.TokenURL,
		},
		credentials: credentials,
		scopes:      provider.Scopes,
		now:         time.Now,
	}
}

// Exchange trades code for an access token with a single POST. It never retries.
func (c *Client) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	if err := oauthmodel.ValidateCode(code); err != nil {
		return nil, fmt.Errorf("%w: %w", autherrors.ErrInvalidCode, err)
	}

	body, err := json.Marshal(oauthmodel.NewAuthorizationCodeRequest(c.credentials.ClientSecret, code, c.credentials.RedirectURI))
	if err != nil {
		return nil, autherrors.Wrapf(err, "[Exchange] marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.TokenURL, bytes.NewReader(body))
	if err != nil {
		return nil, autherrors.Wrapf(err, "[Exchange] build request")
	}
	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set("Accept", contentTypeJSON)
	req.Header.Set(clientIDHeader, c.credentials.ClientID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", autherrors.ErrExchangeFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", autherrors.ErrExchangeFailed, err)
	}

	// A body that is not JSON leaves payload empty and falls through to ProviderError.
	// An empty body is not a decode failure.
	var payload oauthmodel.TokenExchangeResponse
	var decodeErr error
	if len(bytes.TrimSpace(raw)) > 0 {
		decodeErr = json.Unmarshal(raw, &payload)
	}

	if resp.StatusCode != http.StatusOK || !payload.HasAccessToken() {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Message: payload.Message, DecodeErr: decodeErr}
	}
	return c.token(payload), nil
}

// AuthCodeURL returns the provider login page that redirects back with a code.
func (c *Client) AuthCodeURL(state string) string {
	cfg := oauth2.Config{
		ClientID:    c.credentials.ClientID,
		Endpoint:    c.endpoint,
		RedirectURL: c.credentials.RedirectURI,
		Scopes:      c.scopes,
	}
	return cfg.AuthCodeURL(state)
}

func (c *Client) token(payload oauthmodel.TokenExchangeResponse) *oauth2.Token {
	tok := &oauth2.Token{
		AccessToken:  payload.AccessToken,
		TokenType:    payload.TokenType,
		RefreshToken: payload.RefreshToken,
	}
	if payload.ExpiresIn > 0 {
		tok.Expiry = c.now().Add(time.Duration(payload.ExpiresIn) * time.Second)
	}
	if payload.Scope != "" {
		tok = tok.WithExtra(map[string]interface{}{"scope": payload.Scope})
	}
	return tok
}
