package oauthmodel

// GrantType represents the OAuth 2.0 grant type used at the token endpoint.
type GrantType string

const (
	// AuthorizationCodeGrant exchanges an authorization code for tokens.
	AuthorizationCodeGrant GrantType = "authorization_code"
)

// TokenExchangeRequest is the JSON body sent to the provider's exchange endpoint.
// It is built once per callback and never stored.
type TokenExchangeRequest struct {
	// ClientSecret is the secret credential for this application.
	// Security: Never log or expose this value
	ClientSecret string `json:"client_secret"`

	// GrantType is always authorization_code for the callback flow.
	GrantType GrantType `json:"grant_type"`

	// Code is the authorization code received on the redirect.
	// Usage: Exchanged once for tokens, then becomes invalid
	Code string `json:"code"`

	// RedirectURI must match the URI registered with the provider.
	RedirectURI string `json:"redirect_uri"`
}

// NewAuthorizationCodeRequest builds the exchange body for code.
func NewAuthorizationCodeRequest(clientSecret, code, redirectURI string) TokenExchangeRequest {
	return TokenExchangeRequest{
		ClientSecret: clientSecret,
		GrantType:    AuthorizationCodeGrant,
		Code:         code,
		RedirectURI:  redirectURI,
	}
}
