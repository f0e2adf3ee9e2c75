package oauthmodel

import "strings"

// TokenExchangeResponse is the provider's reply to an exchange request.
// On success AccessToken is set; on failure the provider usually sets Message.
type TokenExchangeResponse struct {
	// AccessToken is the credential handed to the local plugin.
	AccessToken string `json:"access_token,omitempty"`

	// TokenType indicates how to use the access token.
	TokenType string `json:"token_type,omitempty"`

	// ExpiresIn is the lifetime in seconds of the access token.
	ExpiresIn int64 `json:"expires_in,omitempty"`

	// RefreshToken lets the plugin renew the access token on its own.
	RefreshToken string `json:"refresh_token,omitempty"`

	Scope string `json:"scope,omitempty"`

	// Message is the provider's human readable error, if any.
	Message string `json:"message,omitempty"`
}

// HasAccessToken reports whether the response carries a usable token.
func (r TokenExchangeResponse) HasAccessToken() bool {
	return strings.TrimSpace(r.AccessToken) != ""
}
