package exchange_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jrsteele09/trovo-auth-bridge/exchange"
	"github.com/jrsteele09/trovo-auth-bridge/internal/config"
	autherrors "github.com/jrsteele09/trovo-auth-bridge/internal/errors"
	"github.com/stretchr/testify/require"
)

var testCredentials = config.Credentials{
	ClientID:     "client-123",
	ClientSecret: "secret-456",
	RedirectURI:  "https://bridge.example.com/",
}

func newProvider(t *testing.T, status int, body string, calls *int32, inspect func(r *http.Request)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		if inspect != nil {
			inspect(r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newClient(tokenURL string) *exchange.Client {
	return exchange.NewClient(testCredentials, config.Provider{
		AuthURL:         "https://open.trovo.live/page/login.html",
		TokenURL:        tokenURL,
		Scopes:          []string{"user_details_self", "chat_send_self"},
		ExchangeTimeout: 2 * time.Second,
	}, nil)
}

func TestExchange_Success(t *testing.T) {
	var calls int32
	var gotBody map[string]string
	var gotHeaders http.Header
	var gotMethod string
	srv := newProvider(t, http.StatusOK,
		`{"access_token":"tok-abc","token_type":"OAuth","expires_in":3600,"refresh_token":"ref-xyz","scope":"user_details_self"}`,
		&calls, func(r *http.Request) {
			gotMethod = r.Method
			gotHeaders = r.Header.Clone()
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
		})

	tok, err := newClient(srv.URL).Exchange(context.Background(), "code-1")
	require.NoError(t, err)
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
	require.Equal(t, http.MethodPost, gotMethod)

	require.Equal(t, "tok-abc", tok.AccessToken)
	require.Equal(t, "ref-xyz", tok.RefreshToken)
	require.Equal(t, "OAuth", tok.TokenType)
	require.False(t, tok.Expiry.IsZero())
	require.Equal(t, "user_details_self", tok.Extra("scope"))

	require.Equal(t, "application/json", gotHeaders.Get("Content-Type"))
	require.Equal(t, "application/json", gotHeaders.Get("Accept"))
	require.Equal(t, "client-123", gotHeaders.Get("client-id"))
	require.Equal(t, map[string]string{
		"client_secret": "secret-456",
		"grant_type":    "authorization_code",
		"code":          "code-1",
		"redirect_uri":  "https://bridge.example.com/",
	}, gotBody)
}

func TestExchange_ProviderFailures(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{name: "non 200 with message", status: http.StatusBadRequest, body: `{"message":"Invalid code"}`, wantMessage: "Invalid code"},
		{name: "non 200 without body", status: http.StatusInternalServerError, body: ``},
		{name: "200 without token", status: http.StatusOK, body: `{"message":"something odd"}`, wantMessage: "something odd"},
		{name: "200 with empty token", status: http.StatusOK, body: `{"access_token":""}`},
		{name: "non 200 with token", status: http.StatusUnauthorized, body: `{"access_token":"leak"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var calls int32
			srv := newProvider(t, tc.status, tc.body, &calls, nil)

			tok, err := newClient(srv.URL).Exchange(context.Background(), "code-1")
			require.Nil(t, tok)
			require.Error(t, err)
			require.ErrorIs(t, err, autherrors.ErrExchangeFailed)
			require.Equal(t, int32(1), atomic.LoadInt32(&calls))

			var perr *exchange.ProviderError
			require.ErrorAs(t, err, &perr)
			require.Equal(t, tc.status, perr.StatusCode)
			require.Equal(t, tc.wantMessage, perr.Message)
			require.NotContains(t, err.Error(), "leak")
			require.Nil(t, perr.DecodeErr)
		})
	}
}

func TestExchange_NonJSONBodyKeepsDecodeError(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusBadGateway} {
		var calls int32
		srv := newProvider(t, status, `<html>gateway</html>`, &calls, nil)

		_, err := newClient(srv.URL).Exchange(context.Background(), "code-1")
		require.ErrorIs(t, err, autherrors.ErrExchangeFailed)

		var perr *exchange.ProviderError
		require.ErrorAs(t, err, &perr)
		require.Equal(t, status, perr.StatusCode)
		require.Empty(t, perr.Message)
		require.Error(t, perr.DecodeErr)

		var syntaxErr *json.SyntaxError
		require.ErrorAs(t, err, &syntaxErr)
		require.Contains(t, err.Error(), "decode response")
	}
}

func TestExchange_NetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	tok, err := newClient(addr).Exchange(context.Background(), "code-1")
	require.Nil(t, tok)
	require.ErrorIs(t, err, autherrors.ErrExchangeFailed)

	var perr *exchange.ProviderError
	require.False(t, autherrors.As(err, &perr))
}

func TestExchange_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	client := exchange.NewClient(testCredentials, config.Provider{TokenURL: srv.URL}, &http.Client{Timeout: 50 * time.Millisecond})
	_, err := client.Exchange(context.Background(), "code-1")
	require.ErrorIs(t, err, autherrors.ErrExchangeFailed)
}

func TestExchange_InvalidCodeSkipsProvider(t *testing.T) {
	var calls int32
	srv := newProvider(t, http.StatusOK, `{"access_token":"tok"}`, &calls, nil)

	_, err := newClient(srv.URL).Exchange(context.Background(), "bad code\n")
	require.ErrorIs(t, err, autherrors.ErrInvalidCode)
	require.Zero(t, atomic.LoadInt32(&calls))
}

func TestAuthCodeURL(t *testing.T) {
	raw := newClient("https://unused.example.com").AuthCodeURL("")
	require.True(t, strings.HasPrefix(raw, "https://open.trovo.live/page/login.html?"))

	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()
	require.Equal(t, "code", q.Get("response_type"))
	require.Equal(t, "client-123", q.Get("client_id"))
	require.Equal(t, "https://bridge.example.com/", q.Get("redirect_uri"))
	require.Equal(t, "user_details_self chat_send_self", q.Get("scope"))
}
