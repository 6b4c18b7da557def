package apiclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"credigate/internal/apiclient"
	"credigate/internal/session"
)

// backendStub simulates the credit backend: /balance requires a bearer
// token from the valid set, /auth/refresh trades refresh tokens for a
// new pair.
type backendStub struct {
	validAccess   map[string]bool
	validRefresh  map[string]bool
	nextAccess    string
	nextRefresh   string
	refreshStatus int

	balanceCalls int32
	refreshCalls int32
}

func (b *backendStub) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/balance", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&b.balanceCalls, 1)
		token := ""
		if auth := r.Header.Get("Authorization"); len(auth) > 7 {
			token = auth[7:]
		}
		if !b.validAccess[token] {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"token expirado"}`))
			return
		}
		_, _ = w.Write([]byte(`{"available":42}`))
	})
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&b.refreshCalls, 1)
		if b.refreshStatus != 0 {
			w.WriteHeader(b.refreshStatus)
			return
		}
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if !b.validRefresh[req["refreshToken"]] {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"accessToken":  b.nextAccess,
			"refreshToken": b.nextRefresh,
		})
	})
	return mux
}

func TestAuthClient_AttachesBearerToken(t *testing.T) {
	stub := &backendStub{validAccess: map[string]bool{"good": true}}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	tokens := session.NewMemoryStore("good", "refresh-1")
	ac := apiclient.NewAuthClient(apiclient.NewClient(srv.URL, 0), tokens)

	var out map[string]any
	err := ac.Get(context.Background(), "/balance", &out, nil)

	assert.NoError(t, err)
	assert.Equal(t, int32(1), stub.balanceCalls)
	assert.Equal(t, int32(0), stub.refreshCalls)
}

func TestAuthClient_RefreshesOnceOn401(t *testing.T) {
	stub := &backendStub{
		validAccess:  map[string]bool{"fresh": true},
		validRefresh: map[string]bool{"refresh-1": true},
		nextAccess:   "fresh",
		nextRefresh:  "refresh-2",
	}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	tokens := session.NewMemoryStore("stale", "refresh-1")
	ac := apiclient.NewAuthClient(apiclient.NewClient(srv.URL, 0), tokens)

	var out map[string]any
	err := ac.Get(context.Background(), "/balance", &out, nil)

	assert.NoError(t, err)
	assert.Equal(t, float64(42), out["available"])
	assert.Equal(t, int32(2), stub.balanceCalls)
	assert.Equal(t, int32(1), stub.refreshCalls)
	// Rotated pair is stored.
	assert.Equal(t, "fresh", tokens.AccessToken())
	assert.Equal(t, "refresh-2", tokens.RefreshToken())
}

func TestAuthClient_RefreshFailureClearsSession(t *testing.T) {
	stub := &backendStub{
		validAccess:  map[string]bool{},
		validRefresh: map[string]bool{},
	}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	tokens := session.NewMemoryStore("stale", "bad-refresh")
	ac := apiclient.NewAuthClient(apiclient.NewClient(srv.URL, 0), tokens)

	err := ac.Get(context.Background(), "/balance", nil, nil)

	// The refresh failure is surfaced, not the original 401, and both
	// tokens are gone.
	assert.True(t, apiclient.IsKind(err, apiclient.KindUnauthorized))
	assert.Empty(t, tokens.AccessToken())
	assert.Empty(t, tokens.RefreshToken())
	assert.Equal(t, int32(1), stub.balanceCalls)
	assert.Equal(t, int32(1), stub.refreshCalls)
}

func TestAuthClient_NoRefreshTokenReturnsOriginal401(t *testing.T) {
	stub := &backendStub{validAccess: map[string]bool{}}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	tokens := session.NewMemoryStore("stale", "")
	ac := apiclient.NewAuthClient(apiclient.NewClient(srv.URL, 0), tokens)

	err := ac.Get(context.Background(), "/balance", nil, nil)

	apiErr, ok := apiclient.AsError(err)
	assert.True(t, ok)
	assert.Equal(t, apiclient.KindUnauthorized, apiErr.Kind)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, int32(0), stub.refreshCalls)
	assert.Empty(t, tokens.AccessToken())
}

// A 401 on the retried request must propagate without a second refresh.
func TestAuthClient_NoSecondRefresh(t *testing.T) {
	stub := &backendStub{
		validAccess:  map[string]bool{}, // even the refreshed token is rejected
		validRefresh: map[string]bool{"refresh-1": true},
		nextAccess:   "still-bad",
		nextRefresh:  "refresh-2",
	}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	tokens := session.NewMemoryStore("stale", "refresh-1")
	ac := apiclient.NewAuthClient(apiclient.NewClient(srv.URL, 0), tokens)

	err := ac.Get(context.Background(), "/balance", nil, nil)

	assert.True(t, apiclient.IsKind(err, apiclient.KindUnauthorized))
	assert.Equal(t, int32(2), stub.balanceCalls)
	assert.Equal(t, int32(1), stub.refreshCalls)
}

// When another call already rotated the pair, a waiting call reuses the
// fresh token instead of spending the new refresh token again.
func TestAuthClient_ReusesConcurrentRefresh(t *testing.T) {
	stub := &backendStub{
		validAccess:  map[string]bool{"fresh": true},
		validRefresh: map[string]bool{"refresh-1": true},
		nextAccess:   "fresh",
		nextRefresh:  "refresh-2",
	}
	srv := httptest.NewServer(stub.handler())
	defer srv.Close()

	tokens := session.NewMemoryStore("stale", "refresh-1")
	client := apiclient.NewClient(srv.URL, 0)
	ac := apiclient.NewAuthClient(client, tokens)

	done := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			done <- ac.Get(context.Background(), "/balance", nil, nil)
		}()
	}
	assert.NoError(t, <-done)
	assert.NoError(t, <-done)
	assert.Equal(t, int32(1), stub.refreshCalls)
}
