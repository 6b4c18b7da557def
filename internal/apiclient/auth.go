package apiclient

import (
	"context"
	"sync"
	"time"

	"credigate/internal/session"
)

const defaultRefreshPath = "/auth/refresh"

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// AuthClient wraps a Client with the session's bearer credentials.
// Each logical call gets at most one refresh-and-retry on 401; after any
// refresh attempt the session holds either a fresh token pair or nothing.
type AuthClient struct {
	client      *Client
	tokens      session.Store
	refreshPath string

	// mu serializes the refresh critical section so two concurrent calls
	// in the same session cannot both rotate the refresh token and
	// invalidate each other's pair.
	mu  sync.Mutex
	now func() time.Time
}

// NewAuthClient creates an authenticated transport over the given bare
// client and token store.
func NewAuthClient(client *Client, tokens session.Store) *AuthClient {
	return &AuthClient{
		client:      client,
		tokens:      tokens,
		refreshPath: defaultRefreshPath,
		now:         time.Now,
	}
}

// Get issues an authenticated GET request.
func (a *AuthClient) Get(ctx context.Context, path string, out any, cfg *RequestConfig) error {
	return a.do(ctx, "GET", path, nil, out, cfg)
}

// Post issues an authenticated POST request.
func (a *AuthClient) Post(ctx context.Context, path string, body, out any, cfg *RequestConfig) error {
	return a.do(ctx, "POST", path, body, out, cfg)
}

// Put issues an authenticated PUT request.
func (a *AuthClient) Put(ctx context.Context, path string, body, out any, cfg *RequestConfig) error {
	return a.do(ctx, "PUT", path, body, out, cfg)
}

// Delete issues an authenticated DELETE request.
func (a *AuthClient) Delete(ctx context.Context, path string, out any, cfg *RequestConfig) error {
	return a.do(ctx, "DELETE", path, nil, out, cfg)
}

func (a *AuthClient) do(ctx context.Context, method, path string, body, out any, cfg *RequestConfig) error {
	token := a.usableAccessToken()

	err := a.call(ctx, method, path, body, out, cfg, token)
	if err == nil || !IsKind(err, KindUnauthorized) {
		return err
	}

	newToken, refreshErr := a.refresh(ctx, token)
	if refreshErr != nil {
		// The refresh failure is surfaced, not the original 401.
		return refreshErr
	}
	if newToken == "" {
		// No refresh token existed; the session was cleared and the
		// original 401 stands.
		return err
	}

	// Exactly one retry. A second 401 propagates without another refresh.
	return a.call(ctx, method, path, body, out, cfg, newToken)
}

// call performs one request with the Authorization header attached when a
// token is present. Absence of a token is not an error; the request simply
// goes out unauthenticated.
func (a *AuthClient) call(ctx context.Context, method, path string, body, out any, cfg *RequestConfig, token string) error {
	merged := &RequestConfig{Headers: map[string]string{}}
	if cfg != nil {
		merged.Params = cfg.Params
		merged.Timeout = cfg.Timeout
		for k, v := range cfg.Headers {
			merged.Headers[k] = v
		}
	}
	if token != "" {
		merged.Headers["Authorization"] = "Bearer " + token
	}
	return a.client.do(ctx, method, path, body, out, merged)
}

// usableAccessToken returns the session's access token, treating one that
// is verifiably expired as absent so the first round trip is not wasted.
func (a *AuthClient) usableAccessToken() string {
	token := a.tokens.AccessToken()
	if token == "" || session.Expired(token, a.now()) {
		return ""
	}
	return token
}

// refresh rotates the token pair. It returns the new access token, or
// ("", nil) when no refresh token exists, or ("", err) when the refresh
// itself failed. Every failure path clears both session tokens; clearing
// failures are swallowed so the surfaced error stays the refresh failure.
func (a *AuthClient) refresh(ctx context.Context, staleToken string) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	// A concurrent call may have finished refreshing while this one waited
	// on the lock; reuse its token instead of rotating again.
	if current := a.tokens.AccessToken(); current != "" && current != staleToken {
		return current, nil
	}

	refreshToken := a.tokens.RefreshToken()
	if refreshToken == "" {
		_ = a.tokens.Clear()
		return "", nil
	}

	// The refresh call bypasses the authenticated wrapper so a 401 on the
	// refresh endpoint cannot recurse into another refresh.
	var resp refreshResponse
	if err := a.client.Post(ctx, a.refreshPath, refreshRequest{RefreshToken: refreshToken}, &resp, nil); err != nil {
		_ = a.tokens.Clear()
		return "", err
	}
	if resp.AccessToken == "" {
		_ = a.tokens.Clear()
		return "", &Error{
			Kind:    KindUnauthorized,
			Code:    "REFRESH_FAILED",
			Message: "token refresh returned no access token",
		}
	}

	if err := a.tokens.SetTokens(resp.AccessToken, resp.RefreshToken); err != nil {
		_ = a.tokens.Clear()
		return "", err
	}
	return resp.AccessToken, nil
}
