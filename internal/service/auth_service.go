package service

import (
	"context"
	"fmt"
	"time"

	"credigate/internal/apiclient"
	"credigate/internal/domain"
	"credigate/internal/session"
)

// LoginInput is the DTO for login requests.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SessionInfo reports whether the current session holds a usable token.
type SessionInfo struct {
	Authenticated bool       `json:"authenticated"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty"`
}

// AuthService proxies authentication to the credit backend and owns the
// session cookie lifecycle. The gateway never verifies credentials itself.
type AuthService interface {
	Login(ctx context.Context, tokens session.Store, input LoginInput) error
	Logout(tokens session.Store) error
	Info(tokens session.Store) SessionInfo
}

type authService struct {
	backend *apiclient.Client
}

// NewAuthService creates an AuthService over the bare backend transport.
// Login must not run through the authenticated wrapper: a stale session
// would trigger a pointless refresh attempt on every sign-in.
func NewAuthService(backend *apiclient.Client) AuthService {
	return &authService{backend: backend}
}

type loginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func (s *authService) Login(ctx context.Context, tokens session.Store, input LoginInput) error {
	var resp loginResponse
	err := s.backend.Post(ctx, "/auth/login", input, &resp, nil)
	if err != nil {
		if apiclient.IsKind(err, apiclient.KindUnauthorized) {
			return domain.ErrInvalidCredentials
		}
		return fmt.Errorf("auth.Login: %w", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		return fmt.Errorf("auth.Login: backend returned incomplete token pair")
	}
	if err := tokens.SetTokens(resp.AccessToken, resp.RefreshToken); err != nil {
		return fmt.Errorf("auth.Login: persisting session: %w", err)
	}
	return nil
}

func (s *authService) Logout(tokens session.Store) error {
	return tokens.Clear()
}

func (s *authService) Info(tokens session.Store) SessionInfo {
	token := tokens.AccessToken()
	if token == "" || session.Expired(token, time.Now()) {
		return SessionInfo{Authenticated: false}
	}
	info := SessionInfo{Authenticated: true}
	if exp := session.PeekExpiry(token); !exp.IsZero() {
		info.ExpiresAt = &exp
	}
	return info
}
