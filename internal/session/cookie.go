package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	accessCookieName  = "accessToken"
	refreshCookieName = "refreshToken"
)

// CookieConfig controls how session cookies are written.
type CookieConfig struct {
	// Secure marks cookies HTTPS-only; enabled in production.
	Secure bool
	// Domain is the cookie domain, empty for host-only cookies.
	Domain string
	// AccessMaxAge is the access cookie lifetime in seconds (default 24h).
	AccessMaxAge int
	// RefreshMaxAge is the refresh cookie lifetime in seconds (default 7d).
	RefreshMaxAge int
}

// cookieStore reads tokens from the request cookies and writes rotations
// to the response. Writes are also kept in memory so reads within the same
// request observe the rotated pair, not the stale request cookie.
type cookieStore struct {
	c       *gin.Context
	cfg     CookieConfig
	access  *string
	refresh *string
}

// NewCookieStore creates a Store reading and writing the session cookies
// of the given request. Cookies are httpOnly with SameSite=Lax.
func NewCookieStore(c *gin.Context, cfg CookieConfig) Store {
	if cfg.AccessMaxAge == 0 {
		cfg.AccessMaxAge = 60 * 60 * 24
	}
	if cfg.RefreshMaxAge == 0 {
		cfg.RefreshMaxAge = 60 * 60 * 24 * 7
	}
	return &cookieStore{c: c, cfg: cfg}
}

func (s *cookieStore) AccessToken() string {
	if s.access != nil {
		return *s.access
	}
	token, err := s.c.Cookie(accessCookieName)
	if err != nil {
		return ""
	}
	return token
}

func (s *cookieStore) RefreshToken() string {
	if s.refresh != nil {
		return *s.refresh
	}
	token, err := s.c.Cookie(refreshCookieName)
	if err != nil {
		return ""
	}
	return token
}

func (s *cookieStore) SetTokens(accessToken, refreshToken string) error {
	s.set(accessCookieName, accessToken, s.cfg.AccessMaxAge)
	s.set(refreshCookieName, refreshToken, s.cfg.RefreshMaxAge)
	s.access = &accessToken
	s.refresh = &refreshToken
	return nil
}

func (s *cookieStore) Clear() error {
	s.set(accessCookieName, "", -1)
	s.set(refreshCookieName, "", -1)
	empty := ""
	s.access = &empty
	s.refresh = &empty
	return nil
}

func (s *cookieStore) set(name, value string, maxAge int) {
	s.c.SetSameSite(http.SameSiteLaxMode)
	s.c.SetCookie(name, value, maxAge, "/", s.cfg.Domain, s.cfg.Secure, true)
}
