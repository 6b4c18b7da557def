package middleware

import (
	"github.com/gin-gonic/gin"

	"credigate/internal/config"
	"credigate/internal/session"
)

const contextKeySession = "session_store"

// Session attaches a cookie-backed token store to every request so
// handlers and the transport share one view of the session.
func Session(cfg config.SessionConfig, production bool) gin.HandlerFunc {
	cookieCfg := session.CookieConfig{
		Secure:        production,
		Domain:        cfg.CookieDomain,
		AccessMaxAge:  cfg.AccessMaxAge,
		RefreshMaxAge: cfg.RefreshMaxAge,
	}
	return func(c *gin.Context) {
		c.Set(contextKeySession, session.NewCookieStore(c, cookieCfg))
		c.Next()
	}
}

// GetSession extracts the request's token store. A missing store (routes
// mounted without the Session middleware) yields an isolated in-memory
// store so callers never nil-check.
func GetSession(c *gin.Context) session.Store {
	if val, exists := c.Get(contextKeySession); exists {
		if store, ok := val.(session.Store); ok {
			return store
		}
	}
	return session.NewMemoryStore("", "")
}
