package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"credigate/internal/middleware"
	"credigate/internal/service"
)

// AuthHandler proxies the login flow and owns the session endpoints.
type AuthHandler struct {
	auth service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var input service.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_INPUT", "email and password are required")
		return
	}

	tokens := middleware.GetSession(c)
	if err := h.auth.Login(c.Request.Context(), tokens, input); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"authenticated": true})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	tokens := middleware.GetSession(c)
	if err := h.auth.Logout(tokens); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"authenticated": false})
}

// Session handles GET /auth/session.
func (h *AuthHandler) Session(c *gin.Context) {
	tokens := middleware.GetSession(c)
	RespondOK(c, h.auth.Info(tokens))
}
