package handler

import (
	"github.com/gin-gonic/gin"

	"credigate/internal/middleware"
	"credigate/internal/service"
)

// BalanceHandler relays the user's prepaid balance.
type BalanceHandler struct {
	balance service.BalanceService
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(balance service.BalanceService) *BalanceHandler {
	return &BalanceHandler{balance: balance}
}

// Get handles GET /balance.
func (h *BalanceHandler) Get(c *gin.Context) {
	tokens := middleware.GetSession(c)
	balance, err := h.balance.Balance(c.Request.Context(), tokens)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, balance)
}
