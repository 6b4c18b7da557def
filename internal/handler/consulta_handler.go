package handler

import (
	"github.com/gin-gonic/gin"

	"credigate/internal/middleware"
	"credigate/internal/service"
)

// ConsultaHandler exposes the consultation catalog and submission flow.
type ConsultaHandler struct {
	consultations service.ConsultationService
}

// NewConsultaHandler creates a new ConsultaHandler.
func NewConsultaHandler(consultations service.ConsultationService) *ConsultaHandler {
	return &ConsultaHandler{consultations: consultations}
}

// Catalog handles GET /consultas — lists every registered product.
func (h *ConsultaHandler) Catalog(c *gin.Context) {
	RespondOK(c, h.consultations.Catalog())
}

// Submit handles POST /consultas/:slug. The form carries the document
// under the strategy's own field name; validation failures come back as a
// normal response with the idle state, never as an HTTP error.
func (h *ConsultaHandler) Submit(c *gin.Context) {
	slug := c.Param("slug")

	if err := c.Request.ParseForm(); err != nil {
		RespondError(c, 400, "INVALID_FORM", "could not parse form data")
		return
	}

	tokens := middleware.GetSession(c)
	state, err := h.consultations.Submit(c.Request.Context(), tokens, slug, c.Request.PostForm)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, state)
}
