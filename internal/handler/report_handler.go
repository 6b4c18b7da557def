package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"credigate/internal/port"
)

// ReportHandler serves archived report payloads by protocol.
type ReportHandler struct {
	archive port.ReportArchive
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(archive port.ReportArchive) *ReportHandler {
	return &ReportHandler{archive: archive}
}

// Get handles GET /reports/:protocol.
func (h *ReportHandler) Get(c *gin.Context) {
	protocol := c.Param("protocol")
	payload, err := h.archive.Get(c.Request.Context(), protocol)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", payload)
}
