package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"credigate/internal/domain"
	"credigate/internal/service"
)

// HistoryHandler exposes the consultation history and its exports.
type HistoryHandler struct {
	history service.HistoryService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(history service.HistoryService) *HistoryHandler {
	return &HistoryHandler{history: history}
}

func historyFilter(c *gin.Context) domain.ConsultationFilter {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return domain.ConsultationFilter{
		Slug:   c.Query("slug"),
		Status: domain.ConsultationStatus(c.Query("status")),
		Offset: offset,
		Limit:  limit,
	}
}

// List handles GET /consultas/history.
func (h *HistoryHandler) List(c *gin.Context) {
	filter := historyFilter(c)
	consultations, total, err := h.history.List(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, consultations, PagMeta{
		Total:  total,
		Offset: filter.Offset,
		Limit:  filter.Limit,
	})
}

// Counts handles GET /consultas/history/counts.
func (h *HistoryHandler) Counts(c *gin.Context) {
	counts, err := h.history.Counts(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, counts)
}

// ExportCSV handles GET /consultas/history/export.csv.
func (h *HistoryHandler) ExportCSV(c *gin.Context) {
	filename := fmt.Sprintf("consultations-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := h.history.ExportCSV(c.Request.Context(), c.Writer, historyFilter(c)); err != nil {
		HandleError(c, err)
	}
}

// ExportXLSX handles GET /consultas/history/export.xlsx.
func (h *HistoryHandler) ExportXLSX(c *gin.Context) {
	filename := fmt.Sprintf("consultations-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := h.history.ExportXLSX(c.Request.Context(), c.Writer, historyFilter(c)); err != nil {
		HandleError(c, err)
	}
}
