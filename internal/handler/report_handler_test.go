package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"credigate/internal/domain"
	"credigate/internal/handler"
	"credigate/mocks"
)

func reportRouter(archive *mocks.MockReportArchive) *gin.Engine {
	r := gin.New()
	h := handler.NewReportHandler(archive)
	r.GET("/reports/:protocol", h.Get)
	return r
}

func TestReportHandler_Get(t *testing.T) {
	archive := new(mocks.MockReportArchive)
	archive.On("Get", mock.Anything, "P-100").Return(json.RawMessage(`{"status":"CLEAR","protocol":"P-100"}`), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/P-100", http.NoBody)
	reportRouter(archive).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"CLEAR","protocol":"P-100"}`, w.Body.String())
}

func TestReportHandler_NotArchived(t *testing.T) {
	archive := new(mocks.MockReportArchive)
	archive.On("Get", mock.Anything, "P-404").Return(nil, domain.ErrReportNotArchived)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/reports/P-404", http.NoBody)
	reportRouter(archive).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "REPORT_NOT_ARCHIVED", resp.Error.Code)
}
