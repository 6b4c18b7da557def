package apiclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"credigate/internal/apiclient"
)

func TestClient_GetDecodesJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/credit/assess-cpf/52998224725", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"CLEAR","protocol":"P-123"}`))
	}))
	defer srv.Close()

	c := apiclient.NewClient(srv.URL, 0)
	var out struct {
		Status   string `json:"status"`
		Protocol string `json:"protocol"`
	}
	err := c.Get(context.Background(), "/credit/assess-cpf/52998224725", &out, nil)

	assert.NoError(t, err)
	assert.Equal(t, "CLEAR", out.Status)
	assert.Equal(t, "P-123", out.Protocol)
}

func TestClient_PostSendsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]string
		assert.NoError(t, readJSON(r, &body))
		assert.Equal(t, "user@test.com", body["email"])
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := apiclient.NewClient(srv.URL, 0)
	err := c.Post(context.Background(), "auth/login", map[string]string{"email": "user@test.com"}, nil, nil)
	assert.NoError(t, err)
}

func TestClient_ParamsAndHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := apiclient.NewClient(srv.URL, 0)
	var out map[string]any
	err := c.Get(context.Background(), "/balance", &out, &apiclient.RequestConfig{
		Params:  map[string]string{"limit": "10"},
		Headers: map[string]string{"Authorization": "Bearer tok-1"},
	})
	assert.NoError(t, err)
}

func TestClient_NonSuccessBecomesTypedError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"relatório não encontrado"}`))
	}))
	defer srv.Close()

	c := apiclient.NewClient(srv.URL, 0)
	var out map[string]any
	err := c.Get(context.Background(), "/reports/nope", &out, nil)

	apiErr, ok := apiclient.AsError(err)
	assert.True(t, ok)
	assert.Equal(t, apiclient.KindNotFound, apiErr.Kind)
	assert.Equal(t, "relatório não encontrado", apiErr.Message)
}

func TestClient_ConnectionRefusedIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := apiclient.NewClient(srv.URL, 0)
	err := c.Get(context.Background(), "/balance", nil, nil)
	assert.True(t, apiclient.IsKind(err, apiclient.KindNetwork))
}

func TestClient_PerCallTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	c := apiclient.NewClient(srv.URL, 0)
	start := time.Now()
	err := c.Get(context.Background(), "/slow", nil, &apiclient.RequestConfig{Timeout: 50 * time.Millisecond})

	assert.True(t, apiclient.IsKind(err, apiclient.KindNetwork))
	assert.Less(t, time.Since(start), time.Second)
}

func TestClient_EmptyBodyWithExpectedOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := apiclient.NewClient(srv.URL, 0)
	var out map[string]any
	err := c.Get(context.Background(), "/whatever", &out, nil)

	apiErr, ok := apiclient.AsError(err)
	assert.True(t, ok)
	assert.Equal(t, "EMPTY_RESPONSE", apiErr.Code)
}

func TestClient_MalformedJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := apiclient.NewClient(srv.URL, 0)
	var out map[string]any
	err := c.Get(context.Background(), "/whatever", &out, nil)

	apiErr, ok := apiclient.AsError(err)
	assert.True(t, ok)
	assert.Equal(t, "DECODE_ERROR", apiErr.Code)
}

func readJSON(r *http.Request, out any) error {
	defer func() { _ = r.Body.Close() }()
	return json.NewDecoder(r.Body).Decode(out)
}
