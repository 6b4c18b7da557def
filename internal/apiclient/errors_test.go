package apiclient_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"credigate/internal/apiclient"
)

func TestFromResponse_ExactStatuses(t *testing.T) {
	cases := []struct {
		status int
		kind   apiclient.Kind
		code   string
	}{
		{http.StatusBadRequest, apiclient.KindValidation, "VALIDATION_ERROR"},
		{http.StatusUnauthorized, apiclient.KindUnauthorized, "UNAUTHORIZED"},
		{http.StatusNotFound, apiclient.KindNotFound, "NOT_FOUND"},
		{http.StatusInternalServerError, apiclient.KindServer, "SERVER_ERROR"},
		{http.StatusBadGateway, apiclient.KindServer, "SERVER_ERROR"},
		{http.StatusServiceUnavailable, apiclient.KindServer, "SERVER_ERROR"},
	}
	for _, tc := range cases {
		err := apiclient.FromResponse(tc.status, nil)
		assert.Equal(t, tc.kind, err.Kind, "status %d", tc.status)
		assert.Equal(t, tc.code, err.Code, "status %d", tc.status)
		assert.Equal(t, tc.status, err.Status)
	}
}

// Statuses outside the mapped set keep their code for diagnosis.
func TestFromResponse_UnknownStatus(t *testing.T) {
	err := apiclient.FromResponse(http.StatusTeapot, nil)
	assert.Equal(t, apiclient.KindUnknown, err.Kind)
	assert.Equal(t, "API_ERROR", err.Code)
	assert.Equal(t, http.StatusTeapot, err.Status)

	err = apiclient.FromResponse(http.StatusForbidden, nil)
	assert.Equal(t, apiclient.KindUnknown, err.Kind)
}

func TestFromResponse_BodyMessage(t *testing.T) {
	err := apiclient.FromResponse(http.StatusBadRequest, []byte(`{"message":"documento inválido"}`))
	assert.Equal(t, "documento inválido", err.Message)
	assert.NotNil(t, err.Details)
}

func TestFromResponse_UnparsableBody(t *testing.T) {
	err := apiclient.FromResponse(http.StatusInternalServerError, []byte("<html>oops</html>"))
	assert.Equal(t, apiclient.KindServer, err.Kind)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), err.Message)
	assert.Nil(t, err.Details)
}

func TestNewNetworkError(t *testing.T) {
	err := apiclient.NewNetworkError(errors.New("dial tcp: timeout"))
	assert.Equal(t, apiclient.KindNetwork, err.Kind)
	assert.Equal(t, "NETWORK_ERROR", err.Code)
	assert.Zero(t, err.Status)
	assert.Contains(t, err.Message, "Erro de conexão")
}

func TestAsError_Wrapped(t *testing.T) {
	inner := apiclient.FromResponse(http.StatusNotFound, nil)
	wrapped := fmt.Errorf("fetching report: %w", inner)

	apiErr, ok := apiclient.AsError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, apiclient.KindNotFound, apiErr.Kind)

	assert.True(t, apiclient.IsKind(wrapped, apiclient.KindNotFound))
	assert.False(t, apiclient.IsKind(wrapped, apiclient.KindServer))
	assert.False(t, apiclient.IsKind(errors.New("plain"), apiclient.KindNotFound))
}

func TestMessage(t *testing.T) {
	typed := apiclient.FromResponse(http.StatusBadRequest, []byte(`{"message":"CPF inválido"}`))
	assert.Equal(t, "CPF inválido", apiclient.Message(typed))
	assert.Equal(t, "plain failure", apiclient.Message(errors.New("plain failure")))
	assert.Equal(t, "Ocorreu um erro inesperado. Tente novamente.", apiclient.Message(nil))
}
