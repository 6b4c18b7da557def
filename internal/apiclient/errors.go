package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind is the closed set of failure categories the transport can surface.
// UI and retry logic branch on Kind, never on raw status codes.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindUnauthorized Kind = "unauthorized"
	KindNotFound     Kind = "not_found"
	KindServer       Kind = "server"
	KindNetwork      Kind = "network"
	KindUnknown      Kind = "unknown"
)

// Error is a typed transport failure.
type Error struct {
	Kind    Kind
	Status  int
	Code    string
	Message string
	Details json.RawMessage
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewNetworkError builds the no-response error (DNS failure, timeout, abort).
func NewNetworkError(cause error) *Error {
	msg := "Erro de conexão. Verifique sua internet."
	if cause != nil {
		msg = fmt.Sprintf("%s (%v)", msg, cause)
	}
	return &Error{Kind: KindNetwork, Code: "NETWORK_ERROR", Message: msg}
}

// responseBody is the structured error shape the backend may return.
type responseBody struct {
	Message string `json:"message"`
}

// FromResponse classifies a non-2xx response into a typed Error.
// Exact match on 400/401/404, range match on 5xx, everything else Unknown
// with the raw status preserved. An unparsable body still yields a typed
// error using the status line as the message.
func FromResponse(status int, body []byte) *Error {
	message := http.StatusText(status)
	var details json.RawMessage
	if len(body) > 0 {
		var parsed responseBody
		if err := json.Unmarshal(body, &parsed); err == nil {
			details = json.RawMessage(body)
			if parsed.Message != "" {
				message = parsed.Message
			}
		}
	}

	switch {
	case status == http.StatusBadRequest:
		return &Error{Kind: KindValidation, Status: status, Code: "VALIDATION_ERROR", Message: message, Details: details}
	case status == http.StatusUnauthorized:
		return &Error{Kind: KindUnauthorized, Status: status, Code: "UNAUTHORIZED", Message: message, Details: details}
	case status == http.StatusNotFound:
		return &Error{Kind: KindNotFound, Status: status, Code: "NOT_FOUND", Message: message, Details: details}
	case status >= 500 && status <= 599:
		return &Error{Kind: KindServer, Status: status, Code: "SERVER_ERROR", Message: message, Details: details}
	default:
		return &Error{Kind: KindUnknown, Status: status, Code: "API_ERROR", Message: message, Details: details}
	}
}

// AsError unwraps err into a typed *Error if it is one.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsKind reports whether err is a typed Error of the given kind.
func IsKind(err error, kind Kind) bool {
	apiErr, ok := AsError(err)
	return ok && apiErr.Kind == kind
}

// Message extracts a user-presentable message from any error, falling back
// to a generic retry prompt for untyped failures.
func Message(err error) string {
	if apiErr, ok := AsError(err); ok {
		return apiErr.Message
	}
	if err != nil {
		return err.Error()
	}
	return "Ocorreu um erro inesperado. Tente novamente."
}
