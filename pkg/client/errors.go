package client

import (
	"fmt"
	"net/http"
)

// Code classifies an API failure for callers that branch on failure kind.
type Code string

const (
	CodeTimeout            Code = "timeout"
	CodeNetwork            Code = "network_error"
	CodeUnauthorized       Code = "unauthorized"
	CodeValidation         Code = "validation_error"
	CodeServiceUnavailable Code = "service_unavailable"
	CodeServer             Code = "server_error"
	CodeUnexpected         Code = "unexpected_error"
)

// APIError is the typed error returned for every failed request. Status is
// zero for timeouts and transport failures. Data holds the decoded error
// body, when one was present.
type APIError struct {
	Code    Code
	Status  int
	Message string
	Data    any
}

func (e *APIError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func codeForStatus(status int) Code {
	switch {
	case status == http.StatusUnauthorized:
		return CodeUnauthorized
	case status == http.StatusUnprocessableEntity:
		return CodeValidation
	case status == http.StatusServiceUnavailable:
		return CodeServiceUnavailable
	case status >= 500:
		return CodeServer
	default:
		return CodeUnexpected
	}
}

// extractMessage digs a human-readable message out of an error body. Servers
// disagree on the envelope key, so detail, message and error are all tried,
// recursing into nested objects and arrays until a string turns up.
func extractMessage(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case map[string]any:
		for _, key := range []string{"detail", "message", "error"} {
			if inner, ok := val[key]; ok {
				if msg := extractMessage(inner); msg != "" {
					return msg
				}
			}
		}
	case []any:
		for _, item := range val {
			if msg := extractMessage(item); msg != "" {
				return msg
			}
		}
	}
	return ""
}
