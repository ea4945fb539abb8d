package rest

import (
	"errors"
	"fmt"
	"strings"
)

// ErrParseResponse is returned when a response body is not a JSON object.
var ErrParseResponse = errors.New("failed to parse response")

// RequestError reports a non-2xx HTTP status.
type RequestError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	msg := fmt.Sprintf("%s %s returned HTTP %d", e.Method, e.URL, e.StatusCode)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// APIError is an error payload reported by the server inside a 2xx response.
type APIError struct {
	Code     int
	Messages []string
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("server reported error (code %d)", e.Code)
	}
	if e.Code == 0 {
		return "server reported error: " + strings.Join(e.Messages, "; ")
	}
	return fmt.Sprintf("server reported error (code %d): %s", e.Code, strings.Join(e.Messages, "; "))
}
