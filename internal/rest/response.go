package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const maxErrorBody = 512

// ParseResponse reads and closes resp.Body and returns the decoded JSON object.
// A non-2xx status yields *RequestError; an error payload yields *APIError.
func ParseResponse(resp *http.Response) (map[string]any, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reqErr := &RequestError{
			StatusCode: resp.StatusCode,
			Body:       truncate(strings.TrimSpace(string(body)), maxErrorBody),
		}
		if resp.Request != nil {
			reqErr.Method = resp.Request.Method
			reqErr.URL = RedactURL(resp.Request.URL.String())
		}
		return nil, reqErr
	}

	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseResponse, err)
	}
	if parsed == nil {
		return nil, fmt.Errorf("%w: empty body", ErrParseResponse)
	}

	if apiErr := errorFromPayload(parsed); apiErr != nil {
		return nil, apiErr
	}
	return parsed, nil
}

// errorFromPayload recognises both error shapes used by ArcGIS:
//
//	{"status": "error", "messages": [...], "code": 500}
//	{"error": {"code": 498, "message": "...", "details": [...]}}
func errorFromPayload(parsed map[string]any) *APIError {
	if status, _ := parsed["status"].(string); strings.EqualFold(status, "error") {
		return &APIError{
			Code:     toInt(parsed["code"]),
			Messages: toStrings(parsed["messages"]),
		}
	}

	errObj, ok := parsed["error"].(map[string]any)
	if !ok {
		return nil
	}
	apiErr := &APIError{Code: toInt(errObj["code"])}
	if msg, _ := errObj["message"].(string); msg != "" {
		apiErr.Messages = append(apiErr.Messages, msg)
	}
	apiErr.Messages = append(apiErr.Messages, toStrings(errObj["details"])...)
	return apiErr
}

func toInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case json.Number:
		i, _ := n.Int64()
		return int(i)
	}
	return 0
}

func toStrings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
