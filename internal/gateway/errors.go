package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrUnreachable replaces any transport-level failure. Callers match it
// with errors.Is and render the message verbatim.
var ErrUnreachable = errors.New("failed to fetch: backend server is not running or unreachable")

// StatusError is returned for non-2xx responses. Detail carries the best
// message that could be extracted from the response body.
type StatusError struct {
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("HTTP error! status: %d", e.Status)
}

// extractDetail resolves the user-facing message for an error response:
// the "detail" field of a JSON error body when present, otherwise the raw
// body text, otherwise the generic HTTP status message.
func extractDetail(body []byte, status int) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return fmt.Sprintf("HTTP error! status: %d", status)
}
