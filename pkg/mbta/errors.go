package mbta

import (
	"errors"
	"fmt"
	"net/url"
)

// ErrUpstreamUnavailable covers transport failures and expired deadlines.
var ErrUpstreamUnavailable = errors.New("upstream unavailable")

// UpstreamError is returned when the feed answers with a non-success status.
type UpstreamError struct {
	URL, Status string
	StatusCode  int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream error: %s: %s", e.URL, e.Status)
}

func (e *UpstreamError) Temporary() bool {
	switch e.StatusCode {
	case 429, 500, 502, 503, 504:
		return true
	default:
		return false
	}
}

// MalformedResponseError is returned when the payload cannot be decoded or is
// missing a required field.
type MalformedResponseError struct {
	URL    string
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response: %s: %s", e.URL, e.Reason)
}

func malformed(u string, format string, args ...any) error {
	return &MalformedResponseError{URL: u, Reason: fmt.Sprintf(format, args...)}
}

func redact(u *url.URL) string {
	redacted := *u

	query := redacted.Query()
	if query.Has("api_key") {
		query.Set("api_key", "REDACTED")
		redacted.RawQuery = query.Encode()
	}

	return redacted.Redacted()
}
