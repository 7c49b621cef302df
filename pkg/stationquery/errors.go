package stationquery

import (
	"errors"

	"github.com/travigo/stationboard/pkg/mbta"
	"github.com/travigo/stationboard/pkg/stations"
)

const (
	CodeUnknownStation      = "unknown_station"
	CodeUpstreamUnavailable = "upstream_unavailable"
	CodeUpstreamError       = "upstream_error"
	CodeMalformedResponse   = "malformed_response"
	CodeInternal            = "internal"
)

// ErrorCode maps a Query failure onto the short code reported to clients.
func ErrorCode(err error) string {
	var upstreamErr *mbta.UpstreamError
	var malformedErr *mbta.MalformedResponseError

	switch {
	case errors.Is(err, stations.ErrUnknownStation):
		return CodeUnknownStation
	case errors.Is(err, mbta.ErrUpstreamUnavailable):
		return CodeUpstreamUnavailable
	case errors.As(err, &upstreamErr):
		return CodeUpstreamError
	case errors.As(err, &malformedErr):
		return CodeMalformedResponse
	default:
		return CodeInternal
	}
}
