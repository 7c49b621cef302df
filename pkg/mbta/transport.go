package mbta

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog/log"
)

// transport performs GET requests with a per-attempt deadline and, when
// retries > 0, exponential backoff on transport failures and temporary statuses.
type transport struct {
	httpClient *http.Client
	timeout    time.Duration
	retries    int
}

func (t transport) get(ctx context.Context, u *url.URL, accept string) ([]byte, error) {
	var body []byte

	retryBackoff := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(t.retries)),
		ctx,
	)

	err := backoff.RetryNotify(
		func() error {
			var err error
			body, err = t.attempt(ctx, u, accept)
			return err
		},
		retryBackoff,
		func(err error, wait time.Duration) {
			log.Warn().Err(err).Str("url", redact(u)).Dur("wait", wait).Msg("Retrying feed request")
		},
	)

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		if !errors.Is(err, ErrUpstreamUnavailable) {
			err = fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
		}
	}

	return body, err
}

func (t transport) attempt(ctx context.Context, u *url.URL, accept string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("User-Agent", "stationboard")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUpstreamUnavailable, redact(u), stripURLError(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)

		upstreamErr := &UpstreamError{
			URL:        redact(u),
			Status:     resp.Status,
			StatusCode: resp.StatusCode,
		}
		if upstreamErr.Temporary() {
			return nil, upstreamErr
		}
		return nil, backoff.Permanent(upstreamErr)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUpstreamUnavailable, redact(u), stripURLError(err))
	}

	return body, nil
}

// stripURLError drops the *url.Error wrapper so the unredacted URL is not logged.
func stripURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
