package mbta

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/travigo/stationboard/pkg/ctdf"
	"github.com/travigo/stationboard/pkg/util"
)

const (
	FeedV3     = "v3"
	FeedGTFSRT = "gtfs-rt"
)

// PredictionsFeed is satisfied by both Client and TripUpdatesFeed.
type PredictionsFeed interface {
	Predictions(ctx context.Context, stopID string) ([]ctdf.ArrivalEvent, error)
}

// ConfigFromEnvironment builds a v3 API config from STATIONBOARD_* variables.
// The API key is optional; without one requests are rate limited harder.
func ConfigFromEnvironment(env map[string]string) (Config, error) {
	config := Config{
		BaseURL: env[util.EnvironmentPrefix+"MBTA_BASE_URL"],
	}

	var missingKey util.MissingEnvironmentKey

	apiKey, err := util.GetSecret(env, util.EnvironmentPrefix+"MBTA_API_KEY")
	switch {
	case err == nil:
		config.APIKey = apiKey
	case errors.As(err, &missingKey):
		log.Warn().Msg("No MBTA API key configured, using anonymous rate limits")
	default:
		return config, err
	}

	if config.Timeout, err = util.GetEnvironmentDuration(env, util.EnvironmentPrefix+"FEED_TIMEOUT", DefaultTimeout); err != nil {
		return config, err
	}
	if config.Retries, err = util.GetEnvironmentInt(env, util.EnvironmentPrefix+"FEED_RETRIES", 0); err != nil {
		return config, err
	}
	if config.Retries < 0 {
		return config, fmt.Errorf("%sFEED_RETRIES must not be negative", util.EnvironmentPrefix)
	}

	return config, nil
}

// FeedFromEnvironment picks the predictions source named by STATIONBOARD_FEED.
func FeedFromEnvironment(env map[string]string) (PredictionsFeed, error) {
	config, err := ConfigFromEnvironment(env)
	if err != nil {
		return nil, err
	}

	switch kind := env[util.EnvironmentPrefix+"FEED"]; kind {
	case "", FeedV3:
		return NewClient(config)
	case FeedGTFSRT:
		config.BaseURL = env[util.EnvironmentPrefix+"GTFSRT_TRIPUPDATES_URL"]
		return NewTripUpdatesFeed(config)
	default:
		return nil, fmt.Errorf("unknown feed %q", kind)
	}
}
