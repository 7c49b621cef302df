package stationquery

import (
	"github.com/rs/zerolog/log"

	"github.com/travigo/stationboard/pkg/mbta"
	"github.com/travigo/stationboard/pkg/predictions"
	"github.com/travigo/stationboard/pkg/stations"
	"github.com/travigo/stationboard/pkg/util"
)

// LoadDirectory reads stationsFile, or returns the built-in directory when it
// is empty.
func LoadDirectory(stationsFile string) (stations.Directory, error) {
	if stationsFile == "" {
		return stations.DefaultDirectory(), nil
	}

	directory, err := stations.LoadDirectory(stationsFile)
	if err != nil {
		return directory, err
	}

	log.Info().
		Int("stations", directory.Len()).
		Str("file", stationsFile).
		Msg("Loaded station directory")

	return directory, nil
}

// SetupService wires the directory to the feed selected by the environment.
func SetupService(directory stations.Directory) (*Service, error) {
	feed, err := mbta.FeedFromEnvironment(util.GetEnvironmentVariables())
	if err != nil {
		return nil, err
	}

	return NewService(directory, predictions.NewAggregator(feed)), nil
}
