package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/travigo/stationboard/pkg/api"
	"github.com/travigo/stationboard/pkg/diagnostics"
	"github.com/travigo/stationboard/pkg/display"
	"github.com/travigo/stationboard/pkg/queryserver"

	_ "time/tzdata"
)

func main() {
	// Predictions are for Boston, so log in Boston time
	if loc, err := time.LoadLocation("America/New_York"); err == nil {
		time.Local = loc
	}

	if os.Getenv("STATIONBOARD_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("STATIONBOARD_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "stationboard",
		Description: "Station arrival countdowns for the MBTA - query server, display client and tools",

		Commands: []*cli.Command{
			queryserver.RegisterCLI(),
			display.RegisterCLI(),
			api.RegisterCLI(),
			diagnostics.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
