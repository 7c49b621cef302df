package diagnostics

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/travigo/stationboard/pkg/mbta"
	"github.com/travigo/stationboard/pkg/redis_client"
	"github.com/travigo/stationboard/pkg/util"
)

const stopCacheExpiration = 24 * time.Hour

func newClient() (*mbta.Client, error) {
	config, err := mbta.ConfigFromEnvironment(util.GetEnvironmentVariables())
	if err != nil {
		return nil, err
	}

	return mbta.NewClient(config)
}

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "diagnostics",
		Usage: "Inspect the live MBTA feed",
		Subcommands: []*cli.Command{
			{
				Name:  "vehicles",
				Usage: "list live vehicles on a route",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "route",
						Value: RedLine,
						Usage: "route to list vehicles for",
					},
				},
				Action: func(c *cli.Context) error {
					client, err := newClient()
					if err != nil {
						return err
					}

					vehicles, err := client.LiveVehicles(c.Context, c.String("route"))
					if err != nil {
						return err
					}

					return Print(os.Stdout, DescribeVehicles(c.String("route"), vehicles))
				},
			},
			{
				Name:  "stop",
				Usage: "look up the stop identifiers of a station",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "route",
						Value: RedLine,
						Usage: "route serving the stop",
					},
					&cli.StringFlag{
						Name:     "name",
						Usage:    "stop name, for example Kendall/MIT",
						Required: true,
					},
				},
				Action: func(c *cli.Context) error {
					client, err := newClient()
					if err != nil {
						return err
					}

					if err := redis_client.Connect(false); err != nil {
						return err
					}

					var lookup mbta.StopLookup = client
					if redis_client.Client != nil {
						log.Debug().Msg("Caching stop lookups in redis")
						lookup = mbta.NewStopCache(client, redis_client.Client, stopCacheExpiration)
					}

					stops, err := lookup.LookupStop(c.Context, c.String("route"), c.String("name"))
					if err != nil {
						return err
					}

					return Print(os.Stdout, stops)
				},
			},
		},
	}
}
