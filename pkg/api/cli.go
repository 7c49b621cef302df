package api

import (
	"github.com/urfave/cli/v2"

	"github.com/travigo/stationboard/pkg/stationquery"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the HTTP status API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
					&cli.StringFlag{
						Name:    "stations",
						Usage:   "YAML or CSV station directory, built-in table when empty",
						EnvVars: []string{"STATIONBOARD_STATIONS_FILE"},
					},
				},
				Action: func(c *cli.Context) error {
					directory, err := stationquery.LoadDirectory(c.String("stations"))
					if err != nil {
						return err
					}

					service, err := stationquery.SetupService(directory)
					if err != nil {
						return err
					}

					return SetupServer(c.String("listen"), directory, service)
				},
			},
		},
	}
}
