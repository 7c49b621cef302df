package queryserver

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/travigo/stationboard/pkg/stationquery"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "server",
		Usage: "Serves station arrival countdowns over TCP",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run the query server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: DefaultListen,
						Usage: "listen target for the query server",
					},
					&cli.StringFlag{
						Name:    "stations",
						Usage:   "YAML or CSV station directory, built-in table when empty",
						EnvVars: []string{"STATIONBOARD_STATIONS_FILE"},
					},
					&cli.DurationFlag{
						Name:  "idle-timeout",
						Usage: "close connections that stay silent this long, 0 to disable",
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

					server, err := Listen(c.String("listen"), service)
					if err != nil {
						return err
					}
					server.IdleTimeout = c.Duration("idle-timeout")

					ctx, cancel := context.WithCancel(c.Context)
					defer cancel()

					signals := make(chan os.Signal, 1)
					signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
					defer signal.Stop(signals)

					go func() {
						<-signals
						cancel()

						<-signals // hard exit on second signal
						os.Exit(1)
					}()

					return server.Serve(ctx)
				},
			},
		},
	}
}
