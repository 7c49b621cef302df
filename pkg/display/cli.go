package display

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/travigo/stationboard/pkg/queryserver"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "display",
		Usage: "Shows arrival countdowns for one station",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "poll the query server and render the board",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "station",
						Usage:    "station name as known to the query server",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "server",
						Value: queryserver.DefaultListen,
						Usage: "address of the query server",
					},
					&cli.DurationFlag{
						Name:  "interval",
						Value: DefaultInterval,
						Usage: "time between refreshes",
					},
				},
				Action: func(c *cli.Context) error {
					client := NewClient(c.String("server"), DefaultTimeout)
					defer client.Close()

					board := &Board{
						StationName: c.String("station"),
						Fetcher:     client,
						Interval:    c.Duration("interval"),
						Out:         os.Stdout,
					}

					ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
					defer stop()

					return board.Run(ctx)
				},
			},
		},
	}
}
