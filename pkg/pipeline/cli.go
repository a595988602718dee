package pipeline

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/railscope/railscope/pkg/ctrf"
	"github.com/railscope/railscope/pkg/fetcher"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "status",
		Usage: "Query live train status",
		Subcommands: []*cli.Command{
			{
				Name:  "get",
				Usage: "run one status query and print the result",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "train",
						Usage:    "5 digit train number",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "date",
						Usage: "travel date (YYYY-MM-DD), defaults to today",
					},
					&cli.Float64Flag{
						Name:  "target-lat",
						Usage: "optional target latitude for distance/bearing",
					},
					&cli.Float64Flag{
						Name:  "target-lon",
						Usage: "optional target longitude for distance/bearing",
					},
				},
				Action: func(c *cli.Context) error {
					statusPipeline := New(fetcher.New(fetcher.DefaultConfig(), nil, nil))

					request := Request{
						TrainNumber: c.String("train"),
						Date:        c.String("date"),
					}

					if c.IsSet("target-lat") && c.IsSet("target-lon") {
						request.Target = &ctrf.Coordinates{
							Lat: c.Float64("target-lat"),
							Lon: c.Float64("target-lon"),
						}
					}

					outcome := statusPipeline.Run(context.Background(), request)

					fmt.Println(outcome.Message)

					if outcome.Advice != nil {
						fmt.Println()
						fmt.Println("Suggestions:")
						for _, suggestion := range outcome.Advice.Suggestions {
							fmt.Printf("  - %s\n", suggestion)
						}
					}

					if outcome.Geo != nil && outcome.Geo.DistanceKm != nil {
						fmt.Printf("\nDistance to target: %.2f km, bearing %.1f° (%s)\n",
							*outcome.Geo.DistanceKm, *outcome.Geo.BearingDegrees, outcome.Geo.Direction)
					}

					return nil
				},
			},
		},
	}
}
