package api

import (
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/railscope/railscope/pkg/fetcher"
	"github.com/railscope/railscope/pkg/pipeline"
	"github.com/railscope/railscope/pkg/util"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Provides the train status web API",
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
				},
				Action: func(c *cli.Context) error {
					env := util.GetEnvironmentVariables()

					fetcherConfig := fetcher.DefaultConfig()

					if env["RAILSCOPE_CACHE_TTL"] != "" {
						if seconds, err := strconv.Atoi(env["RAILSCOPE_CACHE_TTL"]); err == nil {
							fetcherConfig.CacheTTL = time.Duration(seconds) * time.Second
						} else {
							return err
						}
					}

					if env["RAILSCOPE_CACHE_CAPACITY"] != "" {
						if capacity, err := strconv.Atoi(env["RAILSCOPE_CACHE_CAPACITY"]); err == nil {
							fetcherConfig.CacheCapacity = capacity
						} else {
							return err
						}
					}

					// No live source is wired in yet, so every cache miss
					// synthesises mock data.
					statusFetcher := fetcher.New(fetcherConfig, nil, nil)
					log.Info().Msg("No live search source configured - queries degrade to mock data")

					statusPipeline := pipeline.New(statusFetcher)

					listen := c.String("listen")
					if env["RAILSCOPE_LISTEN"] != "" {
						listen = env["RAILSCOPE_LISTEN"]
					}

					SetupServer(listen, statusPipeline)

					return nil
				},
			},
		},
	}
}
