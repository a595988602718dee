package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/railscope/railscope/pkg/api"
	"github.com/railscope/railscope/pkg/pipeline"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("RAILSCOPE_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("RAILSCOPE_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "railscope",
		Description: "Single binary of truth for Railscope - live train status pipeline",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			pipeline.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
