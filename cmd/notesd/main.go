// Command notesd serves the notes and tags HTTP API.
//
// A .env file in the working directory is loaded into the environment
// before configuration is read.
package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/heartmarshall/notekeeper-backend/internal/app"
)

func main() {
	cmd := &cli.Command{
		Name:    "notesd",
		Usage:   "Notes and tags HTTP API",
		Version: app.BuildVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (default $CONFIG_PATH or ./config.yaml)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return app.Run(ctx, cmd.String("config"))
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
