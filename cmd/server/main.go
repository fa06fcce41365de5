// Command server runs the croki room coordinator: one process hosting many
// independent game rooms over websocket.
package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/Charles-Go/croki/internal/config"
	"github.com/Charles-Go/croki/internal/game"
	"github.com/Charles-Go/croki/internal/server"
)

func main() {
	// .env is a dev convenience, absence is fine.
	_ = godotenv.Load()

	cmd := &cli.Command{
		Name:  "croki-server",
		Usage: "real-time room coordinator for the croki drawing game",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Value:   config.DefaultAddr,
				Usage:   "listen address",
				Sources: cli.EnvVars("CROKI_ADDR"),
			},
			&cli.StringFlag{
				Name:    "allowed-origins",
				Usage:   "comma-separated Origin allow-list (empty allows all)",
				Sources: cli.EnvVars("ALLOWED_ORIGINS"),
			},
			&cli.DurationFlag{
				Name:    "room-grace",
				Value:   config.DefaultEvictGrace,
				Usage:   "how long an empty room is kept before eviction",
				Sources: cli.EnvVars("ROOM_GRACE_PERIOD"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "verbose logging and gin debug mode",
				Sources: cli.EnvVars("CROKI_DEBUG"),
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := config.Config{
		Addr:           cmd.String("addr"),
		AllowedOrigins: config.ParseOrigins(cmd.String("allowed-origins")),
		EvictGrace:     cmd.Duration("room-grace"),
		Debug:          cmd.Bool("debug"),
	}

	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	logger := zerolog.New(output).With().Timestamp().Logger()
	if cfg.Debug {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}
	log.Logger = logger

	lobby := game.NewLobby(game.NewScheduler(), cfg.EvictGrace, logger)
	go lobby.RunPingLoop(ctx)

	r := server.New(cfg, lobby, logger)

	logger.Info().Str("addr", cfg.Addr).Msg("croki server listening")
	return r.Run(cfg.Addr)
}
