// Package main is the entry point for Escape the Castle.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/samdwyer/escapecastle/internal/entity"
	"github.com/samdwyer/escapecastle/internal/game"
	"github.com/samdwyer/escapecastle/internal/logger"
	"github.com/samdwyer/escapecastle/internal/telemetry"
	"github.com/samdwyer/escapecastle/internal/ui"
)

func main() {
	// Load .env file for local development. Not fatal: env vars might be
	// set directly.
	envErr := godotenv.Load()

	closer, err := logger.Init(logger.OptionsFromEnv())
	if err != nil {
		log.Fatalf("Failed to open log: %v", err)
	}
	defer closer.Close()
	if envErr != nil {
		logger.Log.WithError(envErr).Debug(".env file not loaded")
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if telemetry.ConfigureEnv() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			// Continue without telemetry - game still works
			logger.Log.WithError(err).Warn("telemetry setup failed")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Log.WithError(err).Warn("telemetry shutdown failed")
				}
			}()
		}
	}

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Close()

	play(ctx, cfg, ui.NewFrontend(screen))
}

// play runs title, welcome and game screens until the player exits.
func play(ctx context.Context, cfg game.Config, fe *ui.Frontend) {
	content := game.LoadContent(cfg)
	menus := fe.Menus()

	for {
		if menus.Title(ctx) != game.MenuStart {
			return
		}
		who, action := menus.Welcome(ctx)
		if action != game.MenuStart {
			return
		}

		// Retry and replay start over with the same hero.
		for again := true; again; {
			p := entity.NewPlayer(who.Name, who.Difficulty, who.StartingLevel)
			g := game.New(cfg, p, content)
			result := g.Run(ctx, fe)
			logger.Log.WithField("run", g.RunID()).WithField("result", result).Debug("game finished")

			switch result {
			case game.MenuRetry, game.MenuReplay:
			case game.MenuExitMainMenu:
				again = false
			default:
				return
			}
		}
	}
}
