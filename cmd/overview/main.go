// cmd/overview/main.go
package main

import (
	"os"
	"time"

	"go-minion-arena/internal/app"
	"go-minion-arena/internal/config"
	"go-minion-arena/internal/defs"
	"go-minion-arena/internal/overview"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	cfg, err := config.Load("minions-overview", os.Args[1:])
	if eris.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("config")
	}
	logger = logger.Level(cfg.LogLevel())

	prototypes, err := defs.LoadPrototypes(cfg.Assets.Prototypes)
	if err != nil {
		logger.Fatal().Err(err).Msg("prototypes")
	}

	game := app.NewGame(cfg, prototypes, app.WithLogger(logger))
	g := overview.NewGame(game, cfg, logger)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("Minion Arena: overview")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal().Err(err).Msg("overview stopped")
	}
}
