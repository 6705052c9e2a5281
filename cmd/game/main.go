// cmd/game/main.go
package main

import (
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"go-minion-arena/internal/app"
	"go-minion-arena/internal/assets"
	"go-minion-arena/internal/config"
	"go-minion-arena/internal/defs"
	"go-minion-arena/internal/state"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

const pprofAddr = "localhost:6060"

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	cfg, err := config.Load("minions", os.Args[1:])
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

	if cfg.Log.Level == "debug" || cfg.Log.Level == "trace" {
		go func() {
			logger.Warn().Err(http.ListenAndServe(pprofAddr, nil)).Msg("pprof stopped")
		}()
	}

	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), "Minion Arena")
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.TargetFPS)

	game := app.NewGame(cfg, prototypes, app.WithLogger(logger))
	models := assets.NewModelManager(cfg.Assets.ModelsDir, logger)
	defer models.Cleanup()

	sm := state.NewStateMachine()
	sm.SetState(state.NewLoadingState(sm, game, cfg, prototypes, models, logger))

	for !rl.WindowShouldClose() {
		sm.Update(float64(rl.GetFrameTime()))

		rl.BeginDrawing()
		sm.Draw()
		rl.EndDrawing()
	}

	if c, ok := sm.Current().(interface{ Cleanup() }); ok {
		c.Cleanup()
	}
	logger.Info().Float64("game_time", game.GetGameTime()).Uint64("frames", game.Frames()).Msg("bye")
}
