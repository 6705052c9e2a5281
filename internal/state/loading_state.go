// internal/state/loading_state.go
package state

import (
	"go-minion-arena/internal/assets"
	"go-minion-arena/internal/component"
	"go-minion-arena/internal/config"
	"go-minion-arena/internal/defs"
	"go-minion-arena/internal/input"
	"go-minion-arena/internal/interfaces"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

const groundTexture = "dry_ground.png"

var _ State = (*LoadingState)(nil)

// LoadingState загружает модели прототипов и переходит к игре.
type LoadingState struct {
	sm         *StateMachine
	sim        interfaces.Simulation
	cfg        config.Config
	prototypes *defs.Library
	models     *assets.ModelManager
	logger     zerolog.Logger
	frames     int
}

func NewLoadingState(sm *StateMachine, sim interfaces.Simulation, cfg config.Config,
	prototypes *defs.Library, models *assets.ModelManager, logger zerolog.Logger,
) *LoadingState {
	return &LoadingState{
		sm:         sm,
		sim:        sim,
		cfg:        cfg,
		prototypes: prototypes,
		models:     models,
		logger:     logger,
	}
}

func (s *LoadingState) Enter() {
	s.logger.Info().Str("phase", component.AssetLoading.String()).Msg("loading assets")
}

func (s *LoadingState) Update(deltaTime float64) {
	// симуляция стоит, пока идёт загрузка
	s.sim.Update(component.AssetLoading, deltaTime, input.Frame{})

	// первый кадр только рисует экран загрузки
	s.frames++
	if s.frames < 2 {
		return
	}

	loaded := s.models.LoadPrototypeModels(s.prototypes.All())
	s.models.LoadGroundTexture(groundTexture)
	s.logger.Info().Int("models", loaded).Int("prototypes", len(s.prototypes.All())).Msg("assets ready")

	s.sim.SpawnInitialMinions()
	s.sm.SetState(NewPlayState(s.sm, s.sim, s.cfg, s.prototypes, s.models, s.logger))
}

func (s *LoadingState) Draw() {
	rl.ClearBackground(config.BackgroundColor)
	msg := "Loading..."
	width := rl.MeasureText(msg, 40)
	rl.DrawText(msg, (int32(s.cfg.Window.Width)-width)/2, int32(s.cfg.Window.Height)/2-20, 40, config.TextLightColor)
}

func (s *LoadingState) Exit() {}
