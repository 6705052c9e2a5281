// internal/overview/game.go
package overview

import (
	"time"

	"go-minion-arena/internal/camera"
	"go-minion-arena/internal/component"
	"go-minion-arena/internal/config"
	"go-minion-arena/internal/input"
	"go-minion-arena/internal/interfaces"
	"go-minion-arena/pkg/render"
	"go-minion-arena/pkg/render/topdown"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
)

var selectKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// Game - 2D-обзор площадки сверху поверх той же симуляции.
type Game struct {
	sim            interfaces.Simulation
	renderer       *topdown.Renderer
	view           camera.TopDown
	phase          component.GamePhase
	lastUpdateTime time.Time
	logger         zerolog.Logger
}

func NewGame(sim interfaces.Simulation, cfg config.Config, logger zerolog.Logger) *Game {
	view := camera.TopDown{Width: cfg.Window.Width, Height: cfg.Window.Height, Scale: config.OverviewScale}
	g := &Game{
		sim:            sim,
		view:           view,
		renderer:       topdown.NewRenderer(view, cfg.Spawn.PlaneSize, render.DefaultColors()),
		phase:          component.GameStart,
		lastUpdateTime: time.Now(),
		logger:         logger.With().Str("frontend", "overview").Logger(),
	}
	sim.SetViewpoint(view)
	sim.SpawnInitialMinions()
	g.phase = component.Running
	return g
}

// ReadFrame собирает ввод кадра из ebiten.
func ReadFrame(width, height int) input.Frame {
	var f input.Frame
	for i, key := range selectKeys {
		if inpututil.IsKeyJustPressed(key) {
			f.Select = i + 1
			break
		}
	}
	f.Confirm = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	x, y := ebiten.CursorPosition()
	f.Cursor = mgl32.Vec2{float32(x), float32(y)}
	f.CursorInWindow = x >= 0 && y >= 0 && x < width && y < height
	return f
}

func (g *Game) Update() error {
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	g.sim.Update(g.phase, deltaTime, ReadFrame(g.view.Width, g.view.Height))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.sim.World(), g.sim.SpawningState(), g.sim.GetGameTime())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.view.Width || outsideHeight != g.view.Height {
		g.view.Width, g.view.Height = outsideWidth, outsideHeight
		g.sim.SetViewpoint(g.view)
		g.renderer.Resize(g.view)
		g.logger.Debug().Int("width", outsideWidth).Int("height", outsideHeight).Msg("resized")
	}
	return g.view.Width, g.view.Height
}
