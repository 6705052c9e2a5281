// internal/state/play_state.go
package state

import (
	"go-minion-arena/internal/assets"
	"go-minion-arena/internal/camera"
	"go-minion-arena/internal/component"
	"go-minion-arena/internal/config"
	"go-minion-arena/internal/defs"
	"go-minion-arena/internal/input"
	"go-minion-arena/internal/interfaces"
	"go-minion-arena/internal/ui"
	"go-minion-arena/pkg/render"
	"go-minion-arena/pkg/render/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

var _ State = (*PlayState)(nil)

var selectKeys = []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour}

// PlayState - основной игровой цикл: ввод, симуляция, отрисовка.
type PlayState struct {
	sm         *StateMachine
	sim        interfaces.Simulation
	cfg        config.Config
	camera     *camera.Camera
	controller *camera.Controller
	renderer   *scene.Renderer
	bar        *ui.PrototypeBar
	indicator  *ui.StateIndicatorRL
	phase      component.GamePhase
	logger     zerolog.Logger
}

func NewPlayState(sm *StateMachine, sim interfaces.Simulation, cfg config.Config,
	prototypes *defs.Library, models *assets.ModelManager, logger zerolog.Logger,
) *PlayState {
	cam := camera.New(cfg.Camera.Fovy, cfg.Window.Width, cfg.Window.Height)
	return &PlayState{
		sm:         sm,
		sim:        sim,
		cfg:        cfg,
		camera:     cam,
		controller: camera.NewController(cfg.Camera),
		renderer:   scene.NewRenderer(models, cfg.Spawn.PlaneSize, render.DefaultColors()),
		bar:        ui.NewPrototypeBar(prototypes.All(), cfg.Window.Height),
		indicator:  ui.NewStateIndicatorRL(float32(cfg.Window.Width-30), 30, 10),
		phase:      component.GameStart,
		logger:     logger,
	}
}

func (s *PlayState) Enter() {
	s.sim.SetViewpoint(s.camera)
	s.logger.Info().Str("phase", s.phase.String()).Msg("play state entered")
}

// readFrame собирает ввод кадра из raylib.
func (s *PlayState) readFrame() input.Frame {
	var f input.Frame
	for i, key := range selectKeys {
		if rl.IsKeyPressed(key) {
			f.Select = i + 1
			break
		}
	}
	mouse := rl.GetMousePosition()
	f.Cursor = mgl32.Vec2{mouse.X, mouse.Y}
	f.CursorInWindow = rl.IsCursorOnScreen()

	// клик по панели - это выбор, а не установка
	if slot := s.bar.Clicked(mouse); slot != 0 {
		f.Select = slot
		return f
	}
	f.Confirm = rl.IsMouseButtonPressed(rl.MouseLeftButton) && !s.bar.Contains(mouse)
	return f
}

func (s *PlayState) readCamera(cursor mgl32.Vec2, onScreen bool) camera.Input {
	var in camera.Input
	if onScreen {
		in = camera.EdgePan(cursor, s.camera.Width, s.camera.Height, config.EdgeScrollMargin)
	}
	if rl.IsKeyDown(rl.KeyW) {
		in.Forward = 1
	}
	if rl.IsKeyDown(rl.KeyS) {
		in.Forward = -1
	}
	if rl.IsKeyDown(rl.KeyD) {
		in.Right = 1
	}
	if rl.IsKeyDown(rl.KeyA) {
		in.Right = -1
	}
	in.Scroll = rl.GetMouseWheelMove()
	return in
}

func (s *PlayState) Update(deltaTime float64) {
	if rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeyF9) {
		s.sm.SetState(NewPauseState(s.sm, s))
		return
	}

	frame := s.readFrame()
	s.controller.Update(s.camera, s.readCamera(frame.Cursor, frame.CursorInWindow), float32(deltaTime))
	s.sim.Update(s.phase, deltaTime, frame)
	s.phase = component.Running
}

func (s *PlayState) Draw() {
	rl.ClearBackground(config.BackgroundColor)
	s.renderer.Draw(s.camera, s.sim.World())
	s.DrawUI()
}

// DrawUI рисует HUD поверх 3D-сцены
func (s *PlayState) DrawUI() {
	world := s.sim.World()
	spawning := s.sim.SpawningState()
	s.renderer.DrawHUD(world, spawning, s.sim.GetGameTime())

	active := ""
	if previews := world.PreviewIDs(); len(previews) > 0 {
		active = world.Previews[previews[0]].Prototype
	}
	s.bar.Draw(rl.GetMousePosition(), active)

	stateColor := config.GroundColor
	if spawning == component.Spawning {
		stateColor = config.MovingColor
	}
	s.indicator.Draw(spawning, stateColor)
}

func (s *PlayState) Exit() {}

// Cleanup освобождает ресурсы рендера
func (s *PlayState) Cleanup() {
	s.renderer.Unload()
}
