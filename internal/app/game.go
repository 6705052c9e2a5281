// internal/app/game.go
package app

import (
	"go-minion-arena/internal/component"
	"go-minion-arena/internal/config"
	"go-minion-arena/internal/defs"
	"go-minion-arena/internal/entity"
	"go-minion-arena/internal/event"
	"go-minion-arena/internal/input"
	"go-minion-arena/internal/system"
	"go-minion-arena/internal/types"
	"go-minion-arena/internal/utils"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

// OpeningPrototype is the prototype of the two minions placed at game start.
const OpeningPrototype = "wizard"

var openingPositions = []mgl32.Vec3{{2, 0, 1}, {-2, 0, 1}}

// Game holds the simulation state and runs the per-frame pipeline.
type Game struct {
	Config            config.Config
	ECS               *entity.ECS
	Prototypes        *defs.Library
	EventDispatcher   *event.Dispatcher
	Rng               *utils.PRNGService
	PlacementSystem   *system.PlacementSystem
	TargetingSystem   *system.TargetingSystem
	OrientationSystem *system.OrientationSystem
	EngagementSystem  *system.EngagementSystem
	MovementSystem    *system.MovementSystem

	resolve  system.PositionResolver
	logger   zerolog.Logger
	gameTime float64
	frames   uint64
}

// Option настраивает Game до создания систем.
type Option func(*Game)

// WithPositionResolver replaces the flat-scene resolver, e.g. with one that composes parent transforms.
func WithPositionResolver(resolve system.PositionResolver) Option {
	return func(g *Game) { g.resolve = resolve }
}

func WithLogger(logger zerolog.Logger) Option {
	return func(g *Game) { g.logger = logger }
}

func WithDispatcher(d *event.Dispatcher) Option {
	return func(g *Game) { g.EventDispatcher = d }
}

// NewGame initializes a new game instance with an empty world.
func NewGame(cfg config.Config, prototypes *defs.Library, opts ...Option) *Game {
	ecs := entity.NewECS()
	g := &Game{
		Config:          cfg,
		ECS:             ecs,
		Prototypes:      prototypes,
		EventDispatcher: event.NewDispatcher(),
		Rng:             utils.NewPRNGService(cfg.Spawn.Seed),
		logger:          zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.resolve == nil {
		g.resolve = system.FigureResolver(ecs)
	}

	sim := cfg.Simulation
	g.PlacementSystem = system.NewPlacementSystem(ecs, prototypes, g.EventDispatcher, sim.MovingSpeed, g.logger)
	g.TargetingSystem = system.NewTargetingSystem(ecs, g.resolve, g.EventDispatcher, sim.SwitchingDelta, g.logger)
	g.OrientationSystem = system.NewOrientationSystem(ecs, g.resolve, g.logger)
	g.EngagementSystem = system.NewEngagementSystem(ecs, g.resolve, g.EventDispatcher,
		sim.StoppingDistance, sim.SeeingDistance, g.logger)
	g.MovementSystem = system.NewMovementSystem(ecs)

	g.EventDispatcher.SubscribeAll(&eventLogger{logger: g.logger.With().Str("component", "events").Logger()})
	return g
}

// SetViewpoint sets the camera used for cursor placement.
func (g *Game) SetViewpoint(vp input.Viewpoint) {
	g.PlacementSystem.SetViewpoint(vp)
}

// Update runs one frame. Nothing happens outside the GameStart and Running phases.
func (g *Game) Update(phase component.GamePhase, deltaTime float64, in input.Frame) {
	if !phase.Simulating() {
		return
	}
	dt := deltaTime
	if dt > g.Config.Simulation.MaxDeltaTime {
		dt = g.Config.Simulation.MaxDeltaTime
	}
	if dt < 0 {
		dt = 0
	}
	g.gameTime += dt
	g.frames++

	g.PlacementSystem.Update(in)
	g.TargetingSystem.Update(dt)
	g.OrientationSystem.Update(dt)
	g.EngagementSystem.Update(dt)
	g.MovementSystem.Update(dt)
}

// SpawnInitialMinions places the opening pair of wizards plus Spawn.ExtraMinions random minions on the ground plane.
func (g *Game) SpawnInitialMinions() []types.EntityID {
	var ids []types.EntityID
	wizard, err := g.Prototypes.Get(OpeningPrototype)
	if err != nil {
		g.logger.Warn().Err(err).Msg("opening prototype missing, using the first one")
		all := g.Prototypes.All()
		if len(all) == 0 {
			return nil
		}
		wizard = all[0]
	}
	for _, pos := range openingPositions {
		ids = append(ids, g.spawnMinion(wizard, pos))
	}

	all := g.Prototypes.All()
	half := g.Config.Spawn.PlaneSize / 2
	for i := 0; i < g.Config.Spawn.ExtraMinions; i++ {
		proto := all[g.Rng.Intn(len(all))]
		pos := mgl32.Vec3{g.Rng.Range(-half, half), 0, g.Rng.Range(-half, half)}
		ids = append(ids, g.spawnMinion(proto, pos))
	}

	g.logger.Info().Int("count", len(ids)).Msg("opening minions spawned")
	return ids
}

func (g *Game) spawnMinion(proto defs.Prototype, pos mgl32.Vec3) types.EntityID {
	fig := component.NewFigure(pos)
	fig.Scale = mgl32.Vec3{proto.Scale, proto.Scale, proto.Scale}
	renderable := &component.Renderable{Prototype: proto.ID, Color: proto.Color, Radius: proto.Radius}
	return g.ECS.CreateMinion(fig, renderable, g.Config.Simulation.MovingSpeed)
}

// GetGameTime returns the simulated time in seconds.
func (g *Game) GetGameTime() float64 {
	return g.gameTime
}

// Frames returns the number of simulated frames.
func (g *Game) Frames() uint64 {
	return g.frames
}

// SpawningState returns the placement state.
func (g *Game) SpawningState() component.SpawningState {
	return g.PlacementSystem.State()
}

// World returns the entity registry for the presentation layer.
func (g *Game) World() *entity.ECS {
	return g.ECS
}

// Logger returns the game logger.
func (g *Game) Logger() zerolog.Logger {
	return g.logger
}
