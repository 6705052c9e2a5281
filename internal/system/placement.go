// internal/system/placement.go
package system

import (
	"go-minion-arena/internal/component"
	"go-minion-arena/internal/defs"
	"go-minion-arena/internal/entity"
	"go-minion-arena/internal/event"
	"go-minion-arena/internal/input"
	"go-minion-arena/internal/types"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// PlacementSystem управляет превью и установкой новых миньонов.
// Per frame: the preview follows the cursor, then confirmation commits it,
// then a selection toggles spawning.
type PlacementSystem struct {
	ecs         *entity.ECS
	prototypes  *defs.Library
	dispatcher  *event.Dispatcher
	viewpoint   input.Viewpoint
	movingSpeed float32
	logger      zerolog.Logger
}

func NewPlacementSystem(ecs *entity.ECS, prototypes *defs.Library, dispatcher *event.Dispatcher,
	movingSpeed float32, logger zerolog.Logger,
) *PlacementSystem {
	return &PlacementSystem{
		ecs:         ecs,
		prototypes:  prototypes,
		dispatcher:  dispatcher,
		movingSpeed: movingSpeed,
		logger:      systemLogger(logger, "placement"),
	}
}

// SetViewpoint sets the camera used to project the cursor. nil disables tracking.
func (s *PlacementSystem) SetViewpoint(vp input.Viewpoint) {
	s.viewpoint = vp
}

// State returns the current spawning state.
func (s *PlacementSystem) State() component.SpawningState {
	return s.ecs.Spawning
}

func (s *PlacementSystem) Update(in input.Frame) {
	if s.ecs.Spawning == component.Spawning {
		s.track(in)
		if in.Confirm {
			s.commit()
		}
	}
	if in.Select != 0 {
		s.toggle(in.Select)
	}
}

func (s *PlacementSystem) track(in input.Frame) {
	previews := s.ecs.PreviewIDs()
	if len(previews) == 0 {
		return
	}
	ground, err := input.GroundUnderCursor(s.viewpoint, in)
	if err != nil {
		s.logger.Trace().Err(err).Msg("preview not updated")
		return
	}
	for _, id := range previews {
		if fig, ok := s.ecs.Figures[id]; ok {
			fig.Position = mgl32.Vec3{ground.X(), 0, ground.Z()}
		}
	}
}

func (s *PlacementSystem) commit() {
	previews := s.ecs.PreviewIDs()
	if len(previews) == 0 {
		s.logger.Warn().Err(eris.Wrap(ErrInvariantViolation, "spawning without a preview")).Send()
		s.ecs.Spawning = component.SpawningNone
		return
	}
	if len(previews) > 1 {
		s.logger.Error().Err(eris.Wrapf(ErrInvariantViolation, "%d previews found", len(previews))).Send()
		for _, extra := range previews[1:] {
			s.despawn(extra)
		}
	}

	id := previews[0]
	preview := s.ecs.Previews[id]
	delete(s.ecs.Previews, id)
	s.ecs.AttachMinion(id, s.movingSpeed)
	s.ecs.Spawning = component.SpawningNone

	var pos mgl32.Vec3
	if fig, ok := s.ecs.Figures[id]; ok {
		pos = fig.Position
	}
	s.logger.Info().Uint64("entity", uint64(id)).Str("prototype", preview.Prototype).Msg("minion placed")
	s.dispatcher.Dispatch(event.Event{
		Type: event.MinionPlaced,
		Data: event.PlacementChange{Entity: id, Prototype: preview.Prototype, Position: pos},
	})
}

func (s *PlacementSystem) toggle(slot int) {
	if s.ecs.Spawning == component.Spawning {
		for _, id := range s.ecs.PreviewIDs() {
			s.despawn(id)
		}
		s.ecs.Spawning = component.SpawningNone
		return
	}

	proto, err := s.prototypes.BySlot(slot)
	if err != nil {
		s.logger.Warn().Err(err).Int("slot", slot).Msg("selection ignored")
		return
	}
	id := s.spawnPreview(proto)
	s.ecs.Spawning = component.Spawning
	s.dispatcher.Dispatch(event.Event{
		Type: event.PreviewSpawned,
		Data: event.PlacementChange{Entity: id, Prototype: proto.ID},
	})
}

func (s *PlacementSystem) spawnPreview(proto defs.Prototype) types.EntityID {
	id := s.ecs.NewEntity()
	fig := component.NewFigure(mgl32.Vec3{})
	fig.Scale = mgl32.Vec3{proto.Scale, proto.Scale, proto.Scale}
	s.ecs.Figures[id] = fig
	s.ecs.Renderables[id] = &component.Renderable{Prototype: proto.ID, Color: proto.Color, Radius: proto.Radius}
	s.ecs.Previews[id] = &component.PreviewFigure{Prototype: proto.ID}
	return id
}

func (s *PlacementSystem) despawn(id types.EntityID) {
	prototype := ""
	if p, ok := s.ecs.Previews[id]; ok {
		prototype = p.Prototype
	}
	s.ecs.DestroyEntity(id)
	s.dispatcher.Dispatch(event.Event{
		Type: event.PreviewDespawned,
		Data: event.PlacementChange{Entity: id, Prototype: prototype},
	})
}
