// internal/entity/ecs.go
package entity

import (
	"go-minion-arena/internal/component"
	"go-minion-arena/internal/types"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rotisserie/eris"
)

// ErrStaleReference is returned when an entity id no longer resolves to a live entity
// or the entity lost the component being asked for.
var ErrStaleReference = eris.New("stale entity reference")

// ECS - реестр сущностей и разреженных хранилищ компонентов.
// Iteration through Entities() follows creation order so that every frame is deterministic.
type ECS struct {
	NextID      types.EntityID
	Figures     map[types.EntityID]*component.Figure
	Minions     map[types.EntityID]*component.Minion
	Targetings  map[types.EntityID]*component.Targeting
	Targetables map[types.EntityID]struct{}
	Movables    map[types.EntityID]*component.Movable
	Movings     map[types.EntityID]struct{} // пишет только EngagementSystem
	Previews    map[types.EntityID]*component.PreviewFigure
	Renderables map[types.EntityID]*component.Renderable
	Spawning    component.SpawningState

	order []types.EntityID
	alive map[types.EntityID]int // id -> index in order
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Figures:     make(map[types.EntityID]*component.Figure),
		Minions:     make(map[types.EntityID]*component.Minion),
		Targetings:  make(map[types.EntityID]*component.Targeting),
		Targetables: make(map[types.EntityID]struct{}),
		Movables:    make(map[types.EntityID]*component.Movable),
		Movings:     make(map[types.EntityID]struct{}),
		Previews:    make(map[types.EntityID]*component.PreviewFigure),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Spawning:    component.SpawningNone,
		alive:       make(map[types.EntityID]int),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	ecs.alive[id] = len(ecs.order)
	ecs.order = append(ecs.order, id)
	return id
}

// DestroyEntity removes the entity and every component it owns.
// Ids are never reused, so references held elsewhere become stale rather than wrong.
func (ecs *ECS) DestroyEntity(id types.EntityID) {
	idx, ok := ecs.alive[id]
	if !ok {
		return
	}
	copy(ecs.order[idx:], ecs.order[idx+1:])
	ecs.order = ecs.order[:len(ecs.order)-1]
	delete(ecs.alive, id)
	for i := idx; i < len(ecs.order); i++ {
		ecs.alive[ecs.order[i]] = i
	}

	delete(ecs.Figures, id)
	delete(ecs.Minions, id)
	delete(ecs.Targetings, id)
	delete(ecs.Targetables, id)
	delete(ecs.Movables, id)
	delete(ecs.Movings, id)
	delete(ecs.Previews, id)
	delete(ecs.Renderables, id)
}

func (ecs *ECS) Alive(id types.EntityID) bool {
	_, ok := ecs.alive[id]
	return ok
}

// Entities returns a snapshot of live entities in creation order.
// The snapshot stays valid while systems destroy entities.
func (ecs *ECS) Entities() []types.EntityID {
	out := make([]types.EntityID, len(ecs.order))
	copy(out, ecs.order)
	return out
}

// Count returns the number of live entities.
func (ecs *ECS) Count() int {
	return len(ecs.order)
}

func (ecs *ECS) SetTargetable(id types.EntityID) {
	ecs.Targetables[id] = struct{}{}
}

func (ecs *ECS) IsTargetable(id types.EntityID) bool {
	_, ok := ecs.Targetables[id]
	return ok
}

func (ecs *ECS) SetMoving(id types.EntityID) {
	ecs.Movings[id] = struct{}{}
}

func (ecs *ECS) ClearMoving(id types.EntityID) {
	delete(ecs.Movings, id)
}

func (ecs *ECS) IsMoving(id types.EntityID) bool {
	_, ok := ecs.Movings[id]
	return ok
}

// Engagement reports the movement state derived from the Moving tag.
func (ecs *ECS) Engagement(id types.EntityID) component.EngagementState {
	if ecs.IsMoving(id) {
		return component.Moving
	}
	return component.Idle
}

// AttachMinion turns an entity with a Figure into a full participant:
// targetable, able to hunt, able to move, with default attributes.
func (ecs *ECS) AttachMinion(id types.EntityID, speed float32) {
	ecs.SetTargetable(id)
	ecs.Targetings[id] = &component.Targeting{}
	ecs.Movables[id] = &component.Movable{Speed: speed}
	minion := component.DefaultMinion()
	ecs.Minions[id] = &minion
}

// CreateMinion creates a placed minion at the figure's position.
func (ecs *ECS) CreateMinion(figure *component.Figure, renderable *component.Renderable, speed float32) types.EntityID {
	id := ecs.NewEntity()
	ecs.Figures[id] = figure
	if renderable != nil {
		ecs.Renderables[id] = renderable
	}
	ecs.AttachMinion(id, speed)
	return id
}

// PreviewIDs returns preview entities in creation order.
func (ecs *ECS) PreviewIDs() []types.EntityID {
	var ids []types.EntityID
	for _, id := range ecs.order {
		if _, ok := ecs.Previews[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// FigurePosition resolves the world position of an entity on a flat scene,
// where the local figure position is the world position.
func (ecs *ECS) FigurePosition(id types.EntityID) (mgl32.Vec3, error) {
	if !ecs.Alive(id) {
		return mgl32.Vec3{}, eris.Wrapf(ErrStaleReference, "entity %d is not alive", id)
	}
	fig, ok := ecs.Figures[id]
	if !ok {
		return mgl32.Vec3{}, eris.Wrapf(ErrStaleReference, "entity %d has no figure", id)
	}
	return fig.Position, nil
}
