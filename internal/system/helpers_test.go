package system

import (
	"go-minion-arena/internal/component"
	"go-minion-arena/internal/entity"
	"go-minion-arena/internal/event"
	"go-minion-arena/internal/types"

	"github.com/go-gl/mathgl/mgl32"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) types() []event.EventType {
	out := make([]event.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func newDispatcher() (*event.Dispatcher, *recorder) {
	d := event.NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r)
	return d, r
}

func addHunter(ecs *entity.ECS, pos mgl32.Vec3) types.EntityID {
	id := ecs.NewEntity()
	ecs.Figures[id] = component.NewFigure(pos)
	ecs.Targetings[id] = &component.Targeting{}
	return id
}

func addTargetable(ecs *entity.ECS, pos mgl32.Vec3) types.EntityID {
	id := ecs.NewEntity()
	ecs.Figures[id] = component.NewFigure(pos)
	ecs.SetTargetable(id)
	return id
}
