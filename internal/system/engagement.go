// internal/system/engagement.go
package system

import (
	"go-minion-arena/internal/entity"
	"go-minion-arena/internal/event"
	"go-minion-arena/internal/types"
	"go-minion-arena/internal/utils"

	"github.com/rs/zerolog"
)

// EngagementSystem - единственный, кто ставит и снимает тег Moving.
type EngagementSystem struct {
	ecs              *entity.ECS
	resolve          PositionResolver
	dispatcher       *event.Dispatcher
	stoppingDistance float32
	seeingDistance   float32
	logger           zerolog.Logger
}

func NewEngagementSystem(ecs *entity.ECS, resolve PositionResolver, dispatcher *event.Dispatcher,
	stoppingDistance, seeingDistance float32, logger zerolog.Logger,
) *EngagementSystem {
	return &EngagementSystem{
		ecs:              ecs,
		resolve:          resolve,
		dispatcher:       dispatcher,
		stoppingDistance: stoppingDistance,
		seeingDistance:   seeingDistance,
		logger:           systemLogger(logger, "engagement"),
	}
}

// InEngagementRange reports whether distance lies in [stopping, seeing).
func InEngagementRange(distance, stopping, seeing float32) bool {
	return distance >= stopping && distance < seeing
}

func (s *EngagementSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.Entities() {
		if _, ok := s.ecs.Targetings[id]; !ok {
			if s.ecs.IsMoving(id) {
				s.set(id, false, -1)
			}
			continue
		}
		moving, distance := s.evaluate(id)
		s.set(id, moving, distance)
	}
}

// evaluate returns the wanted state; distance is -1 when there is nothing to measure.
func (s *EngagementSystem) evaluate(id types.EntityID) (bool, float32) {
	targeting := s.ecs.Targetings[id]
	if !targeting.HasTarget() {
		return false, -1
	}
	fig, ok := s.ecs.Figures[id]
	if !ok {
		return false, -1
	}
	targetPos, err := s.resolve(targeting.Target)
	if err != nil {
		s.logger.Debug().Err(err).Uint64("entity", uint64(id)).Msg("forcing idle")
		return false, -1
	}
	distance := utils.Distance(fig.Position, targetPos)
	return InEngagementRange(distance, s.stoppingDistance, s.seeingDistance), distance
}

func (s *EngagementSystem) set(id types.EntityID, moving bool, distance float32) {
	was := s.ecs.IsMoving(id)
	switch {
	case moving && !was:
		s.ecs.SetMoving(id)
		s.dispatcher.Dispatch(event.Event{
			Type: event.MovementStarted,
			Data: event.EngagementChange{Entity: id, Distance: distance},
		})
	case !moving && was:
		s.ecs.ClearMoving(id)
		s.dispatcher.Dispatch(event.Event{
			Type: event.MovementStopped,
			Data: event.EngagementChange{Entity: id, Distance: distance},
		})
	}
}
