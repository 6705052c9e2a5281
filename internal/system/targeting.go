// internal/system/targeting.go
package system

import (
	"go-minion-arena/internal/component"
	"go-minion-arena/internal/entity"
	"go-minion-arena/internal/event"
	"go-minion-arena/internal/types"
	"go-minion-arena/internal/utils"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// TargetingSystem выбирает и удерживает цель для каждого охотника.
type TargetingSystem struct {
	ecs            *entity.ECS
	resolve        PositionResolver
	dispatcher     *event.Dispatcher
	switchingDelta float32
	logger         zerolog.Logger
}

func NewTargetingSystem(ecs *entity.ECS, resolve PositionResolver, dispatcher *event.Dispatcher,
	switchingDelta float32, logger zerolog.Logger,
) *TargetingSystem {
	return &TargetingSystem{
		ecs:            ecs,
		resolve:        resolve,
		dispatcher:     dispatcher,
		switchingDelta: switchingDelta,
		logger:         systemLogger(logger, "targeting"),
	}
}

// ShouldSwitch reports whether a candidate is closer than the current target by more than delta.
func ShouldSwitch(currentDistance, candidateDistance, delta float32) bool {
	return currentDistance-candidateDistance > delta
}

func (s *TargetingSystem) Update(deltaTime float64) {
	ids := s.ecs.Entities()
	for _, hunter := range ids {
		targeting, ok := s.ecs.Targetings[hunter]
		if !ok {
			continue
		}
		fig, ok := s.ecs.Figures[hunter]
		if !ok {
			continue
		}
		s.updateHunter(hunter, fig.Position, targeting, ids)
	}
}

func (s *TargetingSystem) updateHunter(hunter types.EntityID, hunterPos mgl32.Vec3, targeting *component.Targeting, ids []types.EntityID) {
	if targeting.Target == hunter {
		s.logger.Error().Err(eris.Wrapf(ErrInvariantViolation, "entity %d targets itself", hunter)).Send()
		targeting.Clear()
	}

	// текущая дистанция до цели; валидна только при HasTarget()
	var currentDistance float32
	if targeting.HasTarget() {
		pos, err := s.resolve(targeting.Target)
		if err != nil {
			s.logger.Debug().Err(err).Uint64("hunter", uint64(hunter)).Msg("target lost")
			s.dispatch(event.TargetLost, hunter, targeting.Target, 0)
			targeting.Clear()
		} else {
			currentDistance = utils.Distance(hunterPos, pos)
		}
	}

	for _, candidate := range ids {
		if candidate == hunter || !s.ecs.IsTargetable(candidate) {
			continue
		}
		candFig, ok := s.ecs.Figures[candidate]
		if !ok {
			continue
		}
		candidateDistance := utils.Distance(hunterPos, candFig.Position)

		if !targeting.HasTarget() {
			s.assign(hunter, targeting, candidate)
			s.dispatch(event.TargetAcquired, hunter, 0, candidate)
			currentDistance = s.targetDistance(hunterPos, targeting.Target, candidateDistance)
			continue
		}
		if candidate == targeting.Target {
			continue
		}
		if ShouldSwitch(currentDistance, candidateDistance, s.switchingDelta) {
			previous := targeting.Target
			s.assign(hunter, targeting, candidate)
			s.dispatch(event.TargetSwitched, hunter, previous, candidate)
			currentDistance = s.targetDistance(hunterPos, targeting.Target, candidateDistance)
		}
	}
}

// targetDistance measures the new target at its resolved world position.
func (s *TargetingSystem) targetDistance(hunterPos mgl32.Vec3, target types.EntityID, fallback float32) float32 {
	pos, err := s.resolve(target)
	if err != nil {
		return fallback
	}
	return utils.Distance(hunterPos, pos)
}

func (s *TargetingSystem) assign(hunter types.EntityID, targeting *component.Targeting, candidate types.EntityID) {
	if candidate == hunter {
		s.logger.Error().Err(eris.Wrapf(ErrInvariantViolation, "refusing self-target for %d", hunter)).Send()
		return
	}
	targeting.Target = candidate
}

func (s *TargetingSystem) dispatch(t event.EventType, hunter, previous, target types.EntityID) {
	s.dispatcher.Dispatch(event.Event{
		Type: t,
		Data: event.TargetChange{Hunter: hunter, Previous: previous, Target: target},
	})
}
