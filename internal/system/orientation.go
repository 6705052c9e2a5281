// internal/system/orientation.go
package system

import (
	"go-minion-arena/internal/entity"
	"go-minion-arena/internal/utils"

	"github.com/rs/zerolog"
)

// OrientationSystem поворачивает фигуры лицом к цели.
type OrientationSystem struct {
	ecs     *entity.ECS
	resolve PositionResolver
	logger  zerolog.Logger
}

func NewOrientationSystem(ecs *entity.ECS, resolve PositionResolver, logger zerolog.Logger) *OrientationSystem {
	return &OrientationSystem{ecs: ecs, resolve: resolve, logger: systemLogger(logger, "orientation")}
}

func (s *OrientationSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.Entities() {
		targeting, ok := s.ecs.Targetings[id]
		if !ok || !targeting.HasTarget() {
			continue
		}
		fig, ok := s.ecs.Figures[id]
		if !ok {
			continue
		}
		targetPos, err := s.resolve(targeting.Target)
		if err != nil {
			s.logger.Debug().Err(err).Uint64("entity", uint64(id)).Msg("skip orientation")
			continue
		}
		// цель совпадает с позицией - поворот не меняем
		if rotation, ok := utils.FaceTowards(fig.Position, targetPos); ok {
			fig.Rotation = rotation
		}
	}
}
