// internal/system/system.go
package system

import (
	"go-minion-arena/internal/entity"
	"go-minion-arena/internal/types"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// ErrInvariantViolation marks state that correct input handling never produces,
// such as self-targeting or more than one preview.
var ErrInvariantViolation = eris.New("invariant violation")

// PositionResolver returns the world position of an entity.
// Failures must satisfy eris.Is(err, entity.ErrStaleReference).
type PositionResolver func(types.EntityID) (mgl32.Vec3, error)

// FigureResolver resolves positions straight from figures, for scenes without parent transforms.
func FigureResolver(ecs *entity.ECS) PositionResolver {
	return ecs.FigurePosition
}

func systemLogger(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("system", name).Logger()
}
