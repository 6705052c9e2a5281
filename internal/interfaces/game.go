package interfaces

import (
	"go-minion-arena/internal/component"
	"go-minion-arena/internal/entity"
	"go-minion-arena/internal/input"
	"go-minion-arena/internal/types"
)

// Simulation - то, что фронтенды знают об игре.
type Simulation interface {
	Update(phase component.GamePhase, deltaTime float64, in input.Frame)
	SetViewpoint(vp input.Viewpoint)
	SpawnInitialMinions() []types.EntityID
	SpawningState() component.SpawningState
	World() *entity.ECS
	GetGameTime() float64
}
