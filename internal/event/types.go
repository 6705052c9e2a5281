package event

import (
	"go-minion-arena/internal/types"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	TargetAcquired   EventType = "TargetAcquired"  // охотник получил первую цель
	TargetSwitched   EventType = "TargetSwitched"  // цель сменилась на более близкую
	TargetLost       EventType = "TargetLost"      // цель исчезла
	MovementStarted  EventType = "MovementStarted" // Idle -> Moving
	MovementStopped  EventType = "MovementStopped" // Moving -> Idle
	PreviewSpawned   EventType = "PreviewSpawned"
	PreviewDespawned EventType = "PreviewDespawned"
	MinionPlaced     EventType = "MinionPlaced"
)

// AllTypes lists every domain event type.
var AllTypes = []EventType{
	TargetAcquired, TargetSwitched, TargetLost,
	MovementStarted, MovementStopped,
	PreviewSpawned, PreviewDespawned, MinionPlaced,
}

// TargetChange is the payload of TargetAcquired, TargetSwitched and TargetLost.
// Previous is zero for TargetAcquired, Target is zero for TargetLost.
type TargetChange struct {
	Hunter   types.EntityID
	Previous types.EntityID
	Target   types.EntityID
}

// EngagementChange is the payload of MovementStarted and MovementStopped.
type EngagementChange struct {
	Entity   types.EntityID
	Distance float32 // -1 when the target could not be resolved
}

// PlacementChange is the payload of the placement events.
type PlacementChange struct {
	Entity    types.EntityID
	Prototype string
	Position  mgl32.Vec3
}
