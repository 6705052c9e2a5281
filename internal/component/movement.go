// internal/component/movement.go
package component

// Movable - способность сущности двигаться вперёд.
type Movable struct {
	Speed float32 // units per second
}

// EngagementState mirrors the presence of the Moving tag.
type EngagementState int

const (
	Idle EngagementState = iota
	Moving
)

func (s EngagementState) String() string {
	switch s {
	case Moving:
		return "moving"
	default:
		return "idle"
	}
}
