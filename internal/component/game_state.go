// internal/component/game_state.go
package component

// GamePhase - фаза игры, передаётся в каждый кадр явно.
type GamePhase int

const (
	AssetLoading GamePhase = iota
	GameStart
	Running
)

func (p GamePhase) String() string {
	switch p {
	case AssetLoading:
		return "asset_loading"
	case GameStart:
		return "game_start"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// Simulating reports whether the frame pipeline may run in this phase.
func (p GamePhase) Simulating() bool {
	return p == GameStart || p == Running
}

// SpawningState gates placement of new minions.
type SpawningState int

const (
	SpawningNone SpawningState = iota
	Spawning
)

func (s SpawningState) String() string {
	if s == Spawning {
		return "spawning"
	}
	return "none"
}
