// internal/state/pause_state.go
package state

import (
	"go-minion-arena/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию: PlayState просто не получает Update.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *PlayState
}

func NewPauseState(sm *StateMachine, prevState *PlayState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeyF9) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw() {
	if s.previousState != nil {
		s.previousState.Draw()
	}

	width, height := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	rl.DrawRectangle(0, 0, width, height, rl.NewColor(0, 0, 0, 128))

	pauseText := "PAUSED"
	fontSize := int32(40)
	textWidth := rl.MeasureText(pauseText, fontSize)
	rl.DrawText(pauseText, (width-textWidth)/2, height/2-20, fontSize, config.TextLightColor)
}

func (s *PauseState) Exit() {}

// Cleanup освобождает ресурсы состояния, которое стоит на паузе.
func (s *PauseState) Cleanup() {
	if s.previousState != nil {
		s.previousState.Cleanup()
	}
}
