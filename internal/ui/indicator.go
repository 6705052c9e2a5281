// internal/ui/indicator.go
package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// StateIndicatorRL - кружок в углу экрана, пульсирует при смене состояния.
type StateIndicatorRL struct {
	X, Y       float32
	Radius     float32
	lastChange time.Time
	last       fmt.Stringer
}

func NewStateIndicatorRL(x, y, radius float32) *StateIndicatorRL {
	return &StateIndicatorRL{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Draw отрисовывает индикатор
func (i *StateIndicatorRL) Draw(state fmt.Stringer, stateColor color.RGBA) {
	if i.last == nil || i.last.String() != state.String() {
		i.last = state
		i.lastChange = time.Now()
	}
	elapsed := time.Since(i.lastChange).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	rl.DrawCircleV(rl.NewVector2(i.X, i.Y), currentRadius, stateColor)
	rl.DrawCircleLines(int32(i.X), int32(i.Y), currentRadius, rl.White)
	rl.DrawText(state.String(), int32(i.X-i.Radius)-rl.MeasureText(state.String(), 16)-6, int32(i.Y)-8, 16, rl.White)
}
