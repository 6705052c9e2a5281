// internal/ui/prototype_bar.go
package ui

import (
	"fmt"

	"go-minion-arena/internal/defs"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	barButtonWidth  = 130
	barButtonHeight = 34
	barSpacing      = 8
	barMargin       = 12
)

// PrototypeBar - панель выбора прототипа внизу экрана, дублирует клавиши 1..4.
type PrototypeBar struct {
	buttons []*Button
	slots   []int
	ids     []string
}

func NewPrototypeBar(protos []defs.Prototype, screenHeight int) *PrototypeBar {
	bar := &PrototypeBar{}
	y := float32(screenHeight - barButtonHeight - barMargin)
	for i, p := range protos {
		x := float32(barMargin + i*(barButtonWidth+barSpacing))
		label := fmt.Sprintf("%d %s", p.Slot, p.Name)
		bar.buttons = append(bar.buttons, NewButton(rl.NewRectangle(x, y, barButtonWidth, barButtonHeight), label))
		bar.slots = append(bar.slots, p.Slot)
		bar.ids = append(bar.ids, p.ID)
	}
	return bar
}

// Contains reports whether the cursor is over any button.
func (b *PrototypeBar) Contains(mousePos rl.Vector2) bool {
	for _, btn := range b.buttons {
		if btn.Contains(mousePos) {
			return true
		}
	}
	return false
}

// Clicked returns the slot of the clicked button, or 0.
func (b *PrototypeBar) Clicked(mousePos rl.Vector2) int {
	for i, btn := range b.buttons {
		if btn.IsClicked(mousePos) {
			return b.slots[i]
		}
	}
	return 0
}

// Draw рисует панель; активный прототип подсвечен.
func (b *PrototypeBar) Draw(mousePos rl.Vector2, activePrototype string) {
	for i, btn := range b.buttons {
		btn.Draw(mousePos, b.ids[i] == activePrototype)
	}
}
