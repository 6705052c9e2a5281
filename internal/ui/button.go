// internal/ui/button.go
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect        rl.Rectangle
	Text        string
	TextColor   rl.Color
	BgColor     rl.Color
	HoverColor  rl.Color
	ActiveColor rl.Color
	FontSize    int32
}

// NewButton создает новую кнопку.
func NewButton(rect rl.Rectangle, text string) *Button {
	return &Button{
		Rect:        rect,
		Text:        text,
		TextColor:   rl.Black,
		BgColor:     rl.LightGray,
		HoverColor:  rl.Gray,
		ActiveColor: rl.Gold,
		FontSize:    18,
	}
}

// Contains reports whether the point lies over the button.
func (b *Button) Contains(mousePos rl.Vector2) bool {
	return rl.CheckCollisionPointRec(mousePos, b.Rect)
}

// IsClicked проверяет, был ли сделан клик по кнопке.
func (b *Button) IsClicked(mousePos rl.Vector2) bool {
	return b.Contains(mousePos) && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(mousePos rl.Vector2, active bool) {
	bgColor := b.BgColor
	switch {
	case active:
		bgColor = b.ActiveColor
	case b.Contains(mousePos):
		bgColor = b.HoverColor
	}

	rl.DrawRectangleRec(b.Rect, bgColor)
	rl.DrawRectangleLinesEx(b.Rect, 2, rl.DarkGray)

	textWidth := rl.MeasureText(b.Text, b.FontSize)
	textX := int32(b.Rect.X) + (int32(b.Rect.Width)-textWidth)/2
	textY := int32(b.Rect.Y) + (int32(b.Rect.Height)-b.FontSize)/2
	rl.DrawText(b.Text, textX, textY, b.FontSize, b.TextColor)
}
