// internal/defs/prototypes.go
package defs

import (
	"image/color"
)

// MaxSlot is the highest selection slot; slots are bound to keys 1..MaxSlot.
const MaxSlot = 4

// Prototype holds the static data of one placeable minion kind.
type Prototype struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Slot   int        `json:"slot"`  // клавиша выбора, 1..4
	Model  string     `json:"model"` // файл модели относительно assets.models_dir
	Color  color.RGBA `json:"color"`
	Radius float32    `json:"radius"`
	Scale  float32    `json:"scale"`
}
