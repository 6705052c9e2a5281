// component/render.go
package component

import "image/color"

// Renderable - визуальная ссылка на прототип.
// Prototype selects the model; Color and Radius are used when the model is missing.
type Renderable struct {
	Prototype string
	Color     color.RGBA
	Radius    float32
}
