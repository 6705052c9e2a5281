// internal/component/preview.go
package component

// PreviewFigure marks an entity that follows the cursor and has not been placed yet.
// A preview carries only a Figure and a Renderable besides this marker.
type PreviewFigure struct {
	Prototype string // prototype the preview will become
}
