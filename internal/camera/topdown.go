// internal/camera/topdown.go
package camera

import (
	"go-minion-arena/internal/input"
	"go-minion-arena/internal/utils"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rotisserie/eris"
)

const topDownHeight = 10

// TopDown is an orthographic view of the ground plane. World +X is screen right,
// world +Z is screen up, the origin sits in the window center.
type TopDown struct {
	Width  int
	Height int
	Scale  float32 // пикселей на единицу мира
}

// CursorRay casts a ray straight down through the cursor.
func (v TopDown) CursorRay(cursor mgl32.Vec2) (utils.Ray, error) {
	if v.Width <= 0 || v.Height <= 0 || v.Scale <= 0 {
		return utils.Ray{}, eris.Wrap(input.ErrNoViewpoint, "overview has no viewport")
	}
	x, y := cursor.X(), cursor.Y()
	if x < 0 || y < 0 || x >= float32(v.Width) || y >= float32(v.Height) {
		return utils.Ray{}, eris.Wrapf(input.ErrCursorOutOfBounds, "cursor (%v, %v)", x, y)
	}
	ground := v.ScreenToWorld(cursor)
	return utils.Ray{
		Origin:    mgl32.Vec3{ground.X(), topDownHeight, ground.Z()},
		Direction: utils.UpAxis.Mul(-1),
	}, nil
}

// ScreenToWorld maps a window position onto the ground plane.
func (v TopDown) ScreenToWorld(p mgl32.Vec2) mgl32.Vec3 {
	return mgl32.Vec3{
		(p.X() - float32(v.Width)/2) / v.Scale,
		0,
		(float32(v.Height)/2 - p.Y()) / v.Scale,
	}
}

// WorldToScreen projects a world point onto the window, ignoring its height.
func (v TopDown) WorldToScreen(p mgl32.Vec3) mgl32.Vec2 {
	return mgl32.Vec2{
		float32(v.Width)/2 + p.X()*v.Scale,
		float32(v.Height)/2 - p.Z()*v.Scale,
	}
}
