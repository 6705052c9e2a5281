// internal/component/figure.go
package component

import (
	"go-minion-arena/internal/utils"

	"github.com/go-gl/mathgl/mgl32"
)

// Figure - пространственное состояние сущности.
// Position and Rotation are written by the orientation and movement systems;
// the presentation layer only reads them.
type Figure struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

// NewFigure places a figure at position facing the reference forward axis.
func NewFigure(position mgl32.Vec3) *Figure {
	return &Figure{
		Position: position,
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// Forward returns the direction the figure currently faces.
func (f *Figure) Forward() mgl32.Vec3 {
	return f.Rotation.Rotate(utils.ForwardAxis)
}

// Matrix composes translation, rotation and scale into a render transform.
func (f *Figure) Matrix() mgl32.Mat4 {
	translate := mgl32.Translate3D(f.Position.X(), f.Position.Y(), f.Position.Z())
	scale := mgl32.Scale3D(f.Scale.X(), f.Scale.Y(), f.Scale.Z())
	return translate.Mul4(f.Rotation.Normalize().Mat4()).Mul4(scale)
}
