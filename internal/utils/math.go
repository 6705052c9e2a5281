// internal/utils/math.go
package utils

import (
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ForwardAxis - локальная ось "вперёд" у всех фигур.
	ForwardAxis = mgl32.Vec3{0, 0, 1}
	// UpAxis is the ground plane normal.
	UpAxis = mgl32.Vec3{0, 1, 0}
)

// DirectionEpsilon is the shortest direction that still defines a facing.
const DirectionEpsilon = 1e-6

// Distance returns the euclidean distance between two points.
func Distance(a, b mgl32.Vec3) float32 {
	return a.Sub(b).Len()
}

// FaceTowards returns the shortest-arc rotation that turns ForwardAxis toward `to`
// as seen from `from`. ok is false when the two points coincide.
func FaceTowards(from, to mgl32.Vec3) (rotation mgl32.Quat, ok bool) {
	direction := to.Sub(from)
	if direction.Len() < DirectionEpsilon {
		return mgl32.QuatIdent(), false
	}
	return mgl32.QuatBetweenVectors(ForwardAxis, direction.Normalize()), true
}

// Clamp ограничивает значение диапазоном [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
