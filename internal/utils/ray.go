// internal/utils/ray.go
package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rotisserie/eris"
)

// ErrNoPlaneIntersection is returned when a ray is parallel to a plane or points away from it.
var ErrNoPlaneIntersection = eris.New("ray does not intersect the plane")

const rayEpsilon = 1.1920929e-7 // float32 machine epsilon

// Ray is a half-line in world space. Direction is expected to be normalized.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// PointAt returns the point at distance t along the ray.
func (r Ray) PointAt(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectPlane returns the distance along the ray to the plane through planePoint
// with the given normal.
func (r Ray) IntersectPlane(planePoint, planeNormal mgl32.Vec3) (float32, error) {
	denominator := planeNormal.Dot(r.Direction)
	if float32(math.Abs(float64(denominator))) <= rayEpsilon {
		return 0, ErrNoPlaneIntersection
	}
	t := planePoint.Sub(r.Origin).Dot(planeNormal) / denominator
	if t <= rayEpsilon {
		return 0, ErrNoPlaneIntersection
	}
	return t, nil
}

// GroundPoint intersects the ray with the ground plane (through the origin, normal UpAxis).
func (r Ray) GroundPoint() (mgl32.Vec3, error) {
	t, err := r.IntersectPlane(mgl32.Vec3{}, UpAxis)
	if err != nil {
		return mgl32.Vec3{}, err
	}
	return r.PointAt(t), nil
}
