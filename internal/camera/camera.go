// internal/camera/camera.go
package camera

import (
	"go-minion-arena/internal/config"
	"go-minion-arena/internal/input"
	"go-minion-arena/internal/utils"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rotisserie/eris"
)

var (
	// DefaultPosition - стартовая позиция камеры.
	DefaultPosition = mgl32.Vec3{-2, 2.5, -5}
	DefaultTarget   = mgl32.Vec3{}
)

// Camera is a perspective camera. Fovy is in degrees.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	Fovy     float32
	Width    int
	Height   int
}

// New returns a camera at the opening position looking at the origin.
func New(fovy float32, width, height int) *Camera {
	return &Camera{
		Position: DefaultPosition,
		Target:   DefaultTarget,
		Up:       utils.UpAxis,
		Fovy:     fovy,
		Width:    width,
		Height:   height,
	}
}

func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

func (c *Camera) Projection() mgl32.Mat4 {
	aspect := float32(c.Width) / float32(c.Height)
	return mgl32.Perspective(mgl32.DegToRad(c.Fovy), aspect, config.CameraNear, config.CameraFar)
}

// CursorRay unprojects the cursor onto the near and far planes.
func (c *Camera) CursorRay(cursor mgl32.Vec2) (utils.Ray, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return utils.Ray{}, eris.Wrap(input.ErrNoViewpoint, "camera has no viewport")
	}
	x, y := cursor.X(), cursor.Y()
	if x < 0 || y < 0 || x >= float32(c.Width) || y >= float32(c.Height) {
		return utils.Ray{}, eris.Wrapf(input.ErrCursorOutOfBounds, "cursor (%v, %v)", x, y)
	}

	// окно: y вниз, GL: y вверх
	winY := float32(c.Height) - y
	view, proj := c.View(), c.Projection()
	near, err := mgl32.UnProject(mgl32.Vec3{x, winY, 0}, view, proj, 0, 0, c.Width, c.Height)
	if err != nil {
		return utils.Ray{}, eris.Wrap(err, "failed to unproject near point")
	}
	far, err := mgl32.UnProject(mgl32.Vec3{x, winY, 1}, view, proj, 0, 0, c.Width, c.Height)
	if err != nil {
		return utils.Ray{}, eris.Wrap(err, "failed to unproject far point")
	}
	return utils.Ray{Origin: near, Direction: far.Sub(near).Normalize()}, nil
}

// Forward returns the view direction.
func (c *Camera) Forward() mgl32.Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}
