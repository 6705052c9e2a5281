// internal/camera/controller.go
package camera

import (
	"go-minion-arena/internal/config"
	"go-minion-arena/internal/utils"

	"github.com/go-gl/mathgl/mgl32"
)

// Input - то, что контроллер камеры получает за кадр.
// Forward and Right are -1, 0 or 1. Scroll is wheel notches, positive away from the user.
type Input struct {
	Forward float32
	Right   float32
	Scroll  float32
}

// Controller pans the camera across the ground plane and zooms by changing its height.
type Controller struct {
	MoveSpeed   float32
	ScrollSpeed float32
	YMin        float32
	YMax        float32
}

func NewController(cfg config.CameraConfig) *Controller {
	return &Controller{
		MoveSpeed:   cfg.MoveSpeed,
		ScrollSpeed: cfg.ScrollSpeed,
		YMin:        cfg.YMin,
		YMax:        cfg.YMax,
	}
}

// EdgePan converts a cursor resting on the window border into pan axes.
func EdgePan(cursor mgl32.Vec2, width, height int, margin float32) Input {
	var in Input
	x, y := cursor.X(), cursor.Y()
	switch {
	case x <= margin:
		in.Right = -1
	case x >= float32(width)-1-margin:
		in.Right = 1
	}
	switch {
	case y <= margin:
		in.Forward = 1
	case y >= float32(height)-1-margin:
		in.Forward = -1
	}
	return in
}

// Update moves the camera and its target together, so the view angle is kept while panning.
func (ctl *Controller) Update(cam *Camera, in Input, dt float32) {
	forward := cam.Forward()
	flat := mgl32.Vec3{forward.X(), 0, forward.Z()}
	if flat.Len() > utils.DirectionEpsilon {
		flat = flat.Normalize()
		right := flat.Cross(utils.UpAxis)
		dir := flat.Mul(in.Forward).Add(right.Mul(in.Right))
		if dir.Len() > utils.DirectionEpsilon {
			step := dir.Normalize().Mul(ctl.MoveSpeed * dt)
			cam.Position = cam.Position.Add(step)
			cam.Target = cam.Target.Add(step)
		}
	}

	if in.Scroll != 0 {
		y := utils.Clamp(cam.Position.Y()-in.Scroll*ctl.ScrollSpeed, ctl.YMin, ctl.YMax)
		cam.Position = mgl32.Vec3{cam.Position.X(), y, cam.Position.Z()}
	}
}
