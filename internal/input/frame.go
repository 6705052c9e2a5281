// internal/input/frame.go
package input

import (
	"go-minion-arena/internal/utils"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rotisserie/eris"
)

var (
	// ErrNoViewpoint is returned when no camera is available to cast a cursor ray.
	ErrNoViewpoint = eris.New("no active viewpoint")
	// ErrCursorOutOfBounds is returned when the cursor is outside the window.
	ErrCursorOutOfBounds = eris.New("cursor is outside the window")
)

// Frame - снимок ввода за один кадр.
// Frontends build it once per frame from their own polling API.
type Frame struct {
	Select         int // 1..4 - клавиша выбора прототипа, 0 - ничего не нажато
	Confirm        bool
	Cursor         mgl32.Vec2 // window coordinates, origin top-left
	CursorInWindow bool
}

// Viewpoint casts a ray from the eye through a window position.
type Viewpoint interface {
	CursorRay(cursor mgl32.Vec2) (utils.Ray, error)
}

// GroundUnderCursor casts a ray through the cursor and intersects the ground plane.
// A nil viewpoint yields ErrNoViewpoint.
func GroundUnderCursor(vp Viewpoint, f Frame) (mgl32.Vec3, error) {
	if vp == nil {
		return mgl32.Vec3{}, ErrNoViewpoint
	}
	if !f.CursorInWindow {
		return mgl32.Vec3{}, ErrCursorOutOfBounds
	}
	ray, err := vp.CursorRay(f.Cursor)
	if err != nil {
		return mgl32.Vec3{}, err
	}
	return ray.GroundPoint()
}
