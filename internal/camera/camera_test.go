package camera

import (
	"testing"

	"go-minion-arena/internal/config"
	"go-minion-arena/internal/input"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRayThroughCenterHitsTarget(t *testing.T) {
	cam := New(45, 1280, 720)

	ray, err := cam.CursorRay(mgl32.Vec2{640, 360})
	require.NoError(t, err)
	p, err := ray.GroundPoint()
	require.NoError(t, err)

	assert.InDelta(t, 0, p.X(), 1e-2)
	assert.InDelta(t, 0, p.Z(), 1e-2)
}

func TestCursorRayBounds(t *testing.T) {
	cam := New(45, 1280, 720)

	_, err := cam.CursorRay(mgl32.Vec2{-1, 10})
	assert.True(t, eris.Is(err, input.ErrCursorOutOfBounds))
	_, err = cam.CursorRay(mgl32.Vec2{1280, 10})
	assert.True(t, eris.Is(err, input.ErrCursorOutOfBounds))

	empty := New(45, 0, 0)
	_, err = empty.CursorRay(mgl32.Vec2{0, 0})
	assert.True(t, eris.Is(err, input.ErrNoViewpoint))
}

func TestCursorRayAboveHorizonMisses(t *testing.T) {
	cam := New(45, 1280, 720)
	cam.Position = mgl32.Vec3{0, 1, -5}
	cam.Target = mgl32.Vec3{0, 1, 0} // смотрит горизонтально

	ray, err := cam.CursorRay(mgl32.Vec2{640, 0})
	require.NoError(t, err)
	_, err = ray.GroundPoint()
	assert.Error(t, err)
}

func TestControllerPanKeepsViewAngle(t *testing.T) {
	cam := New(45, 1280, 720)
	ctl := NewController(config.Default().Camera)
	before := cam.Target.Sub(cam.Position)

	ctl.Update(cam, Input{Forward: 1}, 1)

	after := cam.Target.Sub(cam.Position)
	assert.InDelta(t, before.X(), after.X(), 1e-4)
	assert.InDelta(t, before.Y(), after.Y(), 1e-4)
	assert.InDelta(t, before.Z(), after.Z(), 1e-4)
	moved := cam.Position.Sub(DefaultPosition)
	assert.InDelta(t, 5, moved.Len(), 1e-4)
	assert.InDelta(t, 0, moved.Y(), 1e-6)
}

func TestControllerZoomClamp(t *testing.T) {
	cam := New(45, 1280, 720)
	ctl := NewController(config.Default().Camera)

	ctl.Update(cam, Input{Scroll: -10}, 0)
	assert.Equal(t, float32(5), cam.Position.Y())

	ctl.Update(cam, Input{Scroll: 10}, 0)
	assert.Equal(t, float32(2), cam.Position.Y())
}

func TestEdgePan(t *testing.T) {
	assert.Equal(t, Input{Right: -1, Forward: 1}, EdgePan(mgl32.Vec2{0, 0}, 100, 100, 0))
	assert.Equal(t, Input{Right: 1, Forward: -1}, EdgePan(mgl32.Vec2{99, 99}, 100, 100, 0))
	assert.Equal(t, Input{}, EdgePan(mgl32.Vec2{50, 50}, 100, 100, 0))
}

func TestTopDownRoundTrip(t *testing.T) {
	v := TopDown{Width: 640, Height: 480, Scale: 32}

	ray, err := v.CursorRay(mgl32.Vec2{320 + 64, 240 - 32})
	require.NoError(t, err)
	p, err := ray.GroundPoint()
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{2, 0, 1}, p)

	assert.Equal(t, mgl32.Vec2{384, 208}, v.WorldToScreen(p))

	_, err = v.CursorRay(mgl32.Vec2{640, 0})
	assert.True(t, eris.Is(err, input.ErrCursorOutOfBounds))
}
