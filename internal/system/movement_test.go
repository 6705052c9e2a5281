package system

import (
	"math"
	"testing"

	"go-minion-arena/internal/component"
	"go-minion-arena/internal/entity"
	"go-minion-arena/internal/utils"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestIntegrateZeroDeltaIsIdentity(t *testing.T) {
	fig := *component.NewFigure(mgl32.Vec3{1, 2, 3})
	fig.Rotation = mgl32.QuatRotate(0.7, utils.UpAxis)

	assert.Equal(t, fig, Integrate(fig, 0.2, 0))
}

func TestIntegrateMovesAlongFacing(t *testing.T) {
	fig := *component.NewFigure(mgl32.Vec3{})
	fig.Rotation = mgl32.QuatRotate(math.Pi/2, utils.UpAxis) // +Z -> +X

	got := Integrate(fig, 2, 0.5)

	assert.InDelta(t, 1, got.Position.X(), 1e-5)
	assert.InDelta(t, 0, got.Position.Y(), 1e-5)
	assert.InDelta(t, 0, got.Position.Z(), 1e-5)
	assert.Equal(t, fig.Rotation, got.Rotation)
}

func TestMovementSystemOnlyMovesMoving(t *testing.T) {
	ecs := entity.NewECS()
	walker := ecs.CreateMinion(component.NewFigure(mgl32.Vec3{}), nil, 0.2)
	idle := ecs.CreateMinion(component.NewFigure(mgl32.Vec3{3, 0, 0}), nil, 0.2)
	ecs.SetMoving(walker)

	s := NewMovementSystem(ecs)
	for i := 0; i < 10; i++ {
		s.Update(0.5)
	}

	assert.InDelta(t, 1.0, ecs.Figures[walker].Position.Z(), 1e-5)
	assert.Equal(t, mgl32.Vec3{3, 0, 0}, ecs.Figures[idle].Position)
}
