package entity

import (
	"testing"

	"go-minion-arena/internal/component"
	"go-minion-arena/internal/types"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntitiesKeepCreationOrder(t *testing.T) {
	ecs := NewECS()
	a := ecs.NewEntity()
	b := ecs.NewEntity()
	c := ecs.NewEntity()
	d := ecs.NewEntity()

	ecs.DestroyEntity(b)

	assert.Equal(t, []types.EntityID{a, c, d}, ecs.Entities())
	assert.False(t, ecs.Alive(b))
	assert.True(t, ecs.Alive(d))
	assert.Equal(t, 3, ecs.Count())

	e := ecs.NewEntity()
	assert.NotEqual(t, b, e, "ids are never reused")
	assert.Equal(t, []types.EntityID{a, c, d, e}, ecs.Entities())
}

func TestDestroyEntityRemovesComponents(t *testing.T) {
	ecs := NewECS()
	id := ecs.CreateMinion(component.NewFigure(mgl32.Vec3{1, 0, 1}), &component.Renderable{Prototype: "wizard"}, 0.2)
	ecs.SetMoving(id)

	ecs.DestroyEntity(id)
	ecs.DestroyEntity(id) // повторно - без паники

	assert.Empty(t, ecs.Figures)
	assert.Empty(t, ecs.Minions)
	assert.Empty(t, ecs.Targetings)
	assert.Empty(t, ecs.Targetables)
	assert.Empty(t, ecs.Movables)
	assert.Empty(t, ecs.Movings)
	assert.Empty(t, ecs.Renderables)
}

func TestCreateMinionBundle(t *testing.T) {
	ecs := NewECS()
	id := ecs.CreateMinion(component.NewFigure(mgl32.Vec3{2, 0, 1}), nil, 0.2)

	require.Contains(t, ecs.Minions, id)
	assert.Equal(t, uint16(100), ecs.Minions[id].Life)
	assert.Equal(t, uint16(15), ecs.Minions[id].AttackDamage)
	assert.True(t, ecs.IsTargetable(id))
	assert.False(t, ecs.Targetings[id].HasTarget())
	assert.Equal(t, float32(0.2), ecs.Movables[id].Speed)
	assert.Equal(t, component.Idle, ecs.Engagement(id))
	assert.NotContains(t, ecs.Renderables, id)
}

func TestEngagementFollowsMovingTag(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()

	ecs.SetMoving(id)
	assert.Equal(t, component.Moving, ecs.Engagement(id))
	ecs.ClearMoving(id)
	assert.Equal(t, component.Idle, ecs.Engagement(id))
}

func TestFigurePosition(t *testing.T) {
	ecs := NewECS()
	id := ecs.CreateMinion(component.NewFigure(mgl32.Vec3{-2, 0, 1}), nil, 0.2)
	bare := ecs.NewEntity()

	pos, err := ecs.FigurePosition(id)
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{-2, 0, 1}, pos)

	_, err = ecs.FigurePosition(bare)
	assert.True(t, eris.Is(err, ErrStaleReference))

	ecs.DestroyEntity(id)
	_, err = ecs.FigurePosition(id)
	assert.True(t, eris.Is(err, ErrStaleReference))
}

func TestPreviewIDs(t *testing.T) {
	ecs := NewECS()
	ecs.NewEntity()
	p1 := ecs.NewEntity()
	ecs.Previews[p1] = &component.PreviewFigure{Prototype: "old"}
	p2 := ecs.NewEntity()
	ecs.Previews[p2] = &component.PreviewFigure{Prototype: "hat"}

	assert.Equal(t, []types.EntityID{p1, p2}, ecs.PreviewIDs())
}
