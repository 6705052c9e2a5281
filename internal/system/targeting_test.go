package system

import (
	"testing"

	"go-minion-arena/internal/entity"
	"go-minion-arena/internal/event"
	"go-minion-arena/internal/types"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTargeting(ecs *entity.ECS, delta float32) (*TargetingSystem, *recorder) {
	d, r := newDispatcher()
	return NewTargetingSystem(ecs, FigureResolver(ecs), d, delta, zerolog.Nop()), r
}

func TestShouldSwitch(t *testing.T) {
	tests := []struct {
		name               string
		current, candidate float32
		want               bool
	}{
		{"clear gain", 10, 9.85, true},
		{"small gain", 10, 9.95, false},
		{"farther", 10, 12, false},
		{"equal", 3, 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldSwitch(tt.current, tt.candidate, 0.1))
		})
	}
	// 10 - 9.5 == 0.5 exactly in float32
	assert.False(t, ShouldSwitch(10, 9.5, 0.5), "gain equal to delta does not switch")
}

func TestAcquisitionKeepsComparingInSamePass(t *testing.T) {
	ecs := entity.NewECS()
	hunter := addHunter(ecs, mgl32.Vec3{})
	far := addTargetable(ecs, mgl32.Vec3{5, 0, 0})
	near := addTargetable(ecs, mgl32.Vec3{1, 0, 0})
	s, r := newTargeting(ecs, 0.1)

	s.Update(0.016)

	assert.Equal(t, near, ecs.Targetings[hunter].Target)
	assert.Equal(t, []event.EventType{event.TargetAcquired, event.TargetSwitched}, r.types())
	acquired := r.events[0].Data.(event.TargetChange)
	assert.Equal(t, far, acquired.Target)
}

func TestAcquisitionNearFirst(t *testing.T) {
	ecs := entity.NewECS()
	hunter := addHunter(ecs, mgl32.Vec3{})
	near := addTargetable(ecs, mgl32.Vec3{1, 0, 0})
	addTargetable(ecs, mgl32.Vec3{5, 0, 0})
	s, r := newTargeting(ecs, 0.1)

	s.Update(0.016)

	assert.Equal(t, near, ecs.Targetings[hunter].Target)
	assert.Equal(t, []event.EventType{event.TargetAcquired}, r.types())
}

func TestHysteresis(t *testing.T) {
	tests := []struct {
		name       string
		delta      float32
		candidateZ float32
		wantSwitch bool
	}{
		{"gain 0.15 switches", 0.1, 9.85, true},
		{"gain 0.05 holds", 0.1, 9.95, false},
		{"gain exactly at threshold holds", 0.5, 9.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ecs := entity.NewECS()
			hunter := addHunter(ecs, mgl32.Vec3{})
			current := addTargetable(ecs, mgl32.Vec3{10, 0, 0})
			candidate := addTargetable(ecs, mgl32.Vec3{0, 0, tt.candidateZ})
			ecs.Targetings[hunter].Target = current
			s, _ := newTargeting(ecs, tt.delta)

			s.Update(0.016)

			want := current
			if tt.wantSwitch {
				want = candidate
			}
			assert.Equal(t, want, ecs.Targetings[hunter].Target)
		})
	}
}

func TestCurrentDistanceUsesResolvedWorldPosition(t *testing.T) {
	ecs := entity.NewECS()
	hunter := addHunter(ecs, mgl32.Vec3{})
	current := addTargetable(ecs, mgl32.Vec3{1, 0, 0}) // local position; the world position is further away
	candidate := addTargetable(ecs, mgl32.Vec3{0, 0, 5})
	ecs.Targetings[hunter].Target = current

	resolve := func(id types.EntityID) (mgl32.Vec3, error) {
		if id == current {
			return mgl32.Vec3{10, 0, 0}, nil
		}
		return ecs.FigurePosition(id)
	}
	d, _ := newDispatcher()
	s := NewTargetingSystem(ecs, resolve, d, 0.1, zerolog.Nop())

	s.Update(0.016)

	assert.Equal(t, candidate, ecs.Targetings[hunter].Target)
}

func TestAcquiredTargetMeasuredAtWorldPosition(t *testing.T) {
	ecs := entity.NewECS()
	hunter := addHunter(ecs, mgl32.Vec3{})
	parented := addTargetable(ecs, mgl32.Vec3{1, 0, 0}) // local (1,0,0), world (100,0,0)
	other := addTargetable(ecs, mgl32.Vec3{5, 0, 0})

	resolve := func(id types.EntityID) (mgl32.Vec3, error) {
		if id == parented {
			return mgl32.Vec3{100, 0, 0}, nil
		}
		return ecs.FigurePosition(id)
	}
	d, r := newDispatcher()
	s := NewTargetingSystem(ecs, resolve, d, 0.1, zerolog.Nop())

	s.Update(0.016)

	assert.Equal(t, other, ecs.Targetings[hunter].Target)
	assert.Equal(t, []event.EventType{event.TargetAcquired, event.TargetSwitched}, r.types())
}

func TestStaleTargetIsReassignedInSamePass(t *testing.T) {
	ecs := entity.NewECS()
	hunter := addHunter(ecs, mgl32.Vec3{})
	gone := addTargetable(ecs, mgl32.Vec3{1, 0, 0})
	other := addTargetable(ecs, mgl32.Vec3{7, 0, 0})
	ecs.Targetings[hunter].Target = gone
	ecs.DestroyEntity(gone)
	s, r := newTargeting(ecs, 0.1)

	require.NotPanics(t, func() { s.Update(0.016) })

	assert.Equal(t, other, ecs.Targetings[hunter].Target)
	assert.Equal(t, []event.EventType{event.TargetLost, event.TargetAcquired}, r.types())
}

func TestStaleTargetWithoutCandidatesClears(t *testing.T) {
	ecs := entity.NewECS()
	hunter := addHunter(ecs, mgl32.Vec3{})
	gone := addTargetable(ecs, mgl32.Vec3{1, 0, 0})
	ecs.Targetings[hunter].Target = gone
	ecs.DestroyEntity(gone)
	s, _ := newTargeting(ecs, 0.1)

	s.Update(0.016)

	assert.False(t, ecs.Targetings[hunter].HasTarget())
}

func TestNeverTargetsSelf(t *testing.T) {
	ecs := entity.NewECS()
	ids := make([]types.EntityID, 0, 4)
	for _, pos := range []mgl32.Vec3{{0, 0, 0}, {2, 0, 0}, {0, 0, 3}, {-4, 0, 0}} {
		id := addHunter(ecs, pos)
		ecs.SetTargetable(id)
		ids = append(ids, id)
	}
	lonely := addHunter(ecs, mgl32.Vec3{9, 0, 9})
	ecs.SetTargetable(lonely)
	ecs.Targetings[lonely].Target = lonely // испорченное состояние

	s, _ := newTargeting(ecs, 0.1)
	for i := 0; i < 3; i++ {
		s.Update(0.016)
	}

	for _, id := range append(ids, lonely) {
		tg := ecs.Targetings[id]
		assert.NotEqual(t, id, tg.Target)
		assert.True(t, tg.HasTarget())
	}
}

func TestLoneHunterStaysWithoutTarget(t *testing.T) {
	ecs := entity.NewECS()
	hunter := addHunter(ecs, mgl32.Vec3{})
	ecs.SetTargetable(hunter)
	s, r := newTargeting(ecs, 0.1)

	s.Update(0.016)

	assert.False(t, ecs.Targetings[hunter].HasTarget())
	assert.Empty(t, r.events)
}
