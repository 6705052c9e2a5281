package utils

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaceTowards(t *testing.T) {
	tests := []struct {
		name string
		to   mgl32.Vec3
	}{
		{"forward", mgl32.Vec3{0, 0, 3}},
		{"right", mgl32.Vec3{4, 0, 0}},
		{"diagonal", mgl32.Vec3{-1, 0, -1}},
		{"behind", mgl32.Vec3{0, 0, -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, ok := FaceTowards(mgl32.Vec3{}, tt.to)
			require.True(t, ok)
			got := q.Rotate(ForwardAxis)
			want := tt.to.Normalize()
			assert.InDelta(t, want.X(), got.X(), 1e-5)
			assert.InDelta(t, want.Y(), got.Y(), 1e-5)
			assert.InDelta(t, want.Z(), got.Z(), 1e-5)
		})
	}
}

func TestFaceTowardsDegenerate(t *testing.T) {
	p := mgl32.Vec3{1, 0, 1}
	_, ok := FaceTowards(p, p)
	assert.False(t, ok)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, float32(2), Clamp(1, 2, 5))
	assert.Equal(t, float32(5), Clamp(7, 2, 5))
	assert.Equal(t, float32(3), Clamp(3, 2, 5))
}

func TestDistance(t *testing.T) {
	assert.Equal(t, float32(5), Distance(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{3, 0, 4}))
}
