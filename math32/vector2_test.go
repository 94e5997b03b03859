package math32_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"zaplib.dev/core/math32"
)

func TestVector2Arith(t *testing.T) {
	a := math32.Vec2(1, 2)
	b := math32.Vec2(3, 4)

	assert.Equal(t, math32.Vec2(4, 6), a.Add(b))
	assert.Equal(t, math32.Vec2(-2, -2), a.Sub(b))
	assert.Equal(t, math32.Vec2(2, 4), a.MulScalar(2))
}

func TestVector2MaxMin(t *testing.T) {
	a := math32.Vec2(1, 5)
	b := math32.Vec2(3, 2)

	assert.Equal(t, math32.Vec2(3, 5), a.Max(b))
	assert.Equal(t, math32.Vec2(1, 2), a.Min(b))
}

func TestVector2IsZero(t *testing.T) {
	assert.True(t, math32.Vector2{}.IsZero())
	assert.False(t, math32.Vec2(0, 1).IsZero())
}

func TestVector2Len(t *testing.T) {
	v := math32.Vec2(3, 4)
	assert.InDelta(t, float32(5), v.Len(), 1e-6)
}

func TestVector2Floor(t *testing.T) {
	v := math32.Vec2(1.7, -1.2)
	assert.Equal(t, math32.Vec2(1, -2), v.Floor())
}
