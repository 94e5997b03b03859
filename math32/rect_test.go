package math32_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"zaplib.dev/core/math32"
)

func TestRectContains(t *testing.T) {
	r := math32.NewRect(math32.Vec2(10, 10), math32.Vec2(20, 20))

	assert.True(t, r.Contains(math32.Vec2(10, 10)))
	assert.True(t, r.Contains(math32.Vec2(30, 30)))
	assert.True(t, r.Contains(math32.Vec2(15, 15)))
	assert.False(t, r.Contains(math32.Vec2(9, 15)))
	assert.False(t, r.Contains(math32.Vec2(31, 15)))
}

func TestRectTranslate(t *testing.T) {
	r := math32.NewRect(math32.Vec2(0, 0), math32.Vec2(5, 5))
	moved := r.Translate(math32.Vec2(2, 3))

	assert.Equal(t, math32.Vec2(2, 3), moved.Pos)
	assert.Equal(t, math32.Vec2(5, 5), moved.Size)
}

func TestRectBottomRight(t *testing.T) {
	r := math32.NewRect(math32.Vec2(1, 1), math32.Vec2(4, 6))
	assert.Equal(t, math32.Vec2(5, 7), r.BottomRight())
}
