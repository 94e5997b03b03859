package math32_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"zaplib.dev/core/math32"
)

func TestIdentity4Mul(t *testing.T) {
	id := math32.Identity4()
	m := math32.Matrix4{M: [16]float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}}

	assert.Equal(t, m, id.Mul(m))
	assert.Equal(t, m, m.Mul(id))
}

func TestOrtho4MapsCorners(t *testing.T) {
	m := math32.Ortho4(0, 100, 0, 100, -1, 1)
	// The translation column maps the viewport's (0,0) corner to clip-space
	// (-1,-1).
	assert.InDelta(t, float32(-1), m.M[12], 1e-5)
	assert.InDelta(t, float32(-1), m.M[13], 1e-5)
}

func TestMatrix4Transpose(t *testing.T) {
	m := math32.Matrix4{M: [16]float32{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}}
	tt := m.Transpose().Transpose()
	assert.Equal(t, m, tt)
}
