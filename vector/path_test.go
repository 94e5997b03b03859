package vector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"zaplib.dev/core/vector"
)

func TestLinearizeLineOnlyPath(t *testing.T) {
	cmds := []vector.PathCommand{
		vector.MoveTo(vector.NewPoint(0, 0)),
		vector.Close(),
	}
	lp := vector.Linearize(cmds, 0.1)
	assert.Equal(t, vector.LinePath{
		{Kind: vector.LineMoveTo, P: vector.NewPoint(0, 0)},
		{Kind: vector.LineClose},
	}, lp)
}

func TestLinearizeQuadraticKeepsEndpointsAndRefinesWithTolerance(t *testing.T) {
	// A quadratic from (0,0) to (2,0) with control point (1,1) bows upward;
	// linearizing it at a tight tolerance keeps the start and end points
	// exactly, and a looser tolerance never yields more segments.
	cmds := []vector.PathCommand{
		vector.MoveTo(vector.NewPoint(0, 0)),
		vector.QuadraticTo(vector.NewPoint(1, 1), vector.NewPoint(2, 0)),
	}
	lp := vector.Linearize(cmds, 0.01)

	assert.Equal(t, vector.LineMoveTo, lp[0].Kind)
	assert.Equal(t, vector.NewPoint(0, 0), lp[0].P)
	last := lp[len(lp)-1]
	assert.Equal(t, vector.LineLineTo, last.Kind)
	assert.Equal(t, vector.NewPoint(2, 0), last.P)
	// A tighter tolerance must not produce fewer segments than a looser one.
	loose := vector.Linearize(cmds, 0.5)
	assert.LessOrEqual(t, len(loose), len(lp))
}

func TestLinearizeStraightQuadraticIsOneSegment(t *testing.T) {
	// Control point exactly on the chord: already flat, no subdivision
	// needed regardless of tolerance.
	cmds := []vector.PathCommand{
		vector.MoveTo(vector.NewPoint(0, 0)),
		vector.QuadraticTo(vector.NewPoint(1, 0), vector.NewPoint(2, 0)),
	}
	lp := vector.Linearize(cmds, 0.001)
	assert.Equal(t, vector.LinePath{
		{Kind: vector.LineMoveTo, P: vector.NewPoint(0, 0)},
		{Kind: vector.LineLineTo, P: vector.NewPoint(2, 0)},
	}, lp)
}
