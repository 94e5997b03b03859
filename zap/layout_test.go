package zap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"zaplib.dev/core/zap"
)

func TestEndTypedBoxPanicsOnKindMismatch(t *testing.T) {
	cx := zap.NewContext()
	cx.BeginRedrawCycle()
	defer cx.EndRedrawCycle()
	cx.BeginRow(zap.Layout{})
	assert.Panics(t, func() { cx.EndColumn() })
	cx.EndRow()
}

func TestTwoFixedBoxesInARowAdvanceTurtleAndBound(t *testing.T) {
	cx := zap.NewContext()
	cx.BeginRedrawCycle()
	cx.BeginRow(zap.Layout{
		LayoutSize: zap.LayoutSize{Width: zap.FixWidth(100), Height: zap.FixHeight(20)},
	})
	r1 := cx.AddBox(30, 10)
	r2 := cx.AddBox(40, 15)
	bounds := cx.GetBoxBounds()
	cx.EndRow()
	cx.EndRedrawCycle()

	assert.Equal(t, float32(0), r1.Pos.X)
	assert.Equal(t, float32(30), r2.Pos.X)
	assert.Equal(t, float32(70), bounds.X)
	assert.Equal(t, float32(15), bounds.Y)
}

func TestCenterXAlignBalancesAndKeepsDeclaredBoxSize(t *testing.T) {
	cx := zap.NewContext()
	cx.BeginRedrawCycle()
	cx.BeginRow(zap.Layout{
		LayoutSize: zap.LayoutSize{Width: zap.FixWidth(100), Height: zap.FixHeight(20)},
	})
	cx.BeginCenterXAlign(zap.Layout{
		LayoutSize: zap.LayoutSize{Width: zap.FixWidth(100), Height: zap.FixHeight(20)},
	})
	before := cx.GetBoxRect()
	cx.AddBox(20, 20)
	cx.EndCenterXAlign()
	cx.EndRow()
	cx.EndRedrawCycle()

	// The centered box's own rect is unaffected by the alignment translate
	// (only already-emitted instance Areas registered in the alignment list
	// move); this exercises that begin/end center-align balances cleanly
	// around nested content and reports the declared 100x20 box untouched.
	assert.Equal(t, float32(100), before.Size.X)
	assert.Equal(t, float32(20), before.Size.Y)
}

func TestDrawNewLineResetsXAndAdvancesYByLineHeight(t *testing.T) {
	cx := zap.NewContext()
	cx.BeginRedrawCycle()
	cx.BeginWrappingBox(zap.Layout{
		LayoutSize: zap.LayoutSize{Width: zap.FixWidth(50), Height: zap.FixHeight(100)},
	})
	cx.AddBox(20, 10)
	cx.DrawNewLine()
	pos := cx.GetDrawPos()
	cx.EndWrappingBox()
	cx.EndRedrawCycle()

	assert.Equal(t, float32(0), pos.X)
	assert.Equal(t, float32(10), pos.Y)
}

func TestFillWidthConsumesRemainingAvailableWidth(t *testing.T) {
	cx := zap.NewContext()
	cx.BeginRedrawCycle()
	cx.BeginRow(zap.Layout{
		LayoutSize: zap.LayoutSize{Width: zap.FixWidth(100), Height: zap.FixHeight(20)},
	})
	cx.BeginColumn(zap.Layout{
		LayoutSize: zap.LayoutSize{Width: zap.FillWidth(), Height: zap.FixHeight(20)},
	})
	left := cx.GetWidthLeft()
	cx.EndColumn()
	cx.EndRow()
	cx.EndRedrawCycle()

	assert.Equal(t, float32(100), left)
}
