package vector

// Trapezoid is a vertical slab bounded by a lower and an upper segment, the
// output unit of the Trapezoidator and the input the font atlas rasterizer
// covers with MSAA-like coverage samples.
//
// Xs holds the slab's left and right X coordinates; Ys holds the lower
// segment's Y at the left and right edges followed by the upper segment's Y
// at the left and right edges: [lowerLeft, lowerRight, upperLeft, upperRight].
type Trapezoid struct {
	Xs [2]float32
	Ys [4]float32
}

// Area returns the (signed) area of the trapezoid, used to check area
// conservation against the source polygon.
func (t Trapezoid) Area() float32 {
	width := t.Xs[1] - t.Xs[0]
	leftHeight := t.Ys[2] - t.Ys[0]
	rightHeight := t.Ys[3] - t.Ys[1]
	return width * (leftHeight + rightHeight) / 2
}
