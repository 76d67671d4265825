package morph

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) Subsegment(start, end float64) Line {
	return Line{l.Eval(start), l.Eval(end)}
}

// Quad returns the quadratic Bézier that exactly represents the line. The
// control point sits at the midpoint, so the parametrization is unchanged.
func (l Line) Quad() QuadBez {
	return QuadBez{l.P0, l.P0.Midpoint(l.P1), l.P1}
}

// Cubic returns the cubic Bézier that exactly represents the line, with its
// control points at one and two thirds.
func (l Line) Cubic() CubicBez {
	return CubicBez{l.P0, l.P0.Lerp(l.P1, 1.0/3.0), l.P0.Lerp(l.P1, 2.0/3.0), l.P1}
}
