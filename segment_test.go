package morph

import (
	"testing"
)

func TestSubsegmentEndpoints(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 20)}
	diff(t, Line{Pt(2.5, 5), Pt(5, 10)}, l.Subsegment(0.25, 0.5))

	q := QuadBez{Pt(0, 0), Pt(5, 10), Pt(10, 0)}
	qs := q.Subsegment(0.25, 0.75)
	diff(t, q.Eval(0.25), qs.Start(), pointComparer)
	diff(t, q.Eval(0.75), qs.End(), pointComparer)
	diff(t, q.Eval(0.5), qs.Eval(0.5), pointComparer)

	c := CubicBez{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)}
	cs := c.Subsegment(0.2, 0.6)
	diff(t, c.Eval(0.2), cs.Start(), pointComparer)
	diff(t, c.Eval(0.6), cs.End(), pointComparer)
	diff(t, c.Eval(0.4), cs.Eval(0.5), pointComparer)
}

func TestExactElevation(t *testing.T) {
	l := Line{Pt(1, 2), Pt(7, -4)}
	q := QuadBez{Pt(0, 0), Pt(5, 10), Pt(10, 0)}
	for _, tt := range []float64{0, 0.1, 0.5, 0.9, 1} {
		diff(t, l.Eval(tt), l.Quad().Eval(tt), pointComparer)
		diff(t, l.Eval(tt), l.Cubic().Eval(tt), pointComparer)
		diff(t, q.Eval(tt), q.Raise().Eval(tt), pointComparer)
	}
}
