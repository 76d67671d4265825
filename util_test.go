package morph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var pointComparer = cmp.Comparer(func(p1, p2 Point) bool {
	return p1.Distance(p2) <= 1e-9
})

func triangle() Path {
	var b Builder
	b.MoveTo(Pt(0, 0))
	b.LineTo(Pt(10, 0))
	b.LineTo(Pt(10, 10))
	b.ClosePath()
	return b.Path()
}

func kinds(p Path, i int) []Kind {
	var out []Kind
	for _, c := range p.SubPath(i).All() {
		out = append(out, c.Kind)
	}
	return out
}
