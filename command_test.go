package morph

import (
	"testing"
)

func TestCanConvertTo(t *testing.T) {
	all := []Kind{MoveToKind, LineToKind, QuadToKind, CubicToKind, ClosePathKind}
	want := map[Kind][]Kind{
		ClosePathKind: {LineToKind, QuadToKind, CubicToKind},
		LineToKind:    {QuadToKind, CubicToKind},
		QuadToKind:    {CubicToKind},
	}
	for _, from := range all {
		allowed := map[Kind]bool{}
		for _, k := range want[from] {
			allowed[k] = true
		}
		for _, to := range all {
			c := Command{Kind: from}
			if got := c.CanConvertTo(to); got != allowed[to] {
				t.Errorf("%v.CanConvertTo(%v) = %t, want %t", from, to, got, allowed[to])
			}
		}
	}
}

func TestConvertToPreservesGeometry(t *testing.T) {
	line := Command{Kind: LineToKind, From: Pt(0, 0), To: Pt(9, 3)}
	closing := Command{Kind: ClosePathKind, From: Pt(9, 3), To: Pt(0, 0)}
	quad := Command{Kind: QuadToKind, From: Pt(0, 0), Ctrl: [2]Point{Pt(4, 8)}, To: Pt(8, 0)}

	tests := []struct {
		cmd  Command
		kind Kind
		eval func(float64) Point
	}{
		{line, QuadToKind, line.Line().Eval},
		{line, CubicToKind, line.Line().Eval},
		{closing, LineToKind, closing.Line().Eval},
		{closing, CubicToKind, closing.Line().Eval},
		{quad, CubicToKind, quad.Quad().Eval},
	}
	for _, tt := range tests {
		got := tt.cmd.ConvertTo(tt.kind)
		if got.Kind != tt.kind {
			t.Errorf("converting %v: got kind %v, want %v", tt.cmd, got.Kind, tt.kind)
		}
		if got.From != tt.cmd.From || got.End() != tt.cmd.End() {
			t.Errorf("converting %v moved its end points: %v", tt.cmd, got)
		}
		var eval func(float64) Point
		switch got.Kind {
		case LineToKind:
			eval = got.Line().Eval
		case QuadToKind:
			eval = got.Quad().Eval
		case CubicToKind:
			eval = got.Cubic().Eval
		}
		for _, ts := range []float64{0.1, 0.3, 0.5, 0.8} {
			diff(t, tt.eval(ts), eval(ts), pointComparer)
		}
	}
}

func TestConvertToPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Command{Kind: CubicToKind}.ConvertTo(LineToKind)
}

func TestSplitLine(t *testing.T) {
	c := Command{Kind: LineToKind, From: Pt(0, 0), To: Pt(12, 0)}
	got := c.Split([]float64{0.25, 0.5})
	want := []Command{
		{Kind: LineToKind, From: Pt(0, 0), To: Pt(3, 0)},
		{Kind: LineToKind, From: Pt(3, 0), To: Pt(6, 0)},
		{Kind: LineToKind, From: Pt(6, 0), To: Pt(12, 0)},
	}
	diff(t, want, got)
}

func TestSplitClosePath(t *testing.T) {
	c := Command{Kind: ClosePathKind, From: Pt(10, 0), To: Pt(0, 0)}
	got := c.Split([]float64{0.5})
	want := []Command{
		{Kind: LineToKind, From: Pt(10, 0), To: Pt(5, 0)},
		{Kind: ClosePathKind, From: Pt(5, 0), To: Pt(0, 0)},
	}
	diff(t, want, got)
}

func TestSplitCurvesChain(t *testing.T) {
	cmds := []Command{
		{Kind: QuadToKind, From: Pt(0, 0), Ctrl: [2]Point{Pt(5, 10)}, To: Pt(10, 0)},
		{Kind: CubicToKind, From: Pt(0, 0), Ctrl: [2]Point{Pt(0, 10), Pt(10, 10)}, To: Pt(10, 0)},
	}
	for _, c := range cmds {
		pieces := c.Split([]float64{1.0 / 3.0, 2.0 / 3.0})
		if len(pieces) != 3 {
			t.Fatalf("got %d pieces, want 3", len(pieces))
		}
		if pieces[0].From != c.From || pieces[2].To != c.To {
			t.Errorf("outer points of %v changed: %v", c, pieces)
		}
		for i := 1; i < len(pieces); i++ {
			if pieces[i].From != pieces[i-1].To {
				t.Errorf("piece %d of %v does not start where piece %d ends", i, c, i-1)
			}
			if pieces[i].Kind != c.Kind {
				t.Errorf("piece %d has kind %v, want %v", i, pieces[i].Kind, c.Kind)
			}
		}
	}
}

func TestSplitRejectsBadParameters(t *testing.T) {
	for _, ts := range [][]float64{{0}, {1}, {0.6, 0.4}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("expected panic for %v", ts)
				}
			}()
			Command{Kind: LineToKind, To: Pt(1, 1)}.Split(ts)
		}()
	}
}

func TestCommandReverse(t *testing.T) {
	c := Command{Kind: CubicToKind, From: Pt(0, 0), Ctrl: [2]Point{Pt(1, 1), Pt(2, 2)}, To: Pt(3, 0)}
	want := Command{Kind: CubicToKind, From: Pt(3, 0), Ctrl: [2]Point{Pt(2, 2), Pt(1, 1)}, To: Pt(0, 0)}
	diff(t, want, c.Reverse())
	diff(t, c, c.Reverse().Reverse())
}

func TestKindString(t *testing.T) {
	if s := CubicToKind.String(); s != "CubicToKind" {
		t.Errorf("got %q", s)
	}
	if s := Kind(42).String(); s != "Kind(42)" {
		t.Errorf("got %q", s)
	}
	if c := ClosePathKind.SVGChar(); c != 'Z' {
		t.Errorf("got %c, want Z", c)
	}
}
