package morph

import "fmt"

//go:generate go tool stringer -type=Kind,Status -output=kind_string.go

// Kind is the kind of a drawing command.
type Kind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind Kind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic Bézier using the current location and the two points.
	QuadToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
	// Close off the subpath with a line back to its start.
	ClosePathKind
)

// SVGChar returns the upper-case SVG path data letter of the kind.
func (k Kind) SVGChar() byte {
	switch k {
	case MoveToKind:
		return 'M'
	case LineToKind:
		return 'L'
	case QuadToKind:
		return 'Q'
	case CubicToKind:
		return 'C'
	case ClosePathKind:
		return 'Z'
	default:
		return '?'
	}
}

// degree orders the drawable kinds by how general they are. A command can
// only be reinterpreted as a kind of strictly higher degree.
func (k Kind) degree() int {
	switch k {
	case ClosePathKind:
		return 1
	case LineToKind:
		return 2
	case QuadToKind:
		return 3
	case CubicToKind:
		return 4
	default:
		return 0
	}
}

// Command is a single drawing command of a subpath. Unlike a bare path
// element it carries its start point, which makes it self-contained enough to
// be split, reversed and converted on its own.
type Command struct {
	Kind Kind
	// From is the pen position before the command. For MoveTo it equals To.
	From Point
	// Ctrl holds the control points. QuadTo uses Ctrl[0], CubicTo uses both.
	Ctrl [2]Point
	// To is the command's end point. For ClosePath it is the subpath's start.
	To Point
}

// End returns the end point of the command.
func (c Command) End() Point { return c.To }

func (c Command) String() string {
	switch c.Kind {
	case MoveToKind, LineToKind, ClosePathKind:
		return fmt.Sprintf("%c%s", c.Kind.SVGChar(), c.To)
	case QuadToKind:
		return fmt.Sprintf("Q%s %s", c.Ctrl[0], c.To)
	case CubicToKind:
		return fmt.Sprintf("C%s %s %s", c.Ctrl[0], c.Ctrl[1], c.To)
	default:
		return "InvalidCommand"
	}
}

// CanConvertTo reports whether the command can be reinterpreted as kind k
// without changing its rendered geometry. Conversion only goes one way: a
// ClosePath can become a line, a line a quadratic, a quadratic a cubic.
// MoveTo neither converts nor can be converted to.
func (c Command) CanConvertTo(k Kind) bool {
	if c.Kind == MoveToKind || k == MoveToKind {
		return false
	}
	from, to := c.Kind.degree(), k.degree()
	return from != 0 && to != 0 && to > from
}

// ConvertTo returns the command reinterpreted as kind k. It panics if
// [Command.CanConvertTo] reports false.
func (c Command) ConvertTo(k Kind) Command {
	if !c.CanConvertTo(k) {
		panic(fmt.Sprintf("cannot convert %v to %v", c.Kind, k))
	}
	switch k {
	case LineToKind:
		return Command{Kind: LineToKind, From: c.From, To: c.To}
	case QuadToKind:
		return quadCommand(c.Line().Quad())
	case CubicToKind:
		if c.Kind == QuadToKind {
			return cubicCommand(c.Quad().Raise())
		}
		return cubicCommand(c.Line().Cubic())
	default:
		panic(fmt.Sprintf("unhandled case %v", k))
	}
}

// Line returns the command as a line. This is only valid for LineTo and
// ClosePath.
func (c Command) Line() Line { return Line{c.From, c.To} }

// Quad returns the command as a quadratic Bézier. This is only valid for
// QuadTo.
func (c Command) Quad() QuadBez { return QuadBez{c.From, c.Ctrl[0], c.To} }

// Cubic returns the command as a cubic Bézier. This is only valid for CubicTo.
func (c Command) Cubic() CubicBez { return CubicBez{c.From, c.Ctrl[0], c.Ctrl[1], c.To} }

// Reverse returns a command drawing the same segment in the opposite
// direction.
func (c Command) Reverse() Command {
	switch c.Kind {
	case MoveToKind:
		return c
	case CubicToKind:
		c.Ctrl[0], c.Ctrl[1] = c.Ctrl[1], c.Ctrl[0]
	}
	c.From, c.To = c.To, c.From
	return c
}

// Split subdivides the command at each parameter in ts, which must be
// ascending and lie in (0, 1). It returns len(ts)+1 commands; the last one
// keeps the original kind and end point. Splitting a ClosePath produces
// lines followed by the ClosePath. MoveTo cannot be split.
func (c Command) Split(ts []float64) []Command {
	if c.Kind == MoveToKind {
		panic("cannot split MoveTo")
	}
	out := make([]Command, 0, len(ts)+1)
	t0 := 0.0
	for i := 0; i <= len(ts); i++ {
		t1 := 1.0
		if i < len(ts) {
			t1 = ts[i]
			if !(t1 > t0 && t1 < 1) {
				panic(fmt.Sprintf("split parameters must be ascending in (0, 1), got %v", ts))
			}
		}
		var piece Command
		switch c.Kind {
		case LineToKind:
			piece = lineCommand(c.Line().Subsegment(t0, t1))
		case ClosePathKind:
			piece = lineCommand(c.Line().Subsegment(t0, t1))
			if i == len(ts) {
				piece.Kind = ClosePathKind
			}
		case QuadToKind:
			piece = quadCommand(c.Quad().Subsegment(t0, t1))
		case CubicToKind:
			piece = cubicCommand(c.Cubic().Subsegment(t0, t1))
		default:
			panic(fmt.Sprintf("unhandled case %v", c.Kind))
		}
		out = append(out, piece)
		t0 = t1
	}
	// Keep the outer points exact; evaluating at t = 1 may round.
	out[0].From = c.From
	out[len(out)-1].To = c.To
	return out
}

func lineCommand(l Line) Command {
	return Command{Kind: LineToKind, From: l.P0, To: l.P1}
}

func quadCommand(q QuadBez) Command {
	return Command{Kind: QuadToKind, From: q.P0, Ctrl: [2]Point{q.P1}, To: q.P2}
}

func cubicCommand(c CubicBez) Command {
	return Command{Kind: CubicToKind, From: c.P0, Ctrl: [2]Point{c.P1, c.P2}, To: c.P3}
}
