package morph

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
)

// SubPath is one contiguous contour of a [Path]. The first command is always
// a MoveTo. SubPath values are immutable; the commands are only ever exposed
// as copies.
type SubPath struct {
	cmds []Command
}

// Len returns the number of commands, including the leading MoveTo.
func (sp SubPath) Len() int { return len(sp.cmds) }

// At returns the command at index i.
func (sp SubPath) At(i int) Command { return sp.cmds[i] }

// Commands returns a copy of the subpath's commands.
func (sp SubPath) Commands() []Command { return slices.Clone(sp.cmds) }

// All returns an iterator over the subpath's commands and their indices.
func (sp SubPath) All() iter.Seq2[int, Command] { return slices.All(sp.cmds) }

// Start returns the point the subpath starts at.
func (sp SubPath) Start() Point {
	if len(sp.cmds) == 0 {
		return Point{}
	}
	return sp.cmds[0].To
}

// Closed reports whether the subpath ends where it started, either through a
// ClosePath or because its last command returns to the start point.
func (sp SubPath) Closed() bool {
	if len(sp.cmds) < 2 {
		return false
	}
	last := sp.cmds[len(sp.cmds)-1]
	return last.Kind == ClosePathKind || last.To == sp.Start()
}

// Path is an ordered list of subpaths. Paths are persistent values: every
// transformation returns a new Path and leaves the receiver untouched.
// Unchanged subpaths are shared between the old and the new path.
type Path struct {
	subPaths []SubPath
}

// Len returns the number of subpaths.
func (p Path) Len() int { return len(p.subPaths) }

// SubPath returns the subpath at index i.
func (p Path) SubPath(i int) SubPath { return p.subPaths[i] }

// SubPaths returns an iterator over the path's subpaths.
func (p Path) SubPaths() iter.Seq[SubPath] { return slices.Values(p.subPaths) }

// Commands returns a copy of the commands of subpath i.
func (p Path) Commands(i int) []Command { return p.subPaths[i].Commands() }

// Equal reports whether two paths are structurally identical.
func (p Path) Equal(o Path) bool {
	return slices.EqualFunc(p.subPaths, o.subPaths, func(a, b SubPath) bool {
		return slices.Equal(a.cmds, b.cmds)
	})
}

func (p Path) withCommands(i int, cmds []Command) Path {
	sps := slices.Clone(p.subPaths)
	sps[i] = SubPath{cmds: cmds}
	return Path{subPaths: sps}
}

// Reverse returns a path in which subpath i is drawn in the opposite
// direction. The rendered geometry and the number of commands are unchanged.
// A trailing ClosePath stays at the end.
func (p Path) Reverse(i int) Path {
	cmds := p.subPaths[i].cmds
	if len(cmds) < 2 {
		return p
	}
	body := cmds[1:]
	var closing []Command
	if last := cmds[len(cmds)-1]; last.Kind == ClosePathKind {
		body = cmds[1 : len(cmds)-1]
		closing = []Command{last.Reverse()}
	}

	start := cmds[0].To
	if len(body) > 0 {
		start = body[len(body)-1].To
	}
	out := make([]Command, 0, len(cmds))
	out = append(out, Command{Kind: MoveToKind, From: start, To: start})
	for j := len(body) - 1; j >= 0; j-- {
		out = append(out, body[j].Reverse())
	}
	out = append(out, closing...)
	return p.withCommands(i, out)
}

// ShiftBack returns a path in which the start point of the closed subpath i
// has been moved back by offset segments. The ClosePath, if any, takes part
// in the rotation as a line; the segment that ends up last is emitted as a
// ClosePath again if it is a line. Open subpaths are returned unchanged.
func (p Path) ShiftBack(i, offset int) Path {
	sp := p.subPaths[i]
	if !sp.Closed() || sp.Len() < 3 {
		return p
	}
	cycle := sp.cmds[1:]
	m := len(cycle)
	offset = ((offset % m) + m) % m
	if offset == 0 {
		return p
	}
	hadClose := cycle[m-1].Kind == ClosePathKind

	out := make([]Command, 0, sp.Len())
	first := cycle[m-offset]
	out = append(out, Command{Kind: MoveToKind, From: first.From, To: first.From})
	for j := range m {
		c := cycle[(j-offset+m)%m]
		if c.Kind == ClosePathKind {
			c.Kind = LineToKind
		}
		if hadClose && j == m-1 && c.Kind == LineToKind {
			c.Kind = ClosePathKind
		}
		out = append(out, c)
	}
	return p.withCommands(i, out)
}

// SplitOp describes one subdivision for [Path.SplitBatch].
type SplitOp struct {
	// SubPath is the index of the subpath.
	SubPath int
	// Index is the command to split. It must not be the leading MoveTo.
	Index int
	// Ts are the ascending split parameters in (0, 1).
	Ts []float64
}

// SplitBatch applies all ops in one pass. Each op inserts len(Ts) commands
// immediately before Index by subdividing the command at Index. The indices
// of all ops refer to the receiver; ops are applied from the highest index
// to the lowest so that insertions do not shift the positions of other ops.
func (p Path) SplitBatch(ops []SplitOp) Path {
	if len(ops) == 0 {
		return p
	}
	sorted := slices.Clone(ops)
	slices.SortStableFunc(sorted, func(a, b SplitOp) int {
		if c := cmp.Compare(b.SubPath, a.SubPath); c != 0 {
			return c
		}
		return cmp.Compare(b.Index, a.Index)
	})

	touched := map[int][]Command{}
	for _, op := range sorted {
		if len(op.Ts) == 0 {
			continue
		}
		cmds, ok := touched[op.SubPath]
		if !ok {
			cmds = p.subPaths[op.SubPath].Commands()
		}
		if op.Index < 1 || op.Index >= len(cmds) {
			panic(fmt.Sprintf("split index %d out of range [1, %d)", op.Index, len(cmds)))
		}
		pieces := cmds[op.Index].Split(op.Ts)
		touched[op.SubPath] = slices.Replace(cmds, op.Index, op.Index+1, pieces...)
	}
	if len(touched) == 0 {
		return p
	}

	sps := slices.Clone(p.subPaths)
	for i, cmds := range touched {
		sps[i] = SubPath{cmds: cmds}
	}
	return Path{subPaths: sps}
}

// Convert returns a path in which command j of subpath i has been
// reinterpreted as kind k. It panics if the command cannot be converted.
func (p Path) Convert(i, j int, k Kind) Path {
	cmds := p.subPaths[i].Commands()
	cmds[j] = cmds[j].ConvertTo(k)
	return p.withCommands(i, cmds)
}

// Builder constructs paths command by command, much like drawing with a pen.
// The zero value is ready to use.
type Builder struct {
	subPaths []SubPath
	cur      []Command
	pen      Point
	start    Point
}

// MoveTo starts a new subpath at pt.
func (b *Builder) MoveTo(pt Point) {
	b.flush()
	b.cur = append(b.cur, Command{Kind: MoveToKind, From: pt, To: pt})
	b.pen, b.start = pt, pt
}

// LineTo draws a line to pt.
//
// If LineTo is called without a current subpath, for example right after
// ClosePath, a new subpath is started at the current pen position.
func (b *Builder) LineTo(pt Point) {
	b.push(Command{Kind: LineToKind, To: pt})
}

// QuadTo draws a quadratic Bézier with control point p1 ending at p2.
func (b *Builder) QuadTo(p1, p2 Point) {
	b.push(Command{Kind: QuadToKind, Ctrl: [2]Point{p1}, To: p2})
}

// CubicTo draws a cubic Bézier with control points p1 and p2 ending at p3.
func (b *Builder) CubicTo(p1, p2, p3 Point) {
	b.push(Command{Kind: CubicToKind, Ctrl: [2]Point{p1, p2}, To: p3})
}

// ClosePath closes the current subpath with a line back to its start.
func (b *Builder) ClosePath() {
	b.push(Command{Kind: ClosePathKind, To: b.start})
	b.flush()
}

// Pen returns the current pen position.
func (b *Builder) Pen() Point { return b.pen }

// Path returns the path built so far. The builder can keep being used.
func (b *Builder) Path() Path {
	b.flush()
	return Path{subPaths: slices.Clone(b.subPaths)}
}

func (b *Builder) push(c Command) {
	if len(b.cur) == 0 {
		b.MoveTo(b.pen)
	}
	if c.Kind == ClosePathKind {
		c.To = b.start
	}
	c.From = b.pen
	b.cur = append(b.cur, c)
	b.pen = c.To
}

func (b *Builder) flush() {
	if len(b.cur) == 0 {
		return
	}
	b.subPaths = append(b.subPaths, SubPath{cmds: b.cur})
	b.cur = nil
}
