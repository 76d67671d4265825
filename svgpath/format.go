package svgpath

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"honnef.co/go/morph"
)

// Options specifies optional settings for [Format] and [Write].
type Options struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// Format converts a path to SVG path data.
//
// See [Write] for a version that writes to an [io.Writer] instead of
// returning a string.
func Format(p morph.Path, opts Options) string {
	sb := &strings.Builder{}
	Write(sb, p, opts)
	return sb.String()
}

// Write converts a path to SVG path data and writes it to w.
//
// A MoveTo that isn't the first command of its subpath is written as M,
// which splits the subpath in two when the data is parsed again.
func Write(w io.Writer, p morph.Path, opts Options) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		if opts.MaxPrecision <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
		if strings.ContainsRune(s, '.') {
			s = strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
		}
		if s == "-0" {
			s = "0"
		}
		return s
	}
	pt := func(p morph.Point) string {
		return format(p.X) + "," + format(p.Y)
	}

	first := true
	for sp := range p.SubPaths() {
		for _, c := range sp.All() {
			if err != nil {
				return err
			}
			if !first {
				writef(" ")
			}
			first = false
			switch c.Kind {
			case morph.MoveToKind:
				writef("M%s", pt(c.To))
			case morph.LineToKind:
				writef("L%s", pt(c.To))
			case morph.QuadToKind:
				writef("Q%s %s", pt(c.Ctrl[0]), pt(c.To))
			case morph.CubicToKind:
				writef("C%s %s %s", pt(c.Ctrl[0]), pt(c.Ctrl[1]), pt(c.To))
			case morph.ClosePathKind:
				writef("Z")
			default:
				panic("unreachable")
			}
		}
	}
	return err
}
