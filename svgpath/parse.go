package svgpath

import (
	"errors"
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"

	"honnef.co/go/morph"
)

var (
	// ErrUnsupportedCommand is reported for elliptical arcs, which have no
	// representation in a [morph.Path].
	ErrUnsupportedCommand = errors.New("unsupported command")
	// ErrUnknownCommand is reported for characters that aren't commands.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrMissingCommand is reported when the data doesn't start with a
	// command.
	ErrMissingCommand = errors.New("path data must start with a command")
	// ErrMissingNumber is reported when a command has too few arguments.
	ErrMissingNumber = errors.New("missing number")
	// ErrNonFinite is reported for coordinates that overflow to infinity.
	ErrNonFinite = errors.New("non-finite coordinate")
)

// SyntaxError describes malformed path data.
type SyntaxError struct {
	// Offset is the byte offset in the input at which the error was
	// detected.
	Offset int
	// Cmd is the command being parsed, or zero.
	Cmd byte
	Err error
}

func (e *SyntaxError) Error() string {
	if e.Cmd == 0 {
		return fmt.Sprintf("svgpath: %v at offset %d", e.Err, e.Offset)
	}
	return fmt.Sprintf("svgpath: %v in command '%c' at offset %d", e.Err, e.Cmd, e.Offset)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

var argCount = map[byte]int{
	'M': 2,
	'Z': 0,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
}

func skipCommaWhitespace(d []byte) int {
	i := 0
	for i < len(d) && (d[i] == ' ' || d[i] == ',' || d[i] == '\n' || d[i] == '\r' || d[i] == '\t' || d[i] == '\f') {
		i++
	}
	return i
}

func startsNumber(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// MustParse is like [Parse] but panics on error.
func MustParse(d string) morph.Path {
	p, err := Parse(d)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse parses SVG path data. Every M or m starts a new subpath, and so does
// a drawing command that directly follows Z, in which case the new subpath
// starts where the closed one did. Errors are of type [*SyntaxError].
func Parse(d string) (morph.Path, error) {
	var b morph.Builder
	data := []byte(d)

	i := skipCommaWhitespace(data)
	if i == len(data) {
		return b.Path(), nil
	}
	if startsNumber(data[i]) || data[i] == ',' {
		return morph.Path{}, &SyntaxError{Offset: i, Err: ErrMissingCommand}
	}

	var f [6]float64
	// Reflected control points for S and T.
	var lastCubic, lastQuad morph.Point
	prev := byte('z')
	for {
		i += skipCommaWhitespace(data[i:])
		if i >= len(data) {
			break
		}

		cmdStart := i
		cmd := prev
		repeat := true
		if upper(cmd) == 'Z' || !startsNumber(data[i]) {
			cmd = data[i]
			repeat = false
			i++
		}
		CMD := upper(cmd)
		if CMD == 'A' {
			return morph.Path{}, &SyntaxError{Offset: i - 1, Cmd: cmd, Err: ErrUnsupportedCommand}
		}
		n, ok := argCount[CMD]
		if !ok {
			if repeat {
				return morph.Path{}, &SyntaxError{Offset: i, Err: ErrUnknownCommand}
			}
			return morph.Path{}, &SyntaxError{Offset: i - 1, Err: ErrUnknownCommand}
		}

		for j := range n {
			i += skipCommaWhitespace(data[i:])
			num, k := strconv.ParseFloat(data[i:])
			if k == 0 {
				return morph.Path{}, &SyntaxError{Offset: i, Cmd: cmd, Err: ErrMissingNumber}
			}
			f[j] = num
			i += k
		}

		p0 := b.Pen()
		rel := func(x, y float64) morph.Point {
			if cmd != CMD {
				return morph.Pt(p0.X+x, p0.Y+y)
			}
			return morph.Pt(x, y)
		}
		switch CMD {
		case 'M':
			b.MoveTo(rel(f[0], f[1]))
			// Further coordinate pairs are implicit LineTos.
			if cmd == 'm' {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'Z':
			b.ClosePath()
		case 'L':
			b.LineTo(rel(f[0], f[1]))
		case 'H':
			x := f[0]
			if cmd == 'h' {
				x += p0.X
			}
			b.LineTo(morph.Pt(x, p0.Y))
		case 'V':
			y := f[0]
			if cmd == 'v' {
				y += p0.Y
			}
			b.LineTo(morph.Pt(p0.X, y))
		case 'C':
			c2 := rel(f[2], f[3])
			b.CubicTo(rel(f[0], f[1]), c2, rel(f[4], f[5]))
			lastCubic = c2
		case 'S':
			c1 := p0
			if p := upper(prev); p == 'C' || p == 'S' {
				c1 = p0.Translate(p0.Sub(lastCubic))
			}
			c2 := rel(f[0], f[1])
			b.CubicTo(c1, c2, rel(f[2], f[3]))
			lastCubic = c2
		case 'Q':
			c := rel(f[0], f[1])
			b.QuadTo(c, rel(f[2], f[3]))
			lastQuad = c
		case 'T':
			c := p0
			if p := upper(prev); p == 'Q' || p == 'T' {
				c = p0.Translate(p0.Sub(lastQuad))
			}
			b.QuadTo(c, rel(f[0], f[1]))
			lastQuad = c
		}
		if pen := b.Pen(); pen.IsInf() || pen.IsNaN() {
			return morph.Path{}, &SyntaxError{Offset: cmdStart, Cmd: cmd, Err: ErrNonFinite}
		}
		prev = cmd
	}
	return b.Path(), nil
}
