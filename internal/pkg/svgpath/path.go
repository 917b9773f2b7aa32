// Package svgpath implements the subset of SVG path data the charm editor
// produces (absolute M, L and Q commands) and the geometric queries needed to
// place charms along a bracelet outline.
package svgpath

import (
	"math"
	"strconv"
	"strings"

	"charmforge/internal/pkg/errs"
)

var (
	ErrEmptyPath       = errs.New("svgpath: empty path data")
	ErrMissingMoveTo   = errs.New("svgpath: path must start with M")
	ErrUnknownCommand  = errs.New("svgpath: unknown path command")
	ErrBadCoordinate   = errs.New("svgpath: malformed coordinate")
	ErrIncompleteCoord = errs.New("svgpath: incomplete coordinate group")
)

type Point struct {
	X float64
	Y float64
}

type commandOp byte

const (
	opMoveTo commandOp = 'M'
	opLineTo commandOp = 'L'
	opQuadTo commandOp = 'Q'
)

// Command is one parsed path instruction. Control is only meaningful for Q.
type Command struct {
	Op      commandOp
	Control Point
	End     Point
}

// quadSteps controls how finely quadratic segments are flattened. The same
// flattened polyline backs Length, PointAt and TangentAngle, so mm↔px
// conversions and rendered positions can never drift apart.
const quadSteps = 32

// Path is an immutable parsed path with its flattened polyline precomputed.
type Path struct {
	commands []Command
	points   []Point
	cumLen   []float64
	total    float64
}

// Parse reads absolute M/L/Q path data into a structured command list.
// Coordinate groups may repeat after a command letter, as in SVG.
func Parse(d string) (*Path, error) {
	tokens, err := tokenize(d)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, ErrEmptyPath
	}

	var (
		commands []Command
		i        = 0
	)
	for i < len(tokens) {
		tok := tokens[i]
		if len(tok) != 1 || !isCommandLetter(tok[0]) {
			return nil, errs.Wrap(ErrUnknownCommand, tok)
		}
		op := commandOp(tok[0])
		if len(commands) == 0 && op != opMoveTo {
			return nil, ErrMissingMoveTo
		}
		i++

		arity := 2
		if op == opQuadTo {
			arity = 4
		}

		groups := 0
		for i < len(tokens) && !isCommandToken(tokens[i]) {
			vals, n, err := readFloats(tokens, i, arity)
			if err != nil {
				return nil, err
			}
			i += n

			cmd := Command{Op: op}
			if op == opQuadTo {
				cmd.Control = Point{X: vals[0], Y: vals[1]}
				cmd.End = Point{X: vals[2], Y: vals[3]}
			} else {
				cmd.End = Point{X: vals[0], Y: vals[1]}
			}
			// Implicit repetition after M continues as L, per the SVG spec.
			if op == opMoveTo && groups > 0 {
				cmd.Op = opLineTo
			}
			commands = append(commands, cmd)
			groups++
		}
		if groups == 0 {
			return nil, ErrIncompleteCoord
		}
	}

	p := &Path{commands: commands}
	p.flatten()
	return p, nil
}

func tokenize(d string) ([]string, error) {
	var tokens []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}

	for _, r := range d {
		switch {
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ',':
			flush()
		case (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z'):
			flush()
			tokens = append(tokens, string(r))
		case (r >= '0' && r <= '9') || r == '.' || r == 'e' || r == 'E':
			cur.WriteRune(r)
		case r == '-' || r == '+':
			// A sign starts a new number unless it follows an exponent marker.
			if cur.Len() > 0 {
				last := cur.String()[cur.Len()-1]
				if last != 'e' && last != 'E' {
					flush()
				}
			}
			cur.WriteRune(r)
		default:
			return nil, errs.Wrap(ErrBadCoordinate, string(r))
		}
	}
	flush()
	return tokens, nil
}

func isCommandLetter(b byte) bool {
	return b == byte(opMoveTo) || b == byte(opLineTo) || b == byte(opQuadTo)
}

func isCommandToken(tok string) bool {
	return len(tok) == 1 && isCommandLetter(tok[0])
}

func readFloats(tokens []string, start, n int) ([]float64, int, error) {
	if start+n > len(tokens) {
		return nil, 0, ErrIncompleteCoord
	}
	vals := make([]float64, n)
	for j := range n {
		f, err := strconv.ParseFloat(tokens[start+j], 64)
		if err != nil {
			return nil, 0, errs.Wrap(ErrBadCoordinate, tokens[start+j])
		}
		vals[j] = f
	}
	return vals, n, nil
}

// flatten expands the command list into a polyline with cumulative arc
// lengths. Quadratic segments are chord-sampled; exact arc-length integration
// is not needed as long as every query uses this one approximation.
func (p *Path) flatten() {
	var pts []Point
	cursor := Point{}

	for idx, cmd := range p.commands {
		switch cmd.Op {
		case opMoveTo:
			if idx == 0 {
				pts = append(pts, cmd.End)
			} else {
				// Subsequent subpaths are joined; the editor emits one subpath.
				pts = append(pts, cmd.End)
			}
			cursor = cmd.End
		case opLineTo:
			pts = append(pts, cmd.End)
			cursor = cmd.End
		case opQuadTo:
			for s := 1; s <= quadSteps; s++ {
				u := float64(s) / float64(quadSteps)
				pts = append(pts, quadPoint(cursor, cmd.Control, cmd.End, u))
			}
			cursor = cmd.End
		}
	}

	cum := make([]float64, len(pts))
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += dist(pts[i-1], pts[i])
		cum[i] = total
	}

	p.points = pts
	p.cumLen = cum
	p.total = total
}

func quadPoint(p0, c, p1 Point, u float64) Point {
	v := 1 - u
	return Point{
		X: v*v*p0.X + 2*v*u*c.X + u*u*p1.X,
		Y: v*v*p0.Y + 2*v*u*c.Y + u*u*p1.Y,
	}
}

func dist(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Commands returns the parsed command list.
func (p *Path) Commands() []Command {
	return p.commands
}

// Length is the flattened arc length of the path in path units.
func (p *Path) Length() float64 {
	return p.total
}
