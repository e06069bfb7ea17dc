// Package lagoon digs out the lava lagoon described by a dig plan.
package lagoon

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	aoc "github.com/maisem/aoc2023"
)

// Instruction is one step of the dig plan.
type Instruction struct {
	Dir aoc.Direction
	Len int
}

var letters = map[string]aoc.Direction{
	"U": aoc.Up,
	"R": aoc.Right,
	"D": aoc.Down,
	"L": aoc.Left,
}

// hexDirs maps the last hex digit of a color to a direction.
var hexDirs = [...]aoc.Direction{aoc.Right, aoc.Down, aoc.Left, aoc.Up}

func fields(line string) (dir, n, color string, err error) {
	f := strings.Fields(line)
	if len(f) != 3 {
		return "", "", "", errors.Errorf("want 3 fields, got %d in %q", len(f), line)
	}
	color, ok := strings.CutPrefix(f[2], "(#")
	if !ok || !strings.HasSuffix(color, ")") {
		return "", "", "", errors.Errorf("bad color %q", f[2])
	}
	return f[0], f[1], strings.TrimSuffix(color, ")"), nil
}

// ParseInstruction parses a line like "R 6 (#70c710)" using the direction
// letter and the decimal length.
func ParseInstruction(line string) (Instruction, error) {
	dir, n, _, err := fields(line)
	if err != nil {
		return Instruction{}, err
	}
	d, ok := letters[dir]
	if !ok {
		return Instruction{}, errors.Errorf("unknown direction %q", dir)
	}
	l, err := strconv.Atoi(n)
	if err != nil {
		return Instruction{}, errors.Wrap(err, "length")
	}
	if l <= 0 {
		return Instruction{}, errors.Errorf("length must be positive, got %d", l)
	}
	return Instruction{Dir: d, Len: l}, nil
}

// ParseHexInstruction parses a line like "R 6 (#70c710)" using the color:
// the first five hex digits are the length, the last one the direction.
func ParseHexInstruction(line string) (Instruction, error) {
	_, _, color, err := fields(line)
	if err != nil {
		return Instruction{}, err
	}
	if len(color) != 6 {
		return Instruction{}, errors.Errorf("bad color %q", color)
	}
	l, err := aoc.ParseHex(color[:5])
	if err != nil {
		return Instruction{}, errors.Wrap(err, "length")
	}
	d := color[5] - '0'
	if int(d) >= len(hexDirs) {
		return Instruction{}, errors.Errorf("bad direction digit %q", color[5])
	}
	if l <= 0 {
		return Instruction{}, errors.Errorf("length must be positive, got %d", l)
	}
	return Instruction{Dir: hexDirs[d], Len: int(l)}, nil
}

// ParsePlan parses every line with parse.
func ParsePlan(lines []string, parse func(string) (Instruction, error)) ([]Instruction, error) {
	out := make([]Instruction, 0, len(lines))
	for i, l := range lines {
		in, err := parse(l)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", i+1)
		}
		out = append(out, in)
	}
	return out, nil
}

// Area returns the number of cubic meters of lava the lagoon holds: every
// point on or inside the trench. The plan must return to its start.
func Area(plan []Instruction) int {
	pts := []aoc.Pt{{}}
	p := aoc.Pt{}
	for _, in := range plan {
		p = p.Move(in.Dir, in.Len)
		pts = append(pts, p)
	}
	return aoc.PolygonBoundedPoints(pts)
}
