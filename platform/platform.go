// Package platform tilts a field of rocks on the parabolic reflector dish.
package platform

import (
	"github.com/pkg/errors"
	"tailscale.com/util/deephash"

	aoc "github.com/maisem/aoc2023"
)

const (
	Round = 'O'
	Cube  = '#'
	Empty = '.'
)

// Parse returns the field described by lines. All lines must be the same
// length.
func Parse(lines []string) (aoc.Grid[byte], error) {
	g := aoc.ByteGrid(lines)
	for y, row := range g {
		if len(row) != len(g[0]) {
			return nil, errors.Errorf("row %d has length %d; want %d", y, len(row), len(g[0]))
		}
		for x, c := range row {
			switch c {
			case Round, Cube, Empty:
			default:
				return nil, errors.Errorf("unexpected %q at %d,%d", c, x, y)
			}
		}
	}
	return g, nil
}

// Tilt rolls every round rock as far as it goes towards d, in place.
func Tilt(g aoc.Grid[byte], d aoc.Direction) {
	size := g.Size()
	// Walk each line starting from the edge the rocks roll to.
	var starts []aoc.Pt
	switch d {
	case aoc.Up, aoc.Down:
		y := 0
		if d == aoc.Down {
			y = size.Y - 1
		}
		for x := 0; x < size.X; x++ {
			starts = append(starts, aoc.Pt{X: x, Y: y})
		}
	case aoc.Left, aoc.Right:
		x := 0
		if d == aoc.Right {
			x = size.X - 1
		}
		for y := 0; y < size.Y; y++ {
			starts = append(starts, aoc.Pt{X: x, Y: y})
		}
	}
	toward := d.Delta()
	next := func(p aoc.Pt) aoc.Pt {
		return aoc.Pt{X: p.X - toward.X, Y: p.Y - toward.Y}
	}
	for _, p := range starts {
		stop := p // next free spot
		for ; ; p = next(p) {
			c, ok := g.AtOk(p)
			if !ok {
				break
			}
			switch c {
			case Cube:
				stop = next(p)
			case Round:
				g.Set(p, Empty)
				g.Set(stop, Round)
				stop = next(stop)
			}
		}
	}
}

// Cycle tilts g north, west, south and then east.
func Cycle(g aoc.Grid[byte]) {
	for _, d := range []aoc.Direction{aoc.Up, aoc.Left, aoc.Down, aoc.Right} {
		Tilt(g, d)
	}
}

// Load returns the total load on the north support beams: each round rock
// weighs its distance from the south edge, counting its own row.
func Load(g aoc.Grid[byte]) int {
	var load int
	for y, row := range g {
		for _, c := range row {
			if c == Round {
				load += len(g) - y
			}
		}
	}
	return load
}

// SpinLoad runs n spin cycles on g, in place, and returns the resulting
// load. Once a state repeats, whole periods are skipped.
func SpinLoad(g aoc.Grid[byte], n int) int {
	seen := map[deephash.Sum]int{}
	for i := 0; i < n; i++ {
		h := g.Hash()
		if prev, ok := seen[h]; ok {
			for left := (n - i) % (i - prev); left > 0; left-- {
				Cycle(g)
			}
			return Load(g)
		}
		seen[h] = i
		Cycle(g)
	}
	return Load(g)
}
