package lagoon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aoc "github.com/maisem/aoc2023"
)

const sample = `R 6 (#70c710)
D 5 (#0dc571)
L 2 (#5713f0)
D 2 (#d2c081)
R 2 (#59c680)
D 2 (#411b91)
L 5 (#8ceee2)
U 2 (#caa173)
L 1 (#1b58a2)
U 2 (#caa171)
R 2 (#7807d2)
U 3 (#a77fa3)
L 2 (#015232)
U 2 (#7a21e3)`

func TestParseInstruction(t *testing.T) {
	got, err := ParseInstruction("R 6 (#70c710)")
	require.NoError(t, err)
	assert.Equal(t, Instruction{Dir: aoc.Right, Len: 6}, got)

	got, err = ParseHexInstruction("R 6 (#70c710)")
	require.NoError(t, err)
	assert.Equal(t, Instruction{Dir: aoc.Right, Len: 461937}, got)

	got, err = ParseHexInstruction("U 2 (#caa171)")
	require.NoError(t, err)
	assert.Equal(t, Instruction{Dir: aoc.Down, Len: 829975}, got)
}

func TestParseErrors(t *testing.T) {
	for _, line := range []string{
		"",
		"X 6 (#70c710)",
		"R six (#70c710)",
		"R 6 70c710",
		"R -3 (#000000)",
		"R 0 (#000000)",
	} {
		_, err := ParseInstruction(line)
		assert.Error(t, err, line)
	}
	for _, line := range []string{
		"R 6 (#70c71)",
		"R 6 (#70c714)",
		"R 6 (#zzzzz0)",
		"R 6 (#-00010)",
		"R 6 (#000000)",
	} {
		_, err := ParseHexInstruction(line)
		assert.Error(t, err, line)
	}

	_, err := ParsePlan([]string{"R 6 (#70c710)", "Q 1 (#000000)"}, ParseInstruction)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestArea(t *testing.T) {
	lines := strings.Split(sample, "\n")

	plan, err := ParsePlan(lines, ParseInstruction)
	require.NoError(t, err)
	assert.Equal(t, 62, Area(plan))

	plan, err = ParsePlan(lines, ParseHexInstruction)
	require.NoError(t, err)
	assert.Equal(t, 952408144115, Area(plan))
}

func TestAreaSquare(t *testing.T) {
	plan := []Instruction{
		{aoc.Right, 2},
		{aoc.Down, 2},
		{aoc.Left, 2},
		{aoc.Up, 2},
	}
	assert.Equal(t, 9, Area(plan))
}
