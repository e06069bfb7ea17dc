package aoc

import (
	"reflect"
	"testing"
)

func TestPolygonArea(t *testing.T) {
	square := []Pt{
		{X: 0, Y: 0},
		{X: 5, Y: 0},
		{X: 5, Y: 5},
		{X: 0, Y: 5},
		{X: 0, Y: 0},
	}
	if got, want := PolygonArea(square), 25; got != want {
		t.Errorf("PolygonArea = %v, want %v", got, want)
	}
	if got, want := PolygonPerimeter(square), 20; got != want {
		t.Errorf("PolygonPerimeter = %v, want %v", got, want)
	}
	if got, want := PolygonBoundedPoints(square), 36; got != want {
		t.Errorf("PolygonBoundedPoints = %v, want %v", got, want)
	}
}

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
		ok      bool
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
			ok: true,
		},
		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
			ok: true,
		},
		{
			comment: `// want=64`,
			want:    sample{want: "64"},
			ok:      true,
		},
		{
			comment: `// D1p1 solves part one.`,
		},
	}

	for _, tt := range tests {
		got, ok := parseSample(tt.comment)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseSample(%q) = %+v, %v; want %+v, %v", tt.comment, got, ok, tt.want, tt.ok)
		}
	}
}

const solutionsSrc = `package main

/*
want=2

a
b
*/
func (s solver) D1p1() any { return 0 }

// want=3
func (s solver) D1p2() any { return 0 }

func (s solver) helper() {}
`

func TestExtractSamples(t *testing.T) {
	got := extractSamples([]byte(solutionsSrc))
	want := map[string]sample{
		"D1p1": {want: "2", input: "a\nb\n"},
		"D1p2": {want: "3", input: "a\nb\n"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("extractSamples = %+v, want %+v", got, want)
	}
}

type testSolver struct {
	*Puzzle
}

func (s testSolver) D2p1() any  { return 1 }
func (s testSolver) D2p2() any  { return 2 }
func (s testSolver) D10p1() any { return 3 }
func (s testSolver) Other() any { return 4 }

func TestExtractMethods(t *testing.T) {
	days := extractMethods(&testSolver{})
	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}
	d2 := days[2]
	if len(d2.parts) != 2 || d2.parts[0].Name != "D2p1" || d2.parts[1].Name != "D2p2" {
		t.Errorf("day 2 parts = %+v", d2.parts)
	}
	if got := d2.parts[1].fn(); got != 2 {
		t.Errorf("D2p2() = %v, want 2", got)
	}
	if got := days[10].parts[0].Part; got != "1" {
		t.Errorf("day 10 part = %q, want 1", got)
	}
}

func TestParallel(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}
	if got := Parallel(in, func(v int) int { return -v }); !reflect.DeepEqual(got, []int{-1, -2, -3, -4, -5}) {
		t.Errorf("Parallel = %v", got)
	}
	if got := Sum(Parallel(in, func(v int) int64 { return int64(v * v) })...); got != 55 {
		t.Errorf("Sum = %v, want 55", got)
	}
}

func TestOr(t *testing.T) {
	if got := Or("", "b", "c"); got != "b" {
		t.Errorf("Or = %q, want b", got)
	}
	if got := Or(0, 0); got != 0 {
		t.Errorf("Or = %v, want 0", got)
	}
}

func TestParseHex(t *testing.T) {
	for _, in := range []string{"#70c71", "0x70c71", "70c71"} {
		got, err := ParseHex(in)
		if err != nil || got != 461937 {
			t.Errorf("ParseHex(%q) = %v, %v; want 461937", in, got, err)
		}
	}
}
