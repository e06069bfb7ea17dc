package aoc

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}

// ParseHex parses a hex string, with or without a leading "#" or "0x".
func ParseHex(in string) (int64, error) {
	in = strings.TrimPrefix(in, "#")
	in = strings.TrimPrefix(in, "0x")
	return strconv.ParseInt(in, 16, 64)
}

// PolygonArea returns the area of the polygon defined by the points, using
// the shoelace formula. The last point must equal the first.
func PolygonArea(pts []Pt) int {
	var area int
	for i := 1; i < len(pts); i++ {
		a := pts[i-1]
		b := pts[i]
		area += a.X*b.Y - a.Y*b.X
	}
	if area < 0 {
		area = -area
	}
	return area >> 1
}

// PolygonPerimeter returns the perimeter of the polygon defined by the
// points, walking between consecutive points.
func PolygonPerimeter(pts []Pt) int {
	var perimeter int
	for i := 1; i < len(pts); i++ {
		perimeter += pts[i-1].MDist(pts[i])
	}
	return perimeter
}

// PolygonBoundedPoints returns the number of points with integer coordinates
// inside or on the polygon defined by the points. The edges must be axis
// aligned.
func PolygonBoundedPoints(pts []Pt) int {
	/*
	  Pick's theorem:
	  A = i + b/2 - 1

	  Bounded points = i + b

	  i = A - b/2 + 1
	  i + b = A + b/2 + 1
	*/
	a := PolygonArea(pts)
	b2 := PolygonPerimeter(pts) >> 1
	return a + b2 + 1
}
