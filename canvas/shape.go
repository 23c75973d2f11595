package canvas

import "math"

// Coordinate is an offset from a shape's logical origin, in canvas units.
type Coordinate struct {
	X, Y float64
}

// Radius returns the distance of c from the origin.
func (c Coordinate) Radius() float64 {
	return math.Hypot(c.X, c.Y)
}

// Angle returns the angle of c in radians, in (-Pi, Pi].
func (c Coordinate) Angle() float64 {
	return math.Atan2(c.Y, c.X)
}

// Shape is a drawable primitive.
type Shape interface {
	Color() Color
	Points() PointIter
}

// PointIter is a finite sequence of coordinates.
//
// Next returns false once the sequence is exhausted and keeps returning false after that.
// Callers may stop early without any cleanup.
type PointIter interface {
	Next() (Coordinate, bool)
}

// SliceIter is a cursor over a read-only slice of coordinates.
type SliceIter struct {
	pts []Coordinate
	i   int
}

// NewSliceIter returns a cursor positioned before pts[0].
// The slice is not copied; callers must not modify it while iterating.
func NewSliceIter(pts []Coordinate) *SliceIter {
	return &SliceIter{pts: pts}
}

func (it *SliceIter) Next() (Coordinate, bool) {
	if it.i >= len(it.pts) {
		return Coordinate{}, false
	}
	c := it.pts[it.i]
	it.i++
	return c, true
}

// Remaining reports how many coordinates are left.
func (it *SliceIter) Remaining() int {
	return len(it.pts) - it.i
}

// Collect drains it into a new slice.
func Collect(it PointIter) []Coordinate {
	var out []Coordinate
	if si, ok := it.(*SliceIter); ok {
		out = make([]Coordinate, 0, si.Remaining())
	}
	for {
		c, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, c)
	}
}
