package canvas

const (
	circleSamples = 500

	// CircleRadius is the radius of the built-in circle table, in canvas units.
	CircleRadius = 50.0
)

// Circle is the outline of a circle drawn from a table of points.
//
// A nil Table selects the built-in 500-entry table of radius 50 around the origin, which
// is shared by every Circle. The zero value is ready to use and draws with ColorReset.
// Tables are read, never written, so one table can back any number of circles.
type Circle struct {
	Table  []Coordinate
	Stroke Color
}

// NewCircle returns a circle over the built-in table drawn with c.
func NewCircle(c Color) Circle {
	return Circle{Stroke: c}
}

// DefaultCircle returns a circle with no explicit color.
func DefaultCircle() Circle {
	return Circle{}
}

func (c Circle) Color() Color { return c.Stroke }

// Points returns a new cursor over the circle table. Cursors are independent and may be
// used from different goroutines.
func (c Circle) Points() PointIter {
	return NewSliceIter(c.table())
}

// Len returns the number of points yielded by Points.
func (c Circle) Len() int { return len(c.table()) }

func (c Circle) table() []Coordinate {
	if c.Table == nil {
		return circleTable[:]
	}
	return c.Table
}
