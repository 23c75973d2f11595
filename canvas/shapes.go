package canvas

// DefaultLineSteps is the number of segments a Line is split into when Steps is unset.
const DefaultLineSteps = 64

// Points is a shape made of arbitrary coordinates.
type Points struct {
	Coords []Coordinate
	Stroke Color
}

func (p Points) Color() Color      { return p.Stroke }
func (p Points) Points() PointIter { return NewSliceIter(p.Coords) }

// Line is a straight segment from (X1, Y1) to (X2, Y2), both ends included.
type Line struct {
	X1, Y1 float64
	X2, Y2 float64
	Stroke Color

	// Steps is the number of segments; the line yields Steps+1 points.
	Steps int
}

func (l Line) Color() Color { return l.Stroke }

func (l Line) Points() PointIter {
	n := l.Steps
	if n <= 0 {
		n = DefaultLineSteps
	}
	return &lineIter{l: l, n: n}
}

type lineIter struct {
	l Line
	n int
	i int
}

func (it *lineIter) Next() (Coordinate, bool) {
	if it.i > it.n {
		return Coordinate{}, false
	}
	t := float64(it.i) / float64(it.n)
	it.i++
	if it.i > it.n {
		// Land exactly on the end point.
		return Coordinate{X: it.l.X2, Y: it.l.Y2}, true
	}
	return Coordinate{
		X: it.l.X1 + (it.l.X2-it.l.X1)*t,
		Y: it.l.Y1 + (it.l.Y2-it.l.Y1)*t,
	}, true
}
