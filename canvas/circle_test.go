package canvas

import (
	"math"
	"sync"
	"testing"
)

func TestCircle_PointCount(t *testing.T) {
	c := DefaultCircle()
	for i := 0; i < 3; i++ {
		if n := len(Collect(c.Points())); n != 500 {
			t.Fatalf("call %d: got %d points, want 500", i, n)
		}
	}
	if c.Len() != 500 {
		t.Fatalf("Len=%d", c.Len())
	}
}

func TestCircle_FirstPointAndRadius(t *testing.T) {
	pts := Collect(Circle{}.Points())
	if pts[0] != (Coordinate{X: 50, Y: 0}) {
		t.Fatalf("first=%v", pts[0])
	}
	for i, p := range pts {
		if r := p.Radius(); math.Abs(r-CircleRadius) > 0.01 {
			t.Fatalf("point %d %v radius=%v", i, p, r)
		}
	}
	if last := pts[len(pts)-1]; last != (Coordinate{X: 49.9961, Y: -0.6283}) {
		t.Fatalf("last=%v", last)
	}
}

func TestCircle_Restartable(t *testing.T) {
	c := NewCircle(ColorCyan)
	a := Collect(c.Points())
	b := Collect(c.Points())
	if len(a) != len(b) {
		t.Fatalf("len a=%d b=%d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestCircle_Color(t *testing.T) {
	if got := DefaultCircle().Color(); got != ColorReset {
		t.Fatalf("default color=%v", got)
	}
	if got := (Circle{}).Color(); got != ColorReset {
		t.Fatalf("zero color=%v", got)
	}
	if got := NewCircle(Indexed(202)).Color(); got != Indexed(202) {
		t.Fatalf("color=%v", got)
	}

	c := NewCircle(ColorRed)
	c.Stroke = ColorBlue
	if c.Color() != ColorBlue {
		t.Fatalf("reassigned color=%v", c.Color())
	}
}

func TestCircle_AngularStep(t *testing.T) {
	pts := Collect(DefaultCircle().Points())
	want := 360.0 / 500
	for i := 0; i+1 < len(pts); i++ {
		d := pts[i+1].Angle() - pts[i].Angle()
		if d < -math.Pi {
			d += 2 * math.Pi
		}
		if d > math.Pi {
			d -= 2 * math.Pi
		}
		deg := d * 180 / math.Pi
		if math.Abs(deg-want) > 0.001 {
			t.Fatalf("step %d->%d: %v deg", i, i+1, deg)
		}
	}
}

func TestCircle_EarlyStopDoesNotLeak(t *testing.T) {
	c := DefaultCircle()
	it := c.Points()
	for i := 0; i < 42; i++ {
		if _, ok := it.Next(); !ok {
			t.Fatalf("exhausted at %d", i)
		}
	}

	fresh := c.Points()
	p, ok := fresh.Next()
	if !ok || p != (Coordinate{X: 50, Y: 0}) {
		t.Fatalf("fresh first=%v ok=%v", p, ok)
	}
	if n := len(Collect(c.Points())); n != 500 {
		t.Fatalf("fresh len=%d", n)
	}
}

func TestCircle_ExhaustedStaysExhausted(t *testing.T) {
	it := DefaultCircle().Points()
	for {
		if _, ok := it.Next(); !ok {
			break
		}
	}
	for i := 0; i < 3; i++ {
		if _, ok := it.Next(); ok {
			t.Fatalf("Next returned a point after exhaustion")
		}
	}
}

func TestCircle_ConcurrentIteration(t *testing.T) {
	c := NewCircle(ColorGreen)
	want := Collect(c.Points())

	var wg sync.WaitGroup
	errs := make(chan int, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := Collect(c.Points())
			for i := range want {
				if got[i] != want[i] {
					errs <- i
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for i := range errs {
		t.Fatalf("concurrent iteration differs at %d", i)
	}
}

func TestCircle_CustomTable(t *testing.T) {
	square := []Coordinate{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	c := Circle{Table: square, Stroke: ColorYellow}
	if c.Len() != 4 {
		t.Fatalf("Len=%d", c.Len())
	}
	got := Collect(c.Points())
	if len(got) != 4 {
		t.Fatalf("got %d points", len(got))
	}
	for i := range square {
		if got[i] != square[i] {
			t.Fatalf("point %d=%v want %v", i, got[i], square[i])
		}
	}
	if c.Color() != ColorYellow {
		t.Fatalf("color=%v", c.Color())
	}

	var def Circle
	if def.Len() != 500 || len(Collect(def.Points())) != 500 {
		t.Fatalf("nil table is not the built-in table")
	}
	if first, _ := def.Points().Next(); first != (Coordinate{X: 50, Y: 0}) {
		t.Fatalf("first=%v", first)
	}
}
