package hal

import (
	"testing"
	"time"
)

func TestHostTime_SecondsKeepsLatest(t *testing.T) {
	clock := time.Unix(100, 0)
	ht := newHostTime()
	ht.now = func() time.Time { return clock }

	ht.advance()
	clock = clock.Add(900 * time.Millisecond)
	ht.advance()
	select {
	case sec := <-ht.Seconds():
		t.Fatalf("second %d before one elapsed", sec)
	default:
	}

	clock = clock.Add(200 * time.Millisecond)
	ht.advance()
	clock = clock.Add(2 * time.Second)
	ht.advance()
	if ht.Elapsed() != 3100*time.Millisecond {
		t.Fatalf("elapsed=%v", ht.Elapsed())
	}
	select {
	case sec := <-ht.Seconds():
		if sec != 3 {
			t.Fatalf("sec=%d want the latest value 3", sec)
		}
	default:
		t.Fatalf("no second published")
	}
	select {
	case sec := <-ht.Seconds():
		t.Fatalf("stale second %d left in the channel", sec)
	default:
	}
}
