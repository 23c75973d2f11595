package hal

import "time"

// hostTime publishes whole seconds of wall time elapsed since the first advance.
type hostTime struct {
	ch  chan uint64
	now func() time.Time

	start   time.Time
	elapsed time.Duration
	seconds uint64
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1), now: time.Now}
}

func (t *hostTime) Seconds() <-chan uint64 { return t.ch }

func (t *hostTime) Elapsed() time.Duration { return t.elapsed }

// advance samples the clock once per frame. The channel holds only the latest second: a
// stale value is discarded before a newer one is sent.
func (t *hostTime) advance() {
	now := t.now()
	if t.start.IsZero() {
		t.start = now
		return
	}
	t.elapsed = now.Sub(t.start)

	sec := uint64(t.elapsed / time.Second)
	if sec == t.seconds {
		return
	}
	t.seconds = sec
	select {
	case <-t.ch:
	default:
	}
	t.ch <- sec
}
