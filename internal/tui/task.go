package tui

import "context"

// task tracks the single in-flight request of a page. Results carry the
// sequence number they were started with; anything but the latest is stale.
type task struct {
	seq    int
	cancel context.CancelFunc
}

// start cancels the previous request and returns a context for a new one.
func (t *task) start(parent context.Context) (context.Context, int) {
	t.stop()
	ctx, cancel := context.WithCancel(parent)
	t.cancel = cancel
	t.seq++
	return ctx, t.seq
}

// finish reports whether seq is the latest request and releases its context.
func (t *task) finish(seq int) bool {
	if seq != t.seq {
		return false
	}
	t.stop()
	return true
}

// abandon cancels the in-flight request and marks its result stale.
func (t *task) abandon() {
	t.stop()
	t.seq++
}

func (t *task) running() bool {
	return t.cancel != nil
}

func (t *task) stop() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}
