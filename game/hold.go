package game

import "time"

type step struct {
	wait time.Duration
	run  func()
}

// hold is a queue of timed presentation steps. While it is not empty the
// controller ignores its inputs.
//
// Each step's wait counts from the deadline of the step before it, so a
// late tick runs every step that has become due, in order.
type hold struct {
	steps    []step
	since    Millis
	draining bool
}

// after queues run to fire wait after the previous step (or after now when
// the queue is idle).
func (h *hold) after(now Millis, wait time.Duration, run func()) {
	if len(h.steps) == 0 && !h.draining {
		h.since = now
	}
	h.steps = append(h.steps, step{wait: wait, run: run})
}

// drain runs every due step and reports whether the hold is still active.
func (h *hold) drain(now Millis) bool {
	h.draining = true
	defer func() { h.draining = false }()

	for len(h.steps) > 0 {
		s := h.steps[0]
		if Elapsed(now, h.since) < s.wait {
			return true
		}
		h.since += Millis(s.wait / time.Millisecond)
		h.steps = h.steps[1:]
		s.run()
	}
	return false
}

func (h *hold) active() bool {
	return len(h.steps) > 0
}

func (h *hold) reset() {
	h.steps = h.steps[:0]
}
