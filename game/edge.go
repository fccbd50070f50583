package game

// Edge turns level samples of one button into press edges.
//
// A press is reported once per press-and-hold cycle; the button has to be
// seen released before the next press registers. A stuck-high input
// therefore produces a single edge and nothing after it.
type Edge struct {
	latched bool
}

// Update feeds the current level and reports whether it is a new press.
func (e *Edge) Update(level bool) bool {
	if !level {
		e.latched = false
		return false
	}
	if e.latched {
		return false
	}
	e.latched = true
	return true
}

// Clear drops the latch so a button that is still held fires again.
func (e *Edge) Clear() {
	e.latched = false
}

// Latched reports whether the button was last seen held.
func (e *Edge) Latched() bool {
	return e.latched
}
