package drill

// TickSource tracks the single armed countdown. Every arm bumps the
// generation, so ticks scheduled for an earlier arm are recognisably stale.
type TickSource struct {
	generation uint64
	armed      bool
}

// Arm cancels any previous source and returns the new generation.
func (t *TickSource) Arm() uint64 {
	t.generation++
	t.armed = true
	return t.generation
}

func (t *TickSource) Disarm() {
	if !t.armed {
		return
	}
	t.armed = false
	t.generation++
}

// Accept reports whether a tick carrying generation should be delivered.
func (t *TickSource) Accept(generation uint64) bool {
	return t.armed && generation == t.generation
}

func (t *TickSource) Armed() bool { return t.armed }

func (t *TickSource) Generation() uint64 { return t.generation }
