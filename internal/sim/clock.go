package sim

// FixedStepper converts variable frame times into a whole number of fixed
// simulation steps. The remainder carries over to the next frame, so the
// number of steps taken always matches the elapsed time.
type FixedStepper struct {
	step        float64
	accumulator float64
	ticks       uint64
}

// NewFixedStepper creates a stepper with the given step in seconds.
func NewFixedStepper(step float64) *FixedStepper {
	return &FixedStepper{step: step}
}

// Step returns the fixed step in seconds.
func (f *FixedStepper) Step() float64 {
	return f.step
}

// Advance adds dt seconds and returns how many fixed steps are now due.
// Negative dt is ignored.
func (f *FixedStepper) Advance(dt float64) int {
	if dt > 0 {
		f.accumulator += dt
	}
	n := 0
	for f.accumulator >= f.step {
		f.accumulator -= f.step
		n++
	}
	f.ticks += uint64(n)
	return n
}

// Ticks returns the total number of steps handed out.
func (f *FixedStepper) Ticks() uint64 {
	return f.ticks
}

// Reset drops any accumulated time.
func (f *FixedStepper) Reset() {
	f.accumulator = 0
	f.ticks = 0
}
