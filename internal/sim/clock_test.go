package sim

import "testing"

func TestFixedStepperCarriesRemainder(t *testing.T) {
	f := NewFixedStepper(0.25)

	steps := []struct {
		dt   float64
		want int
	}{
		{0.5, 2},
		{0.125, 0},
		{0.125, 1},
		{0.0625, 0},
		{-1, 0},
		{1.1875, 5},
	}
	for i, s := range steps {
		if got := f.Advance(s.dt); got != s.want {
			t.Errorf("step %d: Advance(%g) = %d, expected %d", i, s.dt, got, s.want)
		}
	}
	if f.Ticks() != 8 {
		t.Errorf("Ticks() = %d, expected 8", f.Ticks())
	}
}

func TestFixedStepperReset(t *testing.T) {
	f := NewFixedStepper(0.25)
	f.Advance(0.375)
	f.Reset()

	if f.Ticks() != 0 {
		t.Errorf("Ticks() after Reset = %d", f.Ticks())
	}
	if got := f.Advance(0.125); got != 0 {
		t.Errorf("leftover time survived Reset: Advance = %d", got)
	}
}
