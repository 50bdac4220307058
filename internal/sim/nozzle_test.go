package sim

import (
	"testing"

	"github.com/vovakirdan/paints/internal/config"
	"github.com/vovakirdan/paints/internal/core"
	"github.com/vovakirdan/paints/internal/ecs"
)

func newTestNozzles(t *testing.T) (*Nozzles, *ecs.World) {
	t.Helper()
	cfg := config.DefaultPaintsConfig()
	specs, err := cfg.ParsedNozzles()
	if err != nil {
		t.Fatalf("ParsedNozzles() failed: %v", err)
	}
	n := NewNozzles(cfg, specs, core.DefaultAssets())
	w := ecs.NewWorld()
	n.Spawn(w)
	return n, w
}

func TestNozzlesSpawn(t *testing.T) {
	n, w := newTestNozzles(t)

	list := n.List()
	if len(list) != 3 {
		t.Fatalf("spawned %d nozzles, expected 3", len(list))
	}
	wantX := []float64{-200, 0, 200}
	wantColor := []core.Color{core.ColorRed, core.ColorGreen, core.ColorBlue}
	for i, nz := range list {
		if nz.X != wantX[i] || nz.Color != wantColor[i] {
			t.Errorf("nozzle %d = %+v", i, nz)
		}
		pos, _ := w.WorldPosition(nz.Swatch)
		if pos.X != wantX[i] || pos.Y != 200 {
			t.Errorf("swatch %d at %+v", i, pos)
		}
		if label, ok := w.Label(nz.Swatch); !ok || label != wantColor[i] {
			t.Errorf("swatch %d label = %v", i, label)
		}
	}
	if got := len(w.Tagged(ecs.TagNozzle)); got != 3 {
		t.Errorf("%d entities tagged as nozzle", got)
	}
}

func TestNozzlesNearest(t *testing.T) {
	n, _ := newTestNozzles(t)

	tests := []struct {
		x    float64
		want int
	}{
		{-640, 0},
		{-150, 0},
		{90, 1},
		{110, 2},
		{640, 2},
	}
	for _, tt := range tests {
		if got := n.Nearest(tt.x); got != tt.want {
			t.Errorf("Nearest(%g) = %d, expected %d", tt.x, got, tt.want)
		}
	}

	n.Clear()
	if got := n.Nearest(0); got != -1 {
		t.Errorf("Nearest() without nozzles = %d, expected -1", got)
	}
}

func TestNozzlesFire(t *testing.T) {
	n, w := newTestNozzles(t)
	first := spawnAt(w, -200+84, core.ColorWhite, core.ColorRed)
	second := spawnAt(w, -200, core.ColorWhite, core.ColorRed)

	hit, ok := n.Fire(w, 0)
	if !ok || hit.ID != first.ID {
		t.Fatalf("Fire() hit %+v ok=%v, expected the lowest-id bucket", hit, ok)
	}
	paint, _ := w.Paint(first.Paint)
	if want := (core.Color{R: 1, G: 0.75, B: 0.75, A: 1}); *paint != want {
		t.Errorf("paint = %v, expected %v", *paint, want)
	}
	if other, _ := w.Paint(second.Paint); *other != core.ColorWhite {
		t.Errorf("second bucket was painted too: %v", *other)
	}

	if _, ok := n.Fire(w, 2); ok {
		t.Error("nozzle with no bucket below should miss")
	}
	if _, ok := n.Fire(w, 7); ok {
		t.Error("unknown nozzle should miss")
	}
}

func TestNozzlesFireOutOfReach(t *testing.T) {
	n, w := newTestNozzles(t)
	b := spawnAt(w, -200+84.5, core.ColorWhite, core.ColorRed)

	if _, ok := n.Fire(w, 0); ok {
		t.Error("bucket beyond half a width should not be hit")
	}
	if paint, _ := w.Paint(b.Paint); *paint != core.ColorWhite {
		t.Errorf("paint changed to %v", *paint)
	}
}
