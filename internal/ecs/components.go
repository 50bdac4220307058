package ecs

import (
	"slices"

	"github.com/vovakirdan/paints/internal/core"
)

// AddTag sets marker bits on e.
func (w *World) AddTag(e Entity, t Tag) {
	if w.Alive(e) {
		w.tags[e] |= t
	}
}

// Tags returns the marker bits of e.
func (w *World) Tags(e Entity) Tag {
	return w.tags[e]
}

// Tagged returns every live entity carrying all bits of t, in id order.
func (w *World) Tagged(t Tag) []Entity {
	var out []Entity
	for e, tags := range w.tags {
		if tags.Has(t) {
			out = append(out, e)
		}
	}
	slices.Sort(out)
	return out
}

// SetName gives e an identity string.
func (w *World) SetName(e Entity, name string) {
	if w.Alive(e) {
		w.names[e] = name
	}
}

// Name returns the identity string of e.
func (w *World) Name(e Entity) (string, bool) {
	n, ok := w.names[e]
	return n, ok
}

// SetPosition places e. Children are positioned relative to their parent.
func (w *World) SetPosition(e Entity, p core.Vec3) {
	if w.Alive(e) {
		w.positions[e] = &p
	}
}

// Position returns a mutable pointer to the position of e.
func (w *World) Position(e Entity) (*core.Vec3, bool) {
	p, ok := w.positions[e]
	return p, ok
}

// WorldPosition resolves the absolute position of e by walking its parents.
func (w *World) WorldPosition(e Entity) (core.Vec3, bool) {
	p, ok := w.positions[e]
	if !ok {
		return core.Vec3{}, false
	}
	abs := *p
	for parent, ok := w.parents[e]; ok; parent, ok = w.parents[parent] {
		if pp, has := w.positions[parent]; has {
			abs = abs.Add(*pp)
		}
	}
	return abs, true
}

// SetVelocity attaches a velocity to e.
func (w *World) SetVelocity(e Entity, v Velocity) {
	if w.Alive(e) {
		w.velocities[e] = &v
	}
}

// Velocity returns the velocity of e.
func (w *World) Velocity(e Entity) (*Velocity, bool) {
	v, ok := w.velocities[e]
	return v, ok
}

// Moving returns every entity with both a position and a velocity, in id order.
func (w *World) Moving() []Entity {
	out := make([]Entity, 0, len(w.velocities))
	for e := range w.velocities {
		if _, ok := w.positions[e]; ok {
			out = append(out, e)
		}
	}
	slices.Sort(out)
	return out
}

// SetPaint attaches a current paint color to e.
func (w *World) SetPaint(e Entity, c core.Color) {
	if w.Alive(e) {
		w.paints[e] = &c
	}
}

// Paint returns a mutable pointer to the paint color of e.
func (w *World) Paint(e Entity) (*core.Color, bool) {
	c, ok := w.paints[e]
	return c, ok
}

// SetLabel attaches a target label color to e.
func (w *World) SetLabel(e Entity, c core.Color) {
	if w.Alive(e) {
		w.labels[e] = &c
	}
}

// Label returns the label color of e. Labels are never modified after
// spawn, so a copy is returned.
func (w *World) Label(e Entity) (core.Color, bool) {
	c, ok := w.labels[e]
	if !ok {
		return core.Color{}, false
	}
	return *c, true
}

// SetText attaches a text label to e.
func (w *World) SetText(e Entity, t Text) {
	if w.Alive(e) {
		w.texts[e] = &t
	}
}

// Text returns a mutable pointer to the text of e.
func (w *World) Text(e Entity) (*Text, bool) {
	t, ok := w.texts[e]
	return t, ok
}

// SetSprite attaches an asset handle to e.
func (w *World) SetSprite(e Entity, s Sprite) {
	if w.Alive(e) {
		w.sprites[e] = s
	}
}

// Sprite returns the asset handle of e.
func (w *World) Sprite(e Entity) (Sprite, bool) {
	s, ok := w.sprites[e]
	return s, ok
}
