// Package ecs is the entity store for the paints simulation: entities are
// plain ids, components live in one map per component type, and buckets are
// kept as explicit composites so their paint and label swatches are found
// without scanning.
package ecs

import (
	"slices"

	"github.com/vovakirdan/paints/internal/core"
)

// Entity is an opaque entity id. Ids are never reused within a World.
type Entity uint32

// NoEntity is the zero id; it never refers to a live entity.
const NoEntity Entity = 0

// Tag is a bit set of marker components.
type Tag uint16

const (
	TagBucket Tag = 1 << iota
	TagNozzle
	TagScoreText
	TagPausedText
	TagMenu     // Lives only while the main menu is shown
	TagAnimated // Recolored every frame by the color animator
	TagBanner   // In-game title
)

// Has reports whether every bit of want is set.
func (t Tag) Has(want Tag) bool {
	return t&want == want
}

// Velocity is a scalar speed along +X in world units per second.
type Velocity struct {
	Speed float64
}

// Text is a label drawn by the renderer.
type Text struct {
	Content string
	Visible bool
}

// Sprite points at the opaque asset used to draw an entity.
type Sprite struct {
	Asset core.AssetID
}

// Bucket is the composite of a bucket and the two swatches it owns.
type Bucket struct {
	ID    Entity
	Paint Entity // Child carrying the current paint color
	Label Entity // Child carrying the target label color
}

// World owns every entity and component of a simulation.
type World struct {
	nextID Entity

	alive      map[Entity]struct{}
	tags       map[Entity]Tag
	names      map[Entity]string
	positions  map[Entity]*core.Vec3 // Local to the parent when the entity has one
	velocities map[Entity]*Velocity
	paints     map[Entity]*core.Color
	labels     map[Entity]*core.Color
	texts      map[Entity]*Text
	sprites    map[Entity]Sprite

	parents  map[Entity]Entity
	children map[Entity][]Entity
	buckets  map[Entity]*Bucket
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		nextID:     1,
		alive:      make(map[Entity]struct{}),
		tags:       make(map[Entity]Tag),
		names:      make(map[Entity]string),
		positions:  make(map[Entity]*core.Vec3),
		velocities: make(map[Entity]*Velocity),
		paints:     make(map[Entity]*core.Color),
		labels:     make(map[Entity]*core.Color),
		texts:      make(map[Entity]*Text),
		sprites:    make(map[Entity]Sprite),
		parents:    make(map[Entity]Entity),
		children:   make(map[Entity][]Entity),
		buckets:    make(map[Entity]*Bucket),
	}
}

// Spawn allocates a new entity.
func (w *World) Spawn() Entity {
	id := w.nextID
	w.nextID++
	w.alive[id] = struct{}{}
	return id
}

// SpawnChild allocates a new entity owned by parent.
func (w *World) SpawnChild(parent Entity) Entity {
	id := w.Spawn()
	if w.Alive(parent) {
		w.parents[id] = parent
		w.children[parent] = append(w.children[parent], id)
	}
	return id
}

// Alive reports whether e exists.
func (w *World) Alive(e Entity) bool {
	_, ok := w.alive[e]
	return ok
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.alive)
}

// Despawn removes e together with all of its descendants.
func (w *World) Despawn(e Entity) {
	if !w.Alive(e) {
		return
	}
	// Children are detached before recursing into them
	kids := w.children[e]
	delete(w.children, e)
	for _, child := range kids {
		delete(w.parents, child)
		w.Despawn(child)
	}

	if parent, ok := w.parents[e]; ok {
		siblings := w.children[parent]
		if i := slices.Index(siblings, e); i >= 0 {
			w.children[parent] = slices.Delete(siblings, i, i+1)
		}
	}

	delete(w.alive, e)
	delete(w.tags, e)
	delete(w.names, e)
	delete(w.positions, e)
	delete(w.velocities, e)
	delete(w.paints, e)
	delete(w.labels, e)
	delete(w.texts, e)
	delete(w.sprites, e)
	delete(w.parents, e)
	delete(w.children, e)
	delete(w.buckets, e)
}

// DespawnTagged removes every root entity carrying any bit of mask,
// recursively. It returns the number of roots removed.
func (w *World) DespawnTagged(mask Tag) int {
	n := 0
	for _, e := range w.Entities() {
		if !w.Alive(e) || w.tags[e]&mask == 0 {
			continue
		}
		w.Despawn(e)
		n++
	}
	return n
}

// Entities returns all live entities in ascending id order.
func (w *World) Entities() []Entity {
	out := make([]Entity, 0, len(w.alive))
	for e := range w.alive {
		out = append(out, e)
	}
	slices.Sort(out)
	return out
}

// Parent returns the owner of e, if any.
func (w *World) Parent(e Entity) (Entity, bool) {
	p, ok := w.parents[e]
	return p, ok
}
