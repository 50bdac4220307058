package ecs

import (
	"testing"

	"github.com/vovakirdan/paints/internal/core"
)

func testSpec() BucketSpec {
	return BucketSpec{
		Position: core.Vec3{X: -724},
		Speed:    300,
		Paint:    core.ColorWhite,
		Label:    core.RGBA(0.5, 0.5, 0.5, 1),
		Assets:   core.DefaultAssets(),
	}
}

func TestSpawnIDsAreUnique(t *testing.T) {
	w := NewWorld()
	a := w.Spawn()
	b := w.Spawn()
	w.Despawn(a)
	c := w.Spawn()

	if a == b || b == c || a == c {
		t.Errorf("ids should never repeat: %d %d %d", a, b, c)
	}
	if a == NoEntity {
		t.Error("first id must not be NoEntity")
	}
}

func TestSpawnBucketComposite(t *testing.T) {
	w := NewWorld()
	b := w.SpawnBucket(testSpec())

	if w.Len() != 3 {
		t.Fatalf("Len() = %d, expected bucket + 2 swatches", w.Len())
	}
	if !w.Tags(b.ID).Has(TagBucket) {
		t.Error("bucket should be tagged")
	}
	if p, ok := w.Parent(b.Paint); !ok || p != b.ID {
		t.Error("paint swatch should be owned by the bucket")
	}
	if p, ok := w.Parent(b.Label); !ok || p != b.ID {
		t.Error("label swatch should be owned by the bucket")
	}

	if got := w.Buckets(); len(got) != 1 || got[0] != b {
		t.Errorf("Buckets() = %+v, expected only %+v", got, b)
	}

	paint, label, ok := w.BucketColors(b)
	if !ok {
		t.Fatal("BucketColors() should find both swatches")
	}
	if paint != core.ColorWhite {
		t.Errorf("paint = %v, expected white", paint)
	}
	if label != core.RGBA(0.5, 0.5, 0.5, 1) {
		t.Errorf("label = %v", label)
	}
}

func TestDespawnRemovesChildren(t *testing.T) {
	w := NewWorld()
	b := w.SpawnBucket(testSpec())
	other := w.SpawnBucket(testSpec())

	w.Despawn(b.ID)

	for _, e := range []Entity{b.ID, b.Paint, b.Label} {
		if w.Alive(e) {
			t.Errorf("entity %d should be despawned", e)
		}
	}
	if _, ok := w.buckets[b.ID]; ok {
		t.Error("composite should be unregistered")
	}
	if w.Len() != 3 {
		t.Errorf("Len() = %d, the other bucket should survive", w.Len())
	}
	if len(w.Buckets()) != 1 || w.Buckets()[0].ID != other.ID {
		t.Errorf("Buckets() = %+v", w.Buckets())
	}
}

func TestDespawnChildDetachesFromParent(t *testing.T) {
	w := NewWorld()
	b := w.SpawnBucket(testSpec())

	w.Despawn(b.Label)

	if kids := w.children[b.ID]; len(kids) != 1 || kids[0] != b.Paint {
		t.Errorf("children = %v, expected only paint", kids)
	}
	if _, _, ok := w.BucketColors(b); ok {
		t.Error("BucketColors() should report the missing label")
	}
}

func TestDespawnTagged(t *testing.T) {
	w := NewWorld()
	w.SpawnBucket(testSpec())
	nozzle := w.Spawn()
	w.AddTag(nozzle, TagNozzle)
	keep := w.Spawn()
	w.AddTag(keep, TagMenu)

	n := w.DespawnTagged(TagBucket | TagNozzle)
	if n != 2 {
		t.Errorf("DespawnTagged() = %d, expected 2 roots", n)
	}
	if w.Len() != 1 || !w.Alive(keep) {
		t.Errorf("only the menu entity should remain, Len() = %d", w.Len())
	}
}

func TestWorldPositionFollowsParent(t *testing.T) {
	w := NewWorld()
	b := w.SpawnBucket(testSpec())

	pos, _ := w.Position(b.ID)
	pos.X = 100

	abs, ok := w.WorldPosition(b.Paint)
	if !ok {
		t.Fatal("paint should have a position")
	}
	if abs.X != 100 || abs.Y != paintOffset.Y {
		t.Errorf("WorldPosition() = %+v", abs)
	}
}

func TestMovingAndTagged(t *testing.T) {
	w := NewWorld()
	b1 := w.SpawnBucket(testSpec())
	b2 := w.SpawnBucket(testSpec())
	still := w.Spawn()
	w.SetPosition(still, core.Vec3{})

	moving := w.Moving()
	if len(moving) != 2 || moving[0] != b1.ID || moving[1] != b2.ID {
		t.Errorf("Moving() = %v", moving)
	}

	if tagged := w.Tagged(TagBucket); len(tagged) != 2 {
		t.Errorf("Tagged(TagBucket) = %v", tagged)
	}
}

func TestSettersIgnoreDeadEntities(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()
	w.Despawn(e)

	w.SetName(e, "ghost")
	w.SetPaint(e, core.ColorRed)
	w.AddTag(e, TagNozzle)

	if _, ok := w.Name(e); ok {
		t.Error("dead entity should not get a name")
	}
	if _, ok := w.Paint(e); ok {
		t.Error("dead entity should not get a paint")
	}
	if len(w.Tagged(TagNozzle)) != 0 {
		t.Error("dead entity should not be tagged")
	}
}

func TestTextAndSprite(t *testing.T) {
	w := NewWorld()
	e := w.Spawn()
	w.SetText(e, Text{Content: "Paused"})
	w.SetSprite(e, Sprite{Asset: "font"})

	txt, ok := w.Text(e)
	if !ok || txt.Visible {
		t.Fatalf("Text() = %+v, %v", txt, ok)
	}
	txt.Visible = true
	if again, _ := w.Text(e); !again.Visible {
		t.Error("Text() should return a mutable pointer")
	}
	if s, _ := w.Sprite(e); s.Asset != "font" {
		t.Errorf("Sprite() = %+v", s)
	}
}

func TestDespawnRemovesEveryDescendant(t *testing.T) {
	w := NewWorld()
	root := w.Spawn()
	a := w.SpawnChild(root)
	b := w.SpawnChild(root)
	c := w.SpawnChild(root)
	grandchild := w.SpawnChild(b)
	keep := w.Spawn()

	w.Despawn(root)

	for _, e := range []Entity{root, a, b, c, grandchild} {
		if w.Alive(e) {
			t.Errorf("entity %d outlived its owner", e)
		}
		if _, ok := w.Parent(e); ok {
			t.Errorf("entity %d still has a parent link", e)
		}
	}
	if w.Len() != 1 || !w.Alive(keep) {
		t.Errorf("Len() = %d, only the unrelated entity should remain", w.Len())
	}
	if len(w.children) != 0 {
		t.Errorf("children index leaked: %v", w.children)
	}
}

func TestDespawnBucketsLeavesNothing(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 5; i++ {
		w.SpawnBucket(testSpec())
	}

	w.DespawnTagged(TagBucket)

	if w.Len() != 0 {
		t.Errorf("Len() = %d after despawning every bucket, entities %v", w.Len(), w.Entities())
	}
}
