package slingshot

import "testing"

func TestFirstOverlapNone(t *testing.T) {
	r := NewTargetRegistry()
	r.Register(NewSprite("a", 100, 100, 10, 10), TargetStatic)

	if got := FirstOverlap(Rect{X: 0, Y: 0, Width: 10, Height: 10}, r.Unhit()); got != nil {
		t.Errorf("got target %d, want none", got.ID)
	}
}

// Two targets overlap the projectile in the same frame: only the first in
// iteration order is reported.
func TestFirstOverlapReportsEarliest(t *testing.T) {
	r := NewTargetRegistry()
	a := r.Register(NewSprite("a", 0, 0, 20, 20), TargetStatic)
	b := r.Register(NewSprite("b", 10, 10, 20, 20), TargetStatic)

	proj := Rect{X: 12, Y: 12, Width: 4, Height: 4}
	got := FirstOverlap(proj, r.Unhit())
	if got != a {
		t.Fatalf("first overlap = %v, want a", got)
	}

	r.MarkHit(a)
	if got := FirstOverlap(proj, r.Unhit()); got != b {
		t.Errorf("after marking a, first overlap = %v, want b", got)
	}
	r.MarkHit(b)
	if got := FirstOverlap(proj, r.Unhit()); got != nil {
		t.Errorf("after marking both, got %v, want nil", got)
	}
}

func TestFirstOverlapUsesLiveBounds(t *testing.T) {
	r := NewTargetRegistry()
	s := NewSprite("w", 200, 200, 10, 10)
	tg := r.Register(s, TargetWandering)

	proj := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if FirstOverlap(proj, r.Unhit()) != nil {
		t.Fatal("unexpected overlap before move")
	}
	s.X, s.Y = 5, 5
	if FirstOverlap(proj, r.Unhit()) != tg {
		t.Error("overlap not detected after the target moved")
	}
}

func TestFirstOverlapEdgeTouch(t *testing.T) {
	r := NewTargetRegistry()
	tg := r.Register(NewSprite("a", 10, 0, 10, 10), TargetStatic)
	if FirstOverlap(Rect{X: 0, Y: 0, Width: 10, Height: 10}, r.Unhit()) != tg {
		t.Error("touching edges should count as a hit")
	}
}
