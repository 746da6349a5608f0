package slingshot

import (
	"errors"
	"math"
	"testing"
	"time"
)

// fakeClock is a manually advanced time source.
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type gameFixture struct {
	game  *Game
	tw    *Tweener
	clock *fakeClock
	hand  *Sprite
	proj  *Sprite
}

var gameContainer = Rect{Width: 400, Height: 400}

// newGameFixture builds a 400x400 game. The projectile rests centered at
// (200, 360) under the handle; a downward drag launches it straight up
// through x = 195..205.
func newGameFixture(t *testing.T, targets, wanderers []*Sprite) *gameFixture {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Drag.VelocityRatio = 0.1

	f := &gameFixture{
		tw:    NewTweener(),
		clock: &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		hand:  NewSprite("handle", 190, 350, 20, 20),
		proj:  NewSprite("projectile", 195, 350, 10, 20),
	}
	g, err := NewGame(cfg, gameContainer, Anchors{
		Handle:     f.hand,
		Projectile: f.proj,
		Targets:    targets,
		Wanderers:  wanderers,
	}, Options{Animator: f.tw, Rand: NewRand(3), Now: f.clock.Now})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	f.game = g
	return f
}

// pullAndRelease drags the handle down by 30 units and lets go.
func (f *gameFixture) pullAndRelease() bool {
	c := f.hand.Center()
	if !f.game.Press(c) {
		return false
	}
	f.game.Move(c.Add(Vec2{0, 30}))
	return f.game.Release()
}

func (f *gameFixture) frames(n int) {
	for i := 0; i < n; i++ {
		f.tw.Update(1.0 / 60)
	}
}

func (f *gameFixture) flyOut(t *testing.T) {
	t.Helper()
	for i := 0; f.game.Flying(); i++ {
		if i > 6000 {
			t.Fatal("flight never ended")
		}
		f.tw.Update(1.0 / 60)
	}
}

func column(n int) []*Sprite {
	var out []*Sprite
	for i := 0; i < n; i++ {
		out = append(out, NewSprite("t", 190, float64(250-i*100), 20, 20))
	}
	return out
}

func TestNewGameMissingAnchors(t *testing.T) {
	h := NewSprite("h", 0, 0, 1, 1)
	p := NewSprite("p", 0, 0, 1, 1)
	tg := []*Sprite{NewSprite("t", 0, 0, 1, 1)}

	tests := []struct {
		name    string
		anchors Anchors
		want    error
	}{
		{"no handle", Anchors{Projectile: p, Targets: tg}, ErrMissingHandle},
		{"no projectile", Anchors{Handle: h, Targets: tg}, ErrMissingProjectile},
		{"no targets", Anchors{Handle: h, Projectile: p}, ErrNoTargets},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGame(DefaultConfig(), gameContainer, tt.anchors, Options{})
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewGameStartsReady(t *testing.T) {
	f := newGameFixture(t, column(2), []*Sprite{NewSprite("w", 0, 0, 10, 10)})
	g := f.game

	if g.Status() != StatusReady || g.Score() != "0.00" || g.HitCount() != 0 {
		t.Errorf("initial state: %v %q %d", g.Status(), g.Score(), g.HitCount())
	}
	if g.TotalTargets() != 3 {
		t.Errorf("TotalTargets = %d, want 3", g.TotalTargets())
	}
	if g.Status().String() != "ready" {
		t.Errorf("status attribute = %q", g.Status())
	}
}

// Three targets, all hit within bounds.
func TestGameClearsAllTargets(t *testing.T) {
	f := newGameFixture(t, column(3), nil)
	g := f.game

	if !f.pullAndRelease() {
		t.Fatal("launch refused")
	}
	if g.Status() != StatusRunning {
		t.Fatalf("status = %v after first press, want running", g.Status())
	}

	f.clock.Advance(2500 * time.Millisecond)
	f.flyOut(t)

	if g.HitCount() != 3 {
		t.Fatalf("HitCount = %d, want 3", g.HitCount())
	}
	if g.Status() != StatusFinished {
		t.Fatalf("status = %v, want finished", g.Status())
	}
	if g.Score() != "2.50" {
		t.Errorf("Score = %q, want \"2.50\"", g.Score())
	}

	// The score is final.
	f.clock.Advance(time.Minute)
	f.frames(10)
	if g.Score() != "2.50" {
		t.Errorf("Score revised to %q after finishing", g.Score())
	}
}

func TestGameSubThresholdDrag(t *testing.T) {
	f := newGameFixture(t, column(1), nil)
	c := f.hand.Center()

	f.game.Press(c)
	f.game.Move(c.Add(Vec2{0, 10}))
	if f.game.Release() {
		t.Fatal("a 10-unit drag launched")
	}
	if f.game.Flying() {
		t.Fatal("flight started below the threshold")
	}
	f.frames(60)
	if f.hand.X != 190 || f.hand.Y != 350 {
		t.Errorf("handle at (%v, %v), want back at rest", f.hand.X, f.hand.Y)
	}
}

func TestGameRefusesLaunchMidFlight(t *testing.T) {
	f := newGameFixture(t, []*Sprite{NewSprite("side", 0, 0, 10, 10)}, nil)
	f.pullAndRelease()
	f.frames(3)
	y := f.proj.Y
	v := f.game.sim.Velocity()

	c := f.hand.Center()
	if f.game.Press(c) {
		t.Fatal("press accepted mid-flight")
	}
	f.game.Move(c.Add(Vec2{0, 100}))
	if f.game.Release() {
		t.Fatal("second launch accepted mid-flight")
	}
	if f.game.sim.Velocity() != v || f.proj.Y != y {
		t.Error("first flight disturbed")
	}
	f.frames(1)
	if f.proj.Y >= y {
		t.Error("first flight stopped")
	}
}

func TestGameMissExitsWithoutScoring(t *testing.T) {
	f := newGameFixture(t, []*Sprite{NewSprite("side", 0, 0, 10, 10)}, nil)
	f.pullAndRelease()
	f.flyOut(t)

	if f.proj.Alpha != 0 {
		t.Errorf("projectile alpha = %v after exit, want 0", f.proj.Alpha)
	}
	if f.game.HitCount() != 0 || f.game.Score() != "0.00" {
		t.Errorf("hits %d score %q after a miss", f.game.HitCount(), f.game.Score())
	}
	if f.game.Status() != StatusRunning {
		t.Errorf("status = %v, want running", f.game.Status())
	}
}

func TestGameOneHitPerFrame(t *testing.T) {
	a := NewSprite("a", 190, 200, 20, 20)
	b := NewSprite("b", 190, 200, 20, 20)
	f := newGameFixture(t, []*Sprite{a, b}, nil)
	f.pullAndRelease()

	for i := 0; f.game.HitCount() == 0; i++ {
		if i > 600 || !f.game.Flying() {
			t.Fatal("no hit registered")
		}
		f.tw.Update(1.0 / 60)
	}
	if f.game.HitCount() != 1 {
		t.Fatalf("HitCount = %d in the first hit frame, want 1", f.game.HitCount())
	}
	if !f.game.Targets()[0].Hit() || f.game.Targets()[1].Hit() {
		t.Error("expected only the first registered target hit")
	}
	f.tw.Update(1.0 / 60)
	if f.game.HitCount() != 2 {
		t.Errorf("HitCount = %d in the next frame, want 2", f.game.HitCount())
	}
}

func TestGameHitEffect(t *testing.T) {
	f := newGameFixture(t, column(1), nil)
	target := f.game.Targets()[0]
	f.pullAndRelease()

	for i := 0; !target.Hit(); i++ {
		if i > 600 {
			t.Fatal("target never hit")
		}
		f.tw.Update(1.0 / 60)
	}
	s := target.Sprite
	if s.Interactable {
		t.Error("hit target still interactable")
	}
	f.frames(20)
	if math.Abs(s.Alpha-0.1) > 1e-3 || math.Abs(s.ScaleX-0.95) > 1e-3 {
		t.Errorf("hit effect alpha %v scale %v, want 0.1 and 0.95", s.Alpha, s.ScaleX)
	}
	if !s.Visible {
		t.Error("hit target hidden")
	}
}

func TestGameHitWandererStops(t *testing.T) {
	w := NewSprite("w", 0, 0, 20, 20)
	f := newGameFixture(t, []*Sprite{NewSprite("side", 0, 0, 10, 10)}, []*Sprite{w})
	wt := f.game.Targets()[1]
	f.frames(5)

	f.game.hit(wt)
	if f.game.wander.Moving(wt) {
		t.Fatal("wanderer still moving after hit")
	}
	p := w.Position()
	f.frames(30)
	if w.Position() != p {
		t.Error("hit wanderer moved")
	}
}

func TestGameResetIdempotent(t *testing.T) {
	w := NewSprite("w", 0, 0, 20, 20)
	f := newGameFixture(t, column(3), []*Sprite{w})
	g := f.game

	f.pullAndRelease()
	f.frames(20)
	if g.HitCount() == 0 {
		t.Fatal("fixture should have hit something")
	}

	g.Reset()
	first := g.Session()
	snap := func() (Status, int, string, bool) {
		return g.Status(), g.HitCount(), g.Score(), g.Flying()
	}
	s1, h1, sc1, fl1 := snap()
	g.Reset()
	s2, h2, sc2, fl2 := snap()

	if s1 != StatusReady || h1 != 0 || sc1 != "0.00" || fl1 {
		t.Errorf("after Reset: %v %d %q flying=%v", s1, h1, sc1, fl1)
	}
	if s1 != s2 || h1 != h2 || sc1 != sc2 || fl1 != fl2 {
		t.Error("second Reset changed the state")
	}
	if g.Session() == first {
		t.Error("Reset should draw a new session id")
	}
	for _, tg := range g.Targets() {
		s := tg.Sprite
		if tg.Hit() || !s.Visible || s.Alpha != 1 || s.ScaleX != 1 || !s.Interactable {
			t.Errorf("target %s not restored: hit=%v %+v", s.Name, tg.Hit(), *s)
		}
	}
	if !g.wander.Moving(g.Targets()[3]) {
		t.Error("wanderer not restarted")
	}
	// One wander motion, nothing else left running.
	if f.tw.Len() != 1 {
		t.Errorf("Len = %d after Reset, want 1", f.tw.Len())
	}
	if f.proj.X != 195 || f.proj.Y != 350 || f.proj.Alpha != 1 {
		t.Errorf("projectile not back at rest: %+v", *f.proj)
	}
}

func TestGameResetMidFlight(t *testing.T) {
	f := newGameFixture(t, []*Sprite{NewSprite("side", 0, 0, 10, 10)}, nil)
	f.pullAndRelease()
	f.frames(2)

	f.game.Reset()
	if f.game.Flying() {
		t.Fatal("still flying after Reset")
	}
	if !f.pullAndRelease() {
		t.Error("launch refused after Reset")
	}
}

func TestGameZeroVisibleTargetsNeverFinishes(t *testing.T) {
	hidden := NewSprite("hidden", 190, 200, 20, 20)
	hidden.Visible = false
	f := newGameFixture(t, []*Sprite{hidden}, nil)

	if f.game.TotalTargets() != 0 {
		t.Fatalf("TotalTargets = %d, want 0", f.game.TotalTargets())
	}
	f.pullAndRelease()
	f.flyOut(t)
	if f.game.Status() != StatusRunning {
		t.Errorf("status = %v, want running", f.game.Status())
	}
	if hidden.Visible {
		t.Error("unregistered hidden target made visible")
	}
}

func TestGameResizeKeepsProgress(t *testing.T) {
	f := newGameFixture(t, column(2), nil)
	f.pullAndRelease()
	f.flyOut(t)
	hits := f.game.HitCount()

	f.game.Resize(Rect{Width: 800, Height: 600})
	if f.game.Container() != (Rect{Width: 800, Height: 600}) {
		t.Errorf("Container = %+v", f.game.Container())
	}
	if f.game.HitCount() != hits || f.game.Status() == StatusReady {
		t.Error("Resize changed game progress")
	}
}

func TestGameOwnsTweenerByDefault(t *testing.T) {
	g, err := NewGame(DefaultConfig(), gameContainer, Anchors{
		Handle:     NewSprite("h", 190, 350, 20, 20),
		Projectile: NewSprite("p", 195, 350, 10, 20),
		Wanderers:  []*Sprite{NewSprite("w", 0, 0, 20, 20)},
	}, Options{Rand: NewRand(1)})
	if err != nil {
		t.Fatal(err)
	}
	w := g.Targets()[0].Sprite
	p := w.Position()
	for i := 0; i < 30; i++ {
		g.Update(1.0 / 60)
	}
	if w.Position() == p {
		t.Error("Update did not advance the game's own animator")
	}
}
