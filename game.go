package slingshot

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/tanema/gween/ease"
)

// Missing anchors. The game cannot be built without them.
var (
	ErrMissingHandle     = errors.New("slingshot: missing drag handle")
	ErrMissingProjectile = errors.New("slingshot: missing projectile")
	ErrNoTargets         = errors.New("slingshot: no target sprites")
)

// Anchors are the sprites a Game drives. Positions are container-local and
// the handle's and projectile's positions at construction are their rest
// positions.
type Anchors struct {
	Handle     *Sprite
	Projectile *Sprite
	// Targets stay put. Wanderers roam the container.
	Targets   []*Sprite
	Wanderers []*Sprite
}

// Options supplies optional collaborators to NewGame. Zero values get
// defaults.
type Options struct {
	// Animator runs every motion. Defaults to a Tweener owned by the Game and
	// advanced by Game.Update.
	Animator Animator
	// Burst is played at the center of every hit target.
	Burst BurstSpawner
	// Sink receives lifecycle events.
	Sink   EventSink
	Logger *log.Logger
	Rand   *rand.Rand
	Now    func() time.Time
}

// Game is the session state machine: Ready until the first accepted press,
// Running until every target is hit, then Finished until Reset.
type Game struct {
	cfg    Config
	logger *log.Logger
	anim   Animator
	owned  *Tweener
	rng    *rand.Rand
	now    func() time.Time
	burst  BurstSpawner
	sink   EventSink

	container Rect
	registry  *TargetRegistry
	wander    *WanderGenerator
	drag      *DragMapper
	sim       *ProjectileSimulator
	hitEase   ease.TweenFunc

	status  Status
	started time.Time
	score   string
	session uuid.UUID
}

// NewRand returns a random source for seed, or a clock-seeded one when seed
// is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewGame wires the game around anchors inside container and performs the
// initial Reset. Sprites that are not Visible at load are not registered as
// targets.
func NewGame(cfg Config, container Rect, anchors Anchors, opts Options) (*Game, error) {
	if anchors.Handle == nil {
		return nil, ErrMissingHandle
	}
	if anchors.Projectile == nil {
		return nil, ErrMissingProjectile
	}
	if len(anchors.Targets)+len(anchors.Wanderers) == 0 {
		return nil, ErrNoTargets
	}

	g := &Game{
		cfg:       cfg,
		logger:    opts.Logger,
		anim:      opts.Animator,
		rng:       opts.Rand,
		now:       opts.Now,
		burst:     opts.Burst,
		sink:      opts.Sink,
		container: container,
		registry:  NewTargetRegistry(),
		hitEase:   ease.OutQuad,
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.anim == nil {
		g.owned = NewTweener()
		g.anim = g.owned
	}
	if g.rng == nil {
		g.rng = NewRand(cfg.Seed)
	}
	if g.now == nil {
		g.now = time.Now
	}

	g.wander = NewWanderGenerator(g.anim, g.rng, g.Container, cfg.Wander)
	g.drag = NewDragMapper(g.anim, anchors.Handle, cfg.Drag)
	g.sim = NewProjectileSimulator(g.anim, anchors.Projectile, cfg.Flight, g.Container)
	g.sim.CheckHits = g.checkHits

	for _, s := range anchors.Targets {
		if s != nil && s.Visible {
			g.registry.Register(s, TargetStatic)
		}
	}
	for _, s := range anchors.Wanderers {
		if s != nil && s.Visible {
			g.registry.Register(s, TargetWandering)
		}
	}
	g.logger.Info("targets on load", "total", g.registry.Total(),
		"skipped", len(anchors.Targets)+len(anchors.Wanderers)-g.registry.Total())

	g.Reset()
	return g, nil
}

// Status returns the session state.
func (g *Game) Status() Status { return g.status }

// Score returns the displayed score: "0.00" until the session finishes, then
// the elapsed seconds with two decimals.
func (g *Game) Score() string { return g.score }

// HitCount returns the number of targets hit this session.
func (g *Game) HitCount() int { return g.registry.HitCount() }

// TotalTargets returns the number of registered targets.
func (g *Game) TotalTargets() int { return g.registry.Total() }

// Targets returns every registered target. The slice MUST NOT be mutated.
func (g *Game) Targets() []*Target { return g.registry.All() }

// Flying reports whether the projectile is in flight.
func (g *Game) Flying() bool { return g.sim.Flying() }

// Dragging reports whether a drag gesture is in progress.
func (g *Game) Dragging() bool { return g.drag.Dragging() }

// Line returns the connector sprite between the projectile and the handle.
func (g *Game) Line() *Sprite { return g.drag.Line() }

// Session returns the id of the current session. A new id is drawn on every
// Reset.
func (g *Game) Session() uuid.UUID { return g.session }

// Container returns the current container bounds.
func (g *Game) Container() Rect { return g.container }

// Animator returns the animator driving the game.
func (g *Game) Animator() Animator { return g.anim }

// Update advances the game's own Tweener by dt seconds. It does nothing when
// an Animator was supplied through Options; its owner drives it.
func (g *Game) Update(dt float32) {
	if g.owned != nil {
		g.owned.Update(dt)
	}
}

// Resize replaces the container bounds. Game progress is kept.
func (g *Game) Resize(r Rect) {
	g.container = r
	g.logger.Debug("container resized", "width", r.Width, "height", r.Height)
}

// Press starts a drag gesture at container-local point p. It is refused,
// sending the handle back to rest, while the projectile is flying.
func (g *Game) Press(p Vec2) bool {
	if g.sim.Flying() {
		g.drag.Abort()
		g.logger.Debug("press refused, projectile in flight")
		return false
	}
	if g.status == StatusReady {
		g.status = StatusRunning
		g.started = g.now()
		g.emit(GameEvent{Type: EventStart, X: p.X, Y: p.Y})
	}
	g.sim.Stop()
	g.drag.Press(g.sim.RestCenter(), p)
	return true
}

// Move drags the handle to container-local point p.
func (g *Game) Move(p Vec2) {
	g.drag.Move(p, g.container)
}

// Release ends the gesture and launches the projectile if the pull crossed
// the threshold. It reports whether a flight started.
func (g *Game) Release() bool {
	if !g.drag.Dragging() {
		return false
	}
	v, ok := g.drag.Release(g.container, !g.sim.Flying())
	if !ok {
		g.logger.Debug("drag released below threshold")
		return false
	}
	if !g.sim.Launch(v) {
		g.logger.Debug("launch refused, projectile in flight")
		return false
	}
	g.emit(GameEvent{Type: EventLaunch, X: v.X, Y: v.Y})
	return true
}

// Reset is the only re-initialization path. It stops the flight and every
// running tween, restores every target, re-seeds the wanderers and returns
// to Ready with a new session id. Calling it twice in a row is the same as
// calling it once.
func (g *Game) Reset() {
	g.sim.Stop()
	g.drag.Reset()

	targets := g.registry.All()
	for _, t := range targets {
		g.wander.Stop(t)
		g.anim.Cancel(t.effect)
		t.effect = 0
		t.Sprite.Visible = false
	}
	g.registry.Reset()
	for _, t := range targets {
		t.Sprite.Restore()
		if t.Kind == TargetWandering {
			g.wander.Seed(t)
			g.wander.Start(t)
		}
	}

	g.status = StatusReady
	g.started = time.Time{}
	g.score = "0.00"
	g.session = uuid.New()

	if g.registry.Total() == 0 {
		g.logger.Warn("no visible targets, session can never finish")
	}
	g.logger.Info("reset", "session", g.session, "targets", g.registry.Total())
	g.emit(GameEvent{Type: EventReset})
}

func (g *Game) checkHits(bounds Rect) {
	if t := FirstOverlap(bounds, g.registry.Unhit()); t != nil {
		g.hit(t)
	}
}

func (g *Game) hit(t *Target) {
	g.registry.MarkHit(t)
	g.wander.Stop(t)

	s := t.Sprite
	g.anim.Cancel(t.effect)
	t.effect = g.anim.Play(TweenFade(s, g.cfg.Hit.Alpha, g.cfg.Hit.Scale, float32(g.cfg.Hit.Duration), g.hitEase), nil)
	s.Interactable = false

	c := s.Center()
	if g.burst != nil {
		g.burst.SpawnBurst(c.X, c.Y)
	}

	n, total := g.registry.HitCount(), g.registry.Total()
	g.logger.Info("hit", "target", t.ID, "kind", t.Kind, "hits", fmt.Sprintf("%d/%d", n, total))
	g.emit(GameEvent{Type: EventHit, TargetID: t.ID, X: c.X, Y: c.Y})

	if n == total && total > 0 && g.status != StatusFinished {
		g.finish()
	}
}

// finish computes the score exactly once.
func (g *Game) finish() {
	g.status = StatusFinished
	g.score = fmt.Sprintf("%.2f", g.now().Sub(g.started).Seconds())
	g.logger.Info("all targets hit", "score", g.score)
	g.emit(GameEvent{Type: EventFinish, Score: g.score})
}

func (g *Game) emit(e GameEvent) {
	if g.sink == nil {
		return
	}
	e.Session = g.session
	e.HitCount = g.registry.HitCount()
	e.Total = g.registry.Total()
	g.sink.EmitEvent(e)
}
