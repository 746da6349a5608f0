package slingshot

import "iter"

// Target is one hittable entity. Its bounds are read from its Sprite at query
// time.
type Target struct {
	ID     uint32
	Kind   TargetKind
	Sprite *Sprite

	hit    bool
	motion Handle // wander motion (TargetWandering only)
	effect Handle // hit fade
}

// Hit reports whether the target has been hit since the last reset.
func (t *Target) Hit() bool { return t.hit }

// Bounds returns the target's live axis-aligned rectangle.
func (t *Target) Bounds() Rect { return t.Sprite.Bounds() }

// TargetRegistry owns the game's targets and their hit flags. Iteration order
// is registration order with every static target ahead of every wandering
// one.
type TargetRegistry struct {
	targets  []*Target
	statics  int
	hitCount int
	nextID   uint32
}

// NewTargetRegistry creates an empty registry.
func NewTargetRegistry() *TargetRegistry {
	return &TargetRegistry{}
}

// Register adds a sprite as a target of the given kind and returns it.
// Static targets are kept ahead of wandering ones.
func (r *TargetRegistry) Register(s *Sprite, kind TargetKind) *Target {
	r.nextID++
	t := &Target{ID: r.nextID, Kind: kind, Sprite: s}
	if kind == TargetWandering {
		r.targets = append(r.targets, t)
		return t
	}
	r.targets = append(r.targets, nil)
	copy(r.targets[r.statics+1:], r.targets[r.statics:])
	r.targets[r.statics] = t
	r.statics++
	return t
}

// All returns every target in iteration order. The returned slice MUST NOT be
// mutated.
func (r *TargetRegistry) All() []*Target { return r.targets }

// Unhit yields the targets not yet hit, in iteration order.
func (r *TargetRegistry) Unhit() iter.Seq[*Target] {
	return func(yield func(*Target) bool) {
		for _, t := range r.targets {
			if t.hit {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// Wandering yields the wandering targets in iteration order.
func (r *TargetRegistry) Wandering() iter.Seq[*Target] {
	return func(yield func(*Target) bool) {
		for _, t := range r.targets[r.statics:] {
			if !yield(t) {
				return
			}
		}
	}
}

// MarkHit flags t as hit. The collision detector resolves at most one hit per
// target, so callers do not mark a target twice.
func (r *TargetRegistry) MarkHit(t *Target) {
	if t.hit {
		return
	}
	t.hit = true
	r.hitCount++
}

// HitCount returns how many targets have been hit since the last reset.
func (r *TargetRegistry) HitCount() int { return r.hitCount }

// Total returns the number of registered targets.
func (r *TargetRegistry) Total() int { return len(r.targets) }

// Reset clears every hit flag.
func (r *TargetRegistry) Reset() {
	for _, t := range r.targets {
		t.hit = false
	}
	r.hitCount = 0
}
