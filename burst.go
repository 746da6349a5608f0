package slingshot

import (
	"math"
	"math/rand/v2"

	"github.com/tanema/gween/ease"
)

//go:generate go tool mockgen -destination=./mocks/burst_mock.go -package=mocks . BurstSpawner

// BurstSpawner plays a fire-and-forget hit effect at a container-local point.
type BurstSpawner interface {
	SpawnBurst(x, y float64)
}

// confetti holds per-dot simulation state. Unexported; managed by
// ConfettiBurst.
type confetti struct {
	x, y        float64
	vx, vy      float64
	age         float64
	life        float64
	targetScale float64
	scale       float64
	alpha       float64
	color       Color
}

// ConfettiBurst is a pooled, CPU-simulated BurstSpawner. Each burst throws a
// random number of dots in random directions; dots grow in quickly, fall
// under gravity and fade out over their lifetime.
type ConfettiBurst struct {
	cfg    BurstConfig
	rng    *rand.Rand
	colors []Color
	dots   []confetti
	alive  int
}

// NewConfettiBurst creates a burst effect with a preallocated pool.
func NewConfettiBurst(cfg BurstConfig, rng *rand.Rand) (*ConfettiBurst, error) {
	max := cfg.MaxParticles
	if max <= 0 {
		max = 128
	}
	colors := make([]Color, 0, len(cfg.Colors))
	for _, s := range cfg.Colors {
		c, err := ParseHexColor(s)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	if len(colors) == 0 {
		colors = append(colors, ColorWhite)
	}
	return &ConfettiBurst{
		cfg:    cfg,
		rng:    rng,
		colors: colors,
		dots:   make([]confetti, max),
	}, nil
}

// SpawnBurst implements BurstSpawner. Dots beyond the pool size are silently
// dropped.
func (b *ConfettiBurst) SpawnBurst(x, y float64) {
	n := b.cfg.Count.RandomInt(b.rng)
	for i := 0; i < n && b.alive < len(b.dots); i++ {
		b.spawn(x, y)
	}
}

func (b *ConfettiBurst) spawn(x, y float64) {
	d := &b.dots[b.alive]
	angle := b.rng.Float64() * 2 * math.Pi
	speed := b.cfg.Speed.Random(b.rng)
	*d = confetti{
		x:           x,
		y:           y,
		vx:          math.Cos(angle) * speed,
		vy:          math.Sin(angle) * speed,
		life:        b.cfg.Lifetime,
		targetScale: b.cfg.Scale.Random(b.rng),
		alpha:       1,
		color:       b.colors[b.rng.IntN(len(b.colors))],
	}
	if d.life <= 0 {
		d.life = 1
	}
	b.alive++
}

// Update advances every dot by dt seconds, swap-removing dead ones.
func (b *ConfettiBurst) Update(dt float64) {
	gy := b.cfg.Gravity * dt
	grow := float32(b.cfg.GrowDuration)

	i := 0
	for i < b.alive {
		d := &b.dots[i]
		d.age += dt
		if d.age >= d.life {
			b.alive--
			b.dots[i] = b.dots[b.alive]
			continue
		}

		d.vy += gy
		d.x += d.vx * dt
		d.y += d.vy * dt

		if grow > 0 && float32(d.age) < grow {
			d.scale = float64(ease.OutCubic(float32(d.age), 0, float32(d.targetScale), grow))
		} else {
			d.scale = d.targetScale
		}
		d.alpha = 1 - d.age/d.life
		i++
	}
}

// AliveCount returns the number of live dots.
func (b *ConfettiBurst) AliveCount() int { return b.alive }

// Reset kills every live dot.
func (b *ConfettiBurst) Reset() { b.alive = 0 }

// Each calls fn for every live dot with its center, edge length and tint
// (alpha folded into the color).
func (b *ConfettiBurst) Each(fn func(x, y, size float64, c Color)) {
	for i := 0; i < b.alive; i++ {
		d := &b.dots[i]
		c := d.color
		c.A *= d.alpha
		fn(d.x, d.y, b.cfg.Size*d.scale, c)
	}
}
