package slingshot

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Stage hosts a Game in an ebiten window. It implements ebiten.Game: it owns
// the Tweener that drives every motion, the pointer Input, the confetti
// effect and the sprites, and routes pointer events on the handle and the
// reset button to the Game.
type Stage struct {
	cfg    Config
	logger *log.Logger

	tweener  *Tweener
	input    *Input
	confetti *ConfettiBurst
	game     *Game
	hud      hud

	handle      *Sprite
	projectile  *Sprite
	resetButton *Sprite
	sprites     []*Sprite // draw order
	background  Color

	width, height int
	resize        Handle

	script     *ScriptRunner
	exitOnDone bool
}

// NewStage builds the sprites described by cfg.Layout and the Game around
// them. opts.Animator is replaced by the Stage's own Tweener; opts.Burst
// defaults to the confetti effect.
func NewStage(cfg Config, opts Options) (*Stage, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Rand == nil {
		opts.Rand = NewRand(cfg.Seed)
	}

	s := &Stage{
		cfg:     cfg,
		logger:  opts.Logger,
		tweener: NewTweener(),
		input:   NewInput(cfg.Drag.DeadZone),
		hud:     hud{showFPS: cfg.ShowFPS},
		width:   cfg.Width,
		height:  cfg.Height,
	}

	var err error
	if s.background, err = ParseHexColor(cfg.Layout.Background); err != nil {
		return nil, fmt.Errorf("layout background: %w", err)
	}
	if s.confetti, err = NewConfettiBurst(cfg.Burst, opts.Rand); err != nil {
		return nil, fmt.Errorf("burst colors: %w", err)
	}

	l := cfg.Layout
	build := func(name string, rc RectConfig) (*Sprite, error) {
		sp := NewSprite(name, rc.X, rc.Y, rc.Width, rc.Height)
		sp.Visible = !rc.Hidden
		if rc.Color != "" {
			c, err := ParseHexColor(rc.Color)
			if err != nil {
				return nil, fmt.Errorf("layout %s: %w", name, err)
			}
			sp.Color = c
		}
		return sp, nil
	}

	anchors := Anchors{}
	var targets []*Sprite
	for i, rc := range l.Targets {
		sp, err := build(fmt.Sprintf("target-%d", i), rc)
		if err != nil {
			return nil, err
		}
		anchors.Targets = append(anchors.Targets, sp)
		targets = append(targets, sp)
	}
	for i, rc := range l.Wanderers {
		sp, err := build(fmt.Sprintf("wanderer-%d", i), rc)
		if err != nil {
			return nil, err
		}
		anchors.Wanderers = append(anchors.Wanderers, sp)
		targets = append(targets, sp)
	}
	if s.projectile, err = build("projectile", l.Projectile); err != nil {
		return nil, err
	}
	if s.handle, err = build("handle", l.Handle); err != nil {
		return nil, err
	}
	if s.resetButton, err = build("reset", l.ResetButton); err != nil {
		return nil, err
	}
	anchors.Projectile = s.projectile
	anchors.Handle = s.handle

	opts.Animator = s.tweener
	if opts.Burst == nil {
		opts.Burst = s.confetti
	}
	s.game, err = NewGame(cfg, s.bounds(), anchors, opts)
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}

	s.wire()

	s.sprites = append(s.sprites, targets...)
	s.sprites = append(s.sprites, s.game.Line(), s.projectile, s.handle, s.resetButton)
	s.input.SetSprites(s.sprites)
	return s, nil
}

// wire routes pointer events to the game.
func (s *Stage) wire() {
	s.handle.Interactable = true
	s.handle.OnPointerDown = func(ctx PointerContext) {
		s.game.Press(Vec2{ctx.GlobalX, ctx.GlobalY})
	}
	s.handle.OnDrag = func(ctx DragContext) {
		s.game.Move(Vec2{ctx.GlobalX, ctx.GlobalY})
	}
	s.handle.OnPointerUp = func(PointerContext) {
		s.game.Release()
	}

	s.resetButton.Interactable = true
	s.resetButton.OnClick = func(PointerContext) {
		s.game.Reset()
	}
}

// Game returns the hosted game.
func (s *Stage) Game() *Game { return s.game }

// Input returns the pointer state machine, for injecting synthetic input.
func (s *Stage) Input() *Input { return s.input }

// Confetti returns the built-in burst effect.
func (s *Stage) Confetti() *ConfettiBurst { return s.confetti }

// SetScript attaches an input script. When exitOnDone is set, Update ends
// the run once the script has finished and every motion has settled.
func (s *Stage) SetScript(r *ScriptRunner, exitOnDone bool) {
	s.script = r
	s.exitOnDone = exitOnDone
}

// Update implements ebiten.Game.
func (s *Stage) Update() error {
	s.tick(float32(1.0 / float64(ebiten.TPS())))
	if s.exitOnDone && s.script != nil && s.script.Done() && !s.game.Flying() {
		s.logger.Info("script finished", "status", s.game.Status(), "score", s.game.Score(),
			"hits", s.game.HitCount(), "total", s.game.TotalTargets())
		return ebiten.Termination
	}
	return nil
}

// tick advances one frame by dt seconds: scripted input, pointer input,
// motions, then effects.
func (s *Stage) tick(dt float32) {
	if s.script != nil {
		s.script.step(s)
	}
	s.input.Update()
	s.tweener.Update(dt)
	s.confetti.Update(float64(dt))
	s.hud.update(float64(dt))
}

// Draw implements ebiten.Game.
func (s *Stage) Draw(screen *ebiten.Image) {
	screen.Fill(colorRGBA(s.background))
	for _, sp := range s.sprites {
		drawSprite(screen, sp)
	}
	drawLabel(screen, s.resetButton, "reset")
	drawConfetti(screen, s.confetti)
	s.hud.draw(screen, s.game)
}

// Layout implements ebiten.Game. The logical screen tracks the window; a
// size change reaches the Game after the resize debounce.
func (s *Stage) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != s.width || outsideHeight != s.height {
		s.width, s.height = outsideWidth, outsideHeight
		s.scheduleResize()
	}
	return s.width, s.height
}

// scheduleResize restarts the debounce timer. Bursts of resizes collapse into
// one Game.Resize with the latest size.
func (s *Stage) scheduleResize() {
	s.tweener.Cancel(s.resize)
	s.resize = 0
	if s.cfg.ResizeDebounce <= 0 {
		s.game.Resize(s.bounds())
		return
	}
	s.resize = s.tweener.Play(NewDelay(float32(s.cfg.ResizeDebounce)), func() {
		s.resize = 0
		s.game.Resize(s.bounds())
	})
}

func (s *Stage) bounds() Rect {
	return Rect{Width: float64(s.width), Height: float64(s.height)}
}
