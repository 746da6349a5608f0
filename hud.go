package slingshot

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// hud renders the status line and, optionally, FPS and TPS. The rates are
// sampled every ~0.5 seconds.
type hud struct {
	showFPS bool
	since   float64
	fps     float64
	tps     float64
}

func (h *hud) update(dt float64) {
	if !h.showFPS {
		return
	}
	h.since += dt
	if h.since < 0.5 {
		return
	}
	h.since = 0
	h.fps = ebiten.ActualFPS()
	h.tps = ebiten.ActualTPS()
}

// text returns the HUD contents for g.
func (h *hud) text(g *Game) string {
	s := fmt.Sprintf("status: %s  time: %s  hits: %d/%d",
		g.Status(), g.Score(), g.HitCount(), g.TotalTargets())
	if h.showFPS {
		s += fmt.Sprintf("\nFPS: %.1f  TPS: %.1f", h.fps, h.tps)
	}
	return s
}

func (h *hud) draw(dst *ebiten.Image, g *Game) {
	ebitenutil.DebugPrintAt(dst, h.text(g), 8, 8)
}

// drawLabel prints label centered-left inside s with a readable backing.
func drawLabel(dst *ebiten.Image, s *Sprite, label string) {
	if !s.Visible || label == "" {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(len(label)*6+8), 20)
	op.GeoM.Translate(s.X+4, s.Y+s.Height/2-10)
	op.ColorScale.ScaleWithColor(color.RGBA{A: 64})
	dst.DrawImage(ensureWhitePixel(), &op)
	ebitenutil.DebugPrintAt(dst, label, int(s.X)+8, int(s.Y+s.Height/2)-8)
}
