package slingshot

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- White pixel singleton (single-threaded, drawn from ebiten's Draw) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// Every sprite is this pixel stretched to size and tinted.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// spriteGeoM converts a sprite's local transform into an ebiten.GeoM that
// maps the unit pixel onto the sprite's rectangle.
func spriteGeoM(s *Sprite) ebiten.GeoM {
	t := localTransform(s)
	var m ebiten.GeoM
	m.SetElement(0, 0, t[0])
	m.SetElement(1, 0, t[1])
	m.SetElement(0, 1, t[2])
	m.SetElement(1, 1, t[3])
	m.SetElement(0, 2, t[4])
	m.SetElement(1, 2, t[5])

	var unit ebiten.GeoM
	unit.Scale(s.Width, s.Height)
	unit.Concat(m)
	return unit
}

// tint applies a non-premultiplied color and alpha to op as premultiplied
// color scale.
func tint(op *ebiten.DrawImageOptions, c Color, alpha float64) {
	a := float32(c.A * alpha)
	op.ColorScale.Reset()
	op.ColorScale.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
}

// colorRGBA converts c to an 8-bit, non-premultiplied color.
func colorRGBA(c Color) color.NRGBA {
	return color.NRGBA{
		R: uint8(Clamp(c.R, 0, 1) * 255),
		G: uint8(Clamp(c.G, 0, 1) * 255),
		B: uint8(Clamp(c.B, 0, 1) * 255),
		A: uint8(Clamp(c.A, 0, 1) * 255),
	}
}

// drawSprite draws s onto dst. Invisible, transparent or empty sprites are
// skipped.
func drawSprite(dst *ebiten.Image, s *Sprite) {
	if !s.Visible || s.Alpha <= 0 || s.Width <= 0 || s.Height <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM = spriteGeoM(s)
	tint(&op, s.Color, s.Alpha)
	dst.DrawImage(ensureWhitePixel(), &op)
}

// drawConfetti draws every live dot of b as a square centered on its
// position.
func drawConfetti(dst *ebiten.Image, b *ConfettiBurst) {
	px := ensureWhitePixel()
	var op ebiten.DrawImageOptions
	b.Each(func(x, y, size float64, c Color) {
		if size <= 0 || c.A <= 0 {
			return
		}
		op.GeoM.Reset()
		op.GeoM.Scale(size, size)
		op.GeoM.Translate(x-size/2, y-size/2)
		tint(&op, c, 1)
		dst.DrawImage(px, &op)
	})
}
