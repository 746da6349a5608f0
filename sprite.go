package slingshot

// PointerContext carries pointer event data.
type PointerContext struct {
	Sprite    *Sprite
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	PointerID int
}

// DragContext carries drag event data.
type DragContext struct {
	Sprite    *Sprite
	GlobalX   float64
	GlobalY   float64
	StartX    float64
	StartY    float64
	DeltaX    float64
	DeltaY    float64
	PointerID int
}

// Sprite is a rectangular game element positioned in container-local
// coordinates. Rotation and scale are applied about the sprite's center, so
// X/Y always describe the unrotated top-left corner.
//
// Sprites are written directly by the game (immediate property sets) and by
// tweens; nothing caches their geometry.
type Sprite struct {
	Name string

	X, Y          float64
	Width, Height float64
	ScaleX        float64
	ScaleY        float64
	Rotation      float64 // radians, clockwise on screen

	Alpha        float64
	Color        Color
	Visible      bool
	Interactable bool

	UserData any

	// Per-sprite callbacks (nil by default).
	OnPointerDown func(PointerContext)
	OnPointerUp   func(PointerContext)
	OnClick       func(PointerContext)
	OnDragStart   func(DragContext)
	OnDrag        func(DragContext)
	OnDragEnd     func(DragContext)
}

// NewSprite creates a visible, opaque, white sprite of the given size with its
// top-left corner at (x, y).
func NewSprite(name string, x, y, w, h float64) *Sprite {
	return &Sprite{
		Name:    name,
		X:       x,
		Y:       y,
		Width:   w,
		Height:  h,
		ScaleX:  1,
		ScaleY:  1,
		Alpha:   1,
		Color:   ColorWhite,
		Visible: true,
	}
}

// Position returns the sprite's unrotated top-left corner.
func (s *Sprite) Position() Vec2 { return Vec2{s.X, s.Y} }

// SetPosition moves the sprite's top-left corner to p.
func (s *Sprite) SetPosition(p Vec2) {
	s.X = p.X
	s.Y = p.Y
}

// Size returns the unscaled width and height.
func (s *Sprite) Size() Vec2 { return Vec2{s.Width, s.Height} }

// Center returns the sprite's center, which is also its rotation pivot.
func (s *Sprite) Center() Vec2 {
	return Vec2{s.X + s.Width/2, s.Y + s.Height/2}
}

// SetCenter moves the sprite so its center lies at c.
func (s *Sprite) SetCenter(c Vec2) {
	s.X = c.X - s.Width/2
	s.Y = c.Y - s.Height/2
}

// Bounds returns the live axis-aligned bounding box of the sprite after
// rotation and scale, recomputed on every call.
func (s *Sprite) Bounds() Rect {
	return transformedBounds(localTransform(s), s.Width, s.Height)
}

// HitTest reports whether the container-local point (x, y) lies inside the
// sprite's rotated rectangle.
func (s *Sprite) HitTest(x, y float64) bool {
	lx, ly := s.ContainerToLocal(x, y)
	return lx >= 0 && lx <= s.Width && ly >= 0 && ly <= s.Height
}

// Restore puts the sprite back to an untransformed, opaque, visible and
// interactive state without moving it.
func (s *Sprite) Restore() {
	s.ScaleX = 1
	s.ScaleY = 1
	s.Rotation = 0
	s.Alpha = 1
	s.Visible = true
	s.Interactable = true
}
