package slingshot

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// localTransform computes the sprite's affine matrix from sprite-local space
// (origin at the unrotated top-left, extent Width x Height) to container
// space. Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-W/2, -H/2) -> Scale -> Rotate -> Translate(center)
func localTransform(s *Sprite) [6]float64 {
	sin, cos := math.Sincos(s.Rotation)

	px := s.Width / 2
	py := s.Height / 2

	// After Scale * Translate(-pivot):
	//   a=sx, b=0, c=0, d=sy, tx=-px*sx, ty=-py*sy
	a := s.ScaleX
	d := s.ScaleY
	preTx := -px * a
	preTy := -py * d

	// After Rotate:
	ra := cos * a
	rb := sin * a
	rc := -sin * d
	rd := cos * d
	rtx := cos*preTx - sin*preTy
	rty := sin*preTx + cos*preTy

	c := s.Center()
	return [6]float64{ra, rb, rc, rd, rtx + c.X, rty + c.Y}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// transformedBounds returns the AABB of the w x h local box under m.
func transformedBounds(m [6]float64, w, h float64) Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range [4][2]float64{{0, 0}, {w, 0}, {w, h}, {0, h}} {
		x, y := transformPoint(m, p[0], p[1])
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// ContainerToLocal converts a container-space point to this sprite's local
// coordinate space.
func (s *Sprite) ContainerToLocal(x, y float64) (lx, ly float64) {
	return transformPoint(invertAffine(localTransform(s)), x, y)
}

// LocalToContainer converts a sprite-local point to container space.
func (s *Sprite) LocalToContainer(lx, ly float64) (x, y float64) {
	return transformPoint(localTransform(s), lx, ly)
}
