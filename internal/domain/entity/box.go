package entity

// Box is an axis-aligned rectangle in world units.
// X, Y is the top-left corner.
type Box struct {
	X, Y float64
	W, H float64
}

// NewBox creates a box with the given position and size
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Valid reports whether the box has positive width and height
func (b Box) Valid() bool {
	return b.W > 0 && b.H > 0
}

func (b Box) Left() float64   { return b.X }
func (b Box) Right() float64  { return b.X + b.W }
func (b Box) Top() float64    { return b.Y }
func (b Box) Bottom() float64 { return b.Y + b.H }

// Center returns the center point of the box
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// SetBottom moves the box vertically so its bottom edge is at y
func (b *Box) SetBottom(y float64) {
	b.Y = y - b.H
}

// SetRight moves the box horizontally so its right edge is at x
func (b *Box) SetRight(x float64) {
	b.X = x - b.W
}

// SetCenter moves the box so its center is at (x, y)
func (b *Box) SetCenter(x, y float64) {
	b.X = x - b.W/2
	b.Y = y - b.H/2
}

// Offset returns a copy of the box translated by (dx, dy)
func (b Box) Offset(dx, dy float64) Box {
	return Box{X: b.X + dx, Y: b.Y + dy, W: b.W, H: b.H}
}

// Intersects reports whether two boxes overlap with non-zero area.
// Boxes that only share an edge do not intersect.
func Intersects(a, b Box) bool {
	return a.Left() < b.Right() &&
		a.Right() > b.Left() &&
		a.Top() < b.Bottom() &&
		a.Bottom() > b.Top()
}

// Intersects reports whether b overlaps other
func (b Box) Intersects(other Box) bool {
	return Intersects(b, other)
}
