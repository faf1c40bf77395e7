// Package entity holds the game objects of the flappy world: the bird,
// the tube pairs, the scrolling ground and the camera that follows them.
//
// All coordinates are world units with the origin at the bottom-left and
// y pointing up. Nothing in this package touches the renderer.
package entity

// Vec2 is a point or velocity in world units.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect is an axis-aligned box anchored at its bottom-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// SetPosition moves the box without resizing it.
func (r *Rect) SetPosition(x, y float64) {
	r.X = x
	r.Y = y
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y + r.Height }

// Overlaps reports whether the interiors of r and o intersect.
// Boxes that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.Width && r.X+r.Width > o.X &&
		r.Y < o.Y+o.Height && r.Y+r.Height > o.Y
}
