package entity

// Camera is an orthographic view of Width x Height world units centred on
// (X, Y).
type Camera struct {
	X, Y          float64
	Width, Height float64
}

// NewCamera returns a camera whose bottom-left corner sits at the origin.
func NewCamera(width, height float64) Camera {
	return Camera{X: width / 2, Y: height / 2, Width: width, Height: height}
}

// Left returns the world x of the left edge of the view.
func (c Camera) Left() float64 { return c.X - c.Width/2 }

// Bottom returns the world y of the bottom edge of the view.
func (c Camera) Bottom() float64 { return c.Y - c.Height/2 }

// Top returns the world y of the top edge of the view.
func (c Camera) Top() float64 { return c.Y + c.Height/2 }
