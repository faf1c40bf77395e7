package entity

// Ground is two strips of equal width tiled side by side. A strip that
// leaves the camera on the left jumps two widths forward, so the pair
// always covers the view.
type Ground struct {
	Strips [2]Vec2
	Width  float64
	Height float64
}

// NewGround places the strips at x and x+width, both at y.
func NewGround(x, y, width, height float64) *Ground {
	return &Ground{
		Strips: [2]Vec2{{X: x, Y: y}, {X: x + width, Y: y}},
		Width:  width,
		Height: height,
	}
}

// Update moves strips whose right edge is left of cameraLeft.
func (g *Ground) Update(cameraLeft float64) {
	for i := range g.Strips {
		if cameraLeft > g.Strips[i].X+g.Width {
			g.Strips[i].X += g.Width * 2
		}
	}
}

// TopY is the height at which the bird counts as having hit the ground.
func (g *Ground) TopY() float64 {
	return g.Height + g.Strips[0].Y
}
