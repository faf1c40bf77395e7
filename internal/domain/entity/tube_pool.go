package entity

import "math/rand"

// TubePool is a fixed arena of tube pairs. Pairs that scroll out of view
// are moved in front of the others instead of being reallocated.
type TubePool struct {
	slots []Tube
	cfg   TubeConfig
}

// NewTubePool creates cfg.Count pairs, the i-th (1-based) at i*stride.
func NewTubePool(cfg TubeConfig, rng *rand.Rand) *TubePool {
	p := &TubePool{
		slots: make([]Tube, cfg.Count),
		cfg:   cfg,
	}
	for i := range p.slots {
		p.slots[i] = *NewTube(float64(i+1)*cfg.Stride(), cfg, rng)
	}
	return p
}

// Len returns the number of slots.
func (p *TubePool) Len() int { return len(p.slots) }

// At returns the pair in slot i.
func (p *TubePool) At(i int) *Tube { return &p.slots[i] }

// MaxX returns the x of the pair furthest to the right.
func (p *TubePool) MaxX() float64 {
	maxX := p.slots[0].X()
	for i := 1; i < len(p.slots); i++ {
		if x := p.slots[i].X(); x > maxX {
			maxX = x
		}
	}
	return maxX
}

// Recycle moves every pair whose right edge is left of cameraLeft to one
// stride past the current rightmost pair, with a fresh opening. It returns
// the recycled slot indexes in order.
func (p *TubePool) Recycle(cameraLeft float64) []int {
	var recycled []int
	for i := range p.slots {
		t := &p.slots[i]
		if cameraLeft > t.Right() {
			t.Reposition(p.MaxX() + p.cfg.Stride())
			recycled = append(recycled, i)
		}
	}
	return recycled
}

// Collides reports whether box overlaps any pair in the pool.
func (p *TubePool) Collides(box Rect) bool {
	for i := range p.slots {
		if p.slots[i].Collides(box) {
			return true
		}
	}
	return false
}
