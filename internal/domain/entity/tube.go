package entity

import "math/rand"

// TubeConfig holds the fixed dimensions of a tube pair.
type TubeConfig struct {
	Width         float64
	TopHeight     float64
	BottomHeight  float64
	Fluctuation   int     // the opening varies over [0, Fluctuation)
	Gap           float64 // height of the opening
	LowestOpening float64
	Spacing       float64 // horizontal space between neighbouring pairs
	Count         int
}

// Stride is the distance between the left edges of neighbouring pairs.
func (c TubeConfig) Stride() float64 {
	return c.Width + c.Spacing
}

// Tube is a top and bottom pipe sharing an x position with an opening
// between them.
type Tube struct {
	TopPos Vec2
	BotPos Vec2

	top Rect
	bot Rect
	cfg TubeConfig
	rng *rand.Rand
}

// NewTube creates a tube pair at x with a random opening drawn from rng.
func NewTube(x float64, cfg TubeConfig, rng *rand.Rand) *Tube {
	t := &Tube{
		cfg: cfg,
		rng: rng,
		top: Rect{Width: cfg.Width, Height: cfg.TopHeight},
		bot: Rect{Width: cfg.Width, Height: cfg.BottomHeight},
	}
	t.Reposition(x)
	return t
}

// Reposition moves the pair to x and draws a new opening.
func (t *Tube) Reposition(x float64) {
	topY := float64(t.rng.Intn(t.cfg.Fluctuation)) + t.cfg.Gap + t.cfg.LowestOpening
	t.TopPos = Vec2{X: x, Y: topY}
	t.BotPos = Vec2{X: x, Y: topY - t.cfg.Gap - t.cfg.BottomHeight}
	t.top.SetPosition(t.TopPos.X, t.TopPos.Y)
	t.bot.SetPosition(t.BotPos.X, t.BotPos.Y)
}

// X returns the shared left edge of both pipes.
func (t *Tube) X() float64 { return t.TopPos.X }

// Right returns the shared right edge of both pipes.
func (t *Tube) Right() float64 { return t.TopPos.X + t.cfg.Width }

// TopBox returns the hitbox of the upper pipe.
func (t *Tube) TopBox() Rect { return t.top }

// BottomBox returns the hitbox of the lower pipe.
func (t *Tube) BottomBox() Rect { return t.bot }

// Collides reports whether box overlaps either pipe.
func (t *Tube) Collides(box Rect) bool {
	return box.Overlaps(t.bot) || box.Overlaps(t.top)
}
