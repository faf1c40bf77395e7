package entity

// BirdConfig holds the tuning a Bird is built from.
type BirdConfig struct {
	Gravity      float64 // added to velocity.y per update, negative pulls down
	ForwardSpeed float64 // horizontal units per second
	JumpVelocity float64
	MinDeltaTime float64 // updates with dt at or below this are ignored
	FrameWidth   float64
	FrameHeight  float64
	FrameCount   int
	CycleTime    float64
}

// Bird is the player controlled actor.
type Bird struct {
	Position Vec2
	Velocity Vec2
	Hitbox   Rect

	cfg  BirdConfig
	anim *Animation

	// OnFlap is called on every jump, e.g. to play the wing sound.
	OnFlap func()
}

// NewBird creates a bird at (x, y) with zero velocity.
func NewBird(x, y float64, cfg BirdConfig) *Bird {
	return &Bird{
		Position: Vec2{X: x, Y: y},
		Hitbox:   Rect{X: x, Y: y, Width: cfg.FrameWidth, Height: cfg.FrameHeight},
		cfg:      cfg,
		anim:     NewAnimation(cfg.FrameCount, cfg.CycleTime),
	}
}

// Update advances the bird by dt seconds. It reports false and changes
// nothing when dt is too small to divide by.
//
// Gravity is applied twice while airborne and once on the ground, and the
// velocity is scaled by dt before integration and unscaled afterwards.
// Both are kept as-is; the game is tuned around them.
func (b *Bird) Update(dt float64) bool {
	if dt <= b.cfg.MinDeltaTime {
		return false
	}

	b.anim.Update(dt)

	if b.Position.Y > 0 {
		b.Velocity.Y += b.cfg.Gravity
	}
	b.Velocity.Y += b.cfg.Gravity
	b.Velocity = b.Velocity.Scale(dt)

	b.Position.X += b.cfg.ForwardSpeed * dt
	b.Position.Y += b.Velocity.Y

	if b.Position.Y < 0 {
		b.Position.Y = 0
	}

	b.Velocity = b.Velocity.Scale(1 / dt)
	b.Hitbox.SetPosition(b.Position.X, b.Position.Y)
	return true
}

// Jump sets the vertical velocity to the jump velocity, whatever it was.
func (b *Bird) Jump() {
	b.Velocity.Y = b.cfg.JumpVelocity
	if b.OnFlap != nil {
		b.OnFlap()
	}
}

// Frame returns the animation frame to draw.
func (b *Bird) Frame() int { return b.anim.Frame() }

// Animation exposes the wing animation state.
func (b *Bird) Animation() *Animation { return b.anim }
