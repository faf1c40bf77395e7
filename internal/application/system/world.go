package system

import (
	"math/rand"

	"github.com/younwookim/flappy/internal/domain/entity"
	"github.com/younwookim/flappy/internal/infrastructure/config"
)

// Outcome is the result of one simulation step
type Outcome int

const (
	Alive Outcome = iota
	Crashed
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case Alive:
		return "Alive"
	case Crashed:
		return "Crashed"
	default:
		return "Unknown"
	}
}

// World is the play simulation: the bird, the tube pool, the ground strips
// and the camera following the bird. It never touches the renderer.
type World struct {
	Bird   *entity.Bird
	Tubes  *entity.TubePool
	Ground *entity.Ground
	Camera entity.Camera

	lead         float64
	minDeltaTime float64
	frames       int
}

// BirdConfig converts the loaded tuning into the bird's parameters.
func BirdConfig(cfg *config.GameConfig) entity.BirdConfig {
	sprite := cfg.Entities.Bird.Sprite
	phys := cfg.Physics.Physics
	return entity.BirdConfig{
		Gravity:      phys.Gravity,
		ForwardSpeed: phys.ForwardSpeed,
		JumpVelocity: phys.JumpVelocity,
		MinDeltaTime: phys.MinDeltaTime,
		FrameWidth:   float64(sprite.FrameWidth()),
		FrameHeight:  float64(sprite.SheetHeight),
		FrameCount:   sprite.FrameCount,
		CycleTime:    sprite.CycleTime,
	}
}

// TubeConfig converts the loaded tuning into the tube parameters.
func TubeConfig(cfg *config.GameConfig) entity.TubeConfig {
	t := cfg.Entities.Tube
	return entity.TubeConfig{
		Width:         t.Width,
		TopHeight:     t.TopHeight,
		BottomHeight:  t.BottomHeight,
		Fluctuation:   t.Fluctuation,
		Gap:           t.Gap,
		LowestOpening: t.LowestOpening,
		Spacing:       t.Spacing,
		Count:         t.Count,
	}
}

// NewWorld builds a fresh world: the bird at its spawn point, the camera
// at the origin view, the ground under it and the tubes at their initial
// spacing. Tube openings are drawn from rng.
func NewWorld(cfg *config.GameConfig, rng *rand.Rand) *World {
	display := cfg.Physics.Display
	camera := entity.NewCamera(float64(display.ViewportWidth), float64(display.ViewportHeight))

	spawn := cfg.Entities.Bird.Spawn
	groundSize := cfg.Entities.Ground

	return &World{
		Bird:         entity.NewBird(spawn.X, spawn.Y, BirdConfig(cfg)),
		Tubes:        entity.NewTubePool(TubeConfig(cfg), rng),
		Ground:       entity.NewGround(camera.Left(), cfg.Physics.Ground.YOffset, groundSize.Width, groundSize.Height),
		Camera:       camera,
		lead:         cfg.Physics.Camera.Lead,
		minDeltaTime: cfg.Physics.Physics.MinDeltaTime,
	}
}

// Step advances the world by one frame:
//  1. jump on primary input
//  2. move ground strips the camera has passed
//  3. bird physics
//  4. camera follows the bird
//  5. recycle tubes the camera has passed
//  6. collision with tubes or ground
//
// A frame with dt at or below the minimum is skipped entirely.
func (w *World) Step(dt float64, input InputState) Outcome {
	if dt <= w.minDeltaTime {
		return Alive
	}
	w.frames++

	if input.Primary {
		w.Bird.Jump()
	}

	w.Ground.Update(w.Camera.Left())
	w.Bird.Update(dt)
	w.Camera.X = w.Bird.Position.X + w.lead
	w.Tubes.Recycle(w.Camera.Left())

	if w.Tubes.Collides(w.Bird.Hitbox) {
		return Crashed
	}
	if w.Bird.Position.Y <= w.Ground.TopY() {
		return Crashed
	}
	return Alive
}

// Frames returns the number of simulated (non-skipped) frames.
func (w *World) Frames() int { return w.frames }
