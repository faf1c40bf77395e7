// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/flappy/internal/application/scene"
	"github.com/younwookim/flappy/internal/application/scene/paused"
	"github.com/younwookim/flappy/internal/application/state"
	"github.com/younwookim/flappy/internal/application/system"
	"github.com/younwookim/flappy/internal/infrastructure/assets"
	"github.com/younwookim/flappy/internal/infrastructure/config"
	"github.com/younwookim/flappy/internal/infrastructure/render"
)

// textures owned by one play session
type textures struct {
	background *assets.Texture
	pipeTop    *assets.Texture
	pipeBottom *assets.Texture
	ground     *assets.Texture
	bird       *assets.Texture
}

func (t *textures) all() []*assets.Texture {
	return []*assets.Texture{t.background, t.pipeTop, t.pipeBottom, t.ground, t.bird}
}

// Playing is the main gameplay scene
type Playing struct {
	env   *scene.Env
	cfg   *config.GameConfig
	world *system.World
	seed  int64
	run   int

	tex        textures
	flap       *assets.Sound
	flapVolume float64
	scale      float64

	disposed bool
}

// New creates a fresh play session with the current tuning and the next
// seed from env. Textures and the flap sound are loaded unless env is
// headless.
func New(env *scene.Env) (*Playing, error) {
	cfg := env.Store.Current()
	seed := env.NextSeed()
	env.Stats.Runs++

	p := &Playing{
		env:        env,
		cfg:        cfg,
		world:      system.NewWorld(cfg, rand.New(rand.NewSource(seed))),
		seed:       seed,
		run:        env.Stats.Runs,
		flapVolume: cfg.Assets.FlapVolume,
		scale:      cfg.Physics.Display.Scale(),
	}
	p.world.Bird.OnFlap = p.onFlap

	if !env.Headless() {
		if err := p.load(env.Assets); err != nil {
			p.Dispose()
			return nil, err
		}
	}

	return p, nil
}

func (p *Playing) load(lib *assets.Library) error {
	slots := []struct {
		dst  **assets.Texture
		name string
	}{
		{&p.tex.background, config.ImageBackground},
		{&p.tex.pipeTop, config.ImagePipeTop},
		{&p.tex.pipeBottom, config.ImagePipeBottom},
		{&p.tex.ground, config.ImageGround},
		{&p.tex.bird, config.ImageBirdSheet},
	}
	for _, s := range slots {
		t, err := lib.Texture(s.name)
		if err != nil {
			return fmt.Errorf("failed to load play scene: %w", err)
		}
		*s.dst = t
	}

	flap, err := lib.Sound(config.SoundFlap)
	if err != nil {
		return fmt.Errorf("failed to load play scene: %w", err)
	}
	p.flap = flap
	return nil
}

func (p *Playing) onFlap() {
	p.env.Stats.Flaps++
	if p.flap != nil {
		p.flap.Play(p.flapVolume)
	}
}

// Update polls input once and advances the world (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Transition, error) {
	in := p.env.Input.Poll()
	if in.Pause {
		return scene.PushTo(paused.New(p, p.env)), nil
	}

	if p.world.Step(dt, in) == system.Crashed {
		p.env.Stats.Crashes++
		log.Info("bird crashed",
			"run", p.run,
			"frames", p.world.Frames(),
			"x", fmt.Sprintf("%.1f", p.world.Bird.Position.X))

		next, err := New(p.env)
		if err != nil {
			return scene.Stay, err
		}
		return scene.ReplaceWith(next), nil
	}

	return scene.Stay, nil
}

// Draw renders background, bird, tubes and ground in world space.
func (p *Playing) Draw(screen *ebiten.Image) {
	if p.env.Headless() || p.disposed {
		return
	}

	cam := p.world.Camera
	c := render.NewCanvas(screen, cam, p.scale)

	c.DrawImage(p.tex.background.Image(), cam.Left(), 0)

	bird := p.world.Bird
	frames := p.cfg.Entities.Bird.Sprite.FrameCount
	c.DrawImage(p.tex.bird.Frame(bird.Frame(), frames), bird.Position.X, bird.Position.Y)

	for i := 0; i < p.world.Tubes.Len(); i++ {
		tube := p.world.Tubes.At(i)
		c.DrawImage(p.tex.pipeTop.Image(), tube.TopPos.X, tube.TopPos.Y)
		c.DrawImage(p.tex.pipeBottom.Image(), tube.BotPos.X, tube.BotPos.Y)
	}

	for _, strip := range p.world.Ground.Strips {
		c.DrawImage(p.tex.ground.Image(), strip.X, strip.Y)
	}
}

func (p *Playing) OnEnter() {
	log.Debug("scene entered", "scene", p.State(), "run", p.run, "seed", p.seed)
}

// Dispose releases the textures and the flap sound.
func (p *Playing) Dispose() {
	if p.disposed {
		return
	}
	p.disposed = true

	for _, t := range p.tex.all() {
		if t != nil {
			t.Release()
		}
	}
	if p.flap != nil {
		p.flap.Release()
	}
	log.Info("scene disposed", "scene", p.State(), "run", p.run)
}

func (p *Playing) State() state.GameState { return state.StatePlaying }

// World exposes the simulation (for testing and replay verification).
func (p *Playing) World() *system.World { return p.world }

// Seed returns the seed the tube openings were drawn from.
func (p *Playing) Seed() int64 { return p.seed }
