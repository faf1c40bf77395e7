// Package paused provides the overlay shown while a play session is on hold.
package paused

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/younwookim/flappy/internal/application/scene"
	"github.com/younwookim/flappy/internal/application/state"
)

const label = "PAUSED - tap to resume"

// Paused sits on top of the covered scene and freezes it.
type Paused struct {
	env     *scene.Env
	covered scene.Scene
	tint    color.RGBA
}

// New creates a pause overlay drawn over covered. covered is only drawn,
// never updated or disposed, by the overlay.
func New(covered scene.Scene, env *scene.Env) *Paused {
	tint := colornames.Black
	tint.A = 128
	return &Paused{env: env, covered: covered, tint: tint}
}

// Update pops the overlay on primary or pause input.
func (p *Paused) Update(_ float64) (scene.Transition, error) {
	in := p.env.Input.Poll()
	if in.Primary || in.Pause {
		return scene.PopSelf(), nil
	}
	return scene.Stay, nil
}

// Draw renders the frozen scene and the dimming overlay.
func (p *Paused) Draw(screen *ebiten.Image) {
	if p.covered != nil {
		p.covered.Draw(screen)
	}
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), p.tint, false)
	ebitenutil.DebugPrintAt(screen, label, b.Dx()/2-len(label)*3, b.Dy()/2)
}

func (p *Paused) OnEnter() {
	log.Debug("scene entered", "scene", p.State())
}

func (p *Paused) Dispose() {
	log.Debug("scene disposed", "scene", p.State())
}

func (p *Paused) State() state.GameState { return state.StatePaused }

// Covered returns the scene beneath the overlay.
func (p *Paused) Covered() scene.Scene { return p.covered }
