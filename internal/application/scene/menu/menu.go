// Package menu provides the title screen: background and a play button.
// Any primary input starts a play session.
package menu

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/flappy/internal/application/scene"
	"github.com/younwookim/flappy/internal/application/scene/playing"
	"github.com/younwookim/flappy/internal/application/state"
	"github.com/younwookim/flappy/internal/domain/entity"
	"github.com/younwookim/flappy/internal/infrastructure/assets"
	"github.com/younwookim/flappy/internal/infrastructure/config"
	"github.com/younwookim/flappy/internal/infrastructure/render"
)

// Menu is the title scene
type Menu struct {
	env    *scene.Env
	camera entity.Camera
	scale  float64
	button config.SizeConfig

	background *assets.Texture
	playButton *assets.Texture
	disposed   bool
}

// New creates the menu. The camera is centred on the viewport.
func New(env *scene.Env) (*Menu, error) {
	cfg := env.Store.Current()
	display := cfg.Physics.Display

	m := &Menu{
		env:    env,
		camera: entity.NewCamera(float64(display.ViewportWidth), float64(display.ViewportHeight)),
		scale:  display.Scale(),
		button: cfg.Entities.Button,
	}

	if !env.Headless() {
		var err error
		if m.background, err = env.Assets.Texture(config.ImageBackground); err != nil {
			return nil, fmt.Errorf("failed to load menu: %w", err)
		}
		if m.playButton, err = env.Assets.Texture(config.ImagePlayButton); err != nil {
			m.background.Release()
			return nil, fmt.Errorf("failed to load menu: %w", err)
		}
	}

	return m, nil
}

// Update starts a play session on primary input.
func (m *Menu) Update(_ float64) (scene.Transition, error) {
	if !m.env.Input.Poll().Primary {
		return scene.Stay, nil
	}

	next, err := playing.New(m.env)
	if err != nil {
		return scene.Stay, err
	}
	return scene.ReplaceWith(next), nil
}

// Draw renders the background at the origin and the button centred
// horizontally on the camera.
func (m *Menu) Draw(screen *ebiten.Image) {
	if m.env.Headless() || m.disposed {
		return
	}

	c := render.NewCanvas(screen, m.camera, m.scale)
	c.DrawImage(m.background.Image(), 0, 0)
	x, y := m.ButtonPosition()
	c.DrawImage(m.playButton.Image(), x, y)
}

// ButtonPosition returns the world position of the play button's
// bottom-left corner.
func (m *Menu) ButtonPosition() (x, y float64) {
	return m.camera.X - m.button.Width/2, m.camera.Y
}

func (m *Menu) OnEnter() {
	log.Debug("scene entered", "scene", m.State())
}

// Dispose releases the menu textures.
func (m *Menu) Dispose() {
	if m.disposed {
		return
	}
	m.disposed = true

	if m.background != nil {
		m.background.Release()
	}
	if m.playButton != nil {
		m.playButton.Release()
	}
	log.Info("scene disposed", "scene", m.State())
}

func (m *Menu) State() state.GameState { return state.StateMenu }
