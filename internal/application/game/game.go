// Package game provides the application shell: it owns the scene stack,
// the background music and the fixed time step, and implements ebiten.Game.
package game

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/younwookim/flappy/internal/application/scene"
	"github.com/younwookim/flappy/internal/infrastructure/assets"
	"github.com/younwookim/flappy/internal/infrastructure/config"
)

// Options configures optional parts of the shell.
type Options struct {
	// Music loops for the whole session. Nil plays nothing.
	Music *assets.Music
	// Reloads delivers new tuning. It is drained without blocking once
	// per frame.
	Reloads <-chan *config.GameConfig
	// Done ends the game loop with ebiten.Termination when it returns true.
	Done func() bool
}

// Game implements ebiten.Game and manages the scene stack.
type Game struct {
	stack   *Stack
	store   *config.Store
	music   *assets.Music
	reloads <-chan *config.GameConfig
	done    func() bool

	screenW int
	screenH int
	clear   color.Color
	dt      float64
	frames  int
}

// New creates a Game with initial pushed onto an empty stack and starts
// the music.
func New(initial scene.Scene, store *config.Store, opts Options) *Game {
	display := store.Current().Physics.Display

	g := &Game{
		stack:   NewStack(),
		store:   store,
		music:   opts.Music,
		reloads: opts.Reloads,
		done:    opts.Done,
		screenW: display.ScreenWidth,
		screenH: display.ScreenHeight,
		clear:   ClearColor(display.ClearColor),
		dt:      1.0 / float64(display.Framerate),
	}

	if g.music != nil {
		g.music.SetVolume(store.Current().Assets.MusicVolume)
		g.music.Play()
	}
	g.stack.Push(initial)
	return g
}

// ClearColor resolves a colornames key, falling back to red.
func ClearColor(name string) color.Color {
	if c, ok := colornames.Map[name]; ok {
		return c
	}
	return colornames.Red
}

// Update applies pending tuning and updates the top scene.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.applyReloads()

	if g.done != nil && g.done() {
		log.Info("game finished", "frames", g.frames)
		return ebiten.Termination
	}

	g.frames++
	return g.stack.Update(g.dt)
}

func (g *Game) applyReloads() {
	if g.reloads == nil {
		return
	}
	for {
		select {
		case cfg, ok := <-g.reloads:
			if !ok {
				g.reloads = nil
				return
			}
			g.store.Swap(cfg)
			log.Info("tuning applied", "version", g.store.Version())
		default:
			return
		}
	}
}

// Draw clears the screen and renders the top scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.clear)
	g.stack.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.screenW, g.screenH
}

// Close disposes every scene and stops the music.
func (g *Game) Close() {
	g.stack.Clear()
	if g.music != nil {
		g.music.Release()
		g.music = nil
	}
}

// Stack exposes the scene stack.
func (g *Game) Stack() *Stack { return g.stack }

// Frames returns the number of updates run.
func (g *Game) Frames() int { return g.frames }

// DT returns the fixed time step in seconds.
func (g *Game) DT() float64 { return g.dt }
