package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"

	"github.com/younwookim/flappy/internal/application/scene"
	"github.com/younwookim/flappy/internal/infrastructure/config"
)

func newTestStore() *config.Store {
	return config.NewStore(&config.GameConfig{
		Physics: &config.PhysicsConfig{
			Display: config.DisplayConfig{
				ScreenWidth:    480,
				ScreenHeight:   800,
				ViewportWidth:  240,
				ViewportHeight: 400,
				Framerate:      60,
				ClearColor:     "red",
			},
		},
		Entities: &config.EntitiesConfig{},
		Assets:   &config.AssetsConfig{MusicVolume: 0.1},
	})
}

func TestNew(t *testing.T) {
	initial := newMock("menu", nil)
	g := New(initial, newTestStore(), Options{})

	assert.NotNil(t, g)
	assert.Equal(t, 1, initial.onEnterCalled, "OnEnter should be called on initial scene")
	assert.Equal(t, 1, g.Stack().Len())
	assert.InDelta(t, 1.0/60, g.DT(), 1e-12)
}

func TestGame_Update_DelegatesToCurrentScene(t *testing.T) {
	initial := newMock("menu", nil)
	g := New(initial, newTestStore(), Options{})

	err := g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, initial.updateCalled, "Update should delegate to current scene")
	assert.Equal(t, 1, g.Frames())
}

func TestGame_Draw_DelegatesToCurrentScene(t *testing.T) {
	initial := newMock("menu", nil)
	g := New(initial, newTestStore(), Options{})

	img := ebiten.NewImage(480, 800)
	g.Draw(img)

	assert.Equal(t, 1, initial.drawCalled, "Draw should delegate to current scene")
}

func TestGame_Layout(t *testing.T) {
	g := New(newMock("menu", nil), newTestStore(), Options{})

	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 480, w)
	assert.Equal(t, 800, h)
}

func TestGame_SceneTransition(t *testing.T) {
	scene1 := newMock("menu", nil)
	scene2 := newMock("play", nil)
	scene1.next = scene.ReplaceWith(scene2)

	g := New(scene1, newTestStore(), Options{})

	require.NoError(t, g.Update())
	assert.Equal(t, 1, scene1.updateCalled, "scene1 Update called")
	assert.Equal(t, 1, scene1.disposeCalled, "scene1 disposed on replace")
	assert.Equal(t, 1, scene2.onEnterCalled, "scene2 entered on replace")

	require.NoError(t, g.Update())
	assert.Equal(t, 1, scene2.updateCalled, "scene2 Update called")
}

func TestGame_UpdateError(t *testing.T) {
	initial := newMock("menu", nil)
	initial.updateErr = assert.AnError
	g := New(initial, newTestStore(), Options{})

	err := g.Update()
	assert.Error(t, err, "Error should propagate from scene")
}

func TestGame_DoneTerminates(t *testing.T) {
	initial := newMock("menu", nil)
	remaining := 3
	g := New(initial, newTestStore(), Options{
		Done: func() bool { return remaining == 0 },
	})

	for remaining > 0 {
		require.NoError(t, g.Update())
		remaining--
	}

	assert.ErrorIs(t, g.Update(), ebiten.Termination)
	assert.Equal(t, 3, initial.updateCalled)
}

func TestGame_AppliesReloads(t *testing.T) {
	store := newTestStore()
	reloads := make(chan *config.GameConfig, 1)
	g := New(newMock("menu", nil), store, Options{Reloads: reloads})

	tuned := *store.Current()
	physics := *tuned.Physics
	physics.Physics.Gravity = -20
	tuned.Physics = &physics
	reloads <- &tuned

	require.NoError(t, g.Update())
	assert.Equal(t, 2, store.Version())
	assert.Equal(t, -20.0, store.Current().Physics.Physics.Gravity)

	close(reloads)
	require.NoError(t, g.Update())
	assert.Equal(t, 2, store.Version())
}

func TestGame_Close(t *testing.T) {
	initial := newMock("menu", nil)
	g := New(initial, newTestStore(), Options{})

	g.Close()
	assert.Equal(t, 1, initial.disposeCalled)
	assert.Equal(t, 0, g.Stack().Len())
}

func TestClearColor(t *testing.T) {
	assert.Equal(t, colornames.Red, ClearColor("red"))
	assert.Equal(t, colornames.Skyblue, ClearColor("skyblue"))
	assert.Equal(t, colornames.Red, ClearColor("no-such-color"))
}
