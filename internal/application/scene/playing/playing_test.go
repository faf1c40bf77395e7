package playing

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/flappy/internal/application/scene"
	"github.com/younwookim/flappy/internal/application/scene/paused"
	"github.com/younwookim/flappy/internal/application/state"
	"github.com/younwookim/flappy/internal/application/system"
	"github.com/younwookim/flappy/internal/infrastructure/assets"
	"github.com/younwookim/flappy/internal/infrastructure/config"
)

const (
	configDir = "../../../../cmd/game/configs"
	assetDir  = "../../../../cmd/game/assets"
	dt        = 1.0 / 60
)

func loadConfig(t *testing.T) *config.GameConfig {
	t.Helper()
	cfg, err := config.NewLoader(configDir).LoadAll()
	require.NoError(t, err)
	return cfg
}

func newHeadlessEnv(t *testing.T, states ...system.InputState) *scene.Env {
	t.Helper()
	return scene.NewEnv(config.NewStore(loadConfig(t)), nil, &system.ScriptedInput{States: states}, 42)
}

func TestNew_Headless(t *testing.T) {
	env := newHeadlessEnv(t)

	p, err := New(env)
	require.NoError(t, err)

	assert.Equal(t, state.StatePlaying, p.State())
	assert.Equal(t, 1, env.Stats.Runs)
	assert.Equal(t, 50.0, p.World().Bird.Position.X)
	assert.Equal(t, 300.0, p.World().Bird.Position.Y)
	assert.Equal(t, 120.0, p.World().Camera.X)
	assert.NotPanics(t, func() { p.Draw(nil) })
}

func TestUpdate_PrimaryJumps(t *testing.T) {
	env := newHeadlessEnv(t, system.InputState{Primary: true})
	p, err := New(env)
	require.NoError(t, err)

	tr, err := p.Update(dt)
	require.NoError(t, err)
	assert.Equal(t, scene.OpNone, tr.Op)

	// jump sets 500, then both gravity applications pull it down
	assert.InDelta(t, 470.0, p.World().Bird.Velocity.Y, 1e-9)
	assert.Equal(t, 1, env.Stats.Flaps)
}

func TestUpdate_PausePushesOverlay(t *testing.T) {
	env := newHeadlessEnv(t, system.InputState{Pause: true})
	p, err := New(env)
	require.NoError(t, err)

	tr, err := p.Update(dt)
	require.NoError(t, err)
	require.Equal(t, scene.OpPush, tr.Op)

	overlay, ok := tr.Next.(*paused.Paused)
	require.True(t, ok)
	assert.Same(t, p, overlay.Covered())
	assert.Equal(t, 0, p.World().Frames(), "world does not advance on the pause frame")
}

func TestUpdate_CrashRestartsSession(t *testing.T) {
	env := newHeadlessEnv(t)
	p, err := New(env)
	require.NoError(t, err)

	var tr scene.Transition
	frames := 0
	for ; frames < 120; frames++ {
		tr, err = p.Update(dt)
		require.NoError(t, err)
		if tr.Op != scene.OpNone {
			break
		}
	}

	require.Equal(t, scene.OpReplace, tr.Op)
	assert.Less(t, frames, 60, "an idle bird reaches the ground within a second")
	assert.Equal(t, 1, env.Stats.Crashes)
	assert.Equal(t, 2, env.Stats.Runs)

	next, ok := tr.Next.(*Playing)
	require.True(t, ok)
	assert.Equal(t, 50.0, next.World().Bird.Position.X)
	assert.Equal(t, 300.0, next.World().Bird.Position.Y)
	for i := 0; i < next.World().Tubes.Len(); i++ {
		assert.Equal(t, float64(i+1)*177, next.World().Tubes.At(i).X(), "slot %d back at its initial spacing", i)
	}
	assert.NotEqual(t, p.Seed(), next.Seed())
}

func TestUpdate_ZeroDeltaIsIgnored(t *testing.T) {
	env := newHeadlessEnv(t)
	p, err := New(env)
	require.NoError(t, err)

	tr, err := p.Update(0)
	require.NoError(t, err)
	assert.Equal(t, scene.OpNone, tr.Op)
	assert.Equal(t, 300.0, p.World().Bird.Position.Y)
	assert.Equal(t, 0, p.World().Frames())
}

func TestNew_SessionsAreReproducible(t *testing.T) {
	a, err := New(newHeadlessEnv(t))
	require.NoError(t, err)
	b, err := New(newHeadlessEnv(t))
	require.NoError(t, err)

	assert.Equal(t, a.Seed(), b.Seed())
	for i := 0; i < a.World().Tubes.Len(); i++ {
		assert.Equal(t, a.World().Tubes.At(i).TopPos, b.World().Tubes.At(i).TopPos)
	}
}

func TestNew_UsesSwappedTuning(t *testing.T) {
	env := newHeadlessEnv(t)

	tuned := *env.Store.Current()
	physics := *tuned.Physics
	physics.Physics.JumpVelocity = 300
	tuned.Physics = &physics
	env.Store.Swap(&tuned)

	env.Input = &system.ScriptedInput{States: []system.InputState{{Primary: true}}}
	p, err := New(env)
	require.NoError(t, err)

	_, err = p.Update(dt)
	require.NoError(t, err)
	assert.InDelta(t, 270.0, p.World().Bird.Velocity.Y, 1e-9)
}

func TestDispose_ReleasesAssets(t *testing.T) {
	cfg := loadConfig(t)
	lib := assets.NewLibrary(os.DirFS(assetDir), cfg.Assets, nil)
	env := scene.NewEnv(config.NewStore(cfg), lib, &system.ScriptedInput{
		States: []system.InputState{{Primary: true}},
	}, 7)

	p, err := New(env)
	require.NoError(t, err)
	assert.Equal(t, 6, lib.Live(), "five textures and the flap sound")

	_, err = p.Update(dt)
	require.NoError(t, err)
	assert.Equal(t, 1, p.flap.Plays())

	p.Dispose()
	p.Dispose()
	assert.Equal(t, 0, lib.Live())
}
