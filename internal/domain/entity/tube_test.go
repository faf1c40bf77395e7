package entity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTubeConfig() TubeConfig {
	return TubeConfig{
		Width:         52,
		TopHeight:     320,
		BottomHeight:  320,
		Fluctuation:   140,
		Gap:           150,
		LowestOpening: 80,
		Spacing:       125,
		Count:         4,
	}
}

func TestNewTube_FollowsGapFormula(t *testing.T) {
	cfg := testTubeConfig()
	tube := NewTube(200, cfg, rand.New(rand.NewSource(7)))

	first := rand.New(rand.NewSource(7)).Intn(cfg.Fluctuation)
	wantTop := float64(first) + 150 + 80
	wantBot := wantTop - 150 - 320

	assert.Equal(t, Vec2{X: 200, Y: wantTop}, tube.TopPos)
	assert.Equal(t, Vec2{X: 200, Y: wantBot}, tube.BotPos)
	assert.Equal(t, Rect{X: 200, Y: wantTop, Width: 52, Height: 320}, tube.TopBox())
	assert.Equal(t, Rect{X: 200, Y: wantBot, Width: 52, Height: 320}, tube.BottomBox())
	assert.Equal(t, 200.0, tube.X())
	assert.Equal(t, 252.0, tube.Right())
}

func TestTube_OpeningStaysInRange(t *testing.T) {
	cfg := testTubeConfig()
	tube := NewTube(0, cfg, rand.New(rand.NewSource(1)))

	for i := 0; i < 500; i++ {
		tube.Reposition(float64(i))
		require.GreaterOrEqual(t, tube.TopPos.Y, 230.0)
		require.Less(t, tube.TopPos.Y, 370.0)
		// the opening between the pipes is always exactly the gap
		require.Equal(t, cfg.Gap, tube.TopBox().Y-tube.BottomBox().Top())
		require.Equal(t, tube.TopPos.X, tube.BotPos.X)
	}
}

func TestTube_SeededSequenceIsDeterministic(t *testing.T) {
	cfg := testTubeConfig()
	run := func() []float64 {
		tube := NewTube(0, cfg, rand.New(rand.NewSource(99)))
		ys := []float64{tube.TopPos.Y}
		for i := 1; i < 20; i++ {
			tube.Reposition(float64(i) * cfg.Stride())
			ys = append(ys, tube.TopPos.Y)
		}
		return ys
	}

	assert.Equal(t, run(), run())
}

func TestTube_Collides(t *testing.T) {
	cfg := testTubeConfig()
	tube := NewTube(200, cfg, rand.New(rand.NewSource(3)))
	top := tube.TopBox()
	bot := tube.BottomBox()
	size := func(x, y float64) Rect { return Rect{X: x, Y: y, Width: 34, Height: 24} }

	tests := []struct {
		name string
		box  Rect
		want bool
	}{
		{"inside the opening", size(210, bot.Top()+10), false},
		{"hits top pipe", size(210, top.Y-10), true},
		{"hits bottom pipe", size(210, bot.Top()-10), true},
		{"touches bottom pipe edge", size(210, bot.Top()), false},
		{"touches top pipe edge", size(210, top.Y-24), false},
		{"left of pipes", size(100, top.Y), false},
		{"touches left edge", size(200-34, top.Y), false},
		{"clips left edge", size(200-33, top.Y), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tube.Collides(tt.box))
		})
	}
}

func TestNewTubePool_InitialSpacing(t *testing.T) {
	cfg := testTubeConfig()
	pool := NewTubePool(cfg, rand.New(rand.NewSource(1)))

	require.Equal(t, 4, pool.Len())
	for i := 0; i < pool.Len(); i++ {
		assert.Equal(t, float64(i+1)*177, pool.At(i).X())
	}
	assert.Equal(t, 708.0, pool.MaxX())
}

func TestTubePool_RecycleMovesPassedPairToFront(t *testing.T) {
	cfg := testTubeConfig()
	pool := NewTubePool(cfg, rand.New(rand.NewSource(1)))

	// camera left edge still on the first pair
	assert.Empty(t, pool.Recycle(177+52))

	prevMax := pool.MaxX()
	recycled := pool.Recycle(177 + 52 + 1)
	require.Equal(t, []int{0}, recycled)
	assert.Equal(t, prevMax+cfg.Stride(), pool.At(0).X())
	assert.Equal(t, 885.0, pool.At(0).X())

	// the same pair is not recycled again until the camera passes it again
	assert.Empty(t, pool.Recycle(177+52+1))
}

func TestTubePool_RecycleKeepsFixedSpacing(t *testing.T) {
	cfg := testTubeConfig()
	pool := NewTubePool(cfg, rand.New(rand.NewSource(5)))

	for cameraLeft := 0.0; cameraLeft < 5000; cameraLeft += 1.5 {
		prevMax := pool.MaxX()
		for _, slot := range pool.Recycle(cameraLeft) {
			require.Equal(t, prevMax+cfg.Stride(), pool.At(slot).X())
			prevMax = pool.At(slot).X()
		}

		// every pair is still ahead of or within the view
		for i := 0; i < pool.Len(); i++ {
			require.GreaterOrEqual(t, pool.At(i).Right(), cameraLeft)
		}
	}
	assert.Greater(t, pool.MaxX(), 5000.0)
}

func TestTubePool_Collides(t *testing.T) {
	cfg := testTubeConfig()
	pool := NewTubePool(cfg, rand.New(rand.NewSource(1)))

	third := pool.At(2)
	hit := Rect{X: third.X() + 1, Y: third.TopBox().Y + 1, Width: 10, Height: 10}
	miss := Rect{X: 0, Y: 300, Width: 10, Height: 10}

	assert.True(t, pool.Collides(hit))
	assert.False(t, pool.Collides(miss))
}

func TestGround_Update(t *testing.T) {
	g := NewGround(0, -30, 336, 112)
	assert.Equal(t, 82.0, g.TopY())

	g.Update(336)
	assert.Equal(t, 0.0, g.Strips[0].X, "edge equal is not past")

	g.Update(337)
	assert.Equal(t, 672.0, g.Strips[0].X)
	assert.Equal(t, 336.0, g.Strips[1].X)

	g.Update(673)
	assert.Equal(t, 1008.0, g.Strips[1].X)
	assert.Equal(t, -30.0, g.Strips[1].Y)
}
