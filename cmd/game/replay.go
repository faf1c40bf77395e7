package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/flappy/internal/application/game"
	"github.com/younwookim/flappy/internal/application/replay"
	"github.com/younwookim/flappy/internal/application/scene"
	"github.com/younwookim/flappy/internal/application/scene/menu"
	"github.com/younwookim/flappy/internal/application/scene/playing"
	"github.com/younwookim/flappy/internal/infrastructure/config"
)

// ErrDiverged is returned when a replayed session ends differently from
// the recording.
var ErrDiverged = errors.New("replay diverged from recording")

// headlessSummary is the observable end state of a headless session.
type headlessSummary struct {
	Stats  scene.Stats
	Frames int
	BirdX  float64
	BirdY  float64
}

func resultOf(s scene.Stats) replay.Result {
	return replay.Result{Runs: s.Runs, Crashes: s.Crashes, Flaps: s.Flaps}
}

// runHeadless drives the full scene stack from rp without a window or
// audio until every recorded frame has been consumed.
func runHeadless(cfg *config.GameConfig, rp *replay.Replayer) (headlessSummary, error) {
	store := config.NewStore(cfg)
	env := scene.NewEnv(store, nil, rp, rp.Seed())

	first, err := menu.New(env)
	if err != nil {
		return headlessSummary{}, err
	}
	g := game.New(first, store, game.Options{Done: rp.Done})
	defer g.Close()

	for {
		err := g.Update()
		if errors.Is(err, ebiten.Termination) {
			break
		}
		if err != nil {
			return headlessSummary{}, err
		}
	}

	sum := headlessSummary{Stats: *env.Stats, Frames: g.Frames()}
	if p, ok := g.Stack().Top().(*playing.Playing); ok {
		sum.BirdX = p.World().Bird.Position.X
		sum.BirdY = p.World().Bird.Position.Y
	}
	return sum, nil
}

// verify replays file headless, prints a summary to w and checks it
// against the result stored in the recording, if any.
func verify(cfg *config.GameConfig, file string, w io.Writer) error {
	data, err := replay.LoadReplay(file)
	if err != nil {
		return err
	}

	sum, err := runHeadless(cfg, replay.NewReplayer(*data))
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "session %s seed %d: %d frames, %d runs, %d crashes, %d flaps, bird at (%.2f, %.2f)\n",
		data.Session, data.Seed, sum.Frames, sum.Stats.Runs, sum.Stats.Crashes, sum.Stats.Flaps, sum.BirdX, sum.BirdY)

	if data.Result != nil {
		got := resultOf(sum.Stats)
		if got != *data.Result {
			return fmt.Errorf("%w: recorded %+v, replayed %+v", ErrDiverged, *data.Result, got)
		}
		fmt.Fprintln(w, "result matches recording")
	}
	return nil
}
