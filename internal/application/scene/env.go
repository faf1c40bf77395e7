package scene

import (
	"math/rand"

	"github.com/younwookim/flappy/internal/application/system"
	"github.com/younwookim/flappy/internal/infrastructure/assets"
	"github.com/younwookim/flappy/internal/infrastructure/config"
)

// Stats counts what happened during a session.
type Stats struct {
	Runs    int // play scenes started
	Crashes int
	Flaps   int
}

// Env is the shared context handed to every scene.
type Env struct {
	Store  *config.Store
	Assets *assets.Library // nil runs headless: nothing is loaded or drawn
	Input  system.InputSource
	Stats  *Stats

	seeds *rand.Rand
}

// NewEnv creates an Env whose play sessions derive their seeds from
// masterSeed, so one seed reproduces a whole session.
func NewEnv(store *config.Store, lib *assets.Library, input system.InputSource, masterSeed int64) *Env {
	return &Env{
		Store:  store,
		Assets: lib,
		Input:  input,
		Stats:  &Stats{},
		seeds:  rand.New(rand.NewSource(masterSeed)),
	}
}

// NextSeed returns the seed for the next play scene.
func (e *Env) NextSeed() int64 {
	return e.seeds.Int63()
}

// Headless reports whether scenes should skip assets and rendering.
func (e *Env) Headless() bool {
	return e.Assets == nil
}
