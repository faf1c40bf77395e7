// Package scene defines the Scene interface for game screens.
//
// Each screen (menu, playing, paused) implements Scene. Scenes live on a
// stack owned by the game shell; only the top one is updated and drawn.
// A scene asks for a change of screen by returning a Transition from
// Update, which the stack applies once the update has finished.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/flappy/internal/application/state"
)

// Scene represents a game screen.
type Scene interface {
	// Update advances the scene by dt seconds (typically 1/60).
	// Returns an error to terminate the game.
	Update(dt float64) (Transition, error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called every time the scene becomes the top of the stack.
	OnEnter()

	// Dispose releases everything the scene owns. The stack calls it
	// exactly once, when the scene is popped or replaced.
	Dispose()

	// State reports which screen this is.
	State() state.GameState
}

// Op is a stack operation requested by a scene.
type Op int

const (
	OpNone Op = iota
	OpPush
	OpReplace
	OpPop
)

func (o Op) String() string {
	switch o {
	case OpNone:
		return "None"
	case OpPush:
		return "Push"
	case OpReplace:
		return "Replace"
	case OpPop:
		return "Pop"
	default:
		return "Unknown"
	}
}

// Transition is the result of Scene.Update.
type Transition struct {
	Op   Op
	Next Scene // set for OpPush and OpReplace
}

// Stay keeps the current scene on top.
var Stay = Transition{}

// PushTo layers next over the current scene.
func PushTo(next Scene) Transition {
	return Transition{Op: OpPush, Next: next}
}

// ReplaceWith disposes the current scene and puts next in its place.
func ReplaceWith(next Scene) Transition {
	return Transition{Op: OpReplace, Next: next}
}

// PopSelf disposes the current scene and reveals the one below.
func PopSelf() Transition {
	return Transition{Op: OpPop}
}
