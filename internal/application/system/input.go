package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds the input edges seen this frame
type InputState struct {
	Primary bool // tap, click or space: start the game / jump
	Pause   bool
}

// InputSource produces one InputState per frame. Poll must be called at
// most once per update.
type InputSource interface {
	Poll() InputState
}

// Bindings maps physical inputs to actions
type Bindings struct {
	PrimaryKeys  []ebiten.Key
	PrimaryMouse ebiten.MouseButton
	PrimaryTouch bool
	PauseKeys    []ebiten.Key
}

// DefaultBindings returns the standard controls.
func DefaultBindings() Bindings {
	return Bindings{
		PrimaryKeys:  []ebiten.Key{ebiten.KeySpace, ebiten.KeyUp},
		PrimaryMouse: ebiten.MouseButtonLeft,
		PrimaryTouch: true,
		PauseKeys:    []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
	}
}

// InputSystem reads edge-triggered input from ebiten
type InputSystem struct {
	bindings Bindings
	touches  []ebiten.TouchID
}

// NewInputSystem creates a new input system
func NewInputSystem(b Bindings) *InputSystem {
	return &InputSystem{bindings: b}
}

// Poll reads which actions were freshly triggered since the last tick
func (s *InputSystem) Poll() InputState {
	return InputState{
		Primary: s.primaryPressed(),
		Pause:   anyKeyJustPressed(s.bindings.PauseKeys),
	}
}

func (s *InputSystem) primaryPressed() bool {
	if anyKeyJustPressed(s.bindings.PrimaryKeys) {
		return true
	}
	if inpututil.IsMouseButtonJustPressed(s.bindings.PrimaryMouse) {
		return true
	}
	if s.bindings.PrimaryTouch {
		s.touches = inpututil.AppendJustPressedTouchIDs(s.touches[:0])
		return len(s.touches) > 0
	}
	return false
}

func anyKeyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// ScriptedInput replays a fixed sequence of states, then reports no input.
// Useful for headless runs and tests.
type ScriptedInput struct {
	States []InputState
	frame  int
}

// Poll returns the next scripted state.
func (s *ScriptedInput) Poll() InputState {
	if s.frame >= len(s.States) {
		s.frame++
		return InputState{}
	}
	st := s.States[s.frame]
	s.frame++
	return st
}

// Frame returns how many times Poll was called.
func (s *ScriptedInput) Frame() int { return s.frame }
