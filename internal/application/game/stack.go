package game

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/flappy/internal/application/scene"
)

// ErrEmptyStack is the panic value for operations that need a top scene.
var ErrEmptyStack = errors.New("scene stack is empty")

// Stack holds the active scenes. Only the top scene is updated and drawn.
type Stack struct {
	scenes []scene.Scene
}

// NewStack creates an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// Len returns the number of scenes.
func (s *Stack) Len() int {
	return len(s.scenes)
}

// Top returns the scene on top. Panics with ErrEmptyStack if empty.
func (s *Stack) Top() scene.Scene {
	if len(s.scenes) == 0 {
		panic(ErrEmptyStack)
	}
	return s.scenes[len(s.scenes)-1]
}

// Push layers next over the current top and enters it.
func (s *Stack) Push(next scene.Scene) {
	s.scenes = append(s.scenes, next)
	log.Debug("scene pushed", "scene", next.State(), "depth", len(s.scenes))
	next.OnEnter()
}

// Replace disposes the top scene and enters next in its place.
func (s *Stack) Replace(next scene.Scene) {
	top := s.Top()
	top.Dispose()
	s.scenes[len(s.scenes)-1] = next
	log.Debug("scene replaced", "from", top.State(), "to", next.State())
	next.OnEnter()
}

// Pop disposes the top scene and re-enters the one it uncovers, if any.
func (s *Stack) Pop() {
	top := s.Top()
	top.Dispose()
	s.scenes[len(s.scenes)-1] = nil
	s.scenes = s.scenes[:len(s.scenes)-1]
	log.Debug("scene popped", "scene", top.State(), "depth", len(s.scenes))

	if len(s.scenes) > 0 {
		s.Top().OnEnter()
	}
}

// Clear disposes every scene, top first.
func (s *Stack) Clear() {
	for len(s.scenes) > 0 {
		i := len(s.scenes) - 1
		s.scenes[i].Dispose()
		s.scenes[i] = nil
		s.scenes = s.scenes[:i]
	}
}

// Update advances the top scene and then applies the transition it asked
// for.
func (s *Stack) Update(dt float64) error {
	tr, err := s.Top().Update(dt)
	if err != nil {
		return err
	}

	switch tr.Op {
	case scene.OpPush:
		s.Push(tr.Next)
	case scene.OpReplace:
		s.Replace(tr.Next)
	case scene.OpPop:
		s.Pop()
	}
	return nil
}

// Draw renders the top scene.
func (s *Stack) Draw(screen *ebiten.Image) {
	s.Top().Draw(screen)
}
