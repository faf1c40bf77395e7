package state

// GameState identifies which scene is in control of the game
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StatePaused
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}
