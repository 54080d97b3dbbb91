// Package game provides the main game loop and round state.
package game

// State represents the lifecycle of a round.
type State int

const (
	// StateRunning accepts input and advances the snake every tick.
	StateRunning State = iota
	// StateLost is entered on a wall or self collision. Only the quit key is honoured.
	StateLost
	// StateClosed is terminal; the screen has been or is about to be released.
	StateClosed
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateLost:
		return "lost"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}
