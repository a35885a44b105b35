package state

// GameState represents the current state of the simulation
type GameState int

const (
	StatePlaying GameState = iota
	StateTransitioning
	StatePaused
	StateCompleted
	StateGameOver
	StateBossDefeated
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateTransitioning:
		return "Transitioning"
	case StatePaused:
		return "Paused"
	case StateCompleted:
		return "Completed"
	case StateGameOver:
		return "GameOver"
	case StateBossDefeated:
		return "BossDefeated"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether the run has ended
func (s GameState) IsTerminal() bool {
	return s == StateCompleted || s == StateGameOver || s == StateBossDefeated
}
