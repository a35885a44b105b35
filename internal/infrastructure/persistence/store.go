// Package persistence saves and loads the player's progress.
package persistence

import "errors"

// ErrClosed is returned by stores used after Close
var ErrClosed = errors.New("persistence: store closed")

// PlayerState is the saved subset of the player.
// Field names are stable; the blob carries no version.
type PlayerState struct {
	X            float64  `json:"x"`
	Y            float64  `json:"y"`
	Score        int      `json:"score"`
	Health       int      `json:"health"`
	ExtraLives   int      `json:"extra_lives"`
	Achievements []string `json:"achievements"`
}

// Store is a single save slot.
// Load reports false with a nil error when nothing has been saved yet.
type Store interface {
	Save(state PlayerState) error
	Load() (PlayerState, bool, error)
	Close() error
}
