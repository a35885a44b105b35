package world

import (
	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/domain/entity"
)

// EventKind names something that happened during a tick
type EventKind string

const (
	EventCollected     EventKind = "collected"
	EventPowerUp       EventKind = "power_up"
	EventDamaged       EventKind = "damaged"
	EventLifeLost      EventKind = "life_lost"
	EventLevelEntered  EventKind = "level_entered"
	EventAchievement   EventKind = "achievement"
	EventCompleted     EventKind = "completed"
	EventGameOver      EventKind = "game_over"
	EventBossDefeated  EventKind = "boss_defeated"
	EventInvincibleEnd EventKind = "invincibility_ended"
)

// Event is reported in the Outcome of the tick it happened in.
// Fields not relevant to Kind are zero.
type Event struct {
	Kind   EventKind
	Tick   uint64
	Level  int
	Entity entity.EntityID
	Source entity.Kind // damaged: hazard category
	Value  int         // damaged: amount, collected: score after pickup
	Detail string      // power_up: effect, achievement: id
}

// Outcome is the result of one Step
type Outcome struct {
	Tick    uint64
	State   state.GameState
	LevelID int
	Events  []Event
}

// Has reports whether the outcome contains an event of the given kind
func (o Outcome) Has(kind EventKind) bool {
	for _, e := range o.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
