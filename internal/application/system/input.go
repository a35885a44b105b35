package system

// Action is a logical player action, independent of the physical key
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionJump
)

// String returns a human-readable name for the action
func (a Action) String() string {
	switch a {
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionJump:
		return "Jump"
	default:
		return "Unknown"
	}
}

// ActionQuery reports whether an action is held as of this tick.
// Implementations must not block.
type ActionQuery interface {
	Pressed(a Action) bool
}

// InputState holds the action state for a single tick
type InputState struct {
	Left  bool
	Right bool
	Jump  bool
}

// Pressed implements ActionQuery
func (s InputState) Pressed(a Action) bool {
	switch a {
	case ActionMoveLeft:
		return s.Left
	case ActionMoveRight:
		return s.Right
	case ActionJump:
		return s.Jump
	default:
		return false
	}
}

// NoInput is an ActionQuery with nothing pressed
var NoInput ActionQuery = InputState{}

func pressed(q ActionQuery, a Action) bool {
	if q == nil {
		return false
	}
	return q.Pressed(a)
}
