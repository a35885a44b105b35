package entity

// MoveStrategy selects how a mover updates its position each tick
type MoveStrategy int

const (
	MoveStatic        MoveStrategy = iota
	MovePatrol                     // reflect at the world bounds
	MovePatrolBounded              // reflect at Min/Max
)

// Movement describes a bounded linear patrol.
// For MovePatrolBounded, Min and Max bound the box's leading coordinate
// (X for horizontal, Y for vertical).
type Movement struct {
	Strategy  MoveStrategy
	Axis      Axis
	Speed     float64
	Direction int // -1 or +1
	Min, Max  float64
}

// Static returns a movement that never moves
func Static() Movement {
	return Movement{Strategy: MoveStatic}
}

// Patrol returns a movement that reflects at the world bounds
func Patrol(axis Axis, speed float64, direction int) Movement {
	if axis == AxisNone {
		return Static()
	}
	return Movement{
		Strategy:  MovePatrol,
		Axis:      axis,
		Speed:     speed,
		Direction: normalizeDirection(direction),
	}
}

// PatrolBounded returns a movement that reflects between min and max
func PatrolBounded(axis Axis, speed float64, direction int, min, max float64) Movement {
	if axis == AxisNone {
		return Static()
	}
	if min > max {
		min, max = max, min
	}
	return Movement{
		Strategy:  MovePatrolBounded,
		Axis:      axis,
		Speed:     speed,
		Direction: normalizeDirection(direction),
		Min:       min,
		Max:       max,
	}
}

// IsStatic reports whether the movement never changes position
func (m Movement) IsStatic() bool {
	return m.Strategy == MoveStatic || m.Axis == AxisNone || m.Speed == 0
}

func normalizeDirection(d int) int {
	if d < 0 {
		return -1
	}
	return 1
}
