package system

import "github.com/younwookim/platformer/internal/domain/entity"

// PatrolSystem moves platforms, enemies, obstacles and bosses
type PatrolSystem struct{}

// NewPatrolSystem creates a new patrol system
func NewPatrolSystem() *PatrolSystem {
	return &PatrolSystem{}
}

// Update advances every mover one tick inside a world of the given size
func (s *PatrolSystem) Update(movers []*entity.Entity, worldW, worldH float64) {
	for _, e := range movers {
		Step(e, worldW, worldH)
	}
}

// Step advances one entity along its axis. The box is clamped to its
// limits and the direction flips when a limit is reached, so the box never
// leaves its range.
func Step(e *entity.Entity, worldW, worldH float64) {
	m := &e.Move
	if m.IsStatic() {
		return
	}

	lo, hi := limits(e, worldW, worldH)

	pos := leading(e)
	pos += float64(m.Direction) * m.Speed

	if pos <= lo {
		pos = lo
		m.Direction = 1
	} else if pos >= hi {
		pos = hi
		m.Direction = -1
	}

	setLeading(e, pos)
}

// limits returns the range of the box's leading coordinate
func limits(e *entity.Entity, worldW, worldH float64) (lo, hi float64) {
	m := e.Move
	if m.Strategy == entity.MovePatrolBounded {
		return m.Min, m.Max
	}

	switch m.Axis {
	case entity.AxisHorizontal:
		lo, hi = 0, worldW-e.Box.W
	case entity.AxisVertical:
		lo, hi = 0, worldH-e.Box.H
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

func leading(e *entity.Entity) float64 {
	if e.Move.Axis == entity.AxisVertical {
		return e.Box.Y
	}
	return e.Box.X
}

func setLeading(e *entity.Entity, v float64) {
	if e.Move.Axis == entity.AxisVertical {
		e.Box.Y = v
		return
	}
	e.Box.X = v
}
