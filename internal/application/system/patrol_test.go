package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformer/internal/domain/entity"
)

func TestStep_HorizontalReflects(t *testing.T) {
	e := createTestEntity(entity.KindEnemy, 0, 0, 40, 40)
	e.Move = entity.Patrol(entity.AxisHorizontal, 30, 1)

	// world 100 wide leaves [0, 60] for the box's left edge
	want := []struct {
		x   float64
		dir int
	}{
		{30, 1},
		{60, -1},
		{30, -1},
		{0, 1},
		{30, 1},
	}

	for i, w := range want {
		Step(e, 100, 100)
		assert.Equal(t, w.x, e.Box.X, "tick %d", i)
		assert.Equal(t, w.dir, e.Move.Direction, "tick %d", i)
	}
}

func TestStep_NeverLeavesWorld(t *testing.T) {
	tests := []struct {
		name  string
		axis  entity.Axis
		speed float64
	}{
		{"horizontal slow", entity.AxisHorizontal, 2},
		{"horizontal fast", entity.AxisHorizontal, 37},
		{"vertical slow", entity.AxisVertical, 1},
		{"vertical fast", entity.AxisVertical, 53},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := createTestEntity(entity.KindObstacle, 50, 50, 30, 30)
			e.Move = entity.Patrol(tt.axis, tt.speed, -1)

			for range 1000 {
				Step(e, 800, 600)
				require.GreaterOrEqual(t, e.Box.Left(), 0.0)
				require.LessOrEqual(t, e.Box.Right(), 800.0)
				require.GreaterOrEqual(t, e.Box.Top(), 0.0)
				require.LessOrEqual(t, e.Box.Bottom(), 600.0)
			}
		})
	}
}

func TestStep_Bounded(t *testing.T) {
	e := createTestEntity(entity.KindEnemy, 100, 500, 40, 40)
	e.Move = entity.PatrolBounded(entity.AxisVertical, 2, -1, 400, 500)

	reachedTop := false
	for range 500 {
		Step(e, 800, 600)
		require.GreaterOrEqual(t, e.Box.Y, 400.0)
		require.LessOrEqual(t, e.Box.Y, 500.0)
		assert.Equal(t, 100.0, e.Box.X)
		if e.Box.Y == 400 {
			reachedTop = true
		}
	}
	assert.True(t, reachedTop)
}

func TestStep_Static(t *testing.T) {
	e := createTestEntity(entity.KindPlatform, 10, 20, 100, 20)

	for range 10 {
		Step(e, 800, 600)
	}

	assert.Equal(t, 10.0, e.Box.X)
	assert.Equal(t, 20.0, e.Box.Y)
}

func TestStep_WorldSmallerThanBox(t *testing.T) {
	e := createTestEntity(entity.KindBoss, 0, 0, 150, 150)
	e.Move = entity.Patrol(entity.AxisHorizontal, 3, 1)

	Step(e, 100, 100)

	assert.Equal(t, 0.0, e.Box.X)
}

func TestPatrolSystem_Update(t *testing.T) {
	sys := NewPatrolSystem()
	a := createTestEntity(entity.KindEnemy, 100, 0, 40, 40)
	a.Move = entity.Patrol(entity.AxisHorizontal, 2, -1)
	b := createTestEntity(entity.KindPlatform, 100, 100, 100, 20)
	b.Move = entity.Patrol(entity.AxisVertical, 1, 1)

	sys.Update([]*entity.Entity{a, b}, 800, 600)

	assert.Equal(t, 98.0, a.Box.X)
	assert.Equal(t, 101.0, b.Box.Y)
}
