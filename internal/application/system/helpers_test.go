package system

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

const testConfigDir = "../../../cmd/game/configs"

func loadTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.NewLoader(testConfigDir).LoadAll()
	require.NoError(t, err)
	return cfg
}

func createTestPhysicsConfig() *config.PhysicsConfig {
	return &config.PhysicsConfig{
		Gravity:      0.5,
		JumpStrength: 10,
		MoveSpeed:    5,
	}
}

func createTestCombatConfig() *config.CombatConfig {
	return &config.CombatConfig{
		EnemyDamage:     10,
		BossDamage:      20,
		ObstacleDamage:  20,
		InvincibilityMS: 5000,
	}
}

// createTestPlayer returns a 50x50 player with its top-left at (x, y)
func createTestPlayer(x, y float64) *entity.Player {
	p := entity.NewPlayer(0, 0, 50, 50, 100, 1)
	p.Box.X = x
	p.Box.Y = y
	return p
}

func box(x, y, w, h float64) entity.Box {
	return entity.NewBox(x, y, w, h)
}

func createTestEntity(kind entity.Kind, x, y, w, h float64) *entity.Entity {
	return entity.NewEntity(0, kind, box(x, y, w, h), "")
}

func configRange(lo, hi int) config.IntRange {
	return config.IntRange{Min: lo, Max: hi}
}
