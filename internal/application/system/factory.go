package system

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// ErrUnknownArchetype is returned when a spawn names an archetype that
// game.yaml does not define
var ErrUnknownArchetype = errors.New("unknown archetype")

const obstacleArchetype = "obstacle"

// EntityFactory creates entities from config archetypes
type EntityFactory struct {
	config *config.GameConfig
}

// NewEntityFactory creates a new entity factory
func NewEntityFactory(cfg *config.GameConfig) *EntityFactory {
	return &EntityFactory{config: cfg}
}

func (f *EntityFactory) archetype(name string) (config.ArchetypeConfig, error) {
	a, ok := f.config.Archetypes[name]
	if !ok {
		return a, fmt.Errorf("%w: %q", ErrUnknownArchetype, name)
	}
	return a, nil
}

// Platform creates a platform, moving when axis is set
func (f *EntityFactory) Platform(x, y, w, h float64, axis entity.Axis, speed float64) *entity.Entity {
	e := entity.NewEntity(0, entity.KindPlatform, entity.NewBox(x, y, w, h), f.config.Pickups.PlatformTag)
	if axis != entity.AxisNone && speed > 0 {
		e.Move = entity.Patrol(axis, speed, 1)
	}
	return e
}

// Enemy creates an enemy of the given variant with its top-left at (x, y).
// Jumping enemies patrol vertically between y-jumpHeight and y.
func (f *EntityFactory) Enemy(variant string, x, y float64) (*entity.Entity, error) {
	a, err := f.archetype(variant)
	if err != nil {
		return nil, err
	}

	e := entity.NewEntity(0, entity.KindEnemy, entity.NewBox(x, y, a.Width, a.Height), a.Tag)
	e.Variant = variant

	axis := entity.ParseAxis(a.Axis)
	if a.JumpHeight > 0 {
		e.Move = entity.PatrolBounded(entity.AxisVertical, a.Speed, -1, y-a.JumpHeight, y)
	} else {
		if axis == entity.AxisNone {
			axis = entity.AxisHorizontal
		}
		e.Move = entity.Patrol(axis, a.Speed, -1)
	}
	return e, nil
}

// Boss creates a boss of the given variant
func (f *EntityFactory) Boss(variant string, x, y float64) (*entity.Entity, error) {
	a, err := f.archetype(variant)
	if err != nil {
		return nil, err
	}

	e := entity.NewEntity(0, entity.KindBoss, entity.NewBox(x, y, a.Width, a.Height), a.Tag)
	e.Variant = variant
	e.Health = a.Health
	e.AttackPattern = a.AttackPattern

	axis := entity.ParseAxis(a.Axis)
	if axis == entity.AxisNone {
		axis = entity.AxisHorizontal
	}
	e.Move = entity.Patrol(axis, a.Speed, -1)
	return e, nil
}

// Collectible creates a collectible
func (f *EntityFactory) Collectible(x, y float64) *entity.Entity {
	c := f.config.Pickups.Collectible
	return entity.NewEntity(0, entity.KindCollectible, entity.NewBox(x, y, c.Width, c.Height), c.Tag)
}

// PowerUp creates a power-up with the given effect
func (f *EntityFactory) PowerUp(effect entity.PowerUpEffect, x, y float64) *entity.Entity {
	c := f.config.Pickups.PowerUp
	e := entity.NewEntity(0, entity.KindPowerUp, entity.NewBox(x, y, c.Width, c.Height), c.Tag)
	e.Effect = effect
	return e
}

// Obstacle creates an obstacle. AxisNone or a zero direction are chosen
// from rng.
func (f *EntityFactory) Obstacle(x, y float64, axis entity.Axis, direction int, rng *rand.Rand) (*entity.Entity, error) {
	a, err := f.archetype(obstacleArchetype)
	if err != nil {
		return nil, err
	}

	if axis == entity.AxisNone {
		axis = randomAxis(rng)
	}
	if direction == 0 {
		direction = randomDirection(rng)
	}

	e := entity.NewEntity(0, entity.KindObstacle, entity.NewBox(x, y, a.Width, a.Height), a.Tag)
	e.Variant = obstacleArchetype
	e.Move = entity.Patrol(axis, a.Speed, direction)
	return e, nil
}

func randomAxis(rng *rand.Rand) entity.Axis {
	if rng.Intn(2) == 0 {
		return entity.AxisHorizontal
	}
	return entity.AxisVertical
}

func randomDirection(rng *rand.Rand) int {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
