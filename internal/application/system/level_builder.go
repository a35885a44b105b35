package system

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// ErrUnknownLevel is returned when a level ID is not in levels.yaml
var ErrUnknownLevel = errors.New("unknown level")

// LevelBuilder builds levels from the layout table or the generator
type LevelBuilder struct {
	levels    *config.LevelsConfig
	factory   *EntityFactory
	generator *Generator
	rng       *rand.Rand
}

// NewLevelBuilder creates a new level builder.
// rng seeds procedural levels and random obstacle movement.
func NewLevelBuilder(game *config.GameConfig, levels *config.LevelsConfig, rng *rand.Rand) *LevelBuilder {
	return &LevelBuilder{
		levels:    levels,
		factory:   NewEntityFactory(game),
		generator: NewGenerator(game),
		rng:       rng,
	}
}

// SetLevels swaps the layout table, used when levels.yaml is reloaded
func (b *LevelBuilder) SetLevels(levels *config.LevelsConfig) {
	b.levels = levels
}

// First returns the ID of the first level
func (b *LevelBuilder) First() (int, error) {
	id, ok := b.levels.First()
	if !ok {
		return 0, config.ErrNoLevels
	}
	return id, nil
}

// Has reports whether id is in the layout table
func (b *LevelBuilder) Has(id int) bool {
	_, ok := b.levels.Find(id)
	return ok
}

// Next returns the level after id, or false when id is the last level
func (b *LevelBuilder) Next(id int) (int, bool) {
	return b.levels.Next(id)
}

// Build creates the level with the given ID
func (b *LevelBuilder) Build(id int) (*entity.Level, error) {
	lc, ok := b.levels.Find(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLevel, id)
	}

	var (
		level *entity.Level
		err   error
	)
	if lc.Procedural {
		level, err = b.generator.Generate(lc.ID, lc.Width, lc.Height, b.rng)
	} else {
		level, err = b.layout(lc)
	}
	if err != nil {
		return nil, err
	}

	level.Name = lc.Name
	level.BossLevel = lc.BossLevel
	return level, nil
}

// Check builds every level once without keeping the result.
// Used to surface bad archetype references before play starts.
func (b *LevelBuilder) Check() error {
	for _, lc := range b.levels.Levels {
		if lc.Procedural {
			continue
		}
		if _, err := b.layout(lc); err != nil {
			return err
		}
	}
	return nil
}

func (b *LevelBuilder) layout(lc config.LevelConfig) (*entity.Level, error) {
	level := entity.NewLevel(lc.ID, lc.Width, lc.Height)

	for _, p := range lc.Platforms {
		level.Add(b.factory.Platform(p.X, p.Y, p.W, p.H, entity.ParseAxis(p.Axis), p.Speed))
	}

	for _, s := range lc.Enemies {
		e, err := b.factory.Enemy(s.Type, s.X, s.Y)
		if err != nil {
			return nil, fmt.Errorf("level %d enemy: %w", lc.ID, err)
		}
		level.Add(e)
	}

	for _, c := range lc.Collectibles {
		level.Add(b.factory.Collectible(c.X, c.Y))
	}

	for _, p := range lc.PowerUps {
		effect := entity.ParseEffect(p.Effect)
		if effect == entity.EffectNone {
			return nil, fmt.Errorf("level %d power-up: %w: effect %q", lc.ID, config.ErrInvalid, p.Effect)
		}
		level.Add(b.factory.PowerUp(effect, p.X, p.Y))
	}

	for _, o := range lc.Obstacles {
		obs, err := b.factory.Obstacle(o.X, o.Y, entity.ParseAxis(o.Axis), o.Direction, b.rng)
		if err != nil {
			return nil, fmt.Errorf("level %d obstacle: %w", lc.ID, err)
		}
		level.Add(obs)
	}

	for _, s := range lc.Bosses {
		boss, err := b.factory.Boss(s.Type, s.X, s.Y)
		if err != nil {
			return nil, fmt.Errorf("level %d boss: %w", lc.ID, err)
		}
		level.Add(boss)
	}

	if err := checkBoxes(level); err != nil {
		return nil, err
	}
	return level, nil
}

// checkBoxes rejects entities with no area, which nothing can touch
func checkBoxes(level *entity.Level) error {
	for _, e := range level.All() {
		if !e.Box.Valid() {
			return fmt.Errorf("%w: level %d %s at (%g, %g) has size %gx%g",
				config.ErrInvalid, level.ID, e.Kind, e.Box.X, e.Box.Y, e.Box.W, e.Box.H)
		}
	}
	return nil
}
