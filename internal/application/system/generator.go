package system

import (
	"fmt"
	"math/rand"

	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// Enemy variants drawn by the generator
var generatedEnemies = []string{
	entity.VariantBasic,
	entity.VariantJumping,
	entity.VariantAdvanced,
}

// Generator draws a level's entities from uniform random counts and
// positions. Entities may overlap at spawn.
type Generator struct {
	config  *config.GeneratorConfig
	factory *EntityFactory
}

// NewGenerator creates a new level generator
func NewGenerator(cfg *config.GameConfig) *Generator {
	return &Generator{
		config:  &cfg.Generator,
		factory: NewEntityFactory(cfg),
	}
}

// Generate populates a new level of the given size. The same rng state
// always produces the same level.
func (g *Generator) Generate(id int, width, height float64, rng *rand.Rand) (*entity.Level, error) {
	level := entity.NewLevel(id, width, height)
	cfg := g.config
	effect := entity.ParseEffect(cfg.PowerUpEffect)
	if effect == entity.EffectNone {
		effect = entity.EffectInvincibility
	}

	// Platforms: x in [0, W-100], y in [H/2, H-50]
	for range between(rng, cfg.Platforms) {
		w := float64(between(rng, cfg.PlatformWidth))
		x := uniform(rng, 0, width-100)
		y := uniform(rng, height/2, height-50)
		level.Add(g.factory.Platform(x, y, w, cfg.PlatformHeight, entity.AxisNone, 0))
	}

	for range between(rng, cfg.Enemies) {
		variant := generatedEnemies[rng.Intn(len(generatedEnemies))]
		x, y := g.position(rng, width, height)
		e, err := g.factory.Enemy(variant, x, y)
		if err != nil {
			return nil, fmt.Errorf("generate level %d: %w", id, err)
		}
		level.Add(e)
	}

	for range between(rng, cfg.Collectibles) {
		x, y := g.position(rng, width, height)
		level.Add(g.factory.Collectible(x, y))
	}

	for range between(rng, cfg.PowerUps) {
		x, y := g.position(rng, width, height)
		level.Add(g.factory.PowerUp(effect, x, y))
	}

	for range between(rng, cfg.Obstacles) {
		x, y := g.position(rng, width, height)
		o, err := g.factory.Obstacle(x, y, entity.AxisNone, 0, rng)
		if err != nil {
			return nil, fmt.Errorf("generate level %d: %w", id, err)
		}
		level.Add(o)
	}

	if rng.Float64() < cfg.BossChance {
		x := uniform(rng, width/2, width-200)
		b, err := g.factory.Boss(entity.VariantBoss, x, height-200)
		if err != nil {
			return nil, fmt.Errorf("generate level %d: %w", id, err)
		}
		level.Add(b)
	}

	if err := checkBoxes(level); err != nil {
		return nil, fmt.Errorf("generate level %d: %w", id, err)
	}
	return level, nil
}

// position draws a spawn point in the lower half of the world
func (g *Generator) position(rng *rand.Rand, width, height float64) (float64, float64) {
	return uniform(rng, 0, width-100), uniform(rng, height/2, height-50)
}

// between returns an integer uniformly drawn from the inclusive range
func between(rng *rand.Rand, r config.IntRange) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

// uniform returns a float uniformly drawn from [lo, hi]
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
