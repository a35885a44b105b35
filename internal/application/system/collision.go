package system

import (
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// FirstHit returns the first entity in collection order whose box
// intersects box, or nil
func FirstHit(box entity.Box, entities []*entity.Entity) *entity.Entity {
	for _, e := range entities {
		if entity.Intersects(box, e.Box) {
			return e
		}
	}
	return nil
}

// AllHits returns every entity whose box intersects box, in collection order
func AllHits(box entity.Box, entities []*entity.Entity) []*entity.Entity {
	var hits []*entity.Entity
	for _, e := range entities {
		if entity.Intersects(box, e.Box) {
			hits = append(hits, e)
		}
	}
	return hits
}

// Without returns entities minus hits, preserving order
func Without(entities, hits []*entity.Entity) []*entity.Entity {
	if len(hits) == 0 {
		return entities
	}
	drop := make(map[*entity.Entity]struct{}, len(hits))
	for _, h := range hits {
		drop[h] = struct{}{}
	}
	kept := entities[:0:0]
	for _, e := range entities {
		if _, ok := drop[e]; !ok {
			kept = append(kept, e)
		}
	}
	return kept
}

// HazardHit is the damage dealt by one hazard category in a tick
type HazardHit struct {
	Kind   entity.Kind
	Damage int
}

// CollisionSystem resolves the player against each entity category
type CollisionSystem struct {
	config             *config.CombatConfig
	invincibilityTicks uint64
}

// NewCollisionSystem creates a new collision system.
// invincibilityTicks is the length of a power-up invincibility window.
func NewCollisionSystem(cfg *config.CombatConfig, invincibilityTicks uint64) *CollisionSystem {
	return &CollisionSystem{
		config:             cfg,
		invincibilityTicks: invincibilityTicks,
	}
}

// ResolvePlatforms lands the player on the first intersecting platform.
// Returns the platform, or nil when none was struck.
func (s *CollisionSystem) ResolvePlatforms(player *entity.Player, platforms []*entity.Entity) *entity.Entity {
	hit := FirstHit(player.Box, platforms)
	if hit == nil {
		return nil
	}
	player.Box.SetBottom(hit.Box.Top())
	player.OnGround = true
	player.VY = 0
	return hit
}

// ResolveHazards applies damage once per hazard category the player touches.
// An invincible player takes no damage.
func (s *CollisionSystem) ResolveHazards(player *entity.Player, level *entity.Level) []HazardHit {
	if player.Invincible {
		return nil
	}

	categories := []struct {
		kind     entity.Kind
		entities []*entity.Entity
		damage   int
	}{
		{entity.KindEnemy, level.Enemies, s.config.EnemyDamage},
		{entity.KindBoss, level.Bosses, s.config.BossDamage},
		{entity.KindObstacle, level.Obstacles, s.config.ObstacleDamage},
	}

	var hits []HazardHit
	for _, c := range categories {
		if !touchesHazard(player.Box, c.entities) {
			continue
		}
		player.TakeDamage(c.damage)
		hits = append(hits, HazardHit{Kind: c.kind, Damage: c.damage})
	}
	return hits
}

// touchesHazard reports whether box overlaps any hazard in entities
func touchesHazard(box entity.Box, entities []*entity.Entity) bool {
	for _, e := range entities {
		if e.IsHazard() && entity.Intersects(box, e.Box) {
			return true
		}
	}
	return false
}

// CollectPickups removes every intersecting collectible and scores one point each
func (s *CollisionSystem) CollectPickups(player *entity.Player, level *entity.Level) []*entity.Entity {
	hits := AllHits(player.Box, level.Collectibles)
	if len(hits) == 0 {
		return nil
	}
	level.Collectibles = Without(level.Collectibles, hits)
	player.Score += len(hits)
	return hits
}

// CollectPowerUps removes every intersecting power-up and applies its effect.
// The speed effect has no defined behavior and is only reported.
func (s *CollisionSystem) CollectPowerUps(player *entity.Player, level *entity.Level, tick uint64) []*entity.Entity {
	hits := AllHits(player.Box, level.PowerUps)
	if len(hits) == 0 {
		return nil
	}
	level.PowerUps = Without(level.PowerUps, hits)

	for _, p := range hits {
		switch p.Effect {
		case entity.EffectInvincibility:
			player.GrantInvincibility(tick)
		case entity.EffectExtraLife:
			player.ExtraLives++
		}
	}
	return hits
}

// ExpireInvincibility clears invincibility once the window has fully
// elapsed. The boundary is inclusive: a window granted at tick T ends at
// tick T+window. Returns true when it was cleared this call.
func (s *CollisionSystem) ExpireInvincibility(player *entity.Player, tick uint64) bool {
	if !player.Invincible {
		return false
	}
	if tick < player.InvincibleSince || tick-player.InvincibleSince < s.invincibilityTicks {
		return false
	}
	player.Invincible = false
	return true
}
