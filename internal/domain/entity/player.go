package entity

import "sort"

// DefaultMaxHealth is the player's full health
const DefaultMaxHealth = 100

// Player represents the player entity.
// Invincibility is measured in simulation ticks, not wall time.
type Player struct {
	Box      Box
	VY       float64
	OnGround bool

	Score      int
	Health     int
	MaxHealth  int
	ExtraLives int

	Invincible      bool
	InvincibleSince uint64

	Achievements map[string]struct{}
}

// NewPlayer creates a player of the given size centered on (cx, cy)
func NewPlayer(cx, cy, w, h float64, maxHealth, extraLives int) *Player {
	if maxHealth <= 0 {
		maxHealth = DefaultMaxHealth
	}
	p := &Player{
		Box:          Box{W: w, H: h},
		Health:       maxHealth,
		MaxHealth:    maxHealth,
		ExtraLives:   extraLives,
		Achievements: make(map[string]struct{}),
	}
	p.Box.SetCenter(cx, cy)
	return p
}

// TakeDamage subtracts health and reports whether the player is out of health
func (p *Player) TakeDamage(amount int) bool {
	p.Health -= amount
	return p.Health <= 0
}

// Respawn centers the player on the spawn point and stops vertical motion
func (p *Player) Respawn(cx, cy float64) {
	p.Box.SetCenter(cx, cy)
	p.VY = 0
	p.OnGround = false
}

// GrantInvincibility starts an invincibility window at tick
func (p *Player) GrantInvincibility(tick uint64) {
	p.Invincible = true
	p.InvincibleSince = tick
}

// Award adds an achievement, returning false if it was already held
func (p *Player) Award(id string) bool {
	if p.Achievements == nil {
		p.Achievements = make(map[string]struct{})
	}
	if _, ok := p.Achievements[id]; ok {
		return false
	}
	p.Achievements[id] = struct{}{}
	return true
}

// HasAchievement reports whether the player holds the achievement
func (p *Player) HasAchievement(id string) bool {
	_, ok := p.Achievements[id]
	return ok
}

// AchievementList returns the held achievements in sorted order
func (p *Player) AchievementList() []string {
	list := make([]string, 0, len(p.Achievements))
	for id := range p.Achievements {
		list = append(list, id)
	}
	sort.Strings(list)
	return list
}
