package config

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display      DisplayConfig              `yaml:"display"`
	Physics      PhysicsConfig              `yaml:"physics"`
	Player       PlayerConfig               `yaml:"player"`
	Combat       CombatConfig               `yaml:"combat"`
	Rules        RulesConfig                `yaml:"rules"`
	Archetypes   map[string]ArchetypeConfig `yaml:"archetypes"`
	Pickups      PickupsConfig              `yaml:"pickups"`
	Generator    GeneratorConfig            `yaml:"generator"`
	Achievements []AchievementConfig        `yaml:"achievements"`
	Weather      WeatherConfig              `yaml:"weather"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`
	Scale        int `yaml:"scale"`
	Framerate    int `yaml:"framerate"`
}

// PhysicsConfig values are per tick, not per second
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpStrength float64 `yaml:"jump_strength"`
	MoveSpeed    float64 `yaml:"move_speed"`
}

type PlayerConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	MaxHealth  int     `yaml:"max_health"`
	ExtraLives int     `yaml:"extra_lives"`
	Tag        string  `yaml:"tag"`
}

type CombatConfig struct {
	EnemyDamage    int `yaml:"enemy_damage"`
	BossDamage     int `yaml:"boss_damage"`
	ObstacleDamage int `yaml:"obstacle_damage"`
	// InvincibilityMS must last at least one tick
	InvincibilityMS int `yaml:"invincibility_ms"`
}

// InvincibilityTicks converts the invincibility window to simulation ticks
func (c CombatConfig) InvincibilityTicks(framerate int) uint64 {
	if framerate <= 0 || c.InvincibilityMS <= 0 {
		return 0
	}
	return uint64(c.InvincibilityMS * framerate / 1000)
}

// RulesConfig holds level progression rules
type RulesConfig struct {
	// ExitMargin is the distance from the right world edge that ends a level
	ExitMargin float64 `yaml:"exit_margin"`
}

// ArchetypeConfig describes an enemy, boss or obstacle template
type ArchetypeConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	Speed         float64 `yaml:"speed"`
	Axis          string  `yaml:"axis"`
	JumpHeight    float64 `yaml:"jump_height,omitempty"`
	Health        int     `yaml:"health,omitempty"`
	AttackPattern string  `yaml:"attack_pattern,omitempty"`
	Tag           string  `yaml:"tag"`
}

type PickupsConfig struct {
	Collectible SizeTagConfig `yaml:"collectible"`
	PowerUp     SizeTagConfig `yaml:"power_up"`
	PlatformTag string        `yaml:"platform_tag"`
}

type SizeTagConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Tag    string  `yaml:"tag"`
}

func (s SizeTagConfig) valid() bool {
	return s.Width > 0 && s.Height > 0
}

// IntRange is an inclusive integer range
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// GeneratorConfig configures procedural level generation
type GeneratorConfig struct {
	Platforms      IntRange `yaml:"platforms"`
	PlatformWidth  IntRange `yaml:"platform_width"`
	PlatformHeight float64  `yaml:"platform_height"`
	Enemies        IntRange `yaml:"enemies"`
	Collectibles   IntRange `yaml:"collectibles"`
	PowerUps       IntRange `yaml:"power_ups"`
	Obstacles      IntRange `yaml:"obstacles"`
	BossChance     float64  `yaml:"boss_chance"`
	PowerUpEffect  string   `yaml:"power_up_effect"`
}

// AchievementConfig awards ID once Metric reaches Threshold.
// Metric is one of score, level, lives.
type AchievementConfig struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Metric    string `yaml:"metric"`
	Threshold int    `yaml:"threshold"`
}

type WeatherConfig struct {
	Enabled bool    `yaml:"enabled"`
	Drops   int     `yaml:"drops"`
	Speed   float64 `yaml:"speed"`
	Wind    float64 `yaml:"wind"`
}
