package config

// LevelsConfig is the root config for levels.yaml.
// Levels are played in list order.
type LevelsConfig struct {
	Levels []LevelConfig `yaml:"levels"`
}

type LevelConfig struct {
	ID         int     `yaml:"id"`
	Name       string  `yaml:"name"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Procedural bool    `yaml:"procedural"`
	BossLevel  bool    `yaml:"boss_level"`

	Platforms    []PlatformSpawnConfig `yaml:"platforms"`
	Enemies      []SpawnConfig         `yaml:"enemies"`
	Collectibles []PositionConfig      `yaml:"collectibles"`
	PowerUps     []PowerUpSpawnConfig  `yaml:"power_ups"`
	Obstacles    []ObstacleSpawnConfig `yaml:"obstacles"`
	Bosses       []SpawnConfig         `yaml:"bosses"`
}

type PositionConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PlatformSpawnConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	W     float64 `yaml:"w"`
	H     float64 `yaml:"h"`
	Axis  string  `yaml:"axis,omitempty"`
	Speed float64 `yaml:"speed,omitempty"`
}

// SpawnConfig places an archetype instance
type SpawnConfig struct {
	Type string  `yaml:"type"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

type PowerUpSpawnConfig struct {
	Effect string  `yaml:"effect"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
}

// ObstacleSpawnConfig places an obstacle. Empty Axis or zero Direction
// are chosen at random when the level is built.
type ObstacleSpawnConfig struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Axis      string  `yaml:"axis,omitempty"`
	Direction int     `yaml:"direction,omitempty"`
}

// Find returns the level config with the given ID
func (c *LevelsConfig) Find(id int) (LevelConfig, bool) {
	for _, lvl := range c.Levels {
		if lvl.ID == id {
			return lvl, true
		}
	}
	return LevelConfig{}, false
}

// Next returns the ID of the level after id, or false if id is the last one
func (c *LevelsConfig) Next(id int) (int, bool) {
	for i, lvl := range c.Levels {
		if lvl.ID == id && i+1 < len(c.Levels) {
			return c.Levels[i+1].ID, true
		}
	}
	return 0, false
}

// First returns the ID of the first level
func (c *LevelsConfig) First() (int, bool) {
	if len(c.Levels) == 0 {
		return 0, false
	}
	return c.Levels[0].ID, true
}
