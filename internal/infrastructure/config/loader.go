package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config file names inside a config directory
const (
	GameFile   = "game.yaml"
	LevelsFile = "levels.yaml"
)

var (
	// ErrNoLevels is returned when levels.yaml defines no levels
	ErrNoLevels = errors.New("config: no levels defined")
	// ErrInvalid wraps every validation failure
	ErrInvalid = errors.New("config: invalid")
)

// Config holds all loaded configurations
type Config struct {
	Game   *GameConfig
	Levels *LevelsConfig
}

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the directory the loader reads from
func (l *Loader) BasePath() string {
	return l.basePath
}

// LoadGame loads game.yaml
func (l *Loader) LoadGame() (*GameConfig, error) {
	var cfg GameConfig
	if err := l.decode(GameFile, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadLevels loads levels.yaml
func (l *Loader) LoadLevels() (*LevelsConfig, error) {
	var cfg LevelsConfig
	if err := l.decode(LevelsFile, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadAll loads all configurations (game, levels)
func (l *Loader) LoadAll() (*Config, error) {
	game, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	levels, err := l.LoadLevels()
	if err != nil {
		return nil, err
	}

	return &Config{
		Game:   game,
		Levels: levels,
	}, nil
}

func (l *Loader) decode(name string, out any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// Validate checks the invariants the simulation relies on
func (c *GameConfig) Validate() error {
	switch {
	case c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0:
		return fmt.Errorf("%w: display size must be positive", ErrInvalid)
	case c.Display.Framerate <= 0:
		return fmt.Errorf("%w: framerate must be positive", ErrInvalid)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalid)
	case c.Player.ExtraLives < 0:
		return fmt.Errorf("%w: extra lives must not be negative", ErrInvalid)
	case c.Player.MaxHealth <= 0:
		return fmt.Errorf("%w: max health must be positive", ErrInvalid)
	case c.Combat.InvincibilityTicks(c.Display.Framerate) == 0:
		return fmt.Errorf("%w: invincibility_ms %d is shorter than one tick", ErrInvalid, c.Combat.InvincibilityMS)
	case !c.Pickups.Collectible.valid():
		return fmt.Errorf("%w: collectible size must be positive", ErrInvalid)
	case !c.Pickups.PowerUp.valid():
		return fmt.Errorf("%w: power-up size must be positive", ErrInvalid)
	}

	for name, a := range c.Archetypes {
		if a.Width <= 0 || a.Height <= 0 {
			return fmt.Errorf("%w: archetype %s size must be positive", ErrInvalid, name)
		}
	}

	if err := c.Generator.validate(); err != nil {
		return err
	}
	return nil
}

func (g GeneratorConfig) validate() error {
	ranges := map[string]IntRange{
		"platforms":      g.Platforms,
		"platform_width": g.PlatformWidth,
		"enemies":        g.Enemies,
		"collectibles":   g.Collectibles,
		"power_ups":      g.PowerUps,
		"obstacles":      g.Obstacles,
	}
	for name, r := range ranges {
		if r.Min < 0 || r.Max < r.Min {
			return fmt.Errorf("%w: generator range %s [%d, %d]", ErrInvalid, name, r.Min, r.Max)
		}
	}
	if g.PlatformWidth.Min <= 0 || g.PlatformHeight <= 0 {
		return fmt.Errorf("%w: generated platform size must be positive", ErrInvalid)
	}
	if g.BossChance < 0 || g.BossChance > 1 {
		return fmt.Errorf("%w: boss chance %v outside [0, 1]", ErrInvalid, g.BossChance)
	}
	return nil
}

// Validate checks level IDs and sizes
func (c *LevelsConfig) Validate() error {
	if len(c.Levels) == 0 {
		return ErrNoLevels
	}

	seen := make(map[int]bool, len(c.Levels))
	for _, lvl := range c.Levels {
		if lvl.ID <= 0 {
			return fmt.Errorf("%w: level id %d must be positive", ErrInvalid, lvl.ID)
		}
		if seen[lvl.ID] {
			return fmt.Errorf("%w: duplicate level id %d", ErrInvalid, lvl.ID)
		}
		seen[lvl.ID] = true

		if lvl.Width <= 0 || lvl.Height <= 0 {
			return fmt.Errorf("%w: level %d size must be positive", ErrInvalid, lvl.ID)
		}
		for i, p := range lvl.Platforms {
			if p.W <= 0 || p.H <= 0 {
				return fmt.Errorf("%w: level %d platform %d size must be positive", ErrInvalid, lvl.ID, i)
			}
		}
	}
	return nil
}
