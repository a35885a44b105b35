package system

import (
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// Achievement metrics
const (
	MetricScore = "score"
	MetricLevel = "level"
	MetricLives = "lives"
)

// AchievementSystem awards configured achievements once their metric
// reaches its threshold
type AchievementSystem struct {
	rules []config.AchievementConfig
}

// NewAchievementSystem creates a new achievement system
func NewAchievementSystem(rules []config.AchievementConfig) *AchievementSystem {
	return &AchievementSystem{rules: rules}
}

// Evaluate awards every rule the player now satisfies and returns the
// newly awarded IDs in rule order. Achievements are never revoked.
func (s *AchievementSystem) Evaluate(player *entity.Player, levelID int) []string {
	var awarded []string
	for _, r := range s.rules {
		if player.HasAchievement(r.ID) {
			continue
		}
		value, ok := metric(player, levelID, r.Metric)
		if !ok || value < r.Threshold {
			continue
		}
		if player.Award(r.ID) {
			awarded = append(awarded, r.ID)
		}
	}
	return awarded
}

// Name returns the display name of an achievement, or its ID
func (s *AchievementSystem) Name(id string) string {
	for _, r := range s.rules {
		if r.ID == id && r.Name != "" {
			return r.Name
		}
	}
	return id
}

func metric(player *entity.Player, levelID int, name string) (int, bool) {
	switch name {
	case MetricScore:
		return player.Score, true
	case MetricLevel:
		return levelID, true
	case MetricLives:
		return player.ExtraLives, true
	default:
		return 0, false
	}
}
