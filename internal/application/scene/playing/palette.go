package playing

import (
	"image/color"

	"github.com/younwookim/platformer/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorHealthBG   = color.RGBA{60, 60, 60, 255}
	colorHealthFG   = color.RGBA{100, 200, 100, 255}
	colorHealthLow  = color.RGBA{220, 70, 60, 255}
	colorMinimapBG  = color.RGBA{0, 0, 0, 150}
	colorMinimapBox = color.RGBA{255, 255, 255, 200}
	colorRain       = color.RGBA{150, 170, 220, 140}
	colorFlash      = color.RGBA{255, 255, 255, 200}
	colorUnknown    = color.RGBA{255, 0, 255, 255}
)

// palette maps visual tags from config to colors
var palette = map[string]color.RGBA{
	"blue":    {60, 120, 230, 255},
	"green":   {70, 170, 80, 255},
	"red":     {210, 60, 60, 255},
	"magenta": {200, 60, 200, 255},
	"crimson": {160, 20, 60, 255},
	"orange":  {240, 150, 40, 255},
	"darkred": {120, 10, 10, 255},
	"gray":    {130, 130, 130, 255},
	"yellow":  {250, 215, 0, 255},
	"purple":  {140, 80, 220, 255},
	"white":   {240, 240, 240, 255},
}

// kindColors is used when a sprite has no tag
var kindColors = map[entity.Kind]color.RGBA{
	entity.KindPlayer:      palette["blue"],
	entity.KindPlatform:    palette["green"],
	entity.KindEnemy:       palette["red"],
	entity.KindCollectible: palette["yellow"],
	entity.KindPowerUp:     palette["purple"],
	entity.KindObstacle:    palette["gray"],
	entity.KindBoss:        palette["orange"],
}

// colorFor resolves a sprite's color from its tag, then its kind
func colorFor(kind entity.Kind, tag string) color.RGBA {
	if c, ok := palette[tag]; ok {
		return c
	}
	if c, ok := kindColors[kind]; ok {
		return c
	}
	return colorUnknown
}
