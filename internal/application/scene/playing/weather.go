package playing

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/platformer/internal/infrastructure/config"
)

const dropLength = 6.0

type drop struct {
	x, y float64
}

// Weather is a screen-space rain overlay. It is cosmetic and never feeds
// back into the simulation, so it has its own random source.
type Weather struct {
	drops   []drop
	speed   float64
	wind    float64
	screenW float64
	screenH float64
	rng     *rand.Rand
}

// NewWeather creates rain for a screen. Returns nil when weather is disabled.
func NewWeather(cfg config.WeatherConfig, screenW, screenH int, seed int64) *Weather {
	if !cfg.Enabled || cfg.Drops <= 0 {
		return nil
	}

	w := &Weather{
		drops:   make([]drop, cfg.Drops),
		speed:   cfg.Speed,
		wind:    cfg.Wind,
		screenW: float64(screenW),
		screenH: float64(screenH),
		rng:     rand.New(rand.NewSource(seed)),
	}
	for i := range w.drops {
		w.drops[i] = drop{
			x: w.rng.Float64() * w.screenW,
			y: w.rng.Float64() * w.screenH,
		}
	}
	return w
}

// Update moves every drop one tick, respawning drops that leave the screen
func (w *Weather) Update() {
	if w == nil {
		return
	}
	for i := range w.drops {
		d := &w.drops[i]
		d.x += w.wind
		d.y += w.speed

		if d.y > w.screenH {
			d.y -= w.screenH + dropLength
			d.x = w.rng.Float64() * w.screenW
		}
		if d.x > w.screenW {
			d.x -= w.screenW
		} else if d.x < 0 {
			d.x += w.screenW
		}
	}
}

// Draw renders the drops as short slanted lines
func (w *Weather) Draw(screen *ebiten.Image) {
	if w == nil {
		return
	}
	dx := 0.0
	if w.speed != 0 {
		dx = w.wind / w.speed * dropLength
	}
	for _, d := range w.drops {
		ebitenutil.DrawLine(screen, d.x, d.y, d.x+dx, d.y+dropLength, colorRain)
	}
}
