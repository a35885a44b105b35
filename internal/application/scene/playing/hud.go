package playing

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/platformer/internal/application/world"
	"github.com/younwookim/platformer/internal/domain/entity"
)

// Minimap placement in screen pixels
const (
	minimapW      = 200.0
	minimapH      = 50.0
	minimapMargin = 10.0
)

const controlsText = "Arrows/A/D: Move | Space/W: Jump | ESC: Pause | F5: Save | F9: Load | R: Restart | Q: Quit"

// hudText returns the status lines printed in the top-left corner
func hudText(h world.HUD, framerate int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Level %d: %s\n", h.LevelID, h.LevelName)
	fmt.Fprintf(&b, "Score: %d  Lives: %d\n", h.Score, h.ExtraLives)
	if h.Invincible {
		secs := 0.0
		if framerate > 0 {
			secs = float64(h.InvincibleLeft) / float64(framerate)
		}
		fmt.Fprintf(&b, "Invincible %.1fs\n", secs)
	}
	if len(h.Achievements) > 0 {
		fmt.Fprintf(&b, "Achievements: %d\n", len(h.Achievements))
	}
	return b.String()
}

// healthRatio returns the fraction of the health bar to fill
func healthRatio(h world.HUD) float64 {
	if h.MaxHealth <= 0 {
		return 0
	}
	r := float64(h.Health) / float64(h.MaxHealth)
	return min(max(r, 0), 1)
}

// miniRect is a rectangle scaled into the minimap
type miniRect struct {
	kind       entity.Kind
	tag        string
	x, y, w, h float64
}

// minimapRects scales every sprite into a mapW x mapH box with its
// origin at (ox, oy). Sprites are at least one pixel wide so small
// pickups stay visible.
func minimapRects(f world.RenderFrame, ox, oy, mapW, mapH float64) []miniRect {
	if f.WorldW <= 0 || f.WorldH <= 0 {
		return nil
	}
	sx := mapW / f.WorldW
	sy := mapH / f.WorldH

	rects := make([]miniRect, 0, len(f.Sprites))
	for _, s := range f.Sprites {
		rects = append(rects, miniRect{
			kind: s.Kind,
			tag:  s.Tag,
			x:    ox + s.Box.X*sx,
			y:    oy + s.Box.Y*sy,
			w:    max(s.Box.W*sx, 1),
			h:    max(s.Box.H*sy, 1),
		})
	}
	return rects
}

// viewportRect returns the camera's view outline inside the minimap
func viewportRect(f world.RenderFrame, screenW, screenH, ox, oy, mapW, mapH float64) miniRect {
	sx := mapW / f.WorldW
	sy := mapH / f.WorldH
	return miniRect{
		x: ox - f.OffsetX*sx,
		y: oy - f.OffsetY*sy,
		w: min(screenW, f.WorldW) * sx,
		h: min(screenH, f.WorldH) * sy,
	}
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	h := p.frame.HUD

	// Health bar
	barX := 10.0
	barY := float64(p.screenH - 20)
	barW := 100.0
	barH := 10.0
	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)
	fg := colorHealthFG
	if healthRatio(h) < 0.3 {
		fg = colorHealthLow
	}
	ebitenutil.DrawRect(screen, barX, barY, barW*healthRatio(h), barH, fg)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HP %d/%d", h.Health, h.MaxHealth), int(barX+barW+8), int(barY)-3)

	ebitenutil.DebugPrintAt(screen, hudText(h, p.framerate), 10, 10)
	ebitenutil.DebugPrintAt(screen, controlsText, 10, p.screenH-40)

	if msg := p.Message(); msg != "" {
		ebitenutil.DebugPrintAt(screen, msg, p.screenW/2-len(msg)*3, 40)
	}
}

func (p *Playing) drawMinimap(screen *ebiten.Image) {
	f := p.frame
	if f.WorldW <= 0 || f.WorldH <= 0 {
		return
	}
	ox := float64(p.screenW) - minimapW - minimapMargin
	oy := minimapMargin

	ebitenutil.DrawRect(screen, ox, oy, minimapW, minimapH, colorMinimapBG)
	for _, r := range minimapRects(f, ox, oy, minimapW, minimapH) {
		ebitenutil.DrawRect(screen, r.x, r.y, r.w, r.h, colorFor(r.kind, r.tag))
	}

	v := viewportRect(f, float64(p.screenW), float64(p.screenH), ox, oy, minimapW, minimapH)
	ebitenutil.DrawLine(screen, v.x, v.y, v.x+v.w, v.y, colorMinimapBox)
	ebitenutil.DrawLine(screen, v.x, v.y+v.h, v.x+v.w, v.y+v.h, colorMinimapBox)
	ebitenutil.DrawLine(screen, v.x, v.y, v.x, v.y+v.h, colorMinimapBox)
	ebitenutil.DrawLine(screen, v.x+v.w, v.y, v.x+v.w, v.y+v.h, colorMinimapBox)
}
