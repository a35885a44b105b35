package world

import (
	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/domain/entity"
)

// Sprite is one entity handed to the renderer
type Sprite struct {
	Kind   entity.Kind
	Box    entity.Box // world coordinates
	Screen entity.Box // Box through the camera
	Tag    string
}

// HUD carries the values the renderer prints over the scene
type HUD struct {
	Score      int
	Health     int
	MaxHealth  int
	ExtraLives int

	Invincible     bool
	InvincibleLeft uint64 // ticks

	LevelID   int
	LevelName string
	State     state.GameState
	Tick      uint64

	Achievements []string
}

// RenderFrame is the per-tick handoff to the renderer.
// Sprites are in draw order with the player last.
type RenderFrame struct {
	Sprites          []Sprite
	OffsetX, OffsetY float64
	WorldW, WorldH   float64
	HUD              HUD
}

// Frame builds the render handoff for the current tick
func (w *World) Frame() RenderFrame {
	all := w.level.All()
	sprites := make([]Sprite, 0, len(all)+1)
	for _, e := range all {
		sprites = append(sprites, w.sprite(e.Kind, e.Box, e.Tag))
	}
	sprites = append(sprites, w.sprite(entity.KindPlayer, w.player.Box, w.cfg.Player.Tag))

	return RenderFrame{
		Sprites: sprites,
		OffsetX: w.camera.OffsetX,
		OffsetY: w.camera.OffsetY,
		WorldW:  w.level.Width,
		WorldH:  w.level.Height,
		HUD:     w.hud(),
	}
}

func (w *World) sprite(kind entity.Kind, box entity.Box, tag string) Sprite {
	return Sprite{Kind: kind, Box: box, Screen: w.camera.ToScreen(box), Tag: tag}
}

func (w *World) hud() HUD {
	p := w.player
	h := HUD{
		Score:        p.Score,
		Health:       p.Health,
		MaxHealth:    p.MaxHealth,
		ExtraLives:   p.ExtraLives,
		Invincible:   p.Invincible,
		LevelID:      w.level.ID,
		LevelName:    w.level.Name,
		State:        w.state,
		Tick:         w.tick,
		Achievements: p.AchievementList(),
	}
	if p.Invincible {
		elapsed := w.tick - p.InvincibleSince
		if elapsed < w.invincibilityTicks {
			h.InvincibleLeft = w.invincibilityTicks - elapsed
		}
	}
	return h
}
