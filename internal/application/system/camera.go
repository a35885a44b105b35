package system

import "github.com/younwookim/platformer/internal/domain/entity"

// Camera maps world coordinates to screen coordinates.
// Offsets are added to world positions, so they are zero or negative.
type Camera struct {
	OffsetX, OffsetY float64
	ViewW, ViewH     float64
	WorldW, WorldH   float64
}

// NewCamera creates a camera for a viewport inside a world
func NewCamera(viewW, viewH, worldW, worldH float64) *Camera {
	return &Camera{ViewW: viewW, ViewH: viewH, WorldW: worldW, WorldH: worldH}
}

// SetWorld resizes the world the camera is clamped to
func (c *Camera) SetWorld(worldW, worldH float64) {
	c.WorldW = worldW
	c.WorldH = worldH
}

// Follow centers the camera on target, clamped to the world bounds
func (c *Camera) Follow(target entity.Box) {
	cx, cy := target.Center()
	c.OffsetX = followAxis(c.ViewW, c.WorldW, cx)
	c.OffsetY = followAxis(c.ViewH, c.WorldH, cy)
}

// ToScreen translates a world box into screen coordinates
func (c *Camera) ToScreen(b entity.Box) entity.Box {
	return b.Offset(c.OffsetX, c.OffsetY)
}

// followAxis clamps view/2 - center into [-(world-view), 0].
// A world smaller than the view has no room to scroll and pins to 0.
func followAxis(view, world, center float64) float64 {
	if world <= view {
		return 0
	}
	offset := view/2 - center
	lo := -(world - view)
	if offset < lo {
		return lo
	}
	if offset > 0 {
		return 0
	}
	return offset
}
