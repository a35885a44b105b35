package system

import (
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// PhysicsSystem integrates the player's kinematic body
type PhysicsSystem struct {
	config *config.PhysicsConfig
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{config: cfg}
}

// Update runs one tick of gravity, horizontal movement, jump and the floor
// clamp. floor is the world height; zero or less disables the clamp.
// Platform collision runs afterwards in the collision system and may
// override the floor result.
func (s *PhysicsSystem) Update(player *entity.Player, input ActionQuery, floor float64) {
	// Apply gravity
	player.VY += s.config.Gravity

	// Horizontal movement, both directions may apply in the same tick
	if pressed(input, ActionMoveLeft) {
		player.Box.X -= s.config.MoveSpeed
	}
	if pressed(input, ActionMoveRight) {
		player.Box.X += s.config.MoveSpeed
	}
	if player.Box.X < 0 {
		player.Box.X = 0
	}

	// Jump only from the ground
	if pressed(input, ActionJump) && player.OnGround {
		player.VY = -s.config.JumpStrength
	}

	player.Box.Y += player.VY

	s.clampToFloor(player, floor)
}

func (s *PhysicsSystem) clampToFloor(player *entity.Player, floor float64) {
	if floor > 0 && player.Box.Bottom() >= floor {
		player.Box.SetBottom(floor)
		player.OnGround = true
		player.VY = 0
		return
	}
	player.OnGround = false
}
