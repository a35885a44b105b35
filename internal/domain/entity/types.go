package entity

// EntityID is a unique identifier for an entity within a level
type EntityID uint32

// Kind tags which collection an entity belongs to
type Kind int

const (
	KindPlayer Kind = iota
	KindPlatform
	KindEnemy
	KindCollectible
	KindPowerUp
	KindObstacle
	KindBoss
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindPlatform:
		return "platform"
	case KindEnemy:
		return "enemy"
	case KindCollectible:
		return "collectible"
	case KindPowerUp:
		return "power_up"
	case KindObstacle:
		return "obstacle"
	case KindBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Axis is the axis a mover patrols along
type Axis int

const (
	AxisNone Axis = iota
	AxisHorizontal
	AxisVertical
)

// String returns the config name of the axis
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return "none"
	}
}

// ParseAxis converts a config string into an Axis.
// Unknown or empty values mean a static entity.
func ParseAxis(s string) Axis {
	switch s {
	case "horizontal", "x":
		return AxisHorizontal
	case "vertical", "y":
		return AxisVertical
	default:
		return AxisNone
	}
}

// PowerUpEffect is the effect applied when a power-up is picked up
type PowerUpEffect int

const (
	EffectNone PowerUpEffect = iota
	EffectSpeed
	EffectInvincibility
	EffectExtraLife
)

// String returns the config name of the effect
func (e PowerUpEffect) String() string {
	switch e {
	case EffectSpeed:
		return "speed"
	case EffectInvincibility:
		return "invincibility"
	case EffectExtraLife:
		return "extra_life"
	default:
		return "none"
	}
}

// ParseEffect converts a config string into a PowerUpEffect
func ParseEffect(s string) PowerUpEffect {
	switch s {
	case "speed":
		return EffectSpeed
	case "invincibility":
		return EffectInvincibility
	case "extra_life":
		return EffectExtraLife
	default:
		return EffectNone
	}
}
