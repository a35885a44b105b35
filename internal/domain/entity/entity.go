package entity

// Enemy and boss variant names used by config archetypes
const (
	VariantBasic     = "basic"
	VariantJumping   = "jumping"
	VariantAdvanced  = "advanced"
	VariantBoss      = "boss"
	VariantFinalBoss = "final_boss"
)

// Entity is the single record shared by every non-player game object.
// Kind selects the collection it lives in, Move selects its update rule.
type Entity struct {
	ID   EntityID
	Kind Kind
	Box  Box
	Tag  string // visual tag handed to the renderer

	Move Movement

	OriginX, OriginY float64

	// Variant is the archetype name (basic, jumping, boss, ...)
	Variant string

	// Power-up only
	Effect PowerUpEffect

	// Boss only
	Health        int
	AttackPattern string
}

// NewEntity creates an entity at its origin
func NewEntity(id EntityID, kind Kind, box Box, tag string) *Entity {
	return &Entity{
		ID:      id,
		Kind:    kind,
		Box:     box,
		Tag:     tag,
		Move:    Static(),
		OriginX: box.X,
		OriginY: box.Y,
	}
}

// IsHazard reports whether touching the entity hurts the player
func (e *Entity) IsHazard() bool {
	return e.Kind == KindEnemy || e.Kind == KindObstacle || e.Kind == KindBoss
}

// Defeated reports whether a boss has run out of health
func (e *Entity) Defeated() bool {
	return e.Kind == KindBoss && e.Health <= 0
}
