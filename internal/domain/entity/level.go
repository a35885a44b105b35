package entity

// Level owns every non-player entity of one level.
// Each collection keeps insertion order so draw and collision order is
// deterministic.
type Level struct {
	ID        int
	Name      string
	Width     float64
	Height    float64
	BossLevel bool

	Platforms    []*Entity
	Enemies      []*Entity
	Collectibles []*Entity
	PowerUps     []*Entity
	Obstacles    []*Entity
	Bosses       []*Entity

	nextID EntityID
}

// NewLevel creates an empty level of the given world size
func NewLevel(id int, width, height float64) *Level {
	return &Level{
		ID:     id,
		Width:  width,
		Height: height,
		nextID: 1,
	}
}

// NextID returns a fresh entity ID for this level
func (l *Level) NextID() EntityID {
	if l.nextID == 0 {
		l.nextID = 1
	}
	id := l.nextID
	l.nextID++
	return id
}

// Add appends the entity to the collection matching its kind
func (l *Level) Add(e *Entity) {
	if e.ID == 0 {
		e.ID = l.NextID()
	}
	switch e.Kind {
	case KindPlatform:
		l.Platforms = append(l.Platforms, e)
	case KindEnemy:
		l.Enemies = append(l.Enemies, e)
	case KindCollectible:
		l.Collectibles = append(l.Collectibles, e)
	case KindPowerUp:
		l.PowerUps = append(l.PowerUps, e)
	case KindObstacle:
		l.Obstacles = append(l.Obstacles, e)
	case KindBoss:
		l.Bosses = append(l.Bosses, e)
	}
}

// Clear empties every collection
func (l *Level) Clear() {
	l.Platforms = nil
	l.Enemies = nil
	l.Collectibles = nil
	l.PowerUps = nil
	l.Obstacles = nil
	l.Bosses = nil
	l.nextID = 1
}

// All returns every active entity in draw order
func (l *Level) All() []*Entity {
	all := make([]*Entity, 0, l.Count())
	all = append(all, l.Platforms...)
	all = append(all, l.Collectibles...)
	all = append(all, l.PowerUps...)
	all = append(all, l.Obstacles...)
	all = append(all, l.Enemies...)
	all = append(all, l.Bosses...)
	return all
}

// Count returns the number of active entities
func (l *Level) Count() int {
	return len(l.Platforms) + len(l.Enemies) + len(l.Collectibles) +
		len(l.PowerUps) + len(l.Obstacles) + len(l.Bosses)
}

// Movers returns every entity that runs a movement update, in update order
func (l *Level) Movers() []*Entity {
	movers := make([]*Entity, 0, len(l.Platforms)+len(l.Enemies)+len(l.Obstacles)+len(l.Bosses))
	movers = append(movers, l.Platforms...)
	movers = append(movers, l.Enemies...)
	movers = append(movers, l.Obstacles...)
	movers = append(movers, l.Bosses...)
	return movers
}

// Bounds returns the world width and height
func (l *Level) Bounds() (float64, float64) {
	return l.Width, l.Height
}
