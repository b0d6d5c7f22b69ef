package entity

// ID identifies an entity for the lifetime of a world
type ID uint32

// ChargeThreshold is the charge a warp gate must exceed before it activates
const ChargeThreshold = 20

// Entity is a single occupant of a grid cell.
// Position changes only through the engine resolver; kind never changes.
type Entity struct {
	ID   ID
	Kind Kind
	Pos  Position

	dead bool

	// Warpgate only
	charge int

	// Dozer only
	heading    Direction
	hasHeading bool
}

// New builds an entity of the given kind at pos
func New(id ID, kind Kind, pos Position) *Entity {
	switch kind {
	case Rock, Dirt, Warpgate, Alien, Dozer:
		return &Entity{ID: id, Kind: kind, Pos: pos}
	default:
		panic("entity: unknown kind " + kind.String())
	}
}

// Alive reports whether the entity has not been killed
func (e *Entity) Alive() bool {
	return !e.dead
}

// Kill marks the entity dead, returning false if it already was
func (e *Entity) Kill() bool {
	if e.dead {
		return false
	}
	e.dead = true
	return true
}

// At reports co-location, the relation all collision checks use
func (e *Entity) At(p Position) bool {
	return e.Pos == p
}

// Charge returns a warp gate's charge level
func (e *Entity) Charge() int {
	return e.charge
}

// Ready reports whether a warp gate has charged past the threshold
func (e *Entity) Ready() bool {
	return e.Kind == Warpgate && e.charge > ChargeThreshold
}

// Recharge advances a warp gate's charge by one turn
func (e *Entity) Recharge() {
	if e.Kind == Warpgate && !e.Ready() {
		e.charge++
	}
}

// Face records the direction the dozer last tried to move
func (e *Entity) Face(d Direction) {
	e.heading = d
	e.hasHeading = true
}

// Heading returns the last faced direction, ok is false before the first move
func (e *Entity) Heading() (d Direction, ok bool) {
	return e.heading, e.hasHeading
}
