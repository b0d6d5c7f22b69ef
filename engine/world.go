package engine

import (
	"slices"

	"github.com/lixenwraith/space-dozer/entity"
)

// World owns every entity of one game. All mutation happens on the game loop.
// Entities other than the dozer are moved through the world only, since
// assigning Pos directly would leave the cell index stale.
type World struct {
	Grid entity.Grid

	Rocks     []*entity.Entity
	Dirts     []*entity.Entity
	Warpgates []*entity.Entity
	Aliens    []*entity.Entity
	Dozer     *entity.Entity

	byID   map[entity.ID]*entity.Entity
	cells  [len(entity.Kinds)]cellIndex
	nextID entity.ID
	score  int

	onKill func(*entity.Entity)
}

// NewWorld creates an empty world with the dozer at the grid center
func NewWorld(grid entity.Grid) *World {
	w := &World{
		Grid:   grid,
		byID:   make(map[entity.ID]*entity.Entity),
		nextID: 1,
	}
	for k := range w.cells {
		w.cells[k] = make(cellIndex)
	}
	w.Dozer = w.create(entity.Dozer, grid.Center())
	return w
}

// OnKill installs a hook invoked once for every entity that dies
func (w *World) OnKill(fn func(*entity.Entity)) {
	w.onKill = fn
}

// Score is the number of aliens killed so far
func (w *World) Score() int {
	return w.score
}

// Entity returns the entity with the given id, dead or alive
func (w *World) Entity(id entity.ID) *entity.Entity {
	return w.byID[id]
}

// Add places a new entity of kind k at pos unconditionally.
// Adding a dozer is refused since the dozer is a singleton.
func (w *World) Add(k entity.Kind, pos entity.Position) *entity.Entity {
	if k == entity.Dozer {
		return nil
	}
	e := w.create(k, pos)
	switch k {
	case entity.Rock:
		w.Rocks = append(w.Rocks, e)
	case entity.Dirt:
		w.Dirts = append(w.Dirts, e)
	case entity.Warpgate:
		w.Warpgates = append(w.Warpgates, e)
	case entity.Alien:
		w.Aliens = append(w.Aliens, e)
	}
	w.cells[k].insert(e)
	return e
}

// Spawn adds an entity during play; nothing spawns on the dozer's cell
func (w *World) Spawn(k entity.Kind, pos entity.Position) *entity.Entity {
	if w.Dozer.At(pos) {
		return nil
	}
	return w.Add(k, pos)
}

func (w *World) create(k entity.Kind, pos entity.Position) *entity.Entity {
	e := entity.New(w.nextID, k, pos)
	w.byID[e.ID] = e
	w.nextID++
	return e
}

// Kill marks e dead. Killing an alien scores before it is marked dead.
// Returns false if e was already dead.
func (w *World) Kill(e *entity.Entity) bool {
	if !e.Alive() {
		return false
	}
	if e.Kind == entity.Alien {
		w.score++
	}
	e.Kill()
	if w.onKill != nil {
		w.onKill(e)
	}
	return true
}

// Sweep drops dead warp gates and aliens from their collections.
// Rocks and dirt never die under these rules.
func (w *World) Sweep() {
	w.Warpgates = w.sweep(w.Warpgates)
	w.Aliens = w.sweep(w.Aliens)
}

func (w *World) sweep(list []*entity.Entity) []*entity.Entity {
	return slices.DeleteFunc(list, func(e *entity.Entity) bool {
		if e.Alive() {
			return false
		}
		delete(w.byID, e.ID)
		w.cells[e.Kind].remove(e)
		return true
	})
}

// relocate moves e and keeps the cell index current. The dozer is not indexed.
func (w *World) relocate(e *entity.Entity, to entity.Position) {
	if e.Kind == entity.Dozer {
		e.Pos = to
		return
	}
	w.cells[e.Kind].remove(e)
	e.Pos = to
	w.cells[e.Kind].insert(e)
}

// firstAt returns the first live entity of kind k at pos in collection
// order, skipping the entity with id skip
func (w *World) firstAt(k entity.Kind, pos entity.Position, skip entity.ID) *entity.Entity {
	return w.cells[k].first(pos, skip)
}

// Counts returns the number of live entities per kind
func (w *World) Counts() map[entity.Kind]int {
	counts := make(map[entity.Kind]int, len(entity.Kinds))
	for _, list := range [][]*entity.Entity{w.Rocks, w.Dirts, w.Warpgates, w.Aliens} {
		for _, e := range list {
			if e.Alive() {
				counts[e.Kind]++
			}
		}
	}
	if w.Dozer.Alive() {
		counts[entity.Dozer] = 1
	}
	return counts
}
