package engine

import (
	"github.com/lixenwraith/space-dozer/entity"
)

// Dice is the randomness the rules consume; *rand.Rand satisfies it
type Dice interface {
	Intn(n int) int
	Float64() float64
}

// Densities maps each populated kind to its fraction of grid cells
type Densities map[entity.Kind]float64

// populationOrder fixes which kinds are seeded and in what order
var populationOrder = [...]entity.Kind{entity.Rock, entity.Dirt, entity.Warpgate, entity.Alien}

// Populate seeds floor(cells*density) entities of each kind at random cells.
// Rocks never stack on rocks; every other kind may overlap anything.
func (w *World) Populate(densities Densities, dice Dice) {
	cells := w.Grid.Cells()
	for _, k := range populationOrder {
		n := int(float64(cells) * densities[k])
		for i := 0; i < n; i++ {
			pos := w.Grid.Random(dice)
			if k == entity.Rock && w.firstAt(entity.Rock, pos, 0) != nil {
				continue
			}
			w.Add(k, pos)
		}
	}
}

// warpgateYield is indexed by a roll in [0,3): one rock to two aliens
var warpgateYield = [...]entity.Kind{entity.Rock, entity.Alien, entity.Alien}

// ChargeWarpgates advances every live gate. A gate already past the
// threshold activates instead: it emits a rock or an alien on its own
// cell and dies. Returns the entities emitted.
func (w *World) ChargeWarpgates(dice Dice) []*entity.Entity {
	var emitted []*entity.Entity
	gates := w.Warpgates[:len(w.Warpgates):len(w.Warpgates)]
	for _, g := range gates {
		if !g.Alive() {
			continue
		}
		if !g.Ready() {
			g.Recharge()
			continue
		}
		if e := w.Spawn(warpgateYield[dice.Intn(len(warpgateYield))], g.Pos); e != nil {
			emitted = append(emitted, e)
		}
		w.Kill(g)
	}
	return emitted
}

// OpenWarpgates gives every live alien a chance to leave a warp gate on its cell
func (w *World) OpenWarpgates(dice Dice, chance float64) []*entity.Entity {
	var opened []*entity.Entity
	aliens := w.Aliens[:len(w.Aliens):len(w.Aliens)]
	for _, a := range aliens {
		if !a.Alive() {
			continue
		}
		if dice.Float64() < chance {
			if g := w.Spawn(entity.Warpgate, a.Pos); g != nil {
				opened = append(opened, g)
			}
		}
	}
	return opened
}

// WanderAliens moves every live alien one step in a random direction
func (w *World) WanderAliens(dice Dice) {
	aliens := w.Aliens[:len(w.Aliens):len(w.Aliens)]
	for _, a := range aliens {
		if !a.Alive() {
			continue
		}
		w.TryMove(a, entity.Directions[dice.Intn(len(entity.Directions))])
	}
}

// TurnReport lists what one slow tick brought into the world
type TurnReport struct {
	Emitted []*entity.Entity // rocks and aliens from activated gates
	Opened  []*entity.Entity // gates left behind by aliens
}

// Turn runs one slow tick: warp gates first, then alien gate spawns, then alien moves
func (w *World) Turn(dice Dice, warpChance float64) TurnReport {
	var r TurnReport
	r.Emitted = w.ChargeWarpgates(dice)
	r.Opened = w.OpenWarpgates(dice, warpChance)
	w.WanderAliens(dice)
	return r
}
