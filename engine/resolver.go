package engine

import (
	"github.com/lixenwraith/space-dozer/entity"
)

// Move relocates one entity
type Move struct {
	ID entity.ID
	To entity.Position
}

// Outcome is the resolver's verdict on a proposed move.
// Moves and Kills are side effects on other entities and hold whether or not
// the mover itself is accepted.
type Outcome struct {
	Accepted bool
	To       entity.Position
	Moves    []Move
	Kills    []entity.ID
}

func (o *Outcome) kill(id entity.ID) {
	for _, k := range o.Kills {
		if k == id {
			return
		}
	}
	o.Kills = append(o.Kills, id)
}

// absorb takes over the side effects of a nested evaluation
func (o *Outcome) absorb(inner Outcome) {
	for _, id := range inner.Kills {
		o.kill(id)
	}
	o.Moves = append(o.Moves, inner.Moves...)
}

// EvaluateMove decides what happens if mover steps once in direction d.
// It reads the world and never changes it; Apply commits the result.
func (w *World) EvaluateMove(mover *entity.Entity, d entity.Direction) Outcome {
	return w.evaluate(mover, mover.Pos.Step(d), d)
}

func (w *World) evaluate(mover *entity.Entity, target entity.Position, d entity.Direction) Outcome {
	out := Outcome{To: target}

	if w.Grid.OutOfBounds(target) {
		return out
	}

	if w.firstAt(entity.Rock, target, mover.ID) != nil {
		return out
	}

	// Only dirt breaks warp gates; everything else passes over them
	if gate := w.firstAt(entity.Warpgate, target, mover.ID); gate != nil {
		if mover.Kind == entity.Dirt {
			out.kill(gate.ID)
			return out
		}
		out.Accepted = true
		return out
	}

	if dirt := w.firstAt(entity.Dirt, target, mover.ID); dirt != nil {
		if mover.Kind == entity.Alien {
			return out
		}
		pushed := w.evaluate(dirt, target.Step(d), d)
		out.absorb(pushed)
		if pushed.Accepted {
			out.Moves = append(out.Moves, Move{ID: dirt.ID, To: pushed.To})
			out.Accepted = true
		}
		return out
	}

	if alien := w.firstAt(entity.Alien, target, mover.ID); alien != nil {
		switch mover.Kind {
		case entity.Dirt:
			escape := w.evaluate(alien, target.Step(d), d)
			out.absorb(escape)
			if escape.Accepted {
				out.Moves = append(out.Moves, Move{ID: alien.ID, To: escape.To})
				return out
			}
			out.kill(alien.ID)
			out.Accepted = true
		case entity.Dozer:
			out.kill(w.Dozer.ID)
		}
		return out
	}

	if (mover.Kind == entity.Dirt || mover.Kind == entity.Alien) && w.Dozer.Alive() && w.Dozer.At(target) {
		out.kill(w.Dozer.ID)
		return out
	}

	out.Accepted = true
	return out
}

// Apply commits an outcome: kills first, then side moves, then the mover
func (w *World) Apply(mover *entity.Entity, out Outcome) {
	for _, id := range out.Kills {
		if e := w.byID[id]; e != nil {
			w.Kill(e)
		}
	}
	for _, m := range out.Moves {
		if e := w.byID[m.ID]; e != nil && e.Alive() {
			w.relocate(e, m.To)
		}
	}
	if out.Accepted && mover.Alive() {
		w.relocate(mover, out.To)
	}
}

// TryMove evaluates and commits a one-step move, reporting whether the mover moved
func (w *World) TryMove(mover *entity.Entity, d entity.Direction) bool {
	if !mover.Alive() {
		return false
	}
	if mover.Kind == entity.Dozer {
		mover.Face(d)
	}
	out := w.EvaluateMove(mover, d)
	w.Apply(mover, out)
	return out.Accepted
}
