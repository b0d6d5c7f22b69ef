package engine

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-dozer/entity"
	"github.com/lixenwraith/space-dozer/input"
)

// scriptedDice replays fixed rolls. Once a script runs dry Intn returns 0
// and Float64 returns 0.99, which never opens a warp gate.
type scriptedDice struct {
	ints   []int
	floats []float64
}

func (d *scriptedDice) Intn(n int) int {
	if len(d.ints) == 0 {
		return 0
	}
	v := d.ints[0]
	d.ints = d.ints[1:]
	return v % n
}

func (d *scriptedDice) Float64() float64 {
	if len(d.floats) == 0 {
		return 0.99
	}
	v := d.floats[0]
	d.floats = d.floats[1:]
	return v
}

// constDice always rolls the same values
type constDice struct {
	i int
	f float64
}

func (d constDice) Intn(n int) int   { return d.i % n }
func (d constDice) Float64() float64 { return d.f }

type queuedKeys struct {
	keys []input.Key
}

func (q *queuedKeys) push(r rune) {
	q.keys = append(q.keys, input.Key{Code: tcell.KeyRune, Rune: r})
}

func (q *queuedKeys) PollKey() (input.Key, bool) {
	if len(q.keys) == 0 {
		return input.Key{}, false
	}
	k := q.keys[0]
	q.keys = q.keys[1:]
	return k, true
}

type recordingView struct {
	renders int
	erased  []entity.Position
}

func (v *recordingView) Render(*World) { v.renders++ }

func (v *recordingView) Erase(pos entity.Position) {
	v.erased = append(v.erased, pos)
}

func pos(x, y int) entity.Position {
	return entity.Position{X: x, Y: y}
}

// emptyWorld is a 10x10 world holding only the dozer at (5,5)
func emptyWorld() *World {
	return NewWorld(entity.Grid{Width: 10, Height: 10})
}
