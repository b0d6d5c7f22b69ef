package entity

import "fmt"

// Direction is a unit step along one axis
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions is indexed by the value a random roll in [0,4) produces
var Directions = [...]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", d)
}

// Delta returns the column and row offset of one step
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Position is a grid cell, X is the column and Y the row
type Position struct {
	X, Y int
}

// Step returns the neighbouring cell in direction d
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
