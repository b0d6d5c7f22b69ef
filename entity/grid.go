package entity

// Grid is the playfield extent, fixed for the lifetime of a game
type Grid struct {
	Width, Height int
}

// FromTerminal sizes a grid from terminal columns and rows, capped at the given maxima
func FromTerminal(cols, rows, maxWidth, maxHeight int) Grid {
	return Grid{Width: min(cols, maxWidth), Height: min(rows, maxHeight)}
}

// OutOfBounds reports whether p lies outside [0,Width] x [0,Height].
// The upper bound is inclusive, so one column and one row past the
// visible area are still reachable.
func (g Grid) OutOfBounds(p Position) bool {
	return p.X < 0 || p.X > g.Width || p.Y < 0 || p.Y > g.Height
}

// Center is where the dozer starts
func (g Grid) Center() Position {
	return Position{X: g.Width / 2, Y: g.Height / 2}
}

// Intner is the slice of math/rand used for cell sampling
type Intner interface {
	Intn(n int) int
}

// Random samples a uniformly random cell in [0,Width) x [0,Height)
func (g Grid) Random(rng Intner) Position {
	return Position{X: rng.Intn(g.Width), Y: rng.Intn(g.Height)}
}

// Cells is the number of visible cells
func (g Grid) Cells() int {
	return g.Width * g.Height
}
