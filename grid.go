package pixelsprite

import (
	"image"
	"slices"
)

// Grid is the working grid of one generation call. After resolution every
// cell is Border, Empty or Body.
type Grid struct {
	W, H  int
	Cells []int // row-major, len = W*H
}

func newGrid(size image.Point) *Grid {
	return &Grid{
		W:     size.X,
		H:     size.Y,
		Cells: make([]int, size.X*size.Y),
	}
}

func labelOffset(w, x, y int) int {
	return y*w + x
}

func (g *Grid) At(x, y int) int {
	return g.Cells[labelOffset(g.W, x, y)]
}

func (g *Grid) Set(x, y, v int) {
	g.Cells[labelOffset(g.W, x, y)] = v
}

func (g *Grid) inside(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, Cells: make([]int, len(g.Cells))}
	copy(c.Cells, g.Cells)
	return c
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(o *Grid) bool {
	return g.W == o.W && g.H == o.H && slices.Equal(g.Cells, o.Cells)
}
