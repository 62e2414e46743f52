package pixelsprite

import (
	"image"
	"math"
	"math/rand/v2"
)

// Resolve copies m into a new working grid, collapses the ambiguous codes
// using draws from src and mirrors the result. Edges are not detected.
func Resolve(m *Mask, src rand.Source) *Grid {
	return resolve(m, newStream(src))
}

func resolve(m *Mask, s *stream) *Grid {
	g := newGrid(m.OutputSize())
	applyMask(g, m)
	resolveAmbiguity(g, m.Size(), s)
	if m.mirrorX {
		mirrorX(g)
	}
	if m.mirrorY {
		mirrorY(g)
	}
	return g
}

// applyMask copies every code verbatim into the top-left region.
func applyMask(g *Grid, m *Mask) {
	for y := range m.h {
		for x := range m.w {
			g.Set(x, y, m.At(x, y))
		}
	}
}

// resolveAmbiguity visits the applied region in raster order, one draw per
// ambiguous cell.
func resolveAmbiguity(g *Grid, region image.Point, s *stream) {
	for y := range region.Y {
		for x := range region.X {
			switch g.At(x, y) {
			case BodyOrEmpty:
				if math.Round(s.float()) == 1 {
					g.Set(x, y, Body)
				} else {
					g.Set(x, y, Empty)
				}
			case BorderOrBody:
				if s.float() > 0.5 {
					g.Set(x, y, Body)
				} else {
					g.Set(x, y, Border)
				}
			}
		}
	}
}

// mirrorX copies the left half onto the right half, column by column.
func mirrorX(g *Grid) {
	half := g.W / 2
	for y := range g.H {
		for x := range half {
			g.Set(g.W-1-x, y, g.At(x, y))
		}
	}
}

// mirrorY copies the top half onto the bottom half. Run after mirrorX so
// both mirrored columns are carried down.
func mirrorY(g *Grid) {
	half := g.H / 2
	for y := range half {
		for x := range g.W {
			g.Set(x, g.H-1-y, g.At(x, y))
		}
	}
}
