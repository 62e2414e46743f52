package pixelsprite

// DetectEdges turns every empty cell orthogonally adjacent to a body cell
// into a border. Body cells are never rewritten, so the result does not
// depend on scan order and a second pass changes nothing. The scan is
// row-major all the same.
func DetectEdges(g *Grid) {
	for y := range g.H {
		for x := range g.W {
			if g.At(x, y) <= 0 {
				continue
			}
			markBorder(g, x, y-1)
			markBorder(g, x, y+1)
			markBorder(g, x-1, y)
			markBorder(g, x+1, y)
		}
	}
}

func markBorder(g *Grid, x, y int) {
	if g.inside(x, y) && g.At(x, y) == Empty {
		g.Set(x, y, Border)
	}
}
