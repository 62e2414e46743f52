package pixelsprite

// Preset masks. Each call returns a fresh *Mask.

// Spaceship is a 6x12 half ship mirrored on X.
func Spaceship() *Mask {
	return mustMask([][]int{
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 1},
		{0, 0, 0, 0, 1, -1},
		{0, 0, 0, 1, 1, -1},
		{0, 0, 0, 1, 1, -1},
		{0, 0, 1, 1, 1, -1},
		{0, 1, 1, 1, 2, 2},
		{0, 1, 1, 1, 2, 2},
		{0, 1, 1, 1, 2, 2},
		{0, 1, 1, 1, 1, -1},
		{0, 0, 0, 1, 1, 1},
		{0, 0, 0, 0, 0, 0},
	}, true, false)
}

// Dragon is a 12x12 unmirrored silhouette.
func Dragon() *Mask {
	return mustMask([][]int{
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 1, 1, 2, 2, 1, 1, 0, 0, 0},
		{0, 0, 1, 1, 1, 2, 2, 1, 1, 1, 0, 0},
		{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 0},
		{0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 0},
		{0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 0, 0},
		{0, 0, 0, 1, 1, 1, 1, 1, 1, 0, 0, 0},
		{0, 0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	}, false, false)
}

// Robot is a 4x11 half robot mirrored on X.
func Robot() *Mask {
	return mustMask([][]int{
		{0, 0, 0, 0},
		{0, 1, 1, 1},
		{0, 1, 2, 2},
		{0, 0, 1, 2},
		{0, 0, 0, 2},
		{1, 1, 1, 2},
		{0, 1, 1, 2},
		{0, 0, 0, 2},
		{0, 0, 0, 2},
		{0, 1, 2, 2},
		{1, 1, 0, 0},
	}, true, false)
}

func mustMask(grid [][]int, mirrorX, mirrorY bool) *Mask {
	m, err := FromArray(grid, mirrorX, mirrorY)
	if err != nil {
		panic(err)
	}
	return m
}
