package quadtree

// Width returns the side length 2^level of a node at the given level.
func Width(level uint8) int64 {
	return int64(1) << level
}

// half returns 2^(level-1), the side length of a child quadrant.
// level MUST be >= 1.
func half(level uint8) int64 {
	return int64(1) << (level - 1)
}

// inBounds reports whether (x, y) addresses a cell of a node at the
// given level.
func inBounds(level uint8, x, y int64) bool {
	w := Width(level)
	return x >= 0 && y >= 0 && x < w && y < w
}
