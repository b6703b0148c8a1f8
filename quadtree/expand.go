package quadtree

// Expand returns a node at level+1 whose geometric center is exactly n.
// Each child of n moves to the far corner of an otherwise empty
// quadrant, so the population and the world-centered coordinate of
// every live cell are preserved:
//
//	Expand(n).Cell(x+half, y+half) == n.Cell(x, y)
//
// for all in-range (x, y), with half = 2^(n.Level()-1).
//
// n MUST be at level >= 1 (a single cell has no center to preserve);
// level 0 panics with ErrLeafChildren, MaxLevel with ErrLevelOverflow.
func (u *Universe) Expand(n *Node) *Node {
	if n.level == 0 {
		panic(ErrLeafChildren)
	}
	if n.level >= MaxLevel {
		panic(ErrLevelOverflow)
	}
	e := u.Empty(n.level - 1)
	return u.Join(
		u.Join(e, e, e, n.nw),
		u.Join(e, e, n.ne, e),
		u.Join(e, n.sw, e, e),
		u.Join(n.se, e, e, e),
	)
}
