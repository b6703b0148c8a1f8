package quadtree

// Composition primitives for the hashlife evaluator. Each takes nodes
// at a common level k >= 1 and returns the level k node covering the
// 2^k x 2^k region at the geometric center of the input arrangement.
//
// Like Join, these are hot-path primitives: the level precondition is
// the caller's burden and is not checked.

// CenteredHorizontal returns the region straddling the vertical seam
// between two side-by-side nodes, w on the west and e on the east.
//
//	+----+----+----+----+
//	|    | w. | e. |    |
//	|    | ne | nw |    |
//	+----+----+----+----+
//	|    | w. | e. |    |
//	|    | se | sw |    |
//	+----+----+----+----+
func (u *Universe) CenteredHorizontal(w, e *Node) *Node {
	return u.Join(w.ne, e.nw, w.se, e.sw)
}

// CenteredVertical returns the region straddling the horizontal seam
// between two stacked nodes, n on the north and s on the south.
func (u *Universe) CenteredVertical(n, s *Node) *Node {
	return u.Join(n.sw, n.se, s.nw, s.ne)
}

// CenteredSubnode returns the exact center of a 2x2 arrangement of
// nodes: the inner corner of each input.
func (u *Universe) CenteredSubnode(nw, ne, sw, se *Node) *Node {
	return u.Join(nw.se, ne.sw, sw.ne, se.nw)
}
