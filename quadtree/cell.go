package quadtree

import "fmt"

// SetCell returns the canonical node equal to n with the cell at (x, y)
// set to the given state. Only the path from the root to the cell is
// rebuilt; every other subtree is shared with n. Setting a cell to its
// current state returns n itself.
//
// Coordinates are node-local (top-left origin). Out of range
// coordinates fail with ErrOutOfBounds; the caller may Expand and
// retry.
func (u *Universe) SetCell(n *Node, x, y int64, alive bool) (*Node, error) {
	if !inBounds(n.level, x, y) {
		return nil, fmt.Errorf("%w: (%d,%d) at level %d", ErrOutOfBounds, x, y, n.level)
	}
	return u.setCell(n, x, y, alive), nil
}

func (u *Universe) setCell(n *Node, x, y int64, alive bool) *Node {
	if n.level == 0 {
		return u.Leaf(alive)
	}
	h := half(n.level)
	nw, ne, sw, se := n.nw, n.ne, n.sw, n.se
	switch {
	case x < h && y < h:
		nw = u.setCell(nw, x, y, alive)
	case y < h:
		ne = u.setCell(ne, x-h, y, alive)
	case x < h:
		sw = u.setCell(sw, x, y-h, alive)
	default:
		se = u.setCell(se, x-h, y-h, alive)
	}
	if nw == n.nw && ne == n.ne && sw == n.sw && se == n.se {
		return n
	}
	return u.Join(nw, ne, sw, se)
}
