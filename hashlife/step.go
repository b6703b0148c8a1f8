package hashlife

import (
	"fmt"

	"github.com/lifegrid/go-hashlife/quadtree"
)

// Step returns the centered 2^(k-1) x 2^(k-1) region of n advanced by
// exactly 2^(k-2) generations, as a node at level k-1. It fails with
// ErrLevelTooLow below level 2, the smallest square for which the rule
// has enough neighbor context to evolve an interior.
func (e *Evaluator) Step(n *quadtree.Node) (*quadtree.Node, error) {
	if n.Level() < 2 {
		return nil, fmt.Errorf("%w: got level %d", ErrLevelTooLow, n.Level())
	}
	return e.step(n), nil
}

// step implements Step for n.Level() >= 2.
func (e *Evaluator) step(n *quadtree.Node) *quadtree.Node {
	if r, ok := e.memo[n.ID()]; ok {
		return r
	}
	var r *quadtree.Node
	switch {
	case n.Empty():
		r = e.u.Empty(n.Level() - 1)
	case n.Level() == 2:
		r = e.evolve4(n)
	default:
		r = e.stepRec(n)
	}
	e.memo[n.ID()] = r
	return r
}

func (e *Evaluator) stepRec(n *quadtree.Node) *quadtree.Node {
	u := e.u
	nw, ne, sw, se := n.NW(), n.NE(), n.SW(), n.SE()

	// Nine overlapping level k-1 squares covering n, each stepped a
	// half macro-step into the future.
	r00 := e.step(nw)
	r01 := e.step(u.CenteredHorizontal(nw, ne))
	r02 := e.step(ne)
	r10 := e.step(u.CenteredVertical(nw, sw))
	r11 := e.step(u.CenteredSubnode(nw, ne, sw, se))
	r12 := e.step(u.CenteredVertical(ne, se))
	r20 := e.step(sw)
	r21 := e.step(u.CenteredHorizontal(sw, se))
	r22 := e.step(se)

	// Reassemble into four level k-1 intermediates sharing the middle
	// result, and step them for the second half macro-step.
	return u.Join(
		e.step(u.Join(r00, r01, r10, r11)),
		e.step(u.Join(r01, r02, r11, r12)),
		e.step(u.Join(r10, r11, r20, r21)),
		e.step(u.Join(r11, r12, r21, r22)),
	)
}

// evolve4 is the base case: a level 2 (4x4) node whose inner 2x2 is
// evolved one generation under B3/S23.
func (e *Evaluator) evolve4(n *quadtree.Node) *quadtree.Node {
	bm := bitmap4(n)
	return e.u.Join(
		e.u.Leaf(nextCell(bm, 1, 1)),
		e.u.Leaf(nextCell(bm, 2, 1)),
		e.u.Leaf(nextCell(bm, 1, 2)),
		e.u.Leaf(nextCell(bm, 2, 2)),
	)
}

// bitmap4 packs the sixteen cells of a level 2 node into a uint16,
// bit y*4+x.
func bitmap4(n *quadtree.Node) uint16 {
	var bm uint16
	for y := int64(0); y < 4; y++ {
		for x := int64(0); x < 4; x++ {
			if n.Cell(x, y) {
				bm |= 1 << (y*4 + x)
			}
		}
	}
	return bm
}

// nextCell applies B3/S23 to the cell at (x, y) of a packed 4x4
// bitmap. (x, y) MUST be one of the four inner positions, so all eight
// Moore neighbors are present in the bitmap.
func nextCell(bm uint16, x, y int) bool {
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if bm&(1<<((y+dy)*4+(x+dx))) != 0 {
				neighbors++
			}
		}
	}
	if neighbors == 3 {
		return true
	}
	return neighbors == 2 && bm&(1<<(y*4+x)) != 0
}
