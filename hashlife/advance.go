package hashlife

import (
	"fmt"

	"github.com/lifegrid/go-hashlife/quadtree"
)

// Advance returns the centered 2^(k-1) x 2^(k-1) region of n advanced
// by exactly steps generations, as a node at level k-1. steps may be
// anything from 0 (the untouched center) up to the macro-step 2^(k-2)
// (where Advance coincides with Step); larger values fail with
// ErrTooManySteps and the caller should Expand first. At level 2 only
// one generation is available, and any positive steps is taken as 1.
// Level below 2 fails with ErrLevelTooLow.
//
// Step jumps by an exponentially large generation count, which is what
// warp-speed evolution wants; Advance provides the small jumps
// interactive viewing needs, still riding the interner for sharing.
func (e *Evaluator) Advance(n *quadtree.Node, steps uint64) (*quadtree.Node, error) {
	if n.Level() < 2 {
		return nil, fmt.Errorf("%w: got level %d", ErrLevelTooLow, n.Level())
	}
	if n.Level() == 2 && steps > 1 {
		steps = 1
	}
	if max := MacroSteps(n.Level()); steps > max {
		return nil, fmt.Errorf("%w: %d > %d at level %d", ErrTooManySteps, steps, max, n.Level())
	}
	return e.advance(n, steps), nil
}

// advance implements Advance for level >= 2 and steps <= MacroSteps.
func (e *Evaluator) advance(n *quadtree.Node, steps uint64) *quadtree.Node {
	u := e.u
	if steps == 0 {
		return u.CenteredSubnode(n.NW(), n.NE(), n.SW(), n.SE())
	}
	if steps == MacroSteps(n.Level()) {
		return e.step(n)
	}
	if n.Level() == 2 {
		// Only one generation exists below the macro-step at level 2.
		return e.evolve4(n)
	}

	key := advKey{steps: steps, id: n.ID()}
	if r, ok := e.adv.Get(key); ok {
		return r
	}

	// Split the total into two phases of at most a half macro-step
	// each. A phase of zero collapses to taking centered subnodes, so
	// for steps <= 2^(k-3) the second pass is pure reassembly.
	half := MacroSteps(n.Level()) / 2
	phase1 := min(steps, half)
	phase2 := steps - phase1

	nw, ne, sw, se := n.NW(), n.NE(), n.SW(), n.SE()
	r00 := e.advance(nw, phase1)
	r01 := e.advance(u.CenteredHorizontal(nw, ne), phase1)
	r02 := e.advance(ne, phase1)
	r10 := e.advance(u.CenteredVertical(nw, sw), phase1)
	r11 := e.advance(u.CenteredSubnode(nw, ne, sw, se), phase1)
	r12 := e.advance(u.CenteredVertical(ne, se), phase1)
	r20 := e.advance(sw, phase1)
	r21 := e.advance(u.CenteredHorizontal(sw, se), phase1)
	r22 := e.advance(se, phase1)

	r := u.Join(
		e.advance(u.Join(r00, r01, r10, r11), phase2),
		e.advance(u.Join(r01, r02, r11, r12), phase2),
		e.advance(u.Join(r10, r11, r20, r21), phase2),
		e.advance(u.Join(r11, r12, r21, r22), phase2),
	)
	e.adv.Add(key, r)
	return r
}
