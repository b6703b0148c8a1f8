package hashlife

import "github.com/lifegrid/go-hashlife/quadtree"

// ClearCache drops the Step memo and the Advance cache. The universe's
// interner keeps whatever the caller still references; subsequent
// evaluations recompute from the interned structure.
func (e *Evaluator) ClearCache() {
	e.memo = make(map[quadtree.ID]*quadtree.Node)
	e.adv.Purge()
}

// CollectGarbage compacts the universe to the nodes reachable from the
// given live roots (plus the implicitly retained empties) and drops
// both caches, whose entries could otherwise dangle on swept nodes.
//
// Must not be called while an evaluation is in flight.
func (e *Evaluator) CollectGarbage(roots []*quadtree.Node) {
	e.u.Compact(roots)
	e.ClearCache()
}

// CacheLen returns the number of memoized Step results. Intended for
// tests and cache telemetry.
func (e *Evaluator) CacheLen() int {
	return len(e.memo)
}
