package hashlife

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lifegrid/go-hashlife/quadtree"
)

// advCacheSize bounds the Advance result cache. Advance results depend
// on (node, steps) jointly, so unlike the Step memo the key space is
// not bounded by the interner and the cache must evict.
const advCacheSize = 1 << 16

// advKey identifies an Advance result.
type advKey struct {
	steps uint64
	id    quadtree.ID
}

// Evaluator evolves nodes of a single Universe. It owns the Step memo
// (keyed by node id) and a bounded cache of Advance results.
//
// An Evaluator is not safe for concurrent use, and none of its caches
// may be cleared or compacted while an evaluation is in flight.
type Evaluator struct {
	u    *quadtree.Universe
	memo map[quadtree.ID]*quadtree.Node
	adv  *lru.Cache[advKey, *quadtree.Node]
}

// New returns an Evaluator over u with empty caches.
func New(u *quadtree.Universe) *Evaluator {
	adv, err := lru.New[advKey, *quadtree.Node](advCacheSize)
	if err != nil {
		panic(err) // only fails for a non-positive size
	}
	return &Evaluator{
		u:    u,
		memo: make(map[quadtree.ID]*quadtree.Node),
		adv:  adv,
	}
}

// Universe returns the universe this evaluator operates on.
func (e *Evaluator) Universe() *quadtree.Universe { return e.u }

// MacroSteps returns 2^(level-2), the number of generations a Step
// advances a node at the given level. level MUST be in [2, MaxLevel].
func MacroSteps(level uint8) uint64 {
	return 1 << (level - 2)
}
