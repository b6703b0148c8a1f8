// Package life wraps a quadtree universe and a hashlife evaluator into
// a World with the coordinate and lifecycle policies the core leaves to
// its callers: a signed world coordinate system centered on (0,0),
// expand-and-retry on out-of-range writes, border padding before
// evolution, shrinking afterwards, a big-integer generation counter,
// and periodic cache garbage collection.
package life

import (
	"errors"

	"github.com/holiman/uint256"

	"github.com/lifegrid/go-hashlife/hashlife"
	"github.com/lifegrid/go-hashlife/quadtree"
	"github.com/lifegrid/go-hashlife/rle"
)

// DefaultGCInterval is how many evolution calls pass between garbage
// collections of the evaluator caches and the interner.
const DefaultGCInterval = 20

// initialLevel sizes a fresh World; it grows on demand.
const initialLevel = uint8(4)

// World is a single infinite board. The zero value is not usable; use
// NewWorld. A World is not safe for concurrent use.
type World struct {
	u    *quadtree.Universe
	ev   *hashlife.Evaluator
	root *quadtree.Node

	gen uint256.Int

	// GCInterval controls the garbage collection cadence; zero
	// disables automatic collection.
	GCInterval int
	sinceGC    int
}

// NewWorld returns an empty World at generation zero.
func NewWorld() *World {
	u := quadtree.New()
	return &World{
		u:          u,
		ev:         hashlife.New(u),
		root:       u.Empty(initialLevel),
		GCInterval: DefaultGCInterval,
	}
}

// Root returns the current root node. Treat it and its children as
// immutable; it is replaced by every mutating call.
func (w *World) Root() *quadtree.Node { return w.root }

// Universe returns the underlying canonical universe.
func (w *World) Universe() *quadtree.Universe { return w.u }

// Population returns the number of live cells.
func (w *World) Population() uint64 { return w.root.Population() }

// Generation returns the number of generations evolved since creation.
// Warp stepping at level k adds 2^(k-2) per call, which outgrows any
// fixed-width counter; hence the 256 bit value.
func (w *World) Generation() uint256.Int { return w.gen }

// offset converts world coordinates to root-local ones: the world
// origin sits at the center of the root.
func (w *World) offset() int64 {
	return w.root.Width() / 2
}

// Get returns the cell at world coordinates (x, y). Anywhere outside
// the current root is dead by definition.
func (w *World) Get(x, y int64) bool {
	off := w.offset()
	return w.root.Cell(x+off, y+off)
}

// Set writes the cell at world coordinates (x, y), expanding the root
// as needed to bring the coordinate in range.
func (w *World) Set(x, y int64, alive bool) error {
	for {
		n, err := w.u.SetCell(w.root, x+w.offset(), y+w.offset(), alive)
		if err == nil {
			w.root = n
			return nil
		}
		if !errors.Is(err, quadtree.ErrOutOfBounds) {
			return err
		}
		w.root = w.u.Expand(w.root)
	}
}

// Load writes a decoded pattern into the world, centered on the
// origin.
func (w *World) Load(p *rle.Pattern) error {
	dx, dy := -p.Width/2, -p.Height/2
	for _, c := range p.Cells {
		if err := w.Set(c.X+dx, c.Y+dy, true); err != nil {
			return err
		}
	}
	return nil
}

// Step evolves the world by one macro-step: 2^(k-2) generations at the
// padded root's level k. Use Advance for a fixed generation count.
func (w *World) Step() error {
	w.pad()
	macro := hashlife.MacroSteps(w.root.Level())
	n, err := w.ev.Step(w.root)
	if err != nil {
		return err
	}
	w.root = n
	var delta uint256.Int
	delta.SetUint64(macro)
	w.gen.Add(&w.gen, &delta)
	w.afterEvolve()
	return nil
}

// Advance evolves the world by exactly gens generations, splitting
// into macro-step sized chunks as needed.
func (w *World) Advance(gens uint64) error {
	for gens > 0 {
		w.pad()
		s := min(gens, hashlife.MacroSteps(w.root.Level()))
		n, err := w.ev.Advance(w.root, s)
		if err != nil {
			return err
		}
		w.root = n
		var delta uint256.Int
		delta.SetUint64(s)
		w.gen.Add(&w.gen, &delta)
		gens -= s
		w.afterEvolve()
	}
	return nil
}

// pad expands the root until evolving it cannot push live cells out of
// the result window: level at least 3 and each quadrant's population
// confined to its inner corner, which bounds the pattern to the
// central quarter of the root.
func (w *World) pad() {
	for !padded(w.root) {
		w.root = w.u.Expand(w.root)
	}
}

func padded(n *quadtree.Node) bool {
	if n.Level() < 3 {
		return false
	}
	return n.NW().Population() == n.NW().SE().SE().Population() &&
		n.NE().Population() == n.NE().SW().SW().Population() &&
		n.SW().Population() == n.SW().NE().NE().Population() &&
		n.SE().Population() == n.SE().NW().NW().Population()
}

// afterEvolve shrinks the root while its border ring is dead, then
// runs the garbage collection cadence.
func (w *World) afterEvolve() {
	w.shrink()
	if w.GCInterval <= 0 {
		return
	}
	w.sinceGC++
	if w.sinceGC >= w.GCInterval {
		w.sinceGC = 0
		w.ev.CollectGarbage([]*quadtree.Node{w.root})
	}
}

func (w *World) shrink() {
	for w.root.Level() > initialLevel {
		inner := w.u.CenteredSubnode(w.root.NW(), w.root.NE(), w.root.SW(), w.root.SE())
		if inner.Population() != w.root.Population() {
			return
		}
		w.root = inner
	}
}
