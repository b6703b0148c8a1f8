package life

import (
	"github.com/lifegrid/go-hashlife/quadtree"
	"github.com/lifegrid/go-hashlife/rle"
)

// Rect is a half-open rectangle in world coordinates: x in
// [MinX, MaxX), y in [MinY, MaxY).
type Rect struct {
	MinX, MinY, MaxX, MaxY int64
}

// Each calls fn for every live cell inside r, pruning dead and
// out-of-view subtrees, in no particular order.
func (w *World) Each(r Rect, fn func(x, y int64)) {
	off := w.offset()
	w.each(w.root, -off, -off, r, fn)
}

func (w *World) each(n *quadtree.Node, ox, oy int64, r Rect, fn func(x, y int64)) {
	if n.Empty() {
		return
	}
	wdt := n.Width()
	if ox >= r.MaxX || oy >= r.MaxY || ox+wdt <= r.MinX || oy+wdt <= r.MinY {
		return
	}
	if n.Level() == 0 {
		fn(ox, oy)
		return
	}
	h := wdt / 2
	w.each(n.NW(), ox, oy, r, fn)
	w.each(n.NE(), ox+h, oy, r, fn)
	w.each(n.SW(), ox, oy+h, r, fn)
	w.each(n.SE(), ox+h, oy+h, r, fn)
}

// Pattern collects the live cells inside r into an RLE pattern with
// pattern-local coordinates relative to r's top-left corner.
func (w *World) Pattern(r Rect) *rle.Pattern {
	p := &rle.Pattern{Width: r.MaxX - r.MinX, Height: r.MaxY - r.MinY}
	w.Each(r, func(x, y int64) {
		p.Cells = append(p.Cells, rle.Cell{X: x - r.MinX, Y: y - r.MinY})
	})
	return p
}
