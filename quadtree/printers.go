package quadtree

import "strings"

// debug utilities

// GridString renders the node as rows of '.' (dead) and '*' (live)
// cells, one row per line. Intended for tests and debugging; the output
// is quadratic in the side length, so keep it to small levels.
func GridString(n *Node) string {
	var b strings.Builder
	w := n.Width()
	for y := int64(0); y < w; y++ {
		for x := int64(0); x < w; x++ {
			if n.Cell(x, y) {
				b.WriteByte('*')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
