package rle

import "errors"

var (
	ErrMissingHeader  = errors.New("rle: missing header line")
	ErrBadHeader      = errors.New("rle: malformed header line")
	ErrBadRule        = errors.New("rle: only the B3/S23 rule is supported")
	ErrBadRun         = errors.New("rle: run count without a tag")
	ErrBadTag         = errors.New("rle: unrecognized tag character")
	ErrUnterminated   = errors.New("rle: pattern not terminated with '!'")
	ErrNegativeExtent = errors.New("rle: header extents must be positive")
)

// Cell is a live cell position, pattern-local with (0,0) at the top
// left corner.
type Cell struct {
	X, Y int64
}

// Pattern is a decoded Run Length Encoded pattern: the declared extents
// and the live cells in reading order (row-major, top to bottom).
type Pattern struct {
	Width, Height int64
	Cells         []Cell
}
