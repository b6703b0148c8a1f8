package quadtree

import "errors"

// ID is the canonical identity of an interned node. Ids are assigned
// densely from 1 on first construction and are stable for the lifetime
// of the process. Two nodes have equal ids if and only if they are the
// same canonical instance.
type ID uint32

// NoID is never assigned to a node.
const NoID = ID(0)

// MaxLevel is the largest supported node level. It keeps side lengths
// and cell coordinates inside int64. Recursion depth and memory make
// levels much above 30 impractical long before this limit matters.
const MaxLevel = uint8(62)

var (
	ErrChildLevel       = errors.New("quadtree: child level must be exactly one below the node level")
	ErrLeafChildren     = errors.New("quadtree: a level 0 node has no children")
	ErrOutOfBounds      = errors.New("quadtree: cell coordinate outside the node")
	ErrLevelOverflow    = errors.New("quadtree: level exceeds MaxLevel")
	ErrIDSpaceExhausted = errors.New("quadtree: node id space exhausted")
)
