package quadtree

// nodeKey is the structural identity of an interned node: the level and
// the canonical ids of the four children. Keying the intern table on
// this composite (rather than on a derived hash string) means the
// compaction sweep never has to recreate keys.
type nodeKey struct {
	nw, ne, sw, se ID
	level          uint8
}

// Universe owns the canonical node set: the intern table for nodes of
// level >= 1, the two level 0 singletons, and the per-level all-dead
// nodes. It is the only strong reference that keeps a node alive
// between Compact calls; every other reference is derived from it.
//
// A Universe is not safe for concurrent use.
type Universe struct {
	nodes   map[nodeKey]*Node
	empties []*Node
	dead    *Node
	live    *Node
	nextID  ID
}

// New returns an empty Universe holding only the two leaf singletons.
func New() *Universe {
	u := &Universe{nodes: make(map[nodeKey]*Node)}
	u.dead = &Node{id: u.takeID(), level: 0}
	u.live = &Node{id: u.takeID(), level: 0, alive: true, population: 1}
	u.empties = []*Node{u.dead}
	return u
}

func (u *Universe) takeID() ID {
	if u.nextID == ^ID(0) {
		panic(ErrIDSpaceExhausted)
	}
	u.nextID++
	return u.nextID
}

// Leaf returns the canonical level 0 node for the given cell state.
func (u *Universe) Leaf(alive bool) *Node {
	if alive {
		return u.live
	}
	return u.dead
}

// Empty returns the canonical all-dead node at the given level. The
// node is built once and cached; repeated calls return the same
// instance. Panics with ErrLevelOverflow above MaxLevel.
func (u *Universe) Empty(level uint8) *Node {
	if level > MaxLevel {
		panic(ErrLevelOverflow)
	}
	for uint8(len(u.empties)) <= level {
		e := u.empties[len(u.empties)-1]
		u.empties = append(u.empties, u.Join(e, e, e, e))
	}
	return u.empties[level]
}

// Join returns the canonical node one level above the four children.
//
// Join is the hot-path construction primitive: the children MUST all be
// non-nil and share a common level below MaxLevel. Use Create when the
// inputs are not already known to satisfy that.
func (u *Universe) Join(nw, ne, sw, se *Node) *Node {
	k := nodeKey{nw.id, ne.id, sw.id, se.id, nw.level + 1}
	if n, ok := u.nodes[k]; ok {
		return n
	}
	n := &Node{
		nw: nw, ne: ne, sw: sw, se: se,
		id:         u.takeID(),
		population: nw.population + ne.population + sw.population + se.population,
		level:      nw.level + 1,
	}
	u.nodes[k] = n
	return n
}

// Create returns the canonical node at the given level with the four
// children. It fails with ErrChildLevel unless every child is at
// exactly level-1, with ErrLeafChildren for level 0, and with
// ErrLevelOverflow above MaxLevel.
func (u *Universe) Create(level uint8, nw, ne, sw, se *Node) (*Node, error) {
	if level == 0 {
		return nil, ErrLeafChildren
	}
	if level > MaxLevel {
		return nil, ErrLevelOverflow
	}
	for _, c := range [4]*Node{nw, ne, sw, se} {
		if c == nil || c.level != level-1 {
			return nil, ErrChildLevel
		}
	}
	return u.Join(nw, ne, sw, se), nil
}

// Len returns the number of canonical nodes currently interned,
// including the two leaf singletons.
func (u *Universe) Len() int {
	return len(u.nodes) + 2
}

// Has reports whether a node with the given id is currently interned.
// It scans the table; intended for tests and diagnostics only.
func (u *Universe) Has(id ID) bool {
	if id == u.dead.id || id == u.live.id {
		return true
	}
	for _, n := range u.nodes {
		if n.id == id {
			return true
		}
	}
	return false
}
