package quadtree

/*

# Canonical quadtree universes

This package provides the canonical (hash-consed) quadtree representation
used by the hashlife evaluator. A level k node covers a 2^k x 2^k square
of cells; a level 0 node is a single cell. Every distinct configuration
of (level, children) has exactly one in-memory instance, owned by a
Universe, so structural equality and pointer equality coincide and every
node carries a stable integer id.

Although the API talks about trees, the interned structure is a DAG: the
all-dead subtree at each level is a single shared node, and any repeated
region of the board is stored once no matter how many parents reference
it. Child levels are strictly decreasing, so the DAG is acyclic and a
plain mark pass from a set of roots is enough to compact it (see
Compact).

Nodes are immutable. Operations that "modify" a node (SetCell, Expand)
return a new canonical node and leave every shared subtree in place.
Cached per node:

  - population, computed once at construction (64 bit; a level 30 board
    can hold ~10^18 live cells)
  - the four child references, which for a level >= 1 node are always at
    exactly level-1

Coordinates within a node are zero based with the origin at the top
left corner, x growing east and y growing south:

	      0        half      width
	    0 +---------+---------+
	      |         |         |
	      |   nw    |   ne    |
	 half +---------+---------+
	      |         |         |
	      |   sw    |   se    |
	width +---------+---------+

where half = 2^(k-1) and width = 2^k. Callers that want a stable world
coordinate system centered on (0,0) offset by half and re-offset after
Expand; the life package does exactly that.

Following the layering used elsewhere in this codebase, the package has
two tiers. Validated operations (Create, SetCell) check their arguments
and return errors. The composition primitives (Join, CenteredHorizontal,
CenteredVertical, CenteredSubnode) sit on the hot path of the evaluator
and place the burden of knowledge on the caller: their level
preconditions are documented, not checked, and violating them yields
nonsense results.

*/
