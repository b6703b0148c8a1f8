package hashlife

/*

# Hashlife evaluation

This package evolves canonical quadtree universes under Conway's
B3/S23 rule using the hashlife algorithm: because nodes are interned
(see the quadtree package), the future of any configuration only ever
has to be computed once. The evaluator memoizes Step results per node
id, which is sound because equal structure implies equal id and Step is
a pure function of its input.

Step on a level k node returns the centered 2^(k-1) square advanced by
2^(k-2) generations. The recursion covers the input with nine
overlapping level k-1 squares:

	+----+----+----+----+
	| n00     | n02     |
	+    +----+----+    +
	|    | n11     |    |
	+----+    +    +----+
	|    |    |    |    |
	+    +----+----+    +
	| n20     | n22     |
	+----+----+----+----+

(n01, n10, n12, n21 straddle the seams), steps each to get nine level
k-2 results one half macro-step into the future, reassembles them into
four level k-1 intermediates sharing the middle result, and steps those
for the second half. The base case is level 2: a 4x4 square whose inner
2x2 is evolved one generation by direct rule application.

Advance generalizes Step to any generation count up to the macro-step
2^(k-2): the total is split into two phases of at most 2^(k-3) each, and
a phase of zero collapses to taking centered subnodes. Advance results
go into a bounded LRU keyed on (id, steps) rather than the Step memo,
since they depend on both arguments.

The evaluator also owns the cache policy surface: ClearCache drops the
memo tables, CollectGarbage additionally compacts the universe to the
nodes reachable from a set of live roots. Neither may run concurrently
with evaluation; like the rest of the module, an Evaluator is single
threaded.

*/
