// Package breakingthesorting implements the Duan-Mao-Mao-Shu-Yin bounded
// multi-source shortest path algorithm: a deterministic single-source
// shortest path solver for directed graphs with non-negative weights that
// runs in O(m * (log n)^(2/3)) time, beating the classic O(m + n log n)
// Dijkstra bound on sparse graphs.
//
// The algorithmic core lives in four packages, leaves first:
//
//	sssp       — shared process-local state (Dist/Pred/Complete) and the
//	             k/t/L_max parameter derivation
//	blockqueue — the Lemma 3.3 block-based priority structure (Insert,
//	             BatchPrepend, Pull)
//	pivot      — FindPivots, the pivot-pruning step that bounds branching
//	             in the recursion
//	bmssp      — the BMSSP recursion itself, its base case, and the public
//	             Solver entry point
//
// Supporting packages generate or load graphs for benchmarking and provide
// a correctness oracle:
//
//	graph       — the immutable, read-only graph representation every other
//	              package operates on
//	graphgen    — synthetic topology generators (random, grid, scale-free,
//	              complete)
//	mtx         — a Matrix Market (.mtx) file loader
//	refdijkstra — a plain Dijkstra implementation used to validate results
//
// cmd/ssspbench ties these together into a command-line benchmark runner.
package breakingthesorting
