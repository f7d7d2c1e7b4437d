// Package graphgen builds synthetic graph.View instances for benchmarking
// across the topology families a realistic corpus needs: sparse and dense
// random graphs, grids, and scale-free networks (SPEC_FULL.md §6.3).
//
// Every generator is deterministic given its seed: same (n, m, seed) always
// yields the same edge set, so benchmark runs are reproducible.
package graphgen
