// Package mtx loads directed graphs from Matrix Market (.mtx) coordinate
// files into a graph.View, for benchmarking against real sparse-matrix
// corpora (SPEC_FULL.md §6.2).
//
// Only the coordinate format is supported: a %%MatrixMarket header line,
// optional comment lines starting with %, a dimensions line (rows cols
// entries), then one (row col [weight]) triple per line using 1-based
// indices. Symmetric matrices get both directions of each off-diagonal
// entry; pattern matrices (no weight column) use a fixed weight of 1.0.
package mtx
