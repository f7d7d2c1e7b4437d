// Package bmssp implements BMSSP (Bounded Multi-Source Shortest Path), the
// top-level recursion of the deterministic sub-Dijkstra algorithm, and
// Solver, the public two-operation entry point (spec.md §6): NewSolver and
// Solve.
//
// BMSSP at level l > 0 calls pivot.Find, inserts the pruned pivots into a
// fresh blockqueue.Queue, then repeatedly pulls a sub-frontier, recurses one
// level down, relaxes edges out of the returned completed set, and feeds
// newly discovered or still-pending vertices back into the queue. Level 0 is
// a capped binary-heap Dijkstra over the single source the recursion
// guarantees arrives there (see baseCase).
//
// The whole recursion is single-threaded and synchronous (spec.md §5): an
// activation at level l never resumes its loop until its level l-1 child has
// fully returned, so the shared sssp.State is never touched concurrently.
package bmssp
