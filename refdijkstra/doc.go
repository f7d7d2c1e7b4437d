// Package refdijkstra implements a plain binary-heap Dijkstra over
// graph.View, used only as a correctness oracle for bmssp.Solver (spec.md
// §6, §8 Testable Property 1: results must agree within 1e-9 on every
// reachable vertex). It is intentionally the simplest possible
// O((n+m) log n) implementation -- no pivoting, no block structure -- so a
// divergence between it and bmssp.Solver points at the new algorithm, not at
// a second copy of the same bug.
package refdijkstra
