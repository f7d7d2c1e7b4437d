// Package pivot implements FindPivots, the bounded Bellman-Ford pruning step
// that BMSSP runs before contracting a frontier. Given a frontier S and a
// distance bound B, it runs k rounds of relaxation to discover W (every
// vertex reached within B) and then prunes S down to P, the subset whose
// shortest-path subtree within W has at least k vertices -- the vertices
// that "pay for themselves" by settling k others downstream.
package pivot
