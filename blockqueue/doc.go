// Package blockqueue implements the partially-sorted block data structure
// from Lemma 3.3 of Duan-Mao-Mao-Shu-Yin (2025): a (key, value) container
// tuned for BMSSP's access pattern — many small-value batch prepends near
// the front, inserts positioned roughly by value, and frequent bulk
// extraction of the smallest M entries.
//
// Two block sequences cooperate:
//
//   - D0 (front region): blocks produced by BatchPrepend. Earlier D0 blocks
//     hold values <= later D0 blocks' values.
//   - D1 (main region): blocks produced by Insert, each tagged with an
//     upper bound; D1 blocks are kept ordered by ascending upper bound.
//
// At most one (key, value) pair exists per key across both sequences;
// re-inserting a smaller value supersedes the stored one, a larger value is
// a no-op. Every stored value is strictly less than the structure's bound B.
//
// Amortized cost targets: Insert O(max(1, log(N/M))), BatchPrepend of L items
// O(L*max(1, log(L/M))), Pull O(M). This implementation favors a simple
// doubly-linked list of blocks over a balanced tree, matching the paper's
// informational note that either representation meets the targets.
package blockqueue
