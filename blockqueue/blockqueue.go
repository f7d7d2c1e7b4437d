package blockqueue

import (
	"container/list"
	"fmt"
	"math"
	"sort"
)

// Pair is a (vertex id, tentative distance) entry as exchanged with callers
// of Insert, BatchPrepend, and Pull.
type Pair struct {
	Key   int
	Value float64
}

// block holds at most M (key, value) pairs. upperBound is only meaningful
// for blocks living in D1; D0 blocks carry it purely for bookkeeping and it
// is never consulted.
type block struct {
	elems      []Pair
	upperBound float64
}

// Queue is the Lemma 3.3 block structure: D0 (batch-prepend region) plus D1
// (insert region), sharing a single key->value index so membership and
// current-value lookups are O(1).
//
// A Queue is exclusively owned by the BMSSP activation that allocates it;
// nothing in this package is safe for concurrent use.
type Queue struct {
	m int     // block capacity
	b float64 // global upper bound; every stored value is < b
	n int     // expected maximum insertions (informational, sizing hint only)

	d0 *list.List // *block, front region
	d1 *list.List // *block, main region, ordered by ascending upperBound

	loc map[int]*list.Element // key -> the list.Element (in d0 or d1) holding it
	val map[int]float64       // key -> current stored value
}

// New constructs a Queue with block capacity m, global bound b, and expected
// insertion count n. It panics if m < 1 or b <= 0: these are construction-time
// contract violations from the calling BMSSP level, not recoverable runtime
// conditions (spec invariant I-BS-2 requires a positive bound to be meaningful
// at all).
func New(m int, b float64, n int) *Queue {
	if m < 1 {
		panic(fmt.Sprintf("blockqueue: m must be >= 1, got %d", m))
	}
	if b <= 0 {
		panic(fmt.Sprintf("blockqueue: b must be > 0, got %v", b))
	}

	q := &Queue{
		m:   m,
		b:   b,
		n:   n,
		d0:  list.New(),
		d1:  list.New(),
		loc: make(map[int]*list.Element),
		val: make(map[int]float64),
	}
	q.d1.PushBack(&block{upperBound: b})

	return q
}

// Empty reports whether no (key, value) pairs remain.
func (q *Queue) Empty() bool { return len(q.val) == 0 }

// Size returns the number of distinct keys currently stored.
func (q *Queue) Size() int { return len(q.val) }

// Insert places (key, value) into the main region D1, provided value < B.
// If key is absent it is inserted fresh; if present with a strictly larger
// stored value, the old entry is removed first and the new one wins; if
// present with an equal-or-smaller stored value, Insert is a no-op.
func (q *Queue) Insert(key int, value float64) {
	if value >= q.b {
		return
	}
	if cur, ok := q.val[key]; ok {
		if !(value < cur) {
			return
		}
		q.removeKey(key)
	}

	q.val[key] = value
	el := q.blockForValue(value)
	bl := el.Value.(*block)
	bl.elems = append(bl.elems, Pair{Key: key, Value: value})
	q.loc[key] = el

	if len(bl.elems) > q.m {
		q.split(el)
	}
}

// blockForValue returns the first D1 block whose upper bound is >= value, or
// the last D1 block if none qualifies (D1 always has at least one block).
func (q *Queue) blockForValue(value float64) *list.Element {
	for el := q.d1.Front(); el != nil; el = el.Next() {
		if el.Value.(*block).upperBound >= value {
			return el
		}
	}

	return q.d1.Back()
}

// split breaks an overflowing D1 block at its median value into two blocks,
// preserving D1's ascending-upper-bound order (I-BS-4).
func (q *Queue) split(el *list.Element) {
	bl := el.Value.(*block)
	sort.Slice(bl.elems, func(i, j int) bool { return bl.elems[i].Value < bl.elems[j].Value })

	mid := len(bl.elems) / 2
	lower := &block{elems: append([]Pair(nil), bl.elems[:mid]...), upperBound: bl.elems[mid-1].Value}
	upper := &block{elems: append([]Pair(nil), bl.elems[mid:]...), upperBound: bl.upperBound}

	lowerEl := q.d1.InsertBefore(lower, el)
	upperEl := q.d1.InsertAfter(upper, lowerEl)
	q.d1.Remove(el)

	for _, p := range lower.elems {
		q.loc[p.Key] = lowerEl
	}
	for _, p := range upper.elems {
		q.loc[p.Key] = upperEl
	}
}

// BatchPrepend admits items known (by the caller's contract) to be no larger
// than any value currently stored. Items are deduplicated to the minimum
// value per key; keys whose stored value is already smaller are dropped,
// keys whose stored value is larger are superseded. Survivors are sorted and
// placed into one or more new D0 blocks at the front, smallest-first.
func (q *Queue) BatchPrepend(items []Pair) {
	if len(items) == 0 {
		return
	}

	best := make(map[int]float64, len(items))
	for _, it := range items {
		if v, ok := best[it.Key]; !ok || it.Value < v {
			best[it.Key] = it.Value
		}
	}

	survivors := make([]Pair, 0, len(best))
	for key, value := range best {
		if cur, ok := q.val[key]; ok {
			if !(value < cur) {
				continue
			}
			q.removeKey(key)
		}
		q.val[key] = value
		survivors = append(survivors, Pair{Key: key, Value: value})
	}
	if len(survivors) == 0 {
		return
	}

	sort.Slice(survivors, func(i, j int) bool { return survivors[i].Value < survivors[j].Value })

	half := q.m / 2
	if half < 1 {
		half = 1
	}

	var newBlocks []*block
	if len(survivors) <= q.m {
		newBlocks = []*block{{elems: survivors}}
	} else {
		for start := 0; start < len(survivors); start += half {
			end := start + half
			if end > len(survivors) {
				end = len(survivors)
			}
			newBlocks = append(newBlocks, &block{elems: append([]Pair(nil), survivors[start:end]...)})
		}
	}

	// Push in reverse so the block holding the smallest values ends up
	// frontmost, preserving I-BS-5 (D0 blocks ascending front-to-back).
	for i := len(newBlocks) - 1; i >= 0; i-- {
		el := q.d0.PushFront(newBlocks[i])
		for _, p := range newBlocks[i].elems {
			q.loc[p.Key] = el
		}
	}
}

// Pull removes and returns up to M keys. Candidates are gathered whole
// block by block, walking D0 front-to-back and then D1 front-to-back, until
// at least M elements are collected in total; the M smallest candidates are
// returned in ascending value order. The accompanying separator is the value
// of the (M+1)-th smallest candidate if there is one, otherwise the smallest
// value still stored anywhere, or B if the structure is now empty.
func (q *Queue) Pull() ([]int, float64) {
	if q.Empty() {
		return nil, q.b
	}

	var candidates []Pair

	collected := 0
	for el := q.d0.Front(); el != nil && collected < q.m; el = el.Next() {
		bl := el.Value.(*block)
		candidates = append(candidates, bl.elems...)
		collected += len(bl.elems)
	}
	for el := q.d1.Front(); el != nil && collected < q.m; el = el.Next() {
		bl := el.Value.(*block)
		candidates = append(candidates, bl.elems...)
		collected += len(bl.elems)
	}

	if len(candidates) == 0 {
		return nil, q.b
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Value < candidates[j].Value })

	take := q.m
	if take > len(candidates) {
		take = len(candidates)
	}

	keys := make([]int, take)
	for i := 0; i < take; i++ {
		keys[i] = candidates[i].Key
		q.removeKey(candidates[i].Key)
	}

	var sep float64
	switch {
	case len(candidates) > take:
		sep = candidates[take].Value
	case q.Empty():
		sep = q.b
	default:
		sep = q.minRemaining()
	}

	return keys, sep
}

// minRemaining scans every surviving block for the smallest value. Only
// called when Pull's candidate window didn't reach far enough to supply a
// separator directly, which happens at most once per Pull.
func (q *Queue) minRemaining() float64 {
	min := q.b
	for el := q.d0.Front(); el != nil; el = el.Next() {
		for _, p := range el.Value.(*block).elems {
			if p.Value < min {
				min = p.Value
			}
		}
	}
	for el := q.d1.Front(); el != nil; el = el.Next() {
		for _, p := range el.Value.(*block).elems {
			if p.Value < min {
				min = p.Value
			}
		}
	}

	return min
}

// removeKey deletes key from whichever block currently holds it, and from
// the key->value index. It is a silent no-op if key is absent, matching the
// spec's "misuse is silently well-defined" error policy for the block
// structure.
func (q *Queue) removeKey(key int) {
	el, ok := q.loc[key]
	if !ok {
		return
	}
	bl := el.Value.(*block)
	for i, p := range bl.elems {
		if p.Key == key {
			bl.elems = append(bl.elems[:i], bl.elems[i+1:]...)
			break
		}
	}
	delete(q.loc, key)
	delete(q.val, key)
}

// Value reports the currently stored value for key, or +Inf if key is not
// present. Exposed for tests and for callers that want to inspect the
// structure without mutating it (Pull always mutates).
func (q *Queue) Value(key int) float64 {
	if v, ok := q.val[key]; ok {
		return v
	}

	return math.Inf(1)
}
