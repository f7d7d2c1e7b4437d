package sssp

import "math"

// Params holds the tuning constants derived once from n per spec.md §3:
//
//	k     = max(2, floor((log2 n)^(1/3)))
//	t     = max(2, floor((log2 n)^(2/3)))
//	LMax  = max(1, ceil(log2(n) / t))
type Params struct {
	K    int
	T    int
	LMax int
}

// DeriveParams computes Params for a graph with n vertices. n must be >= 1.
func DeriveParams(n int) Params {
	if n <= 1 {
		return Params{K: 2, T: 2, LMax: 1}
	}

	logN := math.Log2(float64(n))
	k := int(math.Floor(math.Pow(logN, 1.0/3.0)))
	if k < 2 {
		k = 2
	}
	t := int(math.Floor(math.Pow(logN, 2.0/3.0)))
	if t < 2 {
		t = 2
	}
	lMax := int(math.Ceil(logN / float64(t)))
	if lMax < 1 {
		lMax = 1
	}

	return Params{K: k, T: t, LMax: lMax}
}

// clamp confines x to [lo, hi].
func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}

// powClampedToN computes 2^exp, saturating at n rather than overflowing when
// exp is large -- exact magnitude never matters once it exceeds n, since
// every caller clamps to n immediately afterward.
func powClampedToN(exp, n int) int {
	if exp <= 0 {
		return 1
	}
	if exp >= 62 { // 2^62 comfortably exceeds any realistic n
		return n
	}
	v := int64(1) << uint(exp)
	if v > int64(n) {
		return n
	}

	return int(v)
}

// BlockCapacity returns M_l, the per-call block-structure capacity at
// recursion level l: clamp(2^((l-1)*t), 1, n).
func (p Params) BlockCapacity(level, n int) int {
	return clamp(powClampedToN((level-1)*p.T, n), 1, n)
}

// SizeLimit returns size_limit_l, the completion quota at recursion level l:
// clamp(k * 2^(l*t), 1, n).
func (p Params) SizeLimit(level, n int) int {
	pow := powClampedToN(level*p.T, n)
	limit := p.K * pow
	if limit < 0 || limit > n { // overflow or exceeds n both saturate to n
		limit = n
	}

	return clamp(limit, 1, n)
}
