// Package sssp holds the process-local mutable state and derived tuning
// parameters shared by every BMSSP activation within one solve: the
// tentative-distance array d-hat, the predecessor array, the completion
// flags, and the k/t/L_max/M_l/size_limit_l formulas from the paper's
// parameter section.
//
// State is not safe for concurrent use -- the recursion that mutates it is
// strictly serial by construction (an activation at level l never resumes
// its loop until its level l-1 child has fully returned), so a single
// pointer threaded through the recursion is sufficient and no locking is
// introduced here.
package sssp
