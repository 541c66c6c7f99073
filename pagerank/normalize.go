package pagerank

// normalize rescales the mapping in place so its values sum to exactly 1.
//
// Shared post-processing of both estimators' output paths: the sampling
// estimator's counts sum to 1 by construction, but the iterative sweeps
// accumulate small floating-point drift that this absorbs. A zero total
// leaves the mapping untouched (nothing meaningful to rescale).
//
// Complexity: O(V).
func normalize(r Ranks) {
	total := r.Sum()
	if total == 0 {
		return
	}
	for p, v := range r {
		r[p] = v / total
	}
}
