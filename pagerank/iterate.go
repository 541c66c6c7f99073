package pagerank

import (
	"math"

	"github.com/katalvlaran/linkrank/corpus"
)

// Iterate estimates page ranks by solving the PageRank fixed-point
// equation to within a per-page convergence threshold.
//
// Algorithm Outline:
//  1. Initialize every page's rank to 1/N (or to Options.Start when set).
//  2. Sweep: for every page p compute
//     new(p) = (1-d)/N + d · Σ over q of contribution(q → p)
//     where a page q linking to p contributes rank(q)/L(q), and a
//     dangling q (L = 0) contributes rank(q)/N to every page, matching
//     the transition model's dangling policy.
//  3. The whole mapping is replaced at once: every new(p) in a sweep is
//     computed from the same previous snapshot, never from a partially
//     updated one. Two generations are kept alive and swapped.
//  4. Stop when no page moved by more than Threshold between sweeps;
//     give up with ErrNoConvergence after MaxSweeps sweeps.
//  5. Renormalize so the ranks sum to exactly 1, absorbing any small
//     numerical drift accumulated across sweeps.
//
// Determinism: the output depends only on the corpus and the options —
// two runs on identical input are bit-for-bit identical.
//
// Errors:
//   - ErrNilCorpus, corpus.ErrEmptyCorpus — invalid corpus.
//   - ErrBadDamping — damping outside [0,1].
//   - ErrBadThreshold, ErrBadMaxSweeps — invalid loop parameters.
//   - ErrBadStart — Options.Start does not cover exactly the corpus pages.
//   - ErrNoConvergence — threshold never met within MaxSweeps.
//
// Complexity: O(S·V²) time, O(V) memory (S = sweeps until convergence).
func Iterate(c *corpus.Corpus, opts ...Option) (Ranks, error) {
	o := buildOptions(opts)
	if err := validateCommon(c, o); err != nil {
		return nil, err
	}
	if o.Threshold <= 0 || math.IsNaN(o.Threshold) {
		return nil, ErrBadThreshold
	}
	if o.MaxSweeps < 1 {
		return nil, ErrBadMaxSweeps
	}

	pages := c.Pages()
	n := float64(len(pages))

	prev, err := startRanks(c, pages, o.Start)
	if err != nil {
		return nil, err
	}

	next := make(Ranks, len(pages))
	base := (1 - o.Damping) / n

	for sweep := 0; sweep < o.MaxSweeps; sweep++ {
		converged := true
		for _, p := range pages {
			var total float64
			for _, q := range pages {
				switch deg := c.OutDegree(q); {
				case deg == 0:
					// Dangling node: its mass spreads over every page.
					total += prev[q] / n
				case c.HasLink(q, p):
					total += prev[q] / float64(deg)
				}
			}
			next[p] = base + o.Damping*total
			if math.Abs(next[p]-prev[p]) > o.Threshold {
				converged = false
			}
		}
		// Swap generations; next is overwritten wholesale each sweep.
		prev, next = next, prev

		if converged {
			normalize(prev)
			return prev, nil
		}
	}
	return nil, ErrNoConvergence
}

// startRanks returns the initial generation: a copy of start when given,
// otherwise the uniform 1/N mapping. A start mapping must cover exactly
// the corpus pages.
func startRanks(c *corpus.Corpus, pages []corpus.Page, start Ranks) (Ranks, error) {
	init := make(Ranks, len(pages))
	if start == nil {
		uniform := 1 / float64(len(pages))
		for _, p := range pages {
			init[p] = uniform
		}
		return init, nil
	}
	if len(start) != len(pages) {
		return nil, ErrBadStart
	}
	for _, p := range pages {
		v, ok := start[p]
		if !ok {
			return nil, ErrBadStart
		}
		init[p] = v
	}
	return init, nil
}
