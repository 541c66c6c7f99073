// Package pagerank estimates the relative importance of pages in a closed
// hyperlink corpus with two independent PageRank estimators sharing one
// probability model.
//
// 🚀 What is PageRank?
//
//	PageRank models a "random surfer" who, from the current page, follows
//	one of its links with probability d (the damping factor) or jumps to a
//	uniformly random page with probability 1-d. A page's rank is the
//	long-run fraction of time the surfer spends on it — the stationary
//	distribution of that random walk.
//
// ✨ Key features:
//   - Transition: the shared probability model — one step of the surfer
//     as an explicit distribution over every page.
//   - Sample: Monte-Carlo estimator — walk n steps, count visits,
//     divide by n. Stochastic, but fully reproducible for a fixed seed.
//   - Iterate: deterministic fixed-point estimator — apply the PageRank
//     recurrence sweep by sweep until no rank moves more than a threshold.
//   - Dangling nodes (pages without outbound links) redistribute their
//     mass uniformly over the whole corpus, so no probability drains out.
//   - Every returned mapping covers every page exactly once and sums to 1.
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/katalvlaran/linkrank/corpus"
//	    "github.com/katalvlaran/linkrank/pagerank"
//	)
//
//	c, _ := corpus.FromMap(map[corpus.Page][]corpus.Page{
//	    "a.html": {"b.html"},
//	    "b.html": {"a.html"},
//	})
//
//	sampled, err := pagerank.Sample(c, pagerank.WithSamples(10000))
//	iterated, err := pagerank.Iterate(c, pagerank.WithDamping(0.85))
//
// Performance:
//
//   - Transition: O(V) time and memory per call.
//   - Sample:     O(n·V) time, O(V) memory (n = sample count).
//   - Iterate:    O(S·V²) time, O(V) memory (S = sweeps to convergence).
//
// Concurrency:
//
//	Both estimators are sequential by nature (each step depends on the
//	previous state) but side-effect free; independent invocations may run
//	concurrently against the same Corpus.
//
// See examples in example_test.go for runnable walkthroughs.
package pagerank
