// Package linkrank estimates the relative importance of pages in a small,
// closed hyperlink corpus with two flavors of PageRank.
//
// 🚀 What is linkrank?
//
//	A compact library (plus a thin CLI) that reads a directory of HTML
//	pages, builds the directed link graph between them, and estimates
//	each page's importance two independent ways:
//		• Sampling  — a Monte-Carlo random walk of the "random surfer"
//		• Iteration — the PageRank recurrence solved to a fixed point
//
// ✨ Why choose linkrank?
//
//   - Two estimators, one probability model — cross-check stochastic
//     results against the deterministic fixed point
//   - Reproducible randomness — fixed seeds, never time-based
//   - Safe by construction — corpora are validated once, immutable after
//   - Bounded loops — convergence failure is an error, never a hang
//
// Everything is organized under four subpackages and a CLI:
//
//	corpus/      — the immutable link graph: Page, Corpus, Builder
//	pagerank/    — the estimators: Transition, Sample, Iterate
//	crawl/       — directory scanning and anchor extraction
//	report/      — text and markdown rendering of rank mappings
//	cmd/linkrank — `linkrank rank <dir>` runs the whole pipeline
//
// Quick ASCII example:
//
//	    1.html ──▶ 2.html
//	       ▲         │
//	       └─────────┘        3.html (dangling)
//
//	c, _ := corpus.FromMap(map[corpus.Page][]corpus.Page{
//	    "1.html": {"2.html"},
//	    "2.html": {"1.html"},
//	    "3.html": nil,
//	})
//	ranks, _ := pagerank.Iterate(c)
//
// See examples/ for runnable demos and each subpackage's doc.go for the
// full contract.
package linkrank
