package pagerank

import (
	"fmt"

	"github.com/katalvlaran/linkrank/corpus"
)

// Transition returns the one-step distribution of the random surfer
// standing on page in c, under damping factor d.
//
// Description:
//
//	With probability d the surfer follows one of page's outbound links,
//	chosen uniformly among them; with probability 1-d it teleports to a
//	uniformly random page of the corpus. Both shares are additive: a
//	linked page receives the teleport share (1-d)/N plus the link share
//	d/L (N = corpus size, L = out-degree of page).
//
//	A dangling source (L = 0) is treated as if it linked to every page,
//	itself included: every page receives exactly 1/N. This keeps the
//	total probability mass at 1 instead of draining it at dead ends.
//
// Errors:
//   - ErrNilCorpus        — c is nil.
//   - ErrBadDamping       — d outside [0,1].
//   - corpus.ErrUnknownPage (wrapped, naming the page) — page not in c.
//
// Pure function of its inputs; the returned Distribution is freshly
// allocated on every call.
//
// Complexity: O(V) time and memory.
func Transition(c *corpus.Corpus, page corpus.Page, d float64) (Distribution, error) {
	if err := validateCommon(c, Options{Damping: d}); err != nil {
		return nil, err
	}
	if !c.Has(page) {
		return nil, fmt.Errorf("transition source %q: %w", page, corpus.ErrUnknownPage)
	}

	pages := c.Pages()
	n := float64(len(pages))
	dist := make(Distribution, len(pages))

	outDeg := c.OutDegree(page)
	if outDeg == 0 {
		// Dangling source: uniform over the whole corpus.
		uniform := 1 / n
		for _, p := range pages {
			dist[p] = uniform
		}
		return dist, nil
	}

	base := (1 - d) / n
	linkShare := d / float64(outDeg)
	for _, p := range pages {
		dist[p] = base
	}
	for _, p := range c.Links(page) {
		dist[p] += linkShare
	}
	return dist, nil
}
