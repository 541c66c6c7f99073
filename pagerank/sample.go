package pagerank

import (
	"math/rand"

	"github.com/katalvlaran/linkrank/corpus"
)

// Sample estimates page ranks by simulating the random surfer for a fixed
// number of steps and counting visits.
//
// Algorithm Outline:
//  1. Initialize a visit counter at 0 for every page.
//  2. Pick the starting page uniformly at random.
//  3. Repeat Samples times:
//     a. increment the current page's counter;
//     b. build the current page's transition distribution (see Transition);
//     c. draw the next page from that distribution by cumulative scan
//     over the pages in lexicographic order;
//     d. advance.
//  4. Each page's rank is its visit count divided by Samples.
//
// Every step increments exactly one counter, so the returned ranks sum to
// exactly 1 regardless of walk length. The estimate converges to the true
// stationary distribution as the sample count grows; for a reproducible
// result fix the seed with WithSeed (the zero seed is itself fixed, so
// even the default configuration is deterministic).
//
// Errors:
//   - ErrNilCorpus, corpus.ErrEmptyCorpus — invalid corpus.
//   - ErrBadDamping — damping outside [0,1].
//   - ErrBadSamples — sample count < 1.
//
// Complexity: O(n·V) time, O(V) memory (n = Samples, V = corpus size).
func Sample(c *corpus.Corpus, opts ...Option) (Ranks, error) {
	o := buildOptions(opts)
	if err := validateCommon(c, o); err != nil {
		return nil, err
	}
	if o.Samples < 1 {
		return nil, ErrBadSamples
	}

	pages := c.Pages()
	counts := make(map[corpus.Page]int, len(pages))
	for _, p := range pages {
		counts[p] = 0
	}

	rng := rngFromSeed(o.Seed)
	current := pages[rng.Intn(len(pages))]

	for i := 0; i < o.Samples; i++ {
		counts[current]++
		dist, err := Transition(c, current, o.Damping)
		if err != nil {
			return nil, err
		}
		current = weightedPick(pages, dist, rng)
	}

	ranks := make(Ranks, len(pages))
	total := float64(o.Samples)
	for p, visits := range counts {
		ranks[p] = float64(visits) / total
	}
	return ranks, nil
}

// weightedPick draws one page from dist: a uniform [0,1) value is matched
// against the cumulative distribution, scanning pages in their given
// (lexicographic) order so the draw sequence is reproducible.
//
// The final page absorbs any floating-point shortfall of the cumulative
// sum, so the pick always lands on a page.
//
// Complexity: O(V).
func weightedPick(pages []corpus.Page, dist Distribution, rng *rand.Rand) corpus.Page {
	u := rng.Float64()
	var cum float64
	for _, p := range pages {
		cum += dist[p]
		if u < cum {
			return p
		}
	}
	return pages[len(pages)-1]
}
