package pagerank_test

import (
	"fmt"

	"github.com/katalvlaran/linkrank/corpus"
	"github.com/katalvlaran/linkrank/pagerank"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleIterate
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two pages linking only to each other. By symmetry the random surfer
//	spends half its time on each, so the fixed point is 0.5 / 0.5 for any
//	damping factor.
//
// Complexity: O(S·V²) time, O(V) memory.
func ExampleIterate() {
	c, err := corpus.FromMap(map[corpus.Page][]corpus.Page{
		"a.html": {"b.html"},
		"b.html": {"a.html"},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	ranks, err := pagerank.Iterate(c)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, p := range ranks.Sorted() {
		fmt.Printf("%s: %.4f\n", p, ranks[p])
	}
	// Output:
	// a.html: 0.5000
	// b.html: 0.5000
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleSample
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A three-page corpus with a dangling page, ranked by a 10000-step
//	random walk. Each step increments exactly one visit counter, so the
//	estimated ranks sum to exactly 1 no matter how short the walk is.
//
// The zero seed selects a fixed default stream, so this example is fully
// reproducible despite being a Monte-Carlo method.
func ExampleSample() {
	c, err := corpus.FromMap(map[corpus.Page][]corpus.Page{
		"1.html": {"2.html"},
		"2.html": {"1.html", "3.html"},
		"3.html": nil,
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	ranks, err := pagerank.Sample(c, pagerank.WithSamples(10000))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("pages ranked: %d\n", len(ranks))
	fmt.Printf("total mass: %.4f\n", ranks.Sum())
	// Output:
	// pages ranked: 3
	// total mass: 1.0000
}

// ExampleIterate_withStart restarts the iterative estimator from its own
// output: a fixed point converges again within a single sweep.
func ExampleIterate_withStart() {
	c, err := corpus.FromMap(map[corpus.Page][]corpus.Page{
		"a.html": {"b.html"},
		"b.html": {"a.html"},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fixed, err := pagerank.Iterate(c)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	again, err := pagerank.Iterate(c,
		pagerank.WithStart(fixed),
		pagerank.WithMaxSweeps(1),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("a.html: %.4f\n", again["a.html"])
	// Output:
	// a.html: 0.5000
}
