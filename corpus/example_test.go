package corpus_test

import (
	"fmt"

	"github.com/katalvlaran/linkrank/corpus"
)

// ExampleFromMap builds a tiny three-page corpus from a literal mapping
// and inspects its structure.
func ExampleFromMap() {
	c, err := corpus.FromMap(map[corpus.Page][]corpus.Page{
		"1.html": {"2.html"},
		"2.html": {"1.html", "3.html"},
		"3.html": nil, // dangling page
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("pages:", c.Pages())
	fmt.Println("links of 2.html:", c.Links("2.html"))
	fmt.Println("out-degree of 3.html:", c.OutDegree("3.html"))
	// Output:
	// pages: [1.html 2.html 3.html]
	// links of 2.html: [1.html 3.html]
	// out-degree of 3.html: 0
}

// ExampleBuilder builds the same corpus incrementally.
func ExampleBuilder() {
	c, err := corpus.NewBuilder().
		AddPage("a.html").
		AddPage("b.html").
		AddLink("a.html", "b.html").
		AddLink("b.html", "a.html").
		Build()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("pages:", c.Len(), "mutual:", c.HasLink("a.html", "b.html") && c.HasLink("b.html", "a.html"))
	// Output:
	// pages: 2 mutual: true
}
