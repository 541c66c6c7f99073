package corpus

import (
	"fmt"
	"sort"
)

// Builder accumulates pages and links for a Corpus.
//
// Usage:
//
//	c, err := corpus.NewBuilder().
//	    AddPage("1.html").
//	    AddPage("2.html").
//	    AddLink("1.html", "2.html").
//	    Build()
//
// AddPage and AddLink record intent only; all validation happens in Build,
// so construction errors surface exactly once, with the offending page named.
type Builder struct {
	pages map[Page]struct{}
	links map[Page]map[Page]struct{}
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		pages: make(map[Page]struct{}),
		links: make(map[Page]map[Page]struct{}),
	}
}

// AddPage registers p as a page of the corpus. Adding the same page twice
// is a no-op. Returns the Builder for chaining.
func (b *Builder) AddPage(p Page) *Builder {
	b.pages[p] = struct{}{}
	return b
}

// AddLink records a directed link from → to. Both endpoints must be
// registered via AddPage before Build, or Build fails with ErrUnknownPage.
// Self-links (from == to) are dropped silently: the corpus excludes them
// by construction. Returns the Builder for chaining.
func (b *Builder) AddLink(from, to Page) *Builder {
	if from == to {
		return b
	}
	set, ok := b.links[from]
	if !ok {
		set = make(map[Page]struct{})
		b.links[from] = set
	}
	set[to] = struct{}{}
	return b
}

// Build validates the accumulated pages and links and returns the Corpus.
//
// Errors:
//   - ErrEmptyCorpus if no pages were added;
//   - ErrEmptyPageID if any page identifier is empty;
//   - ErrUnknownPage (wrapped, naming the page) if a link endpoint was
//     never registered as a page.
//
// Complexity: O(V log V + E).
func (b *Builder) Build() (*Corpus, error) {
	if len(b.pages) == 0 {
		return nil, ErrEmptyCorpus
	}
	if _, ok := b.pages[""]; ok {
		return nil, ErrEmptyPageID
	}

	links := make(map[Page]map[Page]struct{}, len(b.pages))
	pages := make([]Page, 0, len(b.pages))
	for p := range b.pages {
		links[p] = make(map[Page]struct{}, len(b.links[p]))
		pages = append(pages, p)
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i] < pages[j] })

	for from, set := range b.links {
		if _, ok := b.pages[from]; !ok {
			return nil, fmt.Errorf("link source %q: %w", from, ErrUnknownPage)
		}
		for to := range set {
			if _, ok := b.pages[to]; !ok {
				return nil, fmt.Errorf("link target %q: %w", to, ErrUnknownPage)
			}
			links[from][to] = struct{}{}
		}
	}

	return &Corpus{links: links, pages: pages}, nil
}

// FromMap builds a Corpus from a literal page → outbound-links mapping.
// Every key becomes a page; link targets must appear among the keys.
// Self-links are dropped, matching AddLink semantics.
//
// Convenient for tests and small fixed corpora:
//
//	c, err := corpus.FromMap(map[corpus.Page][]corpus.Page{
//	    "a": {"b"},
//	    "b": {"a"},
//	})
func FromMap(m map[Page][]Page) (*Corpus, error) {
	b := NewBuilder()
	for p, targets := range m {
		b.AddPage(p)
		for _, t := range targets {
			b.AddLink(p, t)
		}
	}
	return b.Build()
}
