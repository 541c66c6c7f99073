package corpus

import "sort"

// Corpus is an immutable directed link graph over Pages.
//
// Invariants (established by Build and never broken afterwards):
//   - non-empty: at least one page;
//   - closed: every link target is itself a page of the corpus;
//   - loop-free: no page links to itself.
//
// A Corpus performs no internal locking; immutability makes concurrent
// reads safe.
type Corpus struct {
	links map[Page]map[Page]struct{} // page → outbound link set
	pages []Page                     // all pages, sorted, cached at Build
}

// Len returns the number of pages in the corpus.
// Complexity: O(1).
func (c *Corpus) Len() int { return len(c.pages) }

// Has reports whether p is a page of the corpus.
// Complexity: O(1).
func (c *Corpus) Has(p Page) bool {
	_, ok := c.links[p]
	return ok
}

// Pages returns every page of the corpus in lexicographic order.
// The returned slice is a copy; callers may mutate it freely.
// Complexity: O(V).
func (c *Corpus) Pages() []Page {
	out := make([]Page, len(c.pages))
	copy(out, c.pages)
	return out
}

// OutDegree returns the number of outbound links of p, or 0 if p is not
// a page of the corpus. A page with OutDegree 0 is a dangling node.
// Complexity: O(1).
func (c *Corpus) OutDegree(p Page) int { return len(c.links[p]) }

// Links returns the outbound link targets of p in lexicographic order.
// Returns nil if p has no outbound links or is not a page of the corpus.
// Complexity: O(L log L) where L is the out-degree.
func (c *Corpus) Links(p Page) []Page {
	set := c.links[p]
	if len(set) == 0 {
		return nil
	}
	out := make([]Page, 0, len(set))
	for q := range set {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// HasLink reports whether the corpus contains a link from → to.
// Complexity: O(1).
func (c *Corpus) HasLink(from, to Page) bool {
	_, ok := c.links[from][to]
	return ok
}
