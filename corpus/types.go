// Package corpus defines the Page identifier type and sentinel errors
// for the corpus subpackage of github.com/katalvlaran/linkrank.
package corpus

import "errors"

// Sentinel errors for corpus construction and lookup.
var (
	// ErrEmptyCorpus indicates a corpus must contain at least one page.
	ErrEmptyCorpus = errors.New("corpus: corpus must contain at least one page")
	// ErrEmptyPageID indicates a page identifier is the empty string.
	ErrEmptyPageID = errors.New("corpus: page identifier is empty")
	// ErrUnknownPage indicates a link references a page absent from the corpus.
	ErrUnknownPage = errors.New("corpus: page not found in corpus")
)

// Page uniquely identifies one page of the corpus.
// It is opaque: two Pages are the same page iff the strings are equal.
type Page string
