// Package corpus models a small, closed hyperlink corpus as an immutable
// directed graph over opaque page identifiers.
//
// What:
//
//   - Page is an opaque identifier (a file or resource name); equality is
//     identifier equality, no normalization is applied.
//   - Corpus maps every Page to the set of Pages it links to. Every link
//     target is itself a member of the corpus, and self-links are excluded
//     by construction.
//   - Builder accumulates pages and links and validates the closed-world
//     invariant once, at Build time. A built Corpus is read-only.
//
// Why:
//
//   - Link-analysis algorithms (see the pagerank package) assume a finite,
//     non-empty, internally consistent graph; validating once up front lets
//     the algorithms skip per-step checks.
//   - Immutability makes a Corpus safe to share across concurrent
//     estimator runs without locks.
//
// Complexity:
//
//   - Build:     O(V + E) validation, Memory: O(V + E).
//   - Links:     O(L log L) per call (sorted copy, L = out-degree).
//   - Pages:     O(V) per call (copy of the cached sorted slice).
//   - Has, OutDegree, Len: O(1).
//
// Errors:
//
//   - ErrEmptyCorpus:  no pages were added before Build.
//   - ErrEmptyPageID:  a page with an empty identifier was added.
//   - ErrUnknownPage:  a link references a page absent from the corpus.
package corpus
