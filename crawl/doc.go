// Package crawl reads a directory of HTML files from disk and assembles
// them into a closed corpus.Corpus for ranking.
//
// What:
//
//   - Directory scans one directory (non-recursively) for files ending in
//     ".html", parses each one, and extracts the href target of every
//     anchor element.
//   - Links pointing outside the corpus — targets that are not themselves
//     .html files of the same directory — are dropped, as are self-links,
//     so the resulting Corpus satisfies the closed-world invariant by
//     construction.
//
// Why:
//
//   - The ranking algorithms consume an already-parsed link graph; this
//     package is the thin I/O collaborator that supplies it.
//
// Parsing uses golang.org/x/net/html rather than a text pattern: it
// tolerates the malformed markup common in real pages and finds anchors
// wherever they sit in the document tree.
//
// Errors:
//
//   - ErrNoPages: the directory contains no .html files.
//   - Filesystem and parse errors are wrapped with the offending path.
package crawl
