// Package main provides the entry point for the linkrank CLI.
//
// linkrank estimates the relative importance of pages in a directory of
// HTML files using two PageRank estimators: a Monte-Carlo sampler and a
// deterministic fixed-point iterator.
//
// Usage:
//
//	linkrank rank <corpus-dir>
//
// See --help for all available options.
package main

// main is the entry point for linkrank.
func main() {
	Execute()
}
