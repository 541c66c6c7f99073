// Package pagerank - RNG utilities for the sampling estimator.
//
// This file centralizes deterministic random generation for Sample.
//
// Goals:
//   - Determinism: same seed ⇒ identical walk, identical output.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics or logging; only sentinel errors from types.go.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each Sample call creates its
//     own *rand.Rand, so concurrent Sample invocations never share state.
package pagerank

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}
