// Package pagerank defines result types, configuration options,
// and sentinel errors for the pagerank subpackage of
// github.com/katalvlaran/linkrank.
package pagerank

import (
	"errors"
	"math"
	"sort"

	"github.com/katalvlaran/linkrank/corpus"
)

// Default parameter values shared by both estimators.
const (
	// DefaultDamping is the classic damping factor: follow a link with
	// probability 0.85, teleport uniformly with probability 0.15.
	DefaultDamping = 0.85

	// DefaultSamples is the default walk length of the sampling estimator.
	DefaultSamples = 10000

	// DefaultThreshold is the per-page absolute convergence threshold of
	// the iterative estimator. Note it is absolute, not relative to rank
	// magnitude: comparatively loose on large corpora, tight on small ones.
	DefaultThreshold = 0.001

	// DefaultMaxSweeps bounds the iterative estimator. With damping < 1
	// the recurrence is a contraction and converges in far fewer sweeps;
	// hitting the bound signals a degenerate configuration, reported as
	// ErrNoConvergence instead of looping forever.
	DefaultMaxSweeps = 1000
)

// Sentinel errors returned by the estimators.
var (
	// ErrNilCorpus indicates a nil *corpus.Corpus was passed in.
	ErrNilCorpus = errors.New("pagerank: corpus is nil")

	// ErrBadDamping indicates a damping factor outside [0, 1].
	ErrBadDamping = errors.New("pagerank: damping factor must be in [0,1]")

	// ErrBadSamples indicates a sample count below 1.
	ErrBadSamples = errors.New("pagerank: sample count must be >= 1")

	// ErrBadThreshold indicates a non-positive convergence threshold.
	ErrBadThreshold = errors.New("pagerank: convergence threshold must be positive")

	// ErrBadMaxSweeps indicates a sweep bound below 1.
	ErrBadMaxSweeps = errors.New("pagerank: max sweeps must be >= 1")

	// ErrBadStart indicates a starting rank mapping whose page set does
	// not match the corpus exactly.
	ErrBadStart = errors.New("pagerank: start ranks must cover exactly the corpus pages")

	// ErrNoConvergence indicates the iterative estimator exhausted its
	// sweep bound before every page settled within the threshold.
	ErrNoConvergence = errors.New("pagerank: iteration did not converge within max sweeps")
)

// Distribution is a single-step transition distribution: for one source
// page, the probability of moving to each page of the corpus. Values are
// non-negative and sum to 1 over the full page set.
type Distribution map[corpus.Page]float64

// Sum returns the total probability mass of the distribution.
// Complexity: O(V).
func (d Distribution) Sum() float64 {
	var total float64
	for _, p := range d {
		total += p
	}
	return total
}

// Ranks maps every page of a corpus to its estimated rank.
// Values are non-negative and sum to 1 (within floating-point tolerance).
type Ranks map[corpus.Page]float64

// Sum returns the total rank mass. A valid result sums to 1.
// Complexity: O(V).
func (r Ranks) Sum() float64 {
	var total float64
	for _, v := range r {
		total += v
	}
	return total
}

// L1 returns the L1 distance Σ|r[p] - other[p]| over the union of pages.
// Useful for comparing a sampled estimate against the iterative fixed
// point. Complexity: O(V).
func (r Ranks) L1(other Ranks) float64 {
	var dist float64
	for p, v := range r {
		dist += math.Abs(v - other[p])
	}
	for p, v := range other {
		if _, ok := r[p]; !ok {
			dist += math.Abs(v)
		}
	}
	return dist
}

// Sorted returns the pages of the mapping in lexicographic order,
// for deterministic presentation. Complexity: O(V log V).
func (r Ranks) Sorted() []corpus.Page {
	pages := make([]corpus.Page, 0, len(r))
	for p := range r {
		pages = append(pages, p)
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i] < pages[j] })
	return pages
}

// Options configures the estimators.
//
// Damping   – probability of following an actual link versus teleporting.
// Samples   – walk length of the sampling estimator (Sample only).
// Seed      – RNG seed for Sample; 0 selects a fixed default seed so that
//             the zero value is still fully reproducible (Sample only).
// Threshold – per-page absolute convergence threshold (Iterate only).
// MaxSweeps – upper bound on sweeps before ErrNoConvergence (Iterate only).
// Start     – optional starting rank mapping for Iterate; nil means the
//             uniform 1/N initialization. Must cover exactly the corpus
//             pages when set. Restarting from a previous result converges
//             immediately, since it is already a fixed point.
type Options struct {
	Damping   float64
	Samples   int
	Seed      int64
	Threshold float64
	MaxSweeps int
	Start     Ranks
}

// Option represents a functional option for configuring an estimator.
type Option func(*Options)

// WithDamping sets the damping factor. Must lie in [0,1]; values outside
// cause ErrBadDamping at estimation time.
func WithDamping(d float64) Option {
	return func(o *Options) { o.Damping = d }
}

// WithSamples sets the walk length of the sampling estimator.
// Must be ≥ 1; smaller values cause ErrBadSamples at estimation time.
func WithSamples(n int) Option {
	return func(o *Options) { o.Samples = n }
}

// WithSeed fixes the random seed of the sampling estimator.
// Seed 0 selects the package's fixed default stream, so two runs with the
// same (possibly zero) seed always produce identical output.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithThreshold overrides the per-page absolute convergence threshold of
// the iterative estimator. Must be > 0; otherwise ErrBadThreshold.
func WithThreshold(t float64) Option {
	return func(o *Options) { o.Threshold = t }
}

// WithMaxSweeps overrides the sweep bound of the iterative estimator.
// Must be ≥ 1; otherwise ErrBadMaxSweeps.
func WithMaxSweeps(n int) Option {
	return func(o *Options) { o.MaxSweeps = n }
}

// WithStart seeds the iterative estimator with a previous rank mapping
// instead of the uniform 1/N initialization. The mapping is copied; the
// caller's value is never mutated.
func WithStart(start Ranks) Option {
	return func(o *Options) {
		if start == nil {
			o.Start = nil
			return
		}
		cp := make(Ranks, len(start))
		for p, v := range start {
			cp[p] = v
		}
		o.Start = cp
	}
}

// DefaultOptions returns Options initialized with the package defaults:
// Damping=0.85, Samples=10000, Seed=0 (fixed default stream),
// Threshold=0.001, MaxSweeps=1000, Start=nil (uniform initialization).
func DefaultOptions() Options {
	return Options{
		Damping:   DefaultDamping,
		Samples:   DefaultSamples,
		Seed:      0,
		Threshold: DefaultThreshold,
		MaxSweeps: DefaultMaxSweeps,
	}
}

// buildOptions applies functional options over the defaults.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// validateCommon checks the inputs both estimators share.
func validateCommon(c *corpus.Corpus, o Options) error {
	if c == nil {
		return ErrNilCorpus
	}
	if c.Len() == 0 {
		return corpus.ErrEmptyCorpus
	}
	if o.Damping < 0 || o.Damping > 1 || math.IsNaN(o.Damping) {
		return ErrBadDamping
	}
	return nil
}
