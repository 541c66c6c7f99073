package pagerank_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/linkrank/corpus"
	"github.com/katalvlaran/linkrank/pagerank"
)

// benchRing builds a ring corpus of size n: page i links to page i+1 and
// every tenth page is left dangling to exercise the redistribution path.
func benchRing(b *testing.B, n int) *corpus.Corpus {
	b.Helper()
	m := make(map[corpus.Page][]corpus.Page, n)
	for i := 0; i < n; i++ {
		p := corpus.Page(fmt.Sprintf("%d.html", i))
		if i%10 == 9 {
			m[p] = nil // dangling
			continue
		}
		next := corpus.Page(fmt.Sprintf("%d.html", (i+1)%n))
		m[p] = []corpus.Page{next}
	}
	c, err := corpus.FromMap(m)
	if err != nil {
		b.Fatalf("build ring corpus: %v", err)
	}
	return c
}

// benchmarkSample runs Sample on an n-page ring with the given walk length.
func benchmarkSample(b *testing.B, pages, samples int) {
	c := benchRing(b, pages)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pagerank.Sample(c, pagerank.WithSamples(samples)); err != nil {
			b.Fatalf("Sample failed: %v", err)
		}
	}
}

// benchmarkIterate runs Iterate on an n-page ring.
func benchmarkIterate(b *testing.B, pages int) {
	c := benchRing(b, pages)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pagerank.Iterate(c); err != nil {
			b.Fatalf("Iterate failed: %v", err)
		}
	}
}

// BenchmarkSample_Small benchmarks a 1000-step walk over 10 pages.
func BenchmarkSample_Small(b *testing.B) { benchmarkSample(b, 10, 1000) }

// BenchmarkSample_Default benchmarks the default 10000-step walk over 50 pages.
func BenchmarkSample_Default(b *testing.B) { benchmarkSample(b, 50, pagerank.DefaultSamples) }

// BenchmarkIterate_Small benchmarks convergence on 10 pages.
func BenchmarkIterate_Small(b *testing.B) { benchmarkIterate(b, 10) }

// BenchmarkIterate_Medium benchmarks convergence on 100 pages.
func BenchmarkIterate_Medium(b *testing.B) { benchmarkIterate(b, 100) }

// BenchmarkTransition benchmarks one distribution build over 100 pages.
func BenchmarkTransition(b *testing.B) {
	c := benchRing(b, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pagerank.Transition(c, "0.html", pagerank.DefaultDamping); err != nil {
			b.Fatalf("Transition failed: %v", err)
		}
	}
}
