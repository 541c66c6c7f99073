package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkrank/pagerank"
	"github.com/katalvlaran/linkrank/report"
)

// TestText_Layout verifies the console layout: title, two-space indent,
// lexicographic page order, four decimals, blank line between results.
func TestText_Layout(t *testing.T) {
	var buf bytes.Buffer
	err := report.Text(&buf,
		report.Result{
			Title: "PageRank Results from Sampling (n = 10000)",
			Ranks: pagerank.Ranks{"b.html": 0.75, "a.html": 0.25},
		},
		report.Result{
			Title: "PageRank Results from Iteration",
			Ranks: pagerank.Ranks{"a.html": 0.5, "b.html": 0.5},
		},
	)
	require.NoError(t, err)

	want := `PageRank Results from Sampling (n = 10000)
  a.html: 0.2500
  b.html: 0.7500

PageRank Results from Iteration
  a.html: 0.5000
  b.html: 0.5000
`
	assert.Equal(t, want, buf.String())
}

// TestText_Deterministic verifies identical input renders identical bytes.
func TestText_Deterministic(t *testing.T) {
	ranks := pagerank.Ranks{"z.html": 0.1, "a.html": 0.6, "m.html": 0.3}

	var first, second bytes.Buffer
	require.NoError(t, report.Text(&first, report.Result{Title: "t", Ranks: ranks}))
	require.NoError(t, report.Text(&second, report.Result{Title: "t", Ranks: ranks}))
	assert.Equal(t, first.String(), second.String())
}

// TestMarkdown_Table verifies the markdown rendering carries the title and
// one row per page in lexicographic order.
func TestMarkdown_Table(t *testing.T) {
	var buf bytes.Buffer
	err := report.Markdown(&buf, report.Result{
		Title: "PageRank Results from Iteration",
		Ranks: pagerank.Ranks{"b.html": 0.75, "a.html": 0.25},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "# PageRank Results")
	assert.Contains(t, out, "## PageRank Results from Iteration")
	assert.Contains(t, out, "a.html")
	assert.Contains(t, out, "0.2500")
	assert.Contains(t, out, "b.html")
	assert.Contains(t, out, "0.7500")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("a.html")), bytes.Index(buf.Bytes(), []byte("b.html")),
		"rows must be in lexicographic page order")
}
