package report

import (
	"fmt"
	"io"

	"github.com/nao1215/markdown"

	"github.com/katalvlaran/linkrank/pagerank"
)

// Result pairs a rank mapping with the title it should be presented under.
type Result struct {
	// Title labels the result, e.g. "PageRank Results from Iteration".
	Title string
	// Ranks is the mapping to render.
	Ranks pagerank.Ranks
}

// Text writes results in the classic console layout:
//
//	PageRank Results from Sampling (n = 10000)
//	  1.html: 0.2223
//	  2.html: 0.4294
//
// Pages appear in lexicographic order, ranks fixed to four decimals.
func Text(w io.Writer, results ...Result) error {
	for i, res := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, res.Title); err != nil {
			return err
		}
		for _, p := range res.Ranks.Sorted() {
			if _, err := fmt.Fprintf(w, "  %s: %.4f\n", p, res.Ranks[p]); err != nil {
				return err
			}
		}
	}
	return nil
}

// Markdown writes results as a GitHub-flavored markdown document with one
// H2 section and one Page/Rank table per result.
func Markdown(w io.Writer, results ...Result) error {
	md := markdown.NewMarkdown(w)
	md.H1("PageRank Results")
	for _, res := range results {
		md.PlainText("")
		md.H2(res.Title)
		md.PlainText("")

		rows := make([][]string, 0, len(res.Ranks))
		for _, p := range res.Ranks.Sorted() {
			rows = append(rows, []string{string(p), fmt.Sprintf("%.4f", res.Ranks[p])})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Page", "Rank"},
			Rows:   rows,
		})
	}
	return md.Build()
}
