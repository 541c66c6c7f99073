package crawl

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/katalvlaran/linkrank/corpus"
)

// htmlExt is the filename suffix selecting corpus pages.
const htmlExt = ".html"

// ErrNoPages indicates the scanned directory holds no .html files.
var ErrNoPages = errors.New("crawl: no .html pages found in directory")

// Directory parses every .html file in dir and returns the corpus they
// form: one page per file, one link per anchor whose href names another
// page of the same directory. Anchors pointing elsewhere (absolute URLs,
// files outside the corpus, the page itself) are ignored.
//
// Complexity: O(total HTML size) parsing + O(V + E) corpus construction.
func Directory(dir string) (*corpus.Corpus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("crawl: read directory %q: %w", dir, err)
	}

	// First pass: parse every page and record its raw link targets.
	// Link filtering needs the full page set, so it waits for pass two.
	rawLinks := make(map[corpus.Page][]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), htmlExt) {
			continue
		}
		targets, err := extractLinks(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		rawLinks[corpus.Page(entry.Name())] = targets
	}
	if len(rawLinks) == 0 {
		return nil, ErrNoPages
	}

	// Second pass: keep only links to other pages of the corpus.
	b := corpus.NewBuilder()
	for page := range rawLinks {
		b.AddPage(page)
	}
	for page, targets := range rawLinks {
		for _, t := range targets {
			target := corpus.Page(t)
			if _, ok := rawLinks[target]; ok {
				b.AddLink(page, target)
			}
		}
	}
	return b.Build()
}

// extractLinks parses one HTML file and returns every anchor href found
// in its document tree, in document order, duplicates included.
func extractLinks(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("crawl: open %q: %w", path, err)
	}
	defer f.Close()

	doc, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("crawl: parse %q: %w", path, err)
	}

	var links []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key == "href" {
					links = append(links, attr.Val)
					break
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return links, nil
}
