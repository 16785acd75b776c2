// Package discover finds outline documents: the OPML files an HTML page
// advertises, and every outline reachable from a root outline through its
// include nodes. Discovery logic stays separate from the convert pipeline.
package discover

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/opmlpipe/core"
	"github.com/gaurav-prasanna/opmlpipe/core/normalize"
)

// DefaultMaxOutlines bounds Includes so a runaway include graph stops.
const DefaultMaxOutlines = 100

// linkSelector matches <link> autodiscovery tags for outlines.
var linkSelector = cascadia.MustCompile(`link[type="text/x-opml"], link[rel="outline"]`)

// Outlines returns the outline URLs found at pageURL. If the page is itself
// an outline, it is the only result. Otherwise the page is read as HTML and
// its <link> autodiscovery tags come first, then <a> links to .opml files.
func Outlines(ctx context.Context, pageURL string, fetcher core.Fetcher) ([]string, error) {
	result, err := fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	if _, err := normalize.Parse(result.Body); err == nil {
		return []string{NormalizeURL(pageURL)}, nil
	}

	return extractOutlineLinks(result.Body, pageURL)
}

// extractOutlineLinks lists the outline links of an HTML page, resolved
// against baseURL and deduplicated.
func extractOutlineLinks(page string, baseURL string) ([]string, error) {
	root, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	queue := NewQueue()
	for _, n := range cascadia.QueryAll(root, linkSelector) {
		href := attr(n, "href")
		if href == "" || skipHref(href) {
			continue
		}
		queue.Add(NormalizeURL(ResolveURL(href, baseURL)))
	}

	goquery.NewDocumentFromNode(root).Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || href == "" || skipHref(href) {
			return
		}
		resolved := ResolveURL(href, baseURL)
		if IsOutlineURL(resolved) {
			queue.Add(NormalizeURL(resolved))
		}
	})

	return queue.All(), nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return strings.TrimSpace(a.Val)
		}
	}
	return ""
}

// Includes walks the include graph breadth-first from rootURL and returns
// every outline URL reached, rootURL first. Comment nodes are skipped, as
// they are during expansion. At most limit outlines are fetched; limit <= 0
// means DefaultMaxOutlines.
func Includes(ctx context.Context, rootURL string, fetcher core.Fetcher, limit int) ([]string, error) {
	if limit <= 0 {
		limit = DefaultMaxOutlines
	}

	queue := NewQueue()
	queue.Add(NormalizeURL(rootURL))

	fetched := 0
	for queue.HasNext() && fetched < limit {
		current := queue.Next()

		result, err := fetcher.Fetch(ctx, current)
		if err != nil {
			return nil, err
		}
		fetched++

		doc, err := normalize.Parse(result.Body)
		if err != nil {
			return nil, &core.IncludeResolutionError{URL: current, Err: err}
		}
		for _, ref := range includeURLs(doc.Body) {
			queue.Add(NormalizeURL(ResolveURL(ref, current)))
		}
	}

	return queue.All(), nil
}

// includeURLs lists the url of every non-comment include node under n,
// including n itself, in document order.
func includeURLs(n *core.Node) []string {
	var urls []string
	var walk func(*core.Node)
	walk = func(n *core.Node) {
		if n.IsComment() {
			return
		}
		if n.IsInclude() {
			urls = append(urls, n.URL())
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(n)
	return urls
}
