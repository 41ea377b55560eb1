package output

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// ExtractTitle returns the text content of the first <title> element in
// body, or "" if body is not HTML or carries no title. This is a
// report-only enrichment and is never consulted by internal/classify.
func ExtractTitle(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	var title string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if title != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "title" && n.FirstChild != nil {
			title = strings.TrimSpace(n.FirstChild.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return title
}

// EnrichTitles fills each view's Title field from bodies, matched by
// index. bodies shorter than views is fine — remaining titles stay "".
func EnrichTitles(view *ScanView, bodies [][]byte) {
	for i := range view.Variations {
		if i >= len(bodies) {
			return
		}
		view.Variations[i].Title = ExtractTitle(bodies[i])
	}
}
