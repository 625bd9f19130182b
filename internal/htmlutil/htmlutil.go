// Package htmlutil holds the HTML helpers shared by the screen and dashboard parsers.
package htmlutil

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Parse builds a goquery document from an HTML string.
func Parse(body string) (*goquery.Document, error) {
	root, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return goquery.NewDocumentFromNode(root), nil
}

// ExtractText concatenates every text node below n.
func ExtractText(n *html.Node) string {
	var extract func(*html.Node) string

	extract = func(n *html.Node) string {
		if n.Type == html.TextNode {
			return n.Data
		}
		var sb strings.Builder
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			sb.WriteString(extract(c))
		}
		return sb.String()
	}

	return extract(n)
}

// SelectionText is ExtractText over every node of sel, whitespace-collapsed.
func SelectionText(sel *goquery.Selection) string {
	var sb strings.Builder
	for _, n := range sel.Nodes {
		sb.WriteString(ExtractText(n))
		sb.WriteString(" ")
	}
	return CollapseSpace(sb.String())
}

// CollapseSpace turns every whitespace run (NBSP included) into one space and trims.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Resolve makes href absolute against base. Unparseable hrefs come back unchanged.
func Resolve(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil || base == nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
