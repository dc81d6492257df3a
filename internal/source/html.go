package source

import (
	"fmt"
	"io"
	"strings"

	"github.com/ebronstein/pdftoc/internal/detect"
	"github.com/ebronstein/pdftoc/internal/outline"
	"golang.org/x/net/html"
)

// HTMLSource reads the outline from h1..h6 elements.
type HTMLSource struct{}

func (p *HTMLSource) Outline(r io.Reader, filename string, opts detect.Options) (*Result, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var headings []outline.Heading
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "nav":
				return
			}
			if level := headingLevel(n.Data); level > 0 {
				title := textContent(n)
				if title != "" {
					headings = append(headings, outline.Heading{
						Title: title,
						Level: level,
						Page:  1,
					})
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return &Result{Entries: outline.Build(headings, opts.MaxLevel)}, nil
}

func headingLevel(tag string) int {
	if len(tag) == 2 && tag[0] == 'h' && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0')
	}
	return 0
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}
