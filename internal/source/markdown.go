package source

import (
	"io"

	"github.com/ebronstein/pdftoc/internal/detect"
	"github.com/ebronstein/pdftoc/internal/outline"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownSource reads the outline from ATX/setext headings via goldmark.
type MarkdownSource struct{}

func (p *MarkdownSource) Outline(r io.Reader, filename string, opts detect.Options) (*Result, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var headings []outline.Heading
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok {
			continue
		}
		title := string(headingText(h, src))
		if title == "" {
			continue
		}
		headings = append(headings, outline.Heading{
			Title: title,
			Level: h.Level,
			Page:  1,
		})
	}

	return &Result{Entries: outline.Build(headings, opts.MaxLevel)}, nil
}

// headingText collects the inline text content of a heading node.
func headingText(n ast.Node, src []byte) []byte {
	var buf []byte
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf = append(buf, t.Value(src)...)
		} else {
			buf = append(buf, headingText(c, src)...)
		}
	}
	return buf
}
