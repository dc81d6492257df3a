package source

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ebronstein/pdftoc/internal/detect"
	"github.com/ebronstein/pdftoc/internal/outline"
	"github.com/fumiama/go-docx"
)

// DOCXSource reads the outline from Heading1..Heading6 paragraph styles.
type DOCXSource struct{}

func (p *DOCXSource) Outline(r io.Reader, filename string, opts detect.Options) (*Result, error) {
	// go-docx needs a ReadSeeker+size, so write to a temp file.
	tmp, err := os.CreateTemp("", "pdftoc-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, size)
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	var headings []outline.Heading
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		level := paragraphHeadingLevel(para)
		if level == 0 {
			continue
		}
		title := paragraphText(para)
		if title == "" {
			continue
		}
		headings = append(headings, outline.Heading{Title: title, Level: level, Page: 1})
	}

	return &Result{Entries: outline.Build(headings, opts.MaxLevel)}, nil
}

func paragraphHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := strings.ToLower(para.Properties.Style.Val)
	style = strings.ReplaceAll(style, " ", "")
	if !strings.HasPrefix(style, "heading") {
		return 0
	}
	switch style[len(style)-1] {
	case '1', '2', '3', '4', '5', '6':
		return int(style[len(style)-1] - '0')
	}
	return 0
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
