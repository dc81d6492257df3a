// Package source turns supported document formats into an outline forest.
// PDF goes through typographic inference; Markdown, HTML and DOCX carry
// explicit heading structure and skip straight to tree construction.
package source

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ebronstein/pdftoc/internal/detect"
	"github.com/ebronstein/pdftoc/internal/outline"
)

// Result is one source document's detected outline.
type Result struct {
	Entries []*outline.Entry

	// PageCount is 0 for formats without page geometry.
	PageCount int

	// Typographic is true when the outline was inferred from font analysis
	// rather than read from explicit document structure.
	Typographic bool
}

// Source detects the outline of a single document.
type Source interface {
	Outline(r io.Reader, filename string, opts detect.Options) (*Result, error)
}

// SupportedExtensions lists file extensions this engine can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".docx":     true,
}

// ForFile returns the appropriate source for a filename.
func ForFile(filename string) (Source, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return &PDFSource{}, nil
	case ".md", ".markdown":
		return &MarkdownSource{}, nil
	case ".html", ".htm":
		return &HTMLSource{}, nil
	case ".docx":
		return &DOCXSource{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", filepath.Ext(filename))
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}
