package source

import (
	"fmt"
	"io"
	"os"

	"github.com/ebronstein/pdftoc/internal/detect"
	"github.com/ebronstein/pdftoc/internal/span"
)

// PDFSource infers the outline from font sizes and boldness.
type PDFSource struct{}

func (p *PDFSource) Outline(r io.Reader, filename string, opts detect.Options) (*Result, error) {
	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "pdftoc-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	return OutlinePDFFile(tmpPath, opts)
}

// OutlinePDFFile runs the detection pipeline against a PDF on disk.
func OutlinePDFFile(path string, opts detect.Options) (*Result, error) {
	doc, err := span.ExtractFile(path)
	if err != nil {
		return nil, fmt.Errorf("extract spans: %w", err)
	}

	return &Result{
		Entries:     detect.Detect(doc, opts),
		PageCount:   doc.PageCount,
		Typographic: true,
	}, nil
}
