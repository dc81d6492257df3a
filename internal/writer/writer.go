// Package writer materializes an outline forest as native PDF bookmarks.
package writer

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"

	"github.com/ebronstein/pdftoc/internal/outline"
)

// PageCount returns the number of pages in a PDF.
func PageCount(path string) (int, error) {
	n, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("page count: %w", err)
	}
	return n, nil
}

// ValidatePages checks that every entry's page exists in the document.
func ValidatePages(entries []*outline.Entry, pageCount int) error {
	for _, h := range outline.Flatten(entries) {
		if h.Page < 1 || h.Page > pageCount {
			return fmt.Errorf("page %d out of range (document has %d pages): %q",
				h.Page, pageCount, h.Title)
		}
	}
	return nil
}

// Write sets the outline forest as the document's bookmarks and saves to
// outPath. Unless overwrite is set, an existing file at outPath (other than
// the input itself) is refused before anything is written.
func Write(inPath, outPath string, entries []*outline.Entry, overwrite bool) error {
	if !overwrite && outPath != inPath {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("output already exists: %s", outPath)
		}
	}

	bms := toBookmarks(entries)
	if err := api.AddBookmarksFile(inPath, outPath, bms, true, nil); err != nil {
		return fmt.Errorf("write bookmarks: %w", err)
	}
	return nil
}

func toBookmarks(entries []*outline.Entry) []pdfcpu.Bookmark {
	bms := make([]pdfcpu.Bookmark, 0, len(entries))
	for _, e := range entries {
		bms = append(bms, pdfcpu.Bookmark{
			Title:    e.Title,
			PageFrom: e.Page,
			Kids:     toBookmarks(e.Children),
		})
	}
	return bms
}
