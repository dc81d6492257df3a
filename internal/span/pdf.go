package span

import (
	"fmt"
	"math"
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

const (
	// Characters on the same visual line may sit a little off the shared
	// baseline (superscripts, font substitution), so rows are grouped with
	// a small Y tolerance.
	rowTolerance = 2.0

	// Horizontal gap, as a fraction of the font size, that separates words
	// within one span.
	wordSpaceFraction = 0.3
)

// ExtractFile reads a PDF and returns its text spans in (page, top-to-bottom)
// order together with page count and page heights.
func ExtractFile(path string) (*Document, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	doc := &Document{PageCount: reader.NumPage()}
	doc.PageHeights = make([]float64, doc.PageCount)

	for i := 1; i <= doc.PageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		height := pageHeight(page)
		doc.PageHeights[i-1] = height

		content := page.Content()
		doc.Spans = append(doc.Spans, groupTexts(content.Text, i, height)...)
	}

	return doc, nil
}

// pageHeight reads the MediaBox height, falling back to A4.
func pageHeight(page pdflib.Page) float64 {
	box := page.V.Key("MediaBox")
	if box.IsNull() || box.Len() < 4 {
		return 842.0
	}
	h := box.Index(3).Float64() - box.Index(1).Float64()
	if h <= 0 {
		return 842.0
	}
	return h
}

// pending accumulates one span while consecutive characters share its style
// and row.
type pending struct {
	font  string
	size  float64
	y     float64 // PDF user space, bottom-up
	lastX float64
	lastW float64
	text  strings.Builder
}

// groupTexts merges the per-character Text elements ledongthuc/pdf emits into
// word-joined spans, one per (font, size, row) run, and converts Y to
// top-down coordinates.
func groupTexts(texts []pdflib.Text, page int, height float64) []TextSpan {
	var spans []TextSpan
	var cur *pending

	flush := func() {
		if cur == nil {
			return
		}
		text := strings.TrimSpace(cur.text.String())
		if text != "" {
			spans = append(spans, TextSpan{
				Text:     text,
				FontSize: math.Round(cur.size*100) / 100,
				Bold:     isBoldFont(cur.font),
				Page:     page,
				Y:        height - cur.y,
			})
		}
		cur = nil
	}

	for _, t := range texts {
		if t.S == "" {
			continue
		}
		if cur == nil || t.Font != cur.font || math.Abs(t.FontSize-cur.size) > 0.01 ||
			math.Abs(t.Y-cur.y) > rowTolerance {
			flush()
			cur = &pending{font: t.Font, size: t.FontSize, y: t.Y, lastX: t.X, lastW: t.W}
			cur.text.WriteString(t.S)
			continue
		}

		gap := t.X - (cur.lastX + cur.lastW)
		if gap > wordSpaceFraction*cur.size {
			cur.text.WriteByte(' ')
		}
		cur.text.WriteString(t.S)
		cur.lastX = t.X
		cur.lastW = t.W
	}
	flush()

	// Content streams are not required to paint top-to-bottom; restore
	// visual order within the page.
	sort.SliceStable(spans, func(a, b int) bool {
		return spans[a].Y < spans[b].Y
	})

	return spans
}

func isBoldFont(font string) bool {
	f := strings.ToLower(font)
	return strings.Contains(f, "bold") || strings.Contains(f, "black") ||
		strings.Contains(f, "heavy")
}
