package span

// TextSpan is one styled text fragment extracted from a document page.
// Y grows top to bottom; Page is 1-based.
type TextSpan struct {
	Text     string
	FontSize float64
	Bold     bool
	Page     int
	Y        float64
}

// Document is the full extraction result for one source document.
// PageHeights is indexed by page-1 and may be nil when the extractor
// could not determine page geometry.
type Document struct {
	Spans       []TextSpan
	PageCount   int
	PageHeights []float64
}

// HeightOf returns the height of a 1-based page, falling back to A4.
func (d *Document) HeightOf(page int) float64 {
	if d.PageHeights != nil && page >= 1 && page <= len(d.PageHeights) {
		if h := d.PageHeights[page-1]; h > 0 {
			return h
		}
	}
	return 842.0
}
