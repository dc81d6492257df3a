package detect

import (
	"math"
	"unicode"

	"github.com/ebronstein/pdftoc/internal/span"
)

// Stats is the run-scoped set of document statistics every later stage
// reads from. It is computed once, on the unfiltered span set, and never
// mutated afterwards.
type Stats struct {
	// BodySize is the font size carrying the largest total character
	// volume: the dominant reading-text size.
	BodySize float64

	// CharCounts maps rounded font size to non-whitespace character count.
	CharCounts map[float64]int

	// TotalChars is the sum over CharCounts.
	TotalChars int
}

// sizeKey buckets a font size to one decimal so near-identical sizes merge.
func sizeKey(size float64) float64 {
	return math.Round(size*10) / 10
}

func charCount(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

// ComputeStats builds the size histogram and resolves the body size.
// The histogram is weighted by character volume, not span count: a title
// page holds few characters at a large size and must not win. The second
// return is false when the document carries fewer than minChars characters,
// in which case body size is undefined and detection short-circuits.
func ComputeStats(spans []span.TextSpan, minChars int) (Stats, bool) {
	st := Stats{CharCounts: make(map[float64]int)}
	for _, s := range spans {
		n := charCount(s.Text)
		st.CharCounts[sizeKey(s.FontSize)] += n
		st.TotalChars += n
	}
	if st.TotalChars < minChars {
		return st, false
	}

	best := -1
	for size, count := range st.CharCounts {
		if count > best || (count == best && size < st.BodySize) {
			best = count
			st.BodySize = size
		}
	}
	return st, true
}
