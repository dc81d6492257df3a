package detect

import (
	"regexp"
	"strings"

	"github.com/ebronstein/pdftoc/internal/span"
)

var (
	pageNumberRe = regexp.MustCompile(`^(?i)(\d+|[ivxlcdm]+|page\s+\d+)$`)
	captionRe    = regexp.MustCompile(`^(?i)(figure|fig\.|table|listing|algorithm)\s+\d`)
	wsRe         = regexp.MustCompile(`\s+`)
)

func normalizeText(s string) string {
	return strings.ToLower(wsRe.ReplaceAllString(strings.TrimSpace(s), " "))
}

func isPageNumber(text string) bool {
	return pageNumberRe.MatchString(strings.TrimSpace(text))
}

func isCaption(text string) bool {
	return captionRe.MatchString(strings.TrimSpace(text))
}

// recurringTexts finds text that repeats in the top or bottom page band on
// at least max(2, threshold*pages) pages: running headers and footers.
// Each page contributes a given text at most once.
func recurringTexts(doc *span.Document, zoneFraction, threshold float64) map[string]bool {
	if doc.PageCount < 3 {
		return nil
	}

	seenOnPage := make(map[int]map[string]bool)
	pagesSeen := make(map[string]int)

	for _, s := range doc.Spans {
		height := doc.HeightOf(s.Page)
		inTop := s.Y < height*zoneFraction
		inBottom := s.Y > height*(1-zoneFraction)
		if !inTop && !inBottom {
			continue
		}

		norm := normalizeText(s.Text)
		if norm == "" || isPageNumber(norm) {
			continue
		}
		if seenOnPage[s.Page] == nil {
			seenOnPage[s.Page] = make(map[string]bool)
		}
		if seenOnPage[s.Page][norm] {
			continue
		}
		seenOnPage[s.Page][norm] = true
		pagesSeen[norm]++
	}

	minPages := int(float64(doc.PageCount) * threshold)
	if minPages < 2 {
		minPages = 2
	}

	recurring := make(map[string]bool)
	for norm, n := range pagesSeen {
		if n >= minPages {
			recurring[norm] = true
		}
	}
	return recurring
}

// FilterNoise removes spans that are structurally not headings: recurring
// header/footer boilerplate (dropped document-wide, not only where it
// repeats), page-number tokens, and figure/table caption lines. The input
// slice is left untouched so the histogram can be computed on the full set;
// filtering an already-filtered set is a no-op.
func FilterNoise(doc *span.Document, opts Options) []span.TextSpan {
	recurring := recurringTexts(doc, opts.ZoneFraction, opts.RepeatThreshold)

	kept := make([]span.TextSpan, 0, len(doc.Spans))
	for _, s := range doc.Spans {
		if recurring[normalizeText(s.Text)] {
			continue
		}
		if isPageNumber(s.Text) {
			continue
		}
		if isCaption(s.Text) {
			continue
		}
		kept = append(kept, s)
	}
	return kept
}
