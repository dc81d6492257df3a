package detect

import (
	"math"
	"strings"

	"github.com/ebronstein/pdftoc/internal/span"
)

// Candidate is a span believed to be a heading, prior to level assignment
// and tree nesting. RawLevel is set by assignLevels and is not guaranteed
// contiguous from 1 until tree repair.
type Candidate struct {
	Text     string
	FontSize float64
	Bold     bool
	Page     int
	Y        float64
	RawLevel int
}

// Spans merged into one heading line must share a baseline within this
// distance.
const lineMergeTolerance = 2.0

// Classify flags noise-filtered spans as heading candidates: strictly larger
// than body size, or bold at body size. Consecutive candidates with the same
// style on the same line are merged into one candidate, so a word-wrapped or
// per-word styled heading does not yield several entries.
func Classify(spans []span.TextSpan, st Stats) []Candidate {
	body := sizeKey(st.BodySize)

	var cands []Candidate
	for _, s := range spans {
		size := sizeKey(s.FontSize)
		if size < body || (size == body && !s.Bold) {
			continue
		}

		text := strings.TrimSpace(s.Text)
		// Single stray characters at heading size are decoration, not
		// headings, unless they open a numbered section.
		if len(text) < 2 && !startsWithDigit(text) {
			continue
		}

		cands = append(cands, Candidate{
			Text:     text,
			FontSize: size,
			Bold:     s.Bold,
			Page:     s.Page,
			Y:        s.Y,
		})
	}

	return mergeSameLine(cands)
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

func mergeSameLine(cands []Candidate) []Candidate {
	if len(cands) == 0 {
		return nil
	}

	merged := []Candidate{cands[0]}
	for _, c := range cands[1:] {
		prev := &merged[len(merged)-1]
		sameLine := c.Page == prev.Page &&
			math.Abs(c.Y-prev.Y) < lineMergeTolerance &&
			c.FontSize == prev.FontSize &&
			c.Bold == prev.Bold
		if sameLine {
			prev.Text = prev.Text + " " + c.Text
			continue
		}
		merged = append(merged, c)
	}
	return merged
}
