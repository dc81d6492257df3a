// Package detect infers a document's heading structure from typography:
// font size, boldness and position, with no reliance on structural metadata.
package detect

import (
	"context"
	"io"
	"log/slog"
	"sort"

	"github.com/ebronstein/pdftoc/internal/outline"
	"github.com/ebronstein/pdftoc/internal/span"
)

// Options configures one detection run. The zero value is not usable;
// start from DefaultOptions.
type Options struct {
	// MaxLevel caps the outline depth; 0 means unlimited. Candidates below
	// the cap are merged into the deepest retained level, never dropped.
	MaxLevel int

	// MinCharCount is the least number of non-whitespace characters a
	// document needs before a body size can be resolved at all.
	MinCharCount int

	// ZoneFraction is the height fraction of the top and bottom page bands
	// scanned for running headers and footers.
	ZoneFraction float64

	// RepeatThreshold is the fraction of pages a banded text must appear on
	// to be classified as boilerplate.
	RepeatThreshold float64

	// Logger receives per-stage diagnostics at Debug level. Nil disables.
	Logger *slog.Logger
}

// DefaultOptions returns the standard detection configuration.
func DefaultOptions() Options {
	return Options{
		MaxLevel:        0,
		MinCharCount:    64,
		ZoneFraction:    0.08,
		RepeatThreshold: 0.3,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.MinCharCount <= 0 {
		o.MinCharCount = d.MinCharCount
	}
	if o.ZoneFraction <= 0 || o.ZoneFraction >= 0.5 {
		o.ZoneFraction = d.ZoneFraction
	}
	if o.RepeatThreshold <= 0 || o.RepeatThreshold > 1 {
		o.RepeatThreshold = d.RepeatThreshold
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// Headings runs stages 2-5 of the pipeline: histogram, noise filter,
// classification and level clustering. It returns flat headings in document
// order with raw levels; outline.Build turns them into the final tree.
// An empty result means no headings were detected, which is a successful
// outcome, not an error.
func Headings(doc *span.Document, opts Options) []outline.Heading {
	opts = opts.withDefaults()
	log := opts.Logger

	if len(doc.Spans) == 0 {
		return nil
	}

	// The histogram always sees the unfiltered span set: boilerplate is
	// body-sized or smaller, but captions can carry legitimate large-text
	// volume that must not be suppressed before size detection.
	st, ok := ComputeStats(doc.Spans, opts.MinCharCount)
	if !ok {
		log.Debug("body size undefined", "total_chars", st.TotalChars, "min_chars", opts.MinCharCount)
		return nil
	}
	logHistogram(log, st)

	filtered := FilterNoise(doc, opts)
	log.Debug("noise filter", "spans_in", len(doc.Spans), "spans_out", len(filtered))

	cands := Classify(filtered, st)
	cands = assignLevels(cands)
	logLevels(log, cands)

	headings := make([]outline.Heading, 0, len(cands))
	for _, c := range cands {
		headings = append(headings, outline.Heading{
			Title: c.Text,
			Level: c.RawLevel,
			Page:  c.Page,
		})
	}
	return headings
}

// Detect is the full detection path: Headings followed by tree construction.
func Detect(doc *span.Document, opts Options) []*outline.Entry {
	return outline.Build(Headings(doc, opts), opts.MaxLevel)
}

func logHistogram(log *slog.Logger, st Stats) {
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	sizes := make([]float64, 0, len(st.CharCounts))
	for size := range st.CharCounts {
		sizes = append(sizes, size)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))
	for _, size := range sizes {
		log.Debug("font histogram", "size", size, "chars", st.CharCounts[size], "body", size == st.BodySize)
	}
}

func logLevels(log *slog.Logger, cands []Candidate) {
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	for _, c := range cands {
		log.Debug("heading candidate", "text", c.Text, "size", c.FontSize, "bold", c.Bold,
			"page", c.Page, "level", c.RawLevel)
	}
}
