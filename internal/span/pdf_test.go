package span

import (
	"testing"

	pdflib "github.com/ledongthuc/pdf"
)

// chars lays out a string as per-character Text elements on one row, the way
// most content streams paint it.
func chars(s string, font string, size, x, y float64) []pdflib.Text {
	var out []pdflib.Text
	w := size * 0.5
	for _, r := range s {
		out = append(out, pdflib.Text{
			Font: font, FontSize: size, X: x, Y: y, W: w, S: string(r),
		})
		x += w
	}
	return out
}

func TestGroupTexts_JoinsWordsByGap(t *testing.T) {
	texts := chars("Hello", "Helvetica", 12, 50, 700)
	// Word gap wider than 0.3 * size.
	texts = append(texts, chars("World", "Helvetica", 12, 90, 700)...)

	spans := groupTexts(texts, 1, 842)
	if len(spans) != 1 {
		t.Fatalf("expected one span, got %+v", spans)
	}
	if spans[0].Text != "Hello World" {
		t.Errorf("expected %q, got %q", "Hello World", spans[0].Text)
	}
}

func TestGroupTexts_NoSpaceForKerningGaps(t *testing.T) {
	texts := chars("Aw", "Helvetica", 12, 50, 700)
	// Tiny negative-kerning style gap before the next glyph.
	texts = append(texts, pdflib.Text{
		Font: "Helvetica", FontSize: 12, X: 63, Y: 700, W: 6, S: "a",
	})

	spans := groupTexts(texts, 1, 842)
	if len(spans) != 1 || spans[0].Text != "Awa" {
		t.Errorf("expected glyphs joined without a space, got %+v", spans)
	}
}

func TestGroupTexts_SplitsOnStyleChange(t *testing.T) {
	texts := chars("Title", "Helvetica-Bold", 18, 50, 780)
	texts = append(texts, chars("body", "Helvetica", 10, 50, 750)...)

	spans := groupTexts(texts, 3, 842)
	if len(spans) != 2 {
		t.Fatalf("expected two spans, got %+v", spans)
	}
	if !spans[0].Bold || spans[0].FontSize != 18 || spans[0].Text != "Title" {
		t.Errorf("unexpected first span: %+v", spans[0])
	}
	if spans[1].Bold || spans[1].FontSize != 10 {
		t.Errorf("unexpected second span: %+v", spans[1])
	}
	if spans[0].Page != 3 || spans[1].Page != 3 {
		t.Errorf("page not propagated: %+v", spans)
	}
}

func TestGroupTexts_SplitsOnRowChange(t *testing.T) {
	texts := chars("one", "Times", 11, 50, 700)
	texts = append(texts, chars("two", "Times", 11, 50, 680)...)

	spans := groupTexts(texts, 1, 842)
	if len(spans) != 2 {
		t.Fatalf("expected two spans, got %+v", spans)
	}
}

func TestGroupTexts_ToleratesBaselineJitter(t *testing.T) {
	texts := chars("off", "Times", 11, 50, 700)
	texts = append(texts, chars("set", "Times", 11, 68, 701.5)...)

	spans := groupTexts(texts, 1, 842)
	if len(spans) != 1 {
		t.Errorf("expected jittered glyphs on one row merged, got %+v", spans)
	}
}

func TestGroupTexts_ConvertsYToTopDown(t *testing.T) {
	// PDF user space is bottom-up; a glyph near the top of an 842pt page has
	// a large Y there and a small top-down Y here.
	spans := groupTexts(chars("head", "Times", 11, 50, 800), 1, 842)
	if len(spans) != 1 {
		t.Fatalf("expected one span, got %+v", spans)
	}
	if spans[0].Y != 42 {
		t.Errorf("expected top-down Y 42, got %v", spans[0].Y)
	}
}

func TestGroupTexts_SortsByVisualOrder(t *testing.T) {
	texts := chars("lower", "Times", 11, 50, 300)
	texts = append(texts, chars("upper", "Times", 11, 50, 700)...)

	spans := groupTexts(texts, 1, 842)
	if len(spans) != 2 || spans[0].Text != "upper" || spans[1].Text != "lower" {
		t.Errorf("expected top-to-bottom order, got %+v", spans)
	}
}

func TestIsBoldFont(t *testing.T) {
	cases := []struct {
		font string
		want bool
	}{
		{"Helvetica-Bold", true},
		{"ABCDEF+TimesNewRomanPS-BoldMT", true},
		{"Roboto-Black", true},
		{"Lato-Heavy", true},
		{"Helvetica", false},
		{"Times-Italic", false},
	}
	for _, c := range cases {
		if got := isBoldFont(c.font); got != c.want {
			t.Errorf("isBoldFont(%q) = %v, want %v", c.font, got, c.want)
		}
	}
}

func TestHeightOf(t *testing.T) {
	doc := &Document{PageCount: 2, PageHeights: []float64{792, 612}}
	if h := doc.HeightOf(2); h != 612 {
		t.Errorf("expected 612, got %v", h)
	}
	if h := doc.HeightOf(5); h != 842 {
		t.Errorf("expected A4 fallback for unknown page, got %v", h)
	}
}
