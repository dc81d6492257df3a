package writer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ebronstein/pdftoc/internal/outline"
)

func TestValidatePages(t *testing.T) {
	entries := outline.Build([]outline.Heading{
		{Title: "A", Level: 1, Page: 1},
		{Title: "A1", Level: 2, Page: 8},
		{Title: "B", Level: 1, Page: 10},
	}, 0)

	if err := ValidatePages(entries, 10); err != nil {
		t.Errorf("expected pages within range, got %v", err)
	}

	err := ValidatePages(entries, 9)
	if err == nil {
		t.Fatal("expected out-of-range error")
	}
	if !strings.Contains(err.Error(), `"B"`) {
		t.Errorf("error should name the offending entry, got %v", err)
	}
}

func TestValidatePages_ChecksNestedEntries(t *testing.T) {
	entries := outline.Build([]outline.Heading{
		{Title: "A", Level: 1, Page: 1},
		{Title: "Deep", Level: 2, Page: 99},
	}, 0)
	if err := ValidatePages(entries, 5); err == nil {
		t.Error("expected nested out-of-range page caught")
	}
}

func TestToBookmarks(t *testing.T) {
	entries := outline.Build([]outline.Heading{
		{Title: "One", Level: 1, Page: 1},
		{Title: "One A", Level: 2, Page: 3},
		{Title: "Two", Level: 1, Page: 7},
	}, 0)

	bms := toBookmarks(entries)
	if len(bms) != 2 {
		t.Fatalf("expected 2 top-level bookmarks, got %d", len(bms))
	}
	if bms[0].Title != "One" || bms[0].PageFrom != 1 {
		t.Errorf("unexpected first bookmark: %+v", bms[0])
	}
	if len(bms[0].Kids) != 1 || bms[0].Kids[0].Title != "One A" || bms[0].Kids[0].PageFrom != 3 {
		t.Errorf("unexpected kids: %+v", bms[0].Kids)
	}
	if bms[1].Title != "Two" || len(bms[1].Kids) != 0 {
		t.Errorf("unexpected second bookmark: %+v", bms[1])
	}
}

func TestWrite_RefusesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.pdf")
	if err := os.WriteFile(out, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := Write(filepath.Join(dir, "in.pdf"), out, nil, false)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("expected collision refusal, got %v", err)
	}
}
