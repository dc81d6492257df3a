package outline

import (
	"reflect"
	"testing"
)

func TestBuild_NestsByLevel(t *testing.T) {
	headings := []Heading{
		{Title: "One", Level: 1, Page: 1},
		{Title: "One A", Level: 2, Page: 2},
		{Title: "One B", Level: 2, Page: 4},
		{Title: "Two", Level: 1, Page: 7},
	}

	got := Build(headings, 0)
	want := []*Entry{
		{Title: "One", Level: 1, Page: 1, Children: []*Entry{
			{Title: "One A", Level: 2, Page: 2},
			{Title: "One B", Level: 2, Page: 4},
		}},
		{Title: "Two", Level: 1, Page: 7},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected tree:\n got %+v\nwant %+v", got, want)
	}
}

func TestBuild_ClampsLevelSkips(t *testing.T) {
	// A raw level 3 with no open level 2 cannot jump two levels at once.
	headings := []Heading{
		{Title: "Chapter", Level: 1, Page: 1},
		{Title: "Deep", Level: 3, Page: 2},
	}

	got := Build(headings, 0)
	if len(got) != 1 || len(got[0].Children) != 1 {
		t.Fatalf("expected one root with one child, got %+v", got)
	}
	child := got[0].Children[0]
	if child.Level != 2 {
		t.Errorf("expected clamped level 2, got %d", child.Level)
	}
}

func TestBuild_FirstHeadingAlwaysLevelOne(t *testing.T) {
	got := Build([]Heading{{Title: "Intro", Level: 4, Page: 1}}, 0)
	if len(got) != 1 || got[0].Level != 1 {
		t.Fatalf("expected a single level-1 root, got %+v", got)
	}
}

func TestBuild_MaxLevelMergesInsteadOfDropping(t *testing.T) {
	headings := []Heading{
		{Title: "One", Level: 1, Page: 1},
		{Title: "One A", Level: 2, Page: 2},
		{Title: "One A i", Level: 3, Page: 3},
		{Title: "One A ii", Level: 3, Page: 4},
	}

	got := Build(headings, 2)

	flat := Flatten(got)
	if len(flat) != len(headings) {
		t.Fatalf("expected all %d headings kept, got %d", len(headings), len(flat))
	}
	for _, h := range flat {
		if h.Level > 2 {
			t.Errorf("entry %q exceeds max level: %d", h.Title, h.Level)
		}
	}
	// The too-deep entries become siblings of "One A" under "One".
	if n := len(got[0].Children); n != 3 {
		t.Errorf("expected 3 children under root, got %d", n)
	}
}

func TestBuild_Empty(t *testing.T) {
	if got := Build(nil, 0); got != nil {
		t.Errorf("expected nil forest for no headings, got %+v", got)
	}
}

func TestFlatten_PreOrder(t *testing.T) {
	entries := Build([]Heading{
		{Title: "A", Level: 1, Page: 1},
		{Title: "A1", Level: 2, Page: 2},
		{Title: "A1a", Level: 3, Page: 3},
		{Title: "B", Level: 1, Page: 9},
	}, 0)

	flat := Flatten(entries)
	wantTitles := []string{"A", "A1", "A1a", "B"}
	if len(flat) != len(wantTitles) {
		t.Fatalf("expected %d headings, got %d", len(wantTitles), len(flat))
	}
	for i, w := range wantTitles {
		if flat[i].Title != w {
			t.Errorf("flat[%d]: expected %q, got %q", i, w, flat[i].Title)
		}
	}
}

func TestCountAndMaxPage(t *testing.T) {
	entries := Build([]Heading{
		{Title: "A", Level: 1, Page: 1},
		{Title: "A1", Level: 2, Page: 12},
		{Title: "B", Level: 1, Page: 9},
	}, 0)

	if n := Count(entries); n != 3 {
		t.Errorf("expected count 3, got %d", n)
	}
	if p := MaxPage(entries); p != 12 {
		t.Errorf("expected max page 12, got %d", p)
	}
}
