package outline

// Heading is a flat, document-ordered heading with a raw level.
// Levels are 1-based and not guaranteed contiguous until repaired by Build.
type Heading struct {
	Title string `json:"title"`
	Level int    `json:"level"`
	Page  int    `json:"page"`
}

// Entry is a node in the final outline tree. A node's level is exactly one
// greater than its parent's; top-level entries are level 1.
type Entry struct {
	Title    string   `json:"title"`
	Level    int      `json:"level"`
	Page     int      `json:"page"`
	Children []*Entry `json:"children,omitempty"`
}

// Build nests document-ordered headings into an outline forest.
//
// It keeps a stack of open ancestors. A heading at raw level L closes every
// open entry whose raw level is >= L and attaches under whatever remains,
// so a heading can never open more than one level below the deepest open
// ancestor (the level-skip repair). maxLevel > 0 caps the tree depth:
// deeper candidates are attached at maxLevel instead of being dropped.
//
// Both heading detection and TOC text parsing go through this function so
// the two paths agree on repaired levels.
func Build(headings []Heading, maxLevel int) []*Entry {
	var roots []*Entry

	type openEntry struct {
		entry *Entry
		raw   int
	}
	var stack []openEntry

	for _, h := range headings {
		for len(stack) > 0 && stack[len(stack)-1].raw >= h.Level {
			stack = stack[:len(stack)-1]
		}

		level := len(stack) + 1
		if maxLevel > 0 && level > maxLevel {
			level = maxLevel
			stack = stack[:level-1]
		}

		e := &Entry{Title: h.Title, Level: level, Page: h.Page}
		if len(stack) == 0 {
			roots = append(roots, e)
		} else {
			parent := stack[len(stack)-1].entry
			parent.Children = append(parent.Children, e)
		}
		stack = append(stack, openEntry{entry: e, raw: h.Level})
	}

	return roots
}

// Flatten returns the forest as a pre-order heading list.
func Flatten(entries []*Entry) []Heading {
	var out []Heading
	var walk func([]*Entry)
	walk = func(es []*Entry) {
		for _, e := range es {
			out = append(out, Heading{Title: e.Title, Level: e.Level, Page: e.Page})
			walk(e.Children)
		}
	}
	walk(entries)
	return out
}

// Count returns the number of entries in the forest.
func Count(entries []*Entry) int {
	n := 0
	for _, e := range entries {
		n += 1 + Count(e.Children)
	}
	return n
}

// MaxPage returns the largest page number in the forest, or 0 if empty.
func MaxPage(entries []*Entry) int {
	max := 0
	for _, e := range entries {
		if e.Page > max {
			max = e.Page
		}
		if m := MaxPage(e.Children); m > max {
			max = m
		}
	}
	return max
}
