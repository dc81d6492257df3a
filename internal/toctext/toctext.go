// Package toctext implements the plain-text TOC notation used for preview,
// manual editing and file-based import: two spaces of indentation per level
// and a "  (p. N)" page suffix, one heading per line.
package toctext

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ebronstein/pdftoc/internal/outline"
)

// ErrEmptyTOC marks an input with no headings at all. In the edit workflow
// this is the cooperative abort signal, distinct from a parse failure.
var ErrEmptyTOC = errors.New("toc text contains no headings")

// ParseError reports the first line that does not match the line grammar.
// The whole import is rejected; nothing is partially applied.
type ParseError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("toc line %d: %s: %q", e.Line, e.Reason, e.Text)
}

var pageSuffixRe = regexp.MustCompile(`^(.*?)\s{2,}\(p\.\s*(\d+)\)$`)

// Serialize renders the forest as TOC text: pre-order, children before any
// sibling's subtree. It is pure and deterministic, and the inverse of Parse
// for any tree satisfying the nesting invariants.
func Serialize(entries []*outline.Entry) string {
	var b strings.Builder
	var walk func([]*outline.Entry)
	walk = func(es []*outline.Entry) {
		for _, e := range es {
			b.WriteString(strings.Repeat("  ", e.Level-1))
			b.WriteString(e.Title)
			fmt.Fprintf(&b, "  (p. %d)\n", e.Page)
			walk(e.Children)
		}
	}
	walk(entries)
	return b.String()
}

// Parse reads TOC text back into an outline forest.
//
// Blank lines are ignored. Each line's level is its leading space count
// divided by two, plus one; levels deeper than one below the currently open
// level are repaired with the same clamp rule the tree builder uses, so
// hand-edited indentation parses deterministically. The page suffix is
// optional; a line without one inherits the previous heading's page (1 if
// none). An input with no headings at all returns ErrEmptyTOC.
func Parse(text string) ([]*outline.Entry, error) {
	var headings []outline.Heading
	prevPage := 1

	for i, line := range strings.Split(text, "\n") {
		lineno := i + 1
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		ws := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if strings.ContainsRune(ws, '\t') {
			return nil, &ParseError{Line: lineno, Text: line, Reason: "tab indentation"}
		}
		indent := len(ws)

		content := strings.TrimRight(line[indent:], " ")
		title := content
		page := prevPage

		if m := pageSuffixRe.FindStringSubmatch(content); m != nil {
			title = strings.TrimSpace(m[1])
			n, err := strconv.Atoi(m[2])
			if err != nil || n < 1 {
				return nil, &ParseError{Line: lineno, Text: line, Reason: "invalid page number"}
			}
			page = n
		} else if looksLikePageSuffix(content) {
			return nil, &ParseError{Line: lineno, Text: line, Reason: "malformed page suffix"}
		}

		if title == "" {
			return nil, &ParseError{Line: lineno, Text: line, Reason: "empty title"}
		}

		headings = append(headings, outline.Heading{
			Title: title,
			Level: indent/2 + 1,
			Page:  page,
		})
		prevPage = page
	}

	if len(headings) == 0 {
		return nil, ErrEmptyTOC
	}
	return outline.Build(headings, 0), nil
}

// looksLikePageSuffix reports whether the line ends in something that was
// meant to be a page suffix but does not parse as one.
func looksLikePageSuffix(content string) bool {
	i := strings.LastIndex(content, "(p.")
	return i > 0 && strings.HasSuffix(content, ")")
}
