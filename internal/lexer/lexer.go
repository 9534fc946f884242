// Package lexer contains a simple lexer for splitting a command line into a preamble and
// marker-introduced segments. A marker is a short literal such as "n/" that begins a field.
// There is no quoting or escaping: a marker sitting at a word boundary always starts a new
// segment, even if the user meant it as part of the previous value.
package lexer

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ItemType describes the type of item being emitted by the Lexer.
type ItemType int

const (
	// ItemUnknown indicates that the Item is an unknown. This should only happen on
	// a Item that is the zero type.
	ItemUnknown ItemType = iota
	// ItemPreamble is the text before the first recognized marker. Exactly one is emitted
	// per line, even when it is empty.
	ItemPreamble
	// ItemSegment is the text following a marker up to the next marker or the end of the line.
	ItemSegment
)

// Item describes a lexed item.
type Item struct {
	// Type is the type of item.
	Type ItemType
	// Marker is the marker that introduced the segment. It is empty for ItemPreamble.
	Marker string
	// Value is the trimmed text of the item.
	Value string
}

// eol is returned by next() and peek() when the input is exhausted.
const eol = rune(-1)

// Line is a line lexer for marker separated arguments.
type Line struct {
	pos   int
	input string

	markers []string
	items   []Item
}

// New is the constructor for Line.
func New() *Line {
	return &Line{}
}

// Parse splits "s" into Item(s) using "markers" as the set of recognized field markers.
// A marker is only recognized at the start of the line or right after a whitespace character.
// When more than one marker matches at a position, the longest one wins.
// Empty markers are ignored. Parse never fails; odd input simply yields odd values.
func (l *Line) Parse(s string, markers []string) []Item {
	l.pos, l.input = 0, s
	l.markers = sortMarkers(markers)
	l.items = make([]Item, 0, 4)

	cur := Item{Type: ItemPreamble}
	start := 0
	boundary := true
	for {
		if boundary {
			if m := l.matchMarker(); m != "" {
				l.emit(cur, l.input[start:l.pos])
				cur = Item{Type: ItemSegment, Marker: m}
				l.pos += len(m)
				start = l.pos
				boundary = false
				continue
			}
		}
		r := l.next()
		if r == eol {
			break
		}
		boundary = unicode.IsSpace(r)
	}
	l.emit(cur, l.input[start:])

	items := l.items
	l.items = nil
	return items
}

// emit records "it" with "raw" as its trimmed value.
func (l *Line) emit(it Item, raw string) {
	it.Value = strings.TrimSpace(raw)
	l.items = append(l.items, it)
}

// matchMarker returns the longest marker starting at the current position, or "" if none.
// l.markers is sorted longest first, so the first hit is the longest.
func (l *Line) matchMarker() string {
	rest := l.input[l.pos:]
	for _, m := range l.markers {
		if strings.HasPrefix(rest, m) {
			return m
		}
	}
	return ""
}

// next returns the next rune in the input.
func (l *Line) next() rune {
	if l.pos >= len(l.input) {
		return eol
	}
	r, width := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += width
	return r
}

// sortMarkers returns a copy of markers without empties or repeats, longest first.
func sortMarkers(markers []string) []string {
	seen := make(map[string]bool, len(markers))
	out := make([]string, 0, len(markers))
	for _, m := range markers {
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})
	return out
}
