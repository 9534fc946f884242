// Package parser turns a line of command text into an ArgumentMultimap and provides the
// checks a command runs on it: duplicate single-valued fields and missing compulsory ones.
// It knows nothing about what the fields mean.
package parser

import (
	"github.com/element-of-surprise/realodex/internal/lexer"
)

// Tokenizer splits command text by prefix. The zero value is ready to use.
// A Tokenizer is not safe for concurrent use.
type Tokenizer struct {
	lexer *lexer.Line
}

// Tokenize splits "s" into a preamble and the values for each of "prefixes". Text before the
// first prefix is stored under PrefixPreamble. Tokenize never fails, problems are found by
// the checks on the returned ArgumentMultimap.
func (t *Tokenizer) Tokenize(s string, prefixes ...Prefix) *ArgumentMultimap {
	if t.lexer == nil {
		t.lexer = lexer.New()
	}

	byMarker := make(map[string]Prefix, len(prefixes))
	for _, p := range prefixes {
		if _, ok := byMarker[p.marker]; !ok {
			byMarker[p.marker] = p
		}
	}

	b := NewBuilder()
	for _, item := range t.lexer.Parse(s, markers(prefixes)) {
		switch item.Type {
		case lexer.ItemPreamble:
			b.Put(PrefixPreamble, item.Value)
		case lexer.ItemSegment:
			b.Put(byMarker[item.Marker], item.Value)
		}
	}
	return b.Build()
}

// Tokenize is a convenience wrapper around Tokenizer.Tokenize().
func Tokenize(s string, prefixes ...Prefix) *ArgumentMultimap {
	t := Tokenizer{}
	return t.Tokenize(s, prefixes...)
}
