package parser

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// args is the stored list of values for one Prefix.
type args struct {
	prefix Prefix
	values []string
}

// ArgumentMultimap holds the arguments of one parsed line: each Prefix maps to the values
// given for it, in the order they were given. The same value may appear more than once.
// An ArgumentMultimap is read-only; use a Builder to make one. It is not safe to share a
// Builder between goroutines.
type ArgumentMultimap struct {
	m *orderedmap.OrderedMap[string, *args]
}

func newArgumentMultimap() *ArgumentMultimap {
	return &ArgumentMultimap{m: orderedmap.New[string, *args]()}
}

// Builder builds an ArgumentMultimap.
type Builder struct {
	am *ArgumentMultimap
}

// NewBuilder is the constructor for Builder.
func NewBuilder() *Builder {
	return &Builder{am: newArgumentMultimap()}
}

// Put appends "value" to the values of "prefix".
func (b *Builder) Put(prefix Prefix, value string) *Builder {
	if b.am == nil {
		b.am = newArgumentMultimap()
	}
	a, ok := b.am.m.Get(prefix.marker)
	if !ok {
		a = &args{prefix: prefix}
		b.am.m.Set(prefix.marker, a)
	}
	a.values = append(a.values, value)
	return b
}

// Build returns the ArgumentMultimap. The Builder starts over with an empty map afterwards,
// so later calls to Put() cannot change what was returned.
func (b *Builder) Build() *ArgumentMultimap {
	am := b.am
	if am == nil {
		am = newArgumentMultimap()
	}
	b.am = nil
	return am
}

// Value returns the last value given for "prefix". The remark prefix is special: if it was
// never given, Value returns ("", true) instead of reporting it absent.
func (a *ArgumentMultimap) Value(prefix Prefix) (string, bool) {
	v, ok := a.m.Get(prefix.marker)
	if !ok || len(v.values) == 0 {
		if prefix.Equal(PrefixRemark) {
			return "", true
		}
		return "", false
	}
	return v.values[len(v.values)-1], true
}

// AllValues returns all values given for "prefix" in order, or an empty slice.
// The returned slice is a copy.
func (a *ArgumentMultimap) AllValues(prefix Prefix) []string {
	v, ok := a.m.Get(prefix.marker)
	if !ok {
		return []string{}
	}
	out := make([]string, len(v.values))
	copy(out, v.values)
	return out
}

// Preamble returns the text before the first recognized prefix.
func (a *ArgumentMultimap) Preamble() string {
	v, _ := a.Value(PrefixPreamble)
	return v
}

// ContainsPrefix reports if "prefix" was stored at all, even with an empty value.
func (a *ArgumentMultimap) ContainsPrefix(prefix Prefix) bool {
	_, ok := a.m.Get(prefix.marker)
	return ok
}

// Prefixes returns the stored prefixes in the order they were first seen. The preamble
// prefix is included if it was stored.
func (a *ArgumentMultimap) Prefixes() []Prefix {
	out := make([]Prefix, 0, a.m.Len())
	for pair := a.m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value.prefix)
	}
	return out
}

// FindPresentPrefix returns the first of "prefixes" that has a value.
// Because Value() always has a value for PrefixRemark, passing the remark prefix means
// it is found whether or not the user supplied it. Callers rely on this.
func (a *ArgumentMultimap) FindPresentPrefix(prefixes ...Prefix) (Prefix, bool) {
	for _, p := range prefixes {
		if _, ok := a.Value(p); ok {
			return p, true
		}
	}
	return Prefix{}, false
}

// VerifyNoDuplicatePrefixesFor returns a *DuplicatePrefixError if any of "prefixes" has more
// than one value. Prefixes not listed are not checked.
func (a *ArgumentMultimap) VerifyNoDuplicatePrefixesFor(prefixes ...Prefix) error {
	var dups []Prefix
	for _, p := range DistinctPrefixes(prefixes...) {
		if v, ok := a.m.Get(p.marker); ok && len(v.values) > 1 {
			dups = append(dups, p)
		}
	}
	if len(dups) > 0 {
		return &DuplicatePrefixError{Prefixes: dups}
	}
	return nil
}

// MissingPrefixes returns which of "compulsory" are not contained in the map.
func (a *ArgumentMultimap) MissingPrefixes(compulsory ...Prefix) []Prefix {
	var missing []Prefix
	for _, p := range DistinctPrefixes(compulsory...) {
		if !a.ContainsPrefix(p) {
			missing = append(missing, p)
		}
	}
	return missing
}

// ReturnMessageOfMissingPrefixes returns the user message listing which of "compulsory"
// are missing.
func (a *ArgumentMultimap) ReturnMessageOfMissingPrefixes(compulsory ...Prefix) string {
	return missingMessage(a.MissingPrefixes(compulsory...))
}

// VerifyCompulsoryPrefixes returns a *MissingPrefixError naming every prefix in "compulsory"
// that was not supplied.
func (a *ArgumentMultimap) VerifyCompulsoryPrefixes(compulsory ...Prefix) error {
	if missing := a.MissingPrefixes(compulsory...); len(missing) > 0 {
		return &MissingPrefixError{Prefixes: missing}
	}
	return nil
}
