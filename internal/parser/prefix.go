package parser

// Prefix is a marker that introduces a field in command text, such as "n/", plus a
// human readable label. Two Prefix(es) are the same if their markers are the same; the
// label is only for display.
type Prefix struct {
	marker string
	label  string
}

var (
	// PrefixPreamble is the reserved Prefix the preamble is stored under.
	PrefixPreamble = NewPrefix("", "preamble")
	// PrefixRemark is the remark field. Lookups for it never come back empty, see
	// ArgumentMultimap.Value().
	PrefixRemark = NewPrefix("r/", "remark")
)

// NewPrefix creates a Prefix.
func NewPrefix(marker, label string) Prefix {
	return Prefix{marker: marker, label: label}
}

// Marker returns the marker text, like "n/".
func (p Prefix) Marker() string {
	return p.marker
}

// Label returns the display name.
func (p Prefix) Label() string {
	return p.label
}

// Equal reports if p and o have the same marker.
func (p Prefix) Equal(o Prefix) bool {
	return p.marker == o.marker
}

// String implements fmt.Stringer. It returns the marker.
func (p Prefix) String() string {
	return p.marker
}

// DistinctPrefixes returns prefixes with repeats (by marker) removed, keeping the first of each.
func DistinctPrefixes(prefixes ...Prefix) []Prefix {
	seen := make(map[string]bool, len(prefixes))
	out := make([]Prefix, 0, len(prefixes))
	for _, p := range prefixes {
		if seen[p.marker] {
			continue
		}
		seen[p.marker] = true
		out = append(out, p)
	}
	return out
}

func markers(prefixes []Prefix) []string {
	out := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		out = append(out, p.marker)
	}
	return out
}
