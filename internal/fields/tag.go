package fields

import "strings"

// KindTag is the Kind name for Tag.
const KindTag = "tag"

// TagConstraints is the message returned for an invalid tag.
const TagConstraints = "Tag should be either 'BUYER' or 'SELLER'"

// Tag marks a client as a buyer or a seller. A client may have both.
type Tag struct {
	name string
}

var tagNames = map[string]bool{"BUYER": true, "SELLER": true}

// NewTag validates "s", ignoring case.
func NewTag(s string) (Tag, error) {
	n := strings.ToUpper(s)
	if !tagNames[n] {
		return Tag{}, invalid(KindTag, TagConstraints)
	}
	return Tag{name: n}, nil
}

// String returns the bracketed short form, like "[BUYER]".
func (t Tag) String() string {
	return "[" + t.name + "]"
}

// Describe returns the long form, like "Client is a buyer".
func (t Tag) Describe() string {
	return "Client is a " + strings.ToLower(t.name)
}
