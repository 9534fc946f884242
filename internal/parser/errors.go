package parser

import "strings"

const (
	// MessageDuplicateFields starts the message of a DuplicatePrefixError.
	MessageDuplicateFields = "Too many values specified for the following single-valued field(s): "
	// MessageMissingPrefixes starts the message of a MissingPrefixError.
	MessageMissingPrefixes = "Missing compulsory prefixes in the command! Prefixes That Are Missed Are: "
)

// DuplicatePrefixError is returned when a single-valued field was given more than once.
type DuplicatePrefixError struct {
	// Prefixes are the offending prefixes, without repeats.
	Prefixes []Prefix
}

// Error implements error.
func (e *DuplicatePrefixError) Error() string {
	return MessageDuplicateFields + strings.Join(markers(e.Prefixes), " ")
}

// MissingPrefixError is returned when compulsory prefixes were not supplied at all.
type MissingPrefixError struct {
	// Prefixes are all the missing prefixes, in the order the caller listed them.
	Prefixes []Prefix
}

// Error implements error.
func (e *MissingPrefixError) Error() string {
	return missingMessage(e.Prefixes)
}

func missingMessage(missing []Prefix) string {
	return MessageMissingPrefixes + strings.Join(markers(missing), " ")
}
