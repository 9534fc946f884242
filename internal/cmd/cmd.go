// Package cmd turns a line of user input into a validated command: the command word is looked
// up in the schema, the rest is tokenized by prefix, checked for duplicate and missing prefixes,
// and every value is converted to its typed field.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"go.uber.org/multierr"

	"github.com/element-of-surprise/realodex/config"
	"github.com/element-of-surprise/realodex/internal/fields"
	"github.com/element-of-surprise/realodex/internal/parser"
)

const (
	// MessageUnknownCommand is the message of an UnknownCommandError.
	MessageUnknownCommand = "Unknown command"
	// MessageInvalidCommandFormat is the prefix of a FormatError message, followed by the usage.
	MessageInvalidCommandFormat = "Invalid command format! \n"
)

// UnknownCommandError is returned when the command word isn't in the schema.
type UnknownCommandError struct {
	// Word is what the user typed.
	Word string
	// Suggestion is the closest known command, if any.
	Suggestion string
}

// Error implements error.
func (e *UnknownCommandError) Error() string {
	if e.Suggestion == "" {
		return MessageUnknownCommand
	}
	return fmt.Sprintf("%s, did you mean %q?", MessageUnknownCommand, e.Suggestion)
}

// FormatError is returned when the preamble doesn't fit the command.
type FormatError struct {
	// Usage is the usage text of the command.
	Usage string
}

// Error implements error.
func (e *FormatError) Error() string {
	return MessageInvalidCommandFormat + e.Usage
}

// Field is the parsed values for one prefix.
type Field struct {
	Prefix parser.Prefix
	Values []fields.Value
}

// Cmd is a command line that has been parsed and validated.
type Cmd struct {
	name     string
	preamble string
	index    int
	args     *parser.ArgumentMultimap
	fields   []Field
}

// New parses "line" with the command schema in "conf". The first word is the command word.
// Errors are, in order of checking: *UnknownCommandError, *parser.DuplicatePrefixError,
// *parser.MissingPrefixError, *FormatError and *fields.ValidationError. If the command
// aggregates errors, all ValidationError(s) are combined with multierr.
func New(line string, conf *config.Config) (*Cmd, error) {
	word, rest := splitWord(line)
	c, ok := conf.Command(word)
	if !ok {
		return nil, &UnknownCommandError{Word: word, Suggestion: suggest(word, conf.Names())}
	}

	args := parser.Tokenize(rest, c.Known()...)
	slog.Debug("Command tokenized.", "command", c.Name, "prefixes", len(args.Prefixes()))

	if err := args.VerifyNoDuplicatePrefixesFor(c.SinglePrefixes()...); err != nil {
		return nil, err
	}
	if err := args.VerifyCompulsoryPrefixes(c.CompulsoryPrefixes()...); err != nil {
		return nil, err
	}

	cmd := &Cmd{name: c.Name, preamble: args.Preamble(), args: args}
	if err := cmd.checkPreamble(c); err != nil {
		return nil, err
	}

	var errs error
	for _, p := range c.Known() {
		f, err := convert(conf, c, args, p)
		if err != nil {
			if !c.Aggregate {
				return nil, err
			}
			errs = multierr.Append(errs, err)
			continue
		}
		if len(f.Values) > 0 {
			cmd.fields = append(cmd.fields, f)
		}
	}
	if errs != nil {
		return nil, errs
	}
	slog.Debug("Command parsed.", "command", c.Name, "fields", len(cmd.fields))
	return cmd, nil
}

// convert parses the values of "p". Single-valued prefixes use the last value, so the remark
// prefix always yields a value.
func convert(conf *config.Config, c *config.Command, args *parser.ArgumentMultimap, p parser.Prefix) (Field, error) {
	k, err := conf.Kind(p)
	if err != nil {
		return Field{}, err
	}

	var raws []string
	if c.IsSingle(p) {
		if v, ok := args.Value(p); ok {
			raws = []string{v}
		}
	} else {
		raws = args.AllValues(p)
	}

	f := Field{Prefix: p}
	for _, raw := range raws {
		v, err := k.Parse(raw)
		if err != nil {
			return Field{}, err
		}
		f.Values = append(f.Values, v)
	}
	return f, nil
}

func (c *Cmd) checkPreamble(conf *config.Command) error {
	switch conf.Preamble {
	case config.PreambleNone:
		if c.preamble != "" {
			return &FormatError{Usage: conf.Usage}
		}
	case config.PreambleRequired:
		if c.preamble == "" {
			return &FormatError{Usage: conf.Usage}
		}
	case config.PreambleIndex:
		i, err := strconv.Atoi(c.preamble)
		if err != nil || i < 1 {
			return &FormatError{Usage: conf.Usage}
		}
		c.index = i
	}
	return nil
}

// Name returns the command word.
func (c *Cmd) Name() string {
	return c.name
}

// Preamble returns the text between the command word and the first prefix.
func (c *Cmd) Preamble() string {
	return c.preamble
}

// Index returns the preamble as a 1-based index for commands that take one, otherwise 0.
func (c *Cmd) Index() int {
	return c.index
}

// Args returns the raw arguments.
func (c *Cmd) Args() *parser.ArgumentMultimap {
	return c.args
}

// Fields returns the parsed fields in schema order. Prefixes without values are left out.
func (c *Cmd) Fields() []Field {
	out := make([]Field, len(c.fields))
	copy(out, c.fields)
	return out
}

// Values returns all parsed values for "p".
func (c *Cmd) Values(p parser.Prefix) []fields.Value {
	for _, f := range c.fields {
		if f.Prefix.Equal(p) {
			out := make([]fields.Value, len(f.Values))
			copy(out, f.Values)
			return out
		}
	}
	return nil
}

// Value returns the last parsed value for "p".
func (c *Cmd) Value(p parser.Prefix) (fields.Value, bool) {
	vals := c.Values(p)
	if len(vals) == 0 {
		return nil, false
	}
	return vals[len(vals)-1], true
}

// Errors splits an error returned by New() into its parts. Only aggregated field errors
// have more than one part.
func Errors(err error) []error {
	return multierr.Errors(err)
}

// IsValidation reports if "err" is or contains a *fields.ValidationError.
func IsValidation(err error) bool {
	var v *fields.ValidationError
	return errors.As(err, &v)
}

// splitWord splits off the first whitespace separated word. "rest" keeps its leading space.
func splitWord(line string) (word, rest string) {
	line = strings.TrimLeftFunc(line, unicode.IsSpace)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	return line[:i], line[i:]
}

// suggest returns the closest of "names" to "word", or "".
func suggest(word string, names []string) string {
	if word == "" {
		return ""
	}
	ranks := fuzzy.RankFindFold(word, names)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}
