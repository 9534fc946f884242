// Package config holds our basic translation from a TOML command schema to a usable struct.
// The schema lists the known prefixes and, per command, which prefixes it accepts, which are
// compulsory and which may only be given once.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/silas/dag"

	"github.com/element-of-surprise/realodex/internal/fields"
	"github.com/element-of-surprise/realodex/internal/parser"
)

//go:embed realodex.toml
var defaultSchema string

// Preamble policies for Command.Preamble.
const (
	// PreambleNone means there must be no text before the first prefix. This is the default.
	PreambleNone = "none"
	// PreambleOptional means any preamble is accepted.
	PreambleOptional = "optional"
	// PreambleRequired means a non-empty preamble must be given.
	PreambleRequired = "required"
	// PreambleIndex means the preamble must be a positive integer.
	PreambleIndex = "index"
)

// Config holds our configuration from the schema file.
type Config struct {
	// Prefixes are all the prefixes any command may use.
	Prefixes []PrefixDef
	// Commands are the commands that can be parsed.
	Commands []Command

	prefixes map[string]parser.Prefix
	kinds    map[string]fields.Kind
	m        map[string]*Command
}

// Command returns the Command called "name".
func (c *Config) Command(name string) (*Command, bool) {
	cmd, ok := c.m[name]
	return cmd, ok
}

// Names returns all command names, sorted.
func (c *Config) Names() []string {
	out := make([]string, 0, len(c.m))
	for n := range c.m {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Kind returns the field Kind used to parse values of "p".
func (c *Config) Kind(p parser.Prefix) (fields.Kind, error) {
	k, ok := c.kinds[p.Marker()]
	if !ok {
		return nil, fmt.Errorf("prefix(%s) has no field kind", p)
	}
	return k, nil
}

// validate validates the prefixes and all the Commands.
func (c *Config) validate() error {
	if len(c.Prefixes) == 0 {
		return errors.New("no Prefixes defined")
	}
	if len(c.Commands) == 0 {
		return errors.New("no Commands defined")
	}

	c.prefixes = make(map[string]parser.Prefix, len(c.Prefixes))
	c.kinds = make(map[string]fields.Kind, len(c.Prefixes))
	labels := make(map[string]string, len(c.Prefixes))
	for i := range c.Prefixes {
		p := &c.Prefixes[i]
		if err := p.validate(); err != nil {
			return err
		}
		if _, ok := c.prefixes[p.Marker]; ok {
			return fmt.Errorf("Prefix(%s) was defined multiple times", p.Marker)
		}
		if other, ok := labels[p.Label]; ok {
			return fmt.Errorf("Prefix(%s) has Label(%s) which Prefix(%s) already uses", p.Marker, p.Label, other)
		}
		labels[p.Label] = p.Marker
		k, err := fields.Lookup(p.Kind)
		if err != nil {
			return fmt.Errorf("Prefix(%s): %w", p.Marker, err)
		}
		// An absent remark is read as "", so its Kind must accept that.
		if p.Marker == parser.PrefixRemark.Marker() && !k.Valid("") {
			return fmt.Errorf("Prefix(%s) is the remark prefix and its Kind(%s) must accept an empty value", p.Marker, p.Kind)
		}
		c.prefixes[p.Marker] = parser.NewPrefix(p.Marker, p.Label)
		c.kinds[p.Marker] = k
	}

	c.m = make(map[string]*Command, len(c.Commands))
	for i := range c.Commands {
		if err := c.Commands[i].validate(c.m); err != nil {
			return err
		}
	}

	if err := c.validateInheritance(); err != nil {
		return err
	}

	for i := range c.Commands {
		if err := c.Commands[i].resolve(c.m, c.prefixes); err != nil {
			return err
		}
	}
	return nil
}

// root is a synthetic vertex with an edge to every command, so the graph has a single root.
const root = "$root"

// validateInheritance makes sure Inherit never forms a loop.
func (c *Config) validateInheritance() error {
	g := &dag.AcyclicGraph{}
	g.Add(root)
	for _, cmd := range c.Commands {
		g.Add(cmd.Name)
		g.Connect(dag.BasicEdge(root, cmd.Name))
	}
	for _, cmd := range c.Commands {
		if cmd.Inherit == "" {
			continue
		}
		if _, ok := c.m[cmd.Inherit]; !ok {
			return fmt.Errorf("Command(%s) inherits from Command(%s) which doesn't exist", cmd.Name, cmd.Inherit)
		}
		g.Connect(dag.BasicEdge(cmd.Name, cmd.Inherit))
	}
	if err := g.Validate(); err != nil {
		return fmt.Errorf("command inheritance is not a valid DAG: %s", err)
	}
	return nil
}

// PrefixDef defines a prefix.
type PrefixDef struct {
	// Marker is the text that starts the field, like "n/". (Required)
	Marker string
	// Label is the name shown to users, like "name". Defaults to Marker.
	Label string
	// Kind is the fields Kind used to validate values, like "phone". (Required)
	Kind string
}

func (p *PrefixDef) validate() error {
	p.Marker = strings.TrimSpace(p.Marker)
	if p.Marker == "" {
		return errors.New("a Prefix cannot have an empty Marker, that is reserved for the preamble")
	}
	if strings.ContainsAny(p.Marker, " \t\n") {
		return fmt.Errorf("Prefix(%s) has whitespace in its Marker", p.Marker)
	}
	p.Label = strings.TrimSpace(p.Label)
	if p.Label == "" {
		p.Label = p.Marker
	}
	p.Kind = strings.TrimSpace(p.Kind)
	if p.Kind == "" {
		return fmt.Errorf("Prefix(%s) had an empty Kind field", p.Marker)
	}
	return nil
}

// Command describes the arguments of one command.
type Command struct {
	// Name is the command word, like "add". (Required)
	Name string
	// Usage is shown when the command is given in the wrong format.
	Usage string
	// Inherit names another Command whose Prefixes and Single lists are added to this one's.
	// Compulsory, Usage and Preamble are not inherited.
	Inherit string
	// Preamble is one of "none", "optional", "required" or "index". Defaults to "none".
	Preamble string
	// Prefixes are the markers this command recognizes.
	Prefixes []string
	// Compulsory are the markers that must be given.
	Compulsory []string
	// Single are the markers that may be given at most once.
	Single []string
	// Aggregate reports all field errors together instead of stopping at the first.
	Aggregate bool

	known, compulsory, single []parser.Prefix
	resolved                  bool
}

// Known returns the prefixes this command recognizes, including inherited ones.
func (c *Command) Known() []parser.Prefix {
	return c.known
}

// CompulsoryPrefixes returns the prefixes that must be given.
func (c *Command) CompulsoryPrefixes() []parser.Prefix {
	return c.compulsory
}

// SinglePrefixes returns the prefixes that may be given at most once.
func (c *Command) SinglePrefixes() []parser.Prefix {
	return c.single
}

// IsSingle reports if "p" may be given at most once.
func (c *Command) IsSingle(p parser.Prefix) bool {
	for _, s := range c.single {
		if s.Equal(p) {
			return true
		}
	}
	return false
}

func (c *Command) validate(seen map[string]*Command) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return errors.New("a Command cannot have an empty name field")
	}
	if strings.ContainsAny(c.Name, " \t\n") {
		return fmt.Errorf("Command(%s) has whitespace in its name", c.Name)
	}
	if _, ok := seen[c.Name]; ok {
		return fmt.Errorf("Command(%s) was defined multiple times", c.Name)
	}
	seen[c.Name] = c

	c.Inherit = strings.TrimSpace(c.Inherit)
	if c.Inherit == c.Name {
		return fmt.Errorf("Command(%s) inherits from itself", c.Name)
	}

	c.Preamble = strings.TrimSpace(c.Preamble)
	switch c.Preamble {
	case "":
		c.Preamble = PreambleNone
	case PreambleNone, PreambleOptional, PreambleRequired, PreambleIndex:
	default:
		return fmt.Errorf("Command(%s) had Preamble(%s), must be one of none, optional, required or index", c.Name, c.Preamble)
	}
	return nil
}

// resolve turns the marker lists into prefixes, pulling in inherited ones first.
// Inheritance must already be known to be acyclic.
func (c *Command) resolve(cmds map[string]*Command, prefixes map[string]parser.Prefix) error {
	if c.resolved {
		return nil
	}

	var known, single []parser.Prefix
	if c.Inherit != "" {
		parent := cmds[c.Inherit]
		if err := parent.resolve(cmds, prefixes); err != nil {
			return err
		}
		known = append(known, parent.known...)
		single = append(single, parent.single...)
	}

	lookup := func(list string, markers []string) ([]parser.Prefix, error) {
		out := make([]parser.Prefix, 0, len(markers))
		for _, m := range markers {
			p, ok := prefixes[strings.TrimSpace(m)]
			if !ok {
				return nil, fmt.Errorf("Command(%s) has %s marker(%s) which isn't a defined Prefix", c.Name, list, m)
			}
			out = append(out, p)
		}
		return out, nil
	}

	own, err := lookup("Prefixes", c.Prefixes)
	if err != nil {
		return err
	}
	c.known = parser.DistinctPrefixes(append(known, own...)...)

	own, err = lookup("Single", c.Single)
	if err != nil {
		return err
	}
	c.single = parser.DistinctPrefixes(append(single, own...)...)

	c.compulsory, err = lookup("Compulsory", c.Compulsory)
	if err != nil {
		return err
	}
	c.compulsory = parser.DistinctPrefixes(c.compulsory...)

	for _, list := range [][]parser.Prefix{c.single, c.compulsory} {
		for _, p := range list {
			if !contains(c.known, p) {
				return fmt.Errorf("Command(%s) uses marker(%s) that is not in its Prefixes", c.Name, p)
			}
		}
	}

	c.resolved = true
	return nil
}

func contains(list []parser.Prefix, p parser.Prefix) bool {
	for _, l := range list {
		if l.Equal(p) {
			return true
		}
	}
	return false
}

// FromFile returns a Config from a file "p" in filesystem "fsys". This validates all the
// prefixes and commands are correct and that command inheritance is a valid DAG.
func FromFile(fsys fs.FS, p string) (*Config, error) {
	b, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, err
	}
	return FromString(string(b))
}

// FromString is like FromFile() but takes the TOML content directly.
func FromString(s string) (*Config, error) {
	c := &Config{}
	if _, err := toml.Decode(s, c); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Default returns the built in schema.
func Default() (*Config, error) {
	return FromString(defaultSchema)
}
