// Package exec provides an Executor that parses a file of command lines in one go and writes
// the results out as JSON. If a line fails, the Executor records which one so a later run can
// resume from it after the file is fixed.
package exec

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/element-of-surprise/realodex/config"
	"github.com/element-of-surprise/realodex/internal/cmd"
	gfs "github.com/gopherfs/fs"
)

// ReadWriter is a file system with ReadFile() and WriteFile().
type ReadWriter interface {
	fs.ReadFileFS
	gfs.Writer
}

// Result is the JSON form of one parsed line.
type Result struct {
	// Line is the 1-based line number in the input file.
	Line int `json:"line"`
	// Command is the command word.
	Command string `json:"command"`
	// Preamble is the text before the first prefix.
	Preamble string `json:"preamble,omitempty"`
	// Fields maps each field label to the short form of its values.
	Fields map[string][]string `json:"fields,omitempty"`
}

// Executor parses a series of command lines.
type Executor struct {
	// startAt is the 1-based line to start at. Lines before it are skipped.
	startAt int
	// fs is the filesystem that we read and write to.
	fs   ReadWriter
	conf *config.Config

	failedLine int
}

// New creates a new Executor. "startAt" is a 1-based line number, 0 means start at the top.
func New(conf *config.Config, startAt int, fs ReadWriter) (*Executor, error) {
	if fs == nil {
		return nil, fmt.Errorf("must pass a valid ReadWriter")
	}
	if conf == nil {
		return nil, fmt.Errorf("must pass a valid config")
	}
	if startAt < 0 {
		return nil, fmt.Errorf("startAt(%d) cannot be negative", startAt)
	}
	return &Executor{conf: conf, startAt: startAt, fs: fs}, nil
}

// Run parses every line of file "in" and writes the results to file "out". Blank lines and
// lines starting with # are skipped. On the first failing line, the results up to it are
// still written, FailedLine() is set and the error is returned. If the start line is past the
// end of "in", nothing is written.
func (e *Executor) Run(in, out string) error {
	b, err := e.fs.ReadFile(in)
	if err != nil {
		return fmt.Errorf("could not read input(%s): %w", in, err)
	}

	results := []Result{}
	var runErr error

	scanner := bufio.NewScanner(strings.NewReader(string(b)))
	n := 0
	for scanner.Scan() {
		n++
		if n < e.startAt {
			continue
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		slog.Debug("Executing line.", "line", n, "text", line)
		c, err := cmd.New(line, e.conf)
		if err != nil {
			e.failedLine = n
			runErr = fmt.Errorf("line %d: %w", n, err)
			break
		}
		results = append(results, toResult(n, c))
	}
	if err := scanner.Err(); err != nil && runErr == nil {
		runErr = fmt.Errorf("could not scan input(%s): %w", in, err)
	}
	if runErr == nil && e.startAt > n {
		return fmt.Errorf("couldn't find the line to start at(%d), input(%s) has %d lines", e.startAt, in, n)
	}

	if err := e.write(out, results); err != nil {
		if runErr != nil {
			return fmt.Errorf("%w (also could not write results: %s)", runErr, err)
		}
		return err
	}
	return runErr
}

// FailedLine is the line that failed. This is 0 if no line failed.
func (e *Executor) FailedLine() int {
	return e.failedLine
}

func (e *Executor) write(out string, results []Result) error {
	b, err := json.MarshalIndent(results, "", "\t")
	if err != nil {
		return fmt.Errorf("could not marshal results: %w", err)
	}
	if err := e.fs.WriteFile(out, b, 0660); err != nil {
		return fmt.Errorf("could not write results(%s): %w", out, err)
	}
	return nil
}

func toResult(n int, c *cmd.Cmd) Result {
	r := Result{Line: n, Command: c.Name(), Preamble: c.Preamble()}
	for _, f := range c.Fields() {
		if r.Fields == nil {
			r.Fields = map[string][]string{}
		}
		for _, v := range f.Values {
			r.Fields[f.Prefix.Label()] = append(r.Fields[f.Prefix.Label()], v.String())
		}
	}
	return r
}
