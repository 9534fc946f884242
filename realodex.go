package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/element-of-surprise/realodex/config"
	"github.com/element-of-surprise/realodex/exec"
	"github.com/element-of-surprise/realodex/internal/cmd"
	"github.com/google/uuid"
	osfs "github.com/gopherfs/fs/io/os"
)

var (
	conf      = flag.String("config", "", "The TOML command schema. Defaults to the built in schema.")
	line      = flag.String("line", "", "Parse a single command line and exit.")
	batch     = flag.String("batch", "", "A file of command lines to parse in one go.")
	out       = flag.String("out", "results.json", "Where -batch writes its results.")
	resume    = flag.String("resume", "", "The path to a resume file you wish to use to resume a failed -batch run.")
	logLevel  = flag.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormat = flag.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
)

func main() {
	flag.Parse()

	slog.SetDefault(newLogger(*logLevel, *logFormat, os.Stderr))

	ofs, err := osfs.New()
	if err != nil {
		fmt.Printf("Error accessing OS filesystem: %s\n", err)
		os.Exit(1)
	}

	c, err := loadConfig(ofs, *conf)
	if err != nil {
		fmt.Printf("Error opening config file(%s): %s\n", *conf, err)
		os.Exit(1)
	}

	switch {
	case *line != "":
		if !parseLine(os.Stdout, c, *line) {
			os.Exit(1)
		}
	case *batch != "":
		runBatch(ofs, c)
	default:
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			text := strings.TrimSpace(scanner.Text())
			if text == "" {
				continue
			}
			parseLine(os.Stdout, c, text)
		}
		if err := scanner.Err(); err != nil {
			fmt.Printf("Error reading input: %s\n", err)
			os.Exit(1)
		}
	}
}

func loadConfig(fsys fs.FS, p string) (*config.Config, error) {
	if p == "" {
		return config.Default()
	}
	return config.FromFile(fsys, p)
}

// parseLine parses "text" and writes the fields or the errors to "w". It reports success.
func parseLine(w io.Writer, c *config.Config, text string) bool {
	parsed, err := cmd.New(text, c)
	if err != nil {
		for _, e := range cmd.Errors(err) {
			fmt.Fprintln(w, e)
		}
		return false
	}

	fmt.Fprintf(w, "%s", parsed.Name())
	if parsed.Preamble() != "" {
		fmt.Fprintf(w, " %q", parsed.Preamble())
	}
	fmt.Fprintln(w)
	for _, f := range parsed.Fields() {
		for _, v := range f.Values {
			fmt.Fprintf(w, "\t%s: %s\n", f.Prefix.Label(), v.Describe())
		}
	}
	return true
}

func runBatch(ofs exec.ReadWriter, c *config.Config) {
	startAt := 0
	if *resume != "" {
		b, err := fs.ReadFile(ofs, *resume)
		if err != nil {
			fmt.Printf("Error opening resume file(%s): %s\n", *resume, err)
			os.Exit(1)
		}

		r := &resumeConf{}
		if err := json.Unmarshal(b, &r); err != nil {
			fmt.Printf("Error unmarshalling resume file(%s): %s\n", *resume, err)
			os.Exit(1)
		}
		if err := r.validate(*batch); err != nil {
			fmt.Printf("Error validating resume file(%s): %s\n", *resume, err)
			os.Exit(1)
		}
		startAt = r.StartAt
	}

	e, err := exec.New(c, startAt, ofs)
	if err != nil {
		panic(err)
	}

	if err := e.Run(*batch, *out); err != nil {
		fmt.Printf("Error: The batch had a problem: %s\n", err)
		if e.FailedLine() == 0 {
			os.Exit(1)
		}

		r := &resumeConf{Batch: *batch, StartAt: e.FailedLine()}
		b, err := json.MarshalIndent(r, "", "\t")
		if err != nil {
			fmt.Printf("could not create a resume file: %s\n", err)
			os.Exit(1)
		}

		var p string
		if *resume == "" {
			id := uuid.New().String()
			p = filepath.Join(os.TempDir(), id+".resume.json")
		} else {
			p = filepath.Join(*resume)
		}

		if err := os.WriteFile(p, b, 0660); err != nil {
			fmt.Printf("problem writing resume file: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("your resume file is: %s\n", p)
		os.Exit(1)
	}

	fmt.Printf("batch parsed successfully, results in %s\n", *out)
}

type resumeConf struct {
	Batch   string
	StartAt int
}

func (r *resumeConf) validate(batch string) error {
	if r.StartAt < 1 {
		return fmt.Errorf("StartAt was not set")
	}
	if r.Batch != "" && r.Batch != batch {
		return fmt.Errorf("resume file is for batch(%s), not batch(%s)", r.Batch, batch)
	}
	return nil
}

// newLogger creates a slog.Logger writing to "w" at "levelStr" in "formatStr" (text or json).
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(levelStr) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.ToLower(formatStr) == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
