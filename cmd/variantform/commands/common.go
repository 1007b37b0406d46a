// Package commands provides CLI command handlers for variantform.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"go.yaml.in/yaml/v4"

	"github.com/variantform/variantform"
	"github.com/variantform/variantform/internal/cliutil"
	"github.com/variantform/variantform/internal/fileutil"
	"github.com/variantform/variantform/internal/pathutil"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrIssuesFound is returned by commands that completed but found problems
// in the project. The CLI exits 1 without printing it again.
var ErrIssuesFound = errors.New("commands: issues found")

// Output streams. Tests replace them to capture what a command prints.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// osFs is where the CLI writes files.
var osFs afero.Fs = afero.NewOsFs()

// CommonFlags are accepted by every project command.
type CommonFlags struct {
	Project string
	Verbose bool
	NoColor bool
}

func addCommonFlags(fs *pflag.FlagSet, flags *CommonFlags) {
	fs.StringVarP(&flags.Project, "project", "C", ".", "project root directory containing .variantform.yaml")
	fs.BoolVarP(&flags.Verbose, "verbose", "v", false, "log debug output to stderr")
	fs.BoolVar(&flags.NoColor, "no-color", false, "disable ANSI colors")
}

// apply installs logging and color settings and returns the logger to pass
// to the library.
func (c *CommonFlags) apply() *slog.Logger {
	if c.NoColor {
		cliutil.SetColor(false)
	}
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(Stderr, &slog.HandlerOptions{Level: level}))
}

// openProject opens the project selected by the common flags.
func (c *CommonFlags) openProject(opts ...variantform.ProjectOption) (*variantform.Project, error) {
	logger := c.apply()
	return variantform.OpenDir(c.Project, append([]variantform.ProjectOption{variantform.WithLogger(logger)}, opts...)...)
}

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// MarshalStructured renders data as JSON or YAML.
func MarshalStructured(data any, format string) ([]byte, error) {
	var out []byte
	var err error

	switch format {
	case FormatJSON:
		out, err = json.MarshalIndent(data, "", "  ")
		if err == nil {
			out = append(out, '\n')
		}
	case FormatYAML:
		out, err = yaml.Marshal(data)
	default:
		return nil, fmt.Errorf("invalid format for structured output: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("marshaling to %s: %w", format, err)
	}
	return out, nil
}

// OutputStructured writes data in the specified format (json or yaml) to stdout.
func OutputStructured(data any, format string) error {
	out, err := MarshalStructured(data, format)
	if err != nil {
		return err
	}
	_, err = Stdout.Write(out)
	return err
}

// WriteOutputFile writes data to a user-supplied path, refusing symlinks.
func WriteOutputFile(path string, data []byte) error {
	cleaned, err := pathutil.SanitizeOutputPath(osFs, path)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(osFs, cleaned, data, fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}

// Writef writes formatted output to the writer.
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}

// handleParseError maps pflag's help request to a clean exit.
func handleParseError(err error) error {
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	return err
}

// plural returns "s" unless n is 1.
func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
