package commands

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/variantform/variantform/internal/cliutil"
	"github.com/variantform/variantform/overlay"
)

// ResolveFlags contains flags for the resolve command
type ResolveFlags struct {
	CommonFlags
	Surface string
	Format  string
	Output  string
}

// SetupResolveFlags creates and configures a FlagSet for the resolve command.
// Returns the FlagSet and a ResolveFlags struct with bound flag variables.
func SetupResolveFlags() (*pflag.FlagSet, *ResolveFlags) {
	fs := pflag.NewFlagSet("resolve", pflag.ContinueOnError)
	flags := &ResolveFlags{}

	addCommonFlags(fs, &flags.CommonFlags)
	fs.StringVarP(&flags.Surface, "surface", "s", "", "resolve only this concrete surface path")
	fs.StringVarP(&flags.Format, "format", "f", FormatText, "output format: text, json, or yaml")
	fs.StringVarP(&flags.Output, "output", "o", "", "write output to file instead of stdout")

	fs.Usage = func() {
		Writef(Stderr, "Usage: variantform resolve [flags] <variant>\n\n")
		Writef(Stderr, "Print the effective content of every surface for a variant.\n\n")
		Writef(Stderr, "Flags:\n")
		Writef(Stderr, "%s", fs.FlagUsages())
		Writef(Stderr, "\nOutput Formats:\n")
		Writef(Stderr, "  text (default)  Each surface under a header; with --surface, the raw content only\n")
		Writef(Stderr, "  json            JSON format for programmatic processing\n")
		Writef(Stderr, "  yaml            YAML format for programmatic processing\n")
		Writef(Stderr, "\nExamples:\n")
		Writef(Stderr, "  variantform resolve acme\n")
		Writef(Stderr, "  variantform resolve acme --surface config/features.json -o features.json\n")
		Writef(Stderr, "  variantform resolve -C ./app acme --format json | jq '.surfaces[].surface'\n")
	}

	return fs, flags
}

// HandleResolve executes the resolve command
func HandleResolve(args []string) error {
	fs, flags := SetupResolveFlags()

	if err := fs.Parse(args); err != nil {
		return handleParseError(err)
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("resolve command requires exactly one variant name")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	p, err := flags.openProject()
	if err != nil {
		return err
	}
	result, err := p.Resolve(fs.Arg(0), flags.Surface)
	if err != nil {
		return err
	}

	var out []byte
	switch {
	case flags.Format != FormatText:
		out, err = MarshalStructured(result, flags.Format)
		if err != nil {
			return err
		}
	case flags.Surface != "" && len(result.Surfaces) == 1:
		out = []byte(result.Surfaces[0].Content)
	default:
		out = renderResolved(result)
	}

	if flags.Output != "" {
		if err := WriteOutputFile(flags.Output, out); err != nil {
			return err
		}
		Writef(Stderr, "%s %s (%d surface%s) to %s\n", cliutil.Success("✓ Resolved"), result.Variant,
			len(result.Surfaces), plural(len(result.Surfaces)), flags.Output)
		return nil
	}
	_, err = Stdout.Write(out)
	return err
}

// renderResolved prints each surface under a header line.
func renderResolved(result *overlay.ResolveResult) []byte {
	var buf bytes.Buffer
	for i, s := range result.Surfaces {
		if i > 0 {
			buf.WriteString("\n")
		}
		origin := "base"
		if s.HasOverride {
			origin = "overridden"
		}
		Writef(&buf, "%s %s\n", cliutil.Heading("==> "+s.Surface), cliutil.Dim(fmt.Sprintf("(%s, %s, %s)", s.Format, s.Strategy, origin)))
		buf.WriteString(s.Content)
		if s.Content != "" && !strings.HasSuffix(s.Content, "\n") {
			buf.WriteString("\n")
		}
	}
	return buf.Bytes()
}
