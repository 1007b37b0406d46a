package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/variantform/variantform"
	"github.com/variantform/variantform/inspector"
	"github.com/variantform/variantform/internal/cliutil"
)

// DiffFlags contains flags for the diff command
type DiffFlags struct {
	CommonFlags
	Patch  bool
	Format string
}

// SetupDiffFlags creates and configures a FlagSet for the diff command.
// Returns the FlagSet and a DiffFlags struct with bound flag variables.
func SetupDiffFlags() (*pflag.FlagSet, *DiffFlags) {
	fs := pflag.NewFlagSet("diff", pflag.ContinueOnError)
	flags := &DiffFlags{}

	addCommonFlags(fs, &flags.CommonFlags)
	fs.BoolVarP(&flags.Patch, "patch", "p", false, "show a patch from base to resolved content for each surface")
	fs.StringVarP(&flags.Format, "format", "f", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(Stderr, "Usage: variantform diff [flags] <variant>\n\n")
		Writef(Stderr, "List the surfaces a variant overrides and the keys each override sets.\n\n")
		Writef(Stderr, "Flags:\n")
		Writef(Stderr, "%s", fs.FlagUsages())
		Writef(Stderr, "\nNotes:\n")
		Writef(Stderr, "  Overrides that replace a surface as a whole are listed as %q.\n", inspector.EntireFile)
		Writef(Stderr, "  Empty overrides, and whitespace-only merge overrides, are omitted.\n")
		Writef(Stderr, "\nExamples:\n")
		Writef(Stderr, "  variantform diff acme\n")
		Writef(Stderr, "  variantform diff acme --patch\n")
		Writef(Stderr, "  variantform diff acme --format yaml\n")
	}

	return fs, flags
}

// HandleDiff executes the diff command
func HandleDiff(args []string) error {
	fs, flags := SetupDiffFlags()

	if err := fs.Parse(args); err != nil {
		return handleParseError(err)
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("diff command requires exactly one variant name")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	p, err := flags.openProject(variantform.WithDiffPatches(flags.Patch))
	if err != nil {
		return err
	}
	result, err := p.Diff(fs.Arg(0))
	if err != nil {
		return err
	}

	if flags.Format != FormatText {
		return OutputStructured(result, flags.Format)
	}
	renderDiff(result)
	return nil
}

func renderDiff(result *inspector.DiffResult) {
	if len(result.Entries) == 0 {
		Writef(Stdout, "%s inherits every surface from base\n", result.Variant)
		return
	}
	Writef(Stdout, "%s overrides %d surface%s:\n", result.Variant, len(result.Entries), plural(len(result.Entries)))
	for _, e := range result.Entries {
		Writef(Stdout, "  %s  %s\n", cliutil.Heading(e.Surface), strings.Join(e.OverrideKeys, ", "))
		if e.Patch == "" {
			continue
		}
		Writef(Stdout, "    %s\n", cliutil.Dim(fmt.Sprintf("+%d -%d", e.Additions, e.Deletions)))
		for _, line := range strings.Split(strings.TrimRight(e.Patch, "\n"), "\n") {
			Writef(Stdout, "    %s\n", cliutil.PatchLine(line))
		}
	}
}
