package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/variantform/variantform/inspector"
	"github.com/variantform/variantform/internal/cliutil"
)

// StatusFlags contains flags for the status command
type StatusFlags struct {
	CommonFlags
	Format string
}

// SetupStatusFlags creates and configures a FlagSet for the status command.
// Returns the FlagSet and a StatusFlags struct with bound flag variables.
func SetupStatusFlags() (*pflag.FlagSet, *StatusFlags) {
	fs := pflag.NewFlagSet("status", pflag.ContinueOnError)
	flags := &StatusFlags{}

	addCommonFlags(fs, &flags.CommonFlags)
	fs.StringVarP(&flags.Format, "format", "f", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(Stderr, "Usage: variantform status [flags]\n\n")
		Writef(Stderr, "Summarize every variant: its override files and any files matching no surface.\n\n")
		Writef(Stderr, "Flags:\n")
		Writef(Stderr, "%s", fs.FlagUsages())
		Writef(Stderr, "\nExamples:\n")
		Writef(Stderr, "  variantform status\n")
		Writef(Stderr, "  variantform status -C ./app --format json\n")
	}

	return fs, flags
}

// HandleStatus executes the status command
func HandleStatus(args []string) error {
	fs, flags := SetupStatusFlags()

	if err := fs.Parse(args); err != nil {
		return handleParseError(err)
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("status command takes no arguments")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	p, err := flags.openProject()
	if err != nil {
		return err
	}
	statuses, err := p.Status()
	if err != nil {
		return err
	}

	if flags.Format != FormatText {
		return OutputStructured(statuses, flags.Format)
	}
	renderStatus(statuses)
	return nil
}

func renderStatus(statuses []inspector.VariantStatus) {
	if len(statuses) == 0 {
		Writef(Stdout, "No variants. Create one with: variantform create <name>\n")
		return
	}

	rows := make([][]string, 0, len(statuses))
	for _, s := range statuses {
		rows = append(rows, []string{s.Name, strconv.Itoa(s.OverrideCount), strconv.Itoa(len(s.Violations))})
	}
	RenderSummaryTable(Stdout, []string{"VARIANT", "OVERRIDES", "VIOLATIONS"}, rows, false)

	for _, s := range statuses {
		if !s.HasViolations() {
			continue
		}
		Writef(Stdout, "\n%s\n", cliutil.Warning(fmt.Sprintf("%s: %d file%s outside declared surfaces:", s.Name, len(s.Violations), plural(len(s.Violations)))))
		for _, v := range s.Violations {
			Writef(Stdout, "  %s\n", v)
		}
	}
}
