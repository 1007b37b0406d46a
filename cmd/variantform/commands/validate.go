package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/variantform/variantform"
	"github.com/variantform/variantform/internal/cliutil"
	"github.com/variantform/variantform/validator"
)

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	CommonFlags
	TopLevelKeys bool
	Format       string
	Quiet        bool
}

// SetupValidateFlags creates and configures a FlagSet for the validate command.
// Returns the FlagSet and a ValidateFlags struct with bound flag variables.
func SetupValidateFlags() (*pflag.FlagSet, *ValidateFlags) {
	fs := pflag.NewFlagSet("validate", pflag.ContinueOnError)
	flags := &ValidateFlags{}

	addCommonFlags(fs, &flags.CommonFlags)
	fs.BoolVar(&flags.TopLevelKeys, "top-level-keys", false, "report stale keys at the top level only instead of at every depth")
	fs.StringVarP(&flags.Format, "format", "f", FormatText, "output format: text, json, or yaml")
	fs.BoolVarP(&flags.Quiet, "quiet", "q", false, "quiet mode: print nothing, only set the exit code")

	fs.Usage = func() {
		Writef(Stderr, "Usage: variantform validate [flags]\n\n")
		Writef(Stderr, "Check every variant's overrides against the declared surfaces and their base files.\n\n")
		Writef(Stderr, "Flags:\n")
		Writef(Stderr, "%s", fs.FlagUsages())
		Writef(Stderr, "\nIssue Kinds:\n")
		Writef(Stderr, "  stale_key        override sets a key the base no longer has (warning)\n")
		Writef(Stderr, "  empty_file       override is empty or whitespace only (warning)\n")
		Writef(Stderr, "  parse_error      override is not valid for its format\n")
		Writef(Stderr, "  invalid_shape    merge override is not an object\n")
		Writef(Stderr, "  extraneous_file  file matches no declared surface\n")
		Writef(Stderr, "\nExamples:\n")
		Writef(Stderr, "  variantform validate\n")
		Writef(Stderr, "  variantform validate --top-level-keys\n")
		Writef(Stderr, "  variantform validate --format json | jq '.issues[] | select(.kind == \"stale_key\")'\n")
		Writef(Stderr, "\nExit Codes:\n")
		Writef(Stderr, "  0    No issues found\n")
		Writef(Stderr, "  1    Issues found, or the project could not be read\n")
	}

	return fs, flags
}

// HandleValidate executes the validate command. It returns ErrIssuesFound
// when the project has any issue, warnings included.
func HandleValidate(args []string) error {
	fs, flags := SetupValidateFlags()

	if err := fs.Parse(args); err != nil {
		return handleParseError(err)
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("validate command takes no arguments")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	mode := validator.StaleKeysRecursive
	if flags.TopLevelKeys {
		mode = validator.StaleKeysTopLevel
	}
	p, err := flags.openProject(variantform.WithStaleKeyMode(mode))
	if err != nil {
		return err
	}
	result, err := p.Validate()
	if err != nil {
		return err
	}

	switch {
	case flags.Quiet:
	case flags.Format != FormatText:
		if err := OutputStructured(result, flags.Format); err != nil {
			return err
		}
	default:
		renderValidation(result)
	}

	if !result.Valid {
		return ErrIssuesFound
	}
	return nil
}

func renderValidation(result *validator.ValidationResult) {
	Writef(Stdout, "Checked %d file%s in %d variant%s\n\n",
		result.FileCount, plural(result.FileCount), result.VariantCount, plural(result.VariantCount))

	for _, issue := range result.Issues {
		line := issue.String()
		if issue.Severity == validator.SeverityError {
			line = cliutil.Error(line)
		} else {
			line = cliutil.Warning(line)
		}
		Writef(Stdout, "  %s\n", line)
	}
	if len(result.Issues) > 0 {
		Writef(Stdout, "\n")
		for _, k := range validator.IssueKinds() {
			if n := countKind(result.Issues, k); n > 0 {
				Writef(Stdout, "  %-16s %d\n", KindTitle(k)+":", n)
			}
		}
		Writef(Stdout, "\n")
	}

	if result.Valid {
		Writef(Stdout, "%s\n", cliutil.Success("✓ No issues found"))
		return
	}
	Writef(Stdout, "%s\n", cliutil.Error(fmt.Sprintf("✗ %d error%s, %d warning%s",
		result.ErrorCount, plural(result.ErrorCount), result.WarningCount, plural(result.WarningCount))))
}

var titleCaser = cases.Title(language.English)

// KindTitle renders an issue kind for people, e.g. "stale_key" as "Stale Key".
func KindTitle(k validator.IssueKind) string {
	return titleCaser.String(strings.ReplaceAll(string(k), "_", " "))
}

func countKind(list []validator.Issue, k validator.IssueKind) int {
	n := 0
	for _, issue := range list {
		if issue.Kind == k {
			n++
		}
	}
	return n
}
