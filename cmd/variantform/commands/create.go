package commands

import (
	"fmt"
	"path"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/variantform/variantform/internal/cliutil"
	"github.com/variantform/variantform/internal/fileutil"
	"github.com/variantform/variantform/internal/layout"
	"github.com/variantform/variantform/pathspec"
)

// CreateFlags contains flags for the create command
type CreateFlags struct {
	Project string
}

// SetupCreateFlags creates and configures a FlagSet for the create command.
// Returns the FlagSet and a CreateFlags struct with bound flag variables.
func SetupCreateFlags() (*pflag.FlagSet, *CreateFlags) {
	fs := pflag.NewFlagSet("create", pflag.ContinueOnError)
	flags := &CreateFlags{}

	fs.StringVarP(&flags.Project, "project", "C", ".", "project root directory containing .variantform.yaml")

	fs.Usage = func() {
		Writef(Stderr, "Usage: variantform create [flags] <variant>\n\n")
		Writef(Stderr, "Create an empty variant directory under variants/.\n\n")
		Writef(Stderr, "Variant names start with a letter or digit and contain only letters,\n")
		Writef(Stderr, "digits, '.', '_' and '-'.\n\n")
		Writef(Stderr, "Flags:\n")
		Writef(Stderr, "%s", fs.FlagUsages())
		Writef(Stderr, "\nExamples:\n")
		Writef(Stderr, "  variantform create acme\n")
	}

	return fs, flags
}

// HandleCreate executes the create command
func HandleCreate(args []string) error {
	fs, flags := SetupCreateFlags()

	if err := fs.Parse(args); err != nil {
		return handleParseError(err)
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("create command requires exactly one variant name")
	}

	name := fs.Arg(0)
	if err := CreateVariant(afero.NewBasePathFs(osFs, flags.Project), name); err != nil {
		return err
	}
	Writef(Stdout, "%s variant %s in %s\n", cliutil.Success("✓ Created"), name, layout.VariantDir(name))
	return nil
}

// CreateVariant adds an empty variant directory holding a placeholder.
func CreateVariant(root afero.Fs, name string) error {
	if err := pathspec.ValidateVariantName(name); err != nil {
		return err
	}

	ok, err := afero.DirExists(root, layout.VariantsDir)
	if err != nil {
		return fmt.Errorf("checking %s: %w", layout.VariantsDir, err)
	}
	if !ok {
		return fmt.Errorf("not initialized: run 'variantform init' first")
	}

	dir := layout.VariantDir(name)
	exists, err := afero.Exists(root, dir)
	if err != nil {
		return fmt.Errorf("checking %s: %w", dir, err)
	}
	if exists {
		return fmt.Errorf("variant %q already exists", name)
	}

	if err := root.MkdirAll(dir, fileutil.DirReadableByAll); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	if err := afero.WriteFile(root, path.Join(dir, layout.Placeholder), nil, fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("writing placeholder: %w", err)
	}
	return nil
}
