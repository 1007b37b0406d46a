package commands

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/variantform/variantform/surface"
)

// SurfacesFlags contains flags for the surfaces command
type SurfacesFlags struct {
	CommonFlags
	Expand bool
	Format string
	Quiet  bool
}

// SetupSurfacesFlags creates and configures a FlagSet for the surfaces command.
// Returns the FlagSet and a SurfacesFlags struct with bound flag variables.
func SetupSurfacesFlags() (*pflag.FlagSet, *SurfacesFlags) {
	fs := pflag.NewFlagSet("surfaces", pflag.ContinueOnError)
	flags := &SurfacesFlags{}

	addCommonFlags(fs, &flags.CommonFlags)
	fs.BoolVarP(&flags.Expand, "expand", "e", false, "expand glob surfaces against the base tree")
	fs.StringVarP(&flags.Format, "format", "f", FormatText, "output format: text, json, or yaml")
	fs.BoolVarP(&flags.Quiet, "quiet", "q", false, "tab-separated rows without a header")

	fs.Usage = func() {
		Writef(Stderr, "Usage: variantform surfaces [flags]\n\n")
		Writef(Stderr, "List the surfaces declared in .variantform.yaml.\n\n")
		Writef(Stderr, "Flags:\n")
		Writef(Stderr, "%s", fs.FlagUsages())
		Writef(Stderr, "\nExamples:\n")
		Writef(Stderr, "  variantform surfaces\n")
		Writef(Stderr, "  variantform surfaces --expand -q | cut -f1\n")
	}

	return fs, flags
}

// HandleSurfaces executes the surfaces command
func HandleSurfaces(args []string) error {
	fs, flags := SetupSurfacesFlags()

	if err := fs.Parse(args); err != nil {
		return handleParseError(err)
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("surfaces command takes no arguments")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	p, err := flags.openProject()
	if err != nil {
		return err
	}
	var set surface.Set
	if flags.Expand {
		set, err = p.ExpandSurfaces()
	} else {
		var m *surface.Manifest
		m, err = p.Manifest()
		if m != nil {
			set = m.Surfaces
		}
	}
	if err != nil {
		return err
	}
	if set == nil {
		set = surface.Set{}
	}

	if flags.Format != FormatText {
		return OutputStructured(set, flags.Format)
	}
	if len(set) == 0 {
		if !flags.Quiet {
			Writef(Stdout, "No surfaces.\n")
		}
		return nil
	}
	rows := make([][]string, 0, len(set))
	for _, s := range set {
		rows = append(rows, []string{s.Path, string(s.Format), string(s.Strategy)})
	}
	RenderSummaryTable(Stdout, []string{"PATH", "FORMAT", "STRATEGY"}, rows, flags.Quiet)
	return nil
}
