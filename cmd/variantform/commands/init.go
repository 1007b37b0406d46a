package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/variantform/variantform/internal/cliutil"
	"github.com/variantform/variantform/internal/fileutil"
	"github.com/variantform/variantform/internal/layout"
	"github.com/variantform/variantform/surface"
)

// InitFlags contains flags for the init command
type InitFlags struct {
	Project  string
	Surfaces []string
}

// SetupInitFlags creates and configures a FlagSet for the init command.
// Returns the FlagSet and an InitFlags struct with bound flag variables.
func SetupInitFlags() (*pflag.FlagSet, *InitFlags) {
	fs := pflag.NewFlagSet("init", pflag.ContinueOnError)
	flags := &InitFlags{}

	fs.StringVarP(&flags.Project, "project", "C", ".", "directory to initialize")
	fs.StringArrayVarP(&flags.Surfaces, "surface", "s", nil, "declare a surface as path:format[:strategy] (repeatable)")

	fs.Usage = func() {
		Writef(Stderr, "Usage: variantform init [flags]\n\n")
		Writef(Stderr, "Write .variantform.yaml and an empty variants/ directory.\n\n")
		Writef(Stderr, "Flags:\n")
		Writef(Stderr, "%s", fs.FlagUsages())
		Writef(Stderr, "\nFormats:\n")
		Writef(Stderr, "  json, yaml (merge by default)\n")
		Writef(Stderr, "  css, code, markdown, asset, template, text (replace only)\n")
		Writef(Stderr, "\nExamples:\n")
		Writef(Stderr, "  variantform init -s config/features.json:json -s theme/brand.css:css\n")
		Writef(Stderr, "  variantform init -s 'locales/*.json:json:replace'\n")
	}

	return fs, flags
}

// HandleInit executes the init command
func HandleInit(args []string) error {
	fs, flags := SetupInitFlags()

	if err := fs.Parse(args); err != nil {
		return handleParseError(err)
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("init command takes no arguments; declare surfaces with --surface")
	}

	manifest, err := ManifestFromFlags(flags.Surfaces)
	if err != nil {
		return err
	}
	if err := InitProject(afero.NewBasePathFs(osFs, flags.Project), manifest); err != nil {
		return err
	}
	Writef(Stdout, "%s %s with %d surface%s\n", cliutil.Success("✓ Initialized"), flags.Project,
		len(manifest.Surfaces), plural(len(manifest.Surfaces)))
	return nil
}

// ManifestFromFlags builds a manifest from path:format[:strategy] values and
// checks it the same way a manifest read from disk is checked.
func ManifestFromFlags(values []string) (*surface.Manifest, error) {
	m := &surface.Manifest{Surfaces: make(surface.Set, 0, len(values))}
	for _, v := range values {
		parts := strings.Split(v, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("invalid --surface %q: expected path:format[:strategy]", v)
		}
		s := surface.Surface{Path: parts[0], Format: surface.Format(parts[1])}
		if len(parts) == 3 {
			s.Strategy = surface.Strategy(parts[2])
		} else {
			s.Strategy = surface.DefaultStrategy(s.Format)
		}
		m.Surfaces = append(m.Surfaces, s)
	}

	data, err := m.Marshal()
	if err != nil {
		return nil, err
	}
	if _, err := surface.ParseManifest(data); err != nil {
		return nil, err
	}
	return m, nil
}

// InitProject writes the manifest and the variants placeholder into root.
// It refuses to touch a directory that already has a manifest.
func InitProject(root afero.Fs, m *surface.Manifest) error {
	exists, err := afero.Exists(root, layout.ManifestFile)
	if err != nil {
		return fmt.Errorf("checking %s: %w", layout.ManifestFile, err)
	}
	if exists {
		return fmt.Errorf("already initialized: %s exists", layout.ManifestFile)
	}

	data, err := m.Marshal()
	if err != nil {
		return err
	}
	if err := afero.WriteFile(root, layout.ManifestFile, data, fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("writing %s: %w", layout.ManifestFile, err)
	}
	if err := root.MkdirAll(layout.VariantsDir, fileutil.DirReadableByAll); err != nil {
		return fmt.Errorf("creating %s: %w", layout.VariantsDir, err)
	}
	placeholder := layout.VariantsDir + "/" + layout.Placeholder
	if err := afero.WriteFile(root, placeholder, nil, fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("writing %s: %w", placeholder, err)
	}
	return nil
}
