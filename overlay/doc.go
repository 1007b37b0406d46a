// Package overlay resolves the effective content of a variant's surfaces by
// layering override files onto base files.
//
// # Quick Start
//
// Resolve using functional options (recommended):
//
//	result, err := overlay.ResolveWithOptions(
//	    overlay.WithProjectDir("."),
//	    overlay.WithVariant("acme"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, s := range result.Surfaces {
//	    fmt.Printf("%s (override: %v)\n%s\n", s.Surface, s.HasOverride, s.Content)
//	}
//
// Or use a reusable Resolver instance with any fs.FS:
//
//	r := overlay.NewResolver()
//	result, err := r.Resolve(fsys, nil, "acme", "config/features.json")
//
// # Resolution Rules
//
// For each expanded surface, the base file at the surface path must exist
// (*vferrors.BaseMissingError otherwise). The override lives at
// variants/<variant>/<surface path>:
//
//   - no override file: base content verbatim
//   - empty override file: base content verbatim, HasOverride is true
//   - strategy replace: override content verbatim
//   - strategy merge, format json: RFC 7396 merge, rendered as indented JSON
//   - strategy merge, format yaml: RFC 7396 merge, rendered as YAML
//
// A merge whose override is not an object fails with a *vferrors.ShapeError.
//
// # Inline Preview
//
// [Preview] applies the same rules to content supplied by the caller, for
// editors that show the effect of an override before it is saved.
package overlay
