// Package variantform manages per-deployment customizations of a codebase as
// overlays on a single branch.
//
// A project declares certain files as customizable "surfaces" in a
// .variantform.yaml manifest at its root. Each deployment, or "variant",
// stores only its differences under variants/<name>/, mirroring the surface
// paths. The effective content of any surface for any variant can then be
// reconstructed deterministically: JSON and YAML surfaces are combined with
// RFC 7396 JSON Merge Patch, every other format is replaced wholesale.
//
// # Overview
//
// The [Project] type is the entry point for collaborators such as the
// variantform CLI and MCP server. Each operation re-reads the manifest and
// base tree, so a Project holds no state beyond its content source and
// settings:
//
//	p, err := variantform.OpenDir(".")
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := p.Resolve("acme", "")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, s := range result.Surfaces {
//		fmt.Println(s.Surface, s.HasOverride)
//	}
//
// # Packages
//
// The facade composes the following packages, each usable on its own:
//
//   - pathspec: glob matching and path safety checks
//   - surface: manifest parsing and glob expansion
//   - mergepatch: the RFC 7396 engine over an ordered JSON value model, with
//     JSON and YAML codecs
//   - overlay: resolution of a variant's surfaces
//   - inspector: status and diff reports
//   - validator: cross-variant consistency checks
//   - source: fs.FS content sources confined to the project root
//   - vferrors: structured error types for errors.Is and errors.As
//
// # Project Layout
//
//	.variantform.yaml          manifest declaring surfaces
//	config/features.json       base surface
//	variants/acme/config/...   acme's overrides
//	variants/.gitkeep          placeholder, ignored everywhere
//
// # Errors
//
// Structural problems such as a missing manifest, an unsafe path or a
// missing base file are returned immediately as typed errors from the
// vferrors package. Validation instead accumulates every problem it finds
// into a list of issues; an empty list is the only success signal.
package variantform
