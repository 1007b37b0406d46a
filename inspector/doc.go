// Package inspector reports what each variant overrides.
//
// [Inspector.Status] classifies every file under variants/<name>/ as an
// override (it matches a declared surface pattern) or a violation (it does
// not). [Inspector.Diff] lists, per overridden surface, the top-level keys the
// override sets, or [EntireFile] when the override replaces the whole file.
//
//	ins := inspector.New()
//	statuses, err := ins.Status(fsys, nil)
//	for _, s := range statuses {
//	    fmt.Printf("%s: %d overrides, %d violations\n", s.Name, s.OverrideCount, len(s.Violations))
//	}
//
// With IncludePatch set, Diff also renders a textual patch from the base
// content to the resolved content using github.com/sergi/go-diff.
package inspector
