// Package pathspec matches project-relative file paths against surface
// patterns and rejects variant names and paths that could escape the
// project root.
//
// # Pattern Syntax
//
// A pattern without '*' matches by exact string equality. Otherwise:
//
//   - '*' matches any run of characters except '/'
//   - '**' matches any run of characters including '/'
//   - '**/' also matches zero directories, so "**/*.json" matches "features.json"
//
// Every other character, including '.', '?', '[' and '{', is literal.
// Both the path and the pattern are NFC-normalized before comparison.
//
// # Safety
//
// [ValidateVariantName], [ValidateSurfacePath] and [ValidateGlobPattern] must
// run before any file is read for the name or path in question. They return
// *vferrors.NameError and *vferrors.PathError respectively.
package pathspec
