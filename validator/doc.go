// Package validator checks every variant of a project for consistency with
// its manifest and base files.
//
// Validation is the one operation that accumulates problems instead of
// failing on the first: every file of every variant is checked, and each
// defect becomes an [Issue]. Structural problems with the request itself (a
// missing or malformed manifest, an unreadable project) are still returned
// as errors.
//
// # Checks
//
// For each file under variants/<name>/ (placeholder .gitkeep files excluded):
//
//   - A file matching no declared surface pattern is an extraneous_file.
//   - An override with no content, ignoring whitespace, is an empty_file.
//   - Merge surfaces: an override that does not parse is a parse_error; one
//     that parses to a non-object is an invalid_shape; otherwise every
//     override key missing from the current base is a stale_key. Staleness
//     is skipped when the base is absent, unparsable, or not an object.
//   - Replace surfaces with a structured format: an override that does not
//     parse is a parse_error. No shape or staleness constraint applies.
//
// # Stale Keys
//
// By default stale keys are found recursively and reported as dot-separated
// paths, descending only where both base and override hold objects, so a
// missing parent is reported once rather than once per child. Use
// [WithStaleKeyMode] or [Validator.StaleKeyMode] with [StaleKeysTopLevel] to
// compare top-level keys only.
//
// # Severity
//
// extraneous_file, parse_error and invalid_shape are errors; stale_key and
// empty_file are warnings. [ValidationResult.Valid] is true only when no
// issue of either severity was found.
//
// # Usage
//
//	result, err := validator.ValidateWithOptions(
//	    validator.WithProjectDir("."),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, issue := range result.Issues {
//	    fmt.Println(issue)
//	}
//	if !result.Valid {
//	    os.Exit(1)
//	}
package validator
