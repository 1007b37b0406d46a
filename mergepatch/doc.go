// Package mergepatch implements RFC 7396 JSON Merge Patch over an
// order-preserving value model shared by JSON and YAML surfaces.
//
// # Value Model
//
// [Value] is a closed set of types: [Null], [Bool], [Number], [String],
// [Array] and [*Object]. Objects remember key insertion order so that a
// merged document serializes with the base's key order followed by keys the
// patch introduced. Numbers keep their literal text.
//
// # Merging
//
// [Apply] is the RFC 7396 algorithm, except that a nested object patch only
// recurses into an existing object; on a missing or non-object value it is
// stored as given, nulls included. [MergeJSON] and [MergeYAML] parse raw
// bytes, check that the operands are objects, merge and serialize:
//
//	out, err := mergepatch.MergeJSON(base, override)
//	if errors.Is(err, vferrors.ErrOverrideNotObject) {
//	    // override was an array or scalar
//	}
//
// JSON output uses two-space indentation with no trailing newline and does not
// HTML-escape strings. YAML output uses two-space indentation with no line
// wrapping.
package mergepatch
