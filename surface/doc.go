// Package surface models the declared surfaces of a variantform project:
// parsing and validating .variantform.yaml, and expanding glob surfaces into
// concrete files.
//
// A manifest lists surfaces in order:
//
//	surfaces:
//	  - path: config/features.json
//	    format: json              # strategy defaults to merge
//	  - path: theme/*.css
//	    format: css               # strategy defaults to replace
//
// [ParseManifest] rejects the first invalid entry with a
// *vferrors.SurfaceError. [Expand] re-scans the base tree on every call, so
// callers should expand once per operation and never cache the result across
// operations.
package surface
