package inspector

// EntireFile is the key reported when an override replaces a surface as a whole.
const EntireFile = "(entire file)"

// VariantStatus summarizes the files stored for one variant.
type VariantStatus struct {
	// Name is the variant name.
	Name string `json:"name" yaml:"name"`
	// OverrideCount is len(Overrides).
	OverrideCount int `json:"overrideCount" yaml:"overrideCount"`
	// Overrides are files matching a declared surface, relative to the variant directory.
	Overrides []string `json:"overrides" yaml:"overrides"`
	// Violations are files matching no declared surface.
	Violations []string `json:"violations" yaml:"violations"`
}

// HasViolations reports whether the variant stores extraneous files.
func (s VariantStatus) HasViolations() bool {
	return len(s.Violations) > 0
}

// DiffEntry describes one overridden surface.
type DiffEntry struct {
	// Surface is the concrete surface path.
	Surface string `json:"surface" yaml:"surface"`
	// OverrideKeys are the override's top-level keys, or [EntireFile].
	OverrideKeys []string `json:"overrideKeys" yaml:"overrideKeys"`
	// Patch is the base-to-resolved patch text, when requested and non-empty.
	Patch string `json:"patch,omitempty" yaml:"patch,omitempty"`
	// Additions and Deletions count changed lines in Patch.
	Additions int `json:"additions,omitempty" yaml:"additions,omitempty"`
	Deletions int `json:"deletions,omitempty" yaml:"deletions,omitempty"`
}

// DiffResult lists the overridden surfaces of one variant.
type DiffResult struct {
	Variant string      `json:"variant" yaml:"variant"`
	Entries []DiffEntry `json:"entries" yaml:"entries"`
}
