package pathspec

import (
	"path"
	"regexp"
	"strings"

	"github.com/variantform/variantform/vferrors"
)

var variantNameRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateVariantName rejects names that are empty, start with '.', '-' or
// '_', or contain anything besides letters, digits, '.', '_' and '-'.
func ValidateVariantName(name string) error {
	if !variantNameRe.MatchString(name) {
		return &vferrors.NameError{
			Name:    name,
			Message: "must start with a letter or digit and contain only letters, digits, '.', '_' or '-'",
		}
	}
	return nil
}

// ValidateSurfacePath rejects surface paths that are absolute or traverse
// outside the project root.
func ValidateSurfacePath(p string) error {
	if msg := unsafeReason(p); msg != "" {
		return &vferrors.PathError{Path: p, Message: msg}
	}
	return nil
}

// ValidateGlobPattern applies the same rules as ValidateSurfacePath to a
// glob pattern. Glob characters are never treated as path separators, so a
// pattern cannot smuggle a ".." segment past the check.
func ValidateGlobPattern(pattern string) error {
	if msg := unsafeReason(pattern); msg != "" {
		return &vferrors.PathError{Path: pattern, IsGlob: true, Message: msg}
	}
	return nil
}

// unsafeReason returns a description of the first rule p violates, or "".
// Both the raw string and its cleaned form are checked.
func unsafeReason(p string) string {
	switch {
	case p == "":
		return "path is empty"
	case strings.ContainsRune(p, 0):
		return "path contains a NUL byte"
	case isAbsolute(p):
		return "path must be relative to the project root"
	}

	for _, seg := range strings.FieldsFunc(p, isSeparator) {
		if seg == ".." {
			return "path contains a '..' segment"
		}
	}

	cleaned := path.Clean(strings.ReplaceAll(p, `\`, "/"))
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "path escapes the project root"
	}
	return ""
}

func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}

func isAbsolute(p string) bool {
	if p[0] == '/' || p[0] == '\\' {
		return true
	}
	// Windows drive letter, e.g. C:\ or C:/ or bare C:
	if len(p) >= 2 && p[1] == ':' && isASCIILetter(p[0]) {
		return true
	}
	return false
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
