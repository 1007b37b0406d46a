package pathspec

import (
	"regexp"
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"
)

// patternCache holds compiled glob patterns keyed by their NFC form.
var patternCache sync.Map // map[string]*regexp.Regexp

// IsGlob reports whether pattern uses glob syntax.
func IsGlob(pattern string) bool {
	return strings.Contains(pattern, "*")
}

// Match reports whether filePath matches pattern.
// It never panics; a pattern that cannot be compiled matches nothing.
func Match(filePath, pattern string) bool {
	filePath = norm.NFC.String(filePath)
	pattern = norm.NFC.String(pattern)
	if !IsGlob(pattern) {
		return filePath == pattern
	}
	re, err := Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(filePath)
}

// Compile translates a glob pattern into an anchored regular expression.
// Results are cached and safe for concurrent use.
func Compile(pattern string) (*regexp.Regexp, error) {
	pattern = norm.NFC.String(pattern)
	if cached, ok := patternCache.Load(pattern); ok {
		return cached.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(globToRegexp(pattern))
	if err != nil {
		return nil, err
	}
	actual, _ := patternCache.LoadOrStore(pattern, re)
	return actual.(*regexp.Regexp), nil
}

func globToRegexp(pattern string) string {
	var b strings.Builder
	b.WriteString("^")
	for i := 0; i < len(pattern); {
		switch {
		case strings.HasPrefix(pattern[i:], "**/"):
			b.WriteString("(?:.*/)?")
			i += 3
		case strings.HasPrefix(pattern[i:], "**"):
			b.WriteString(".*")
			i += 2
		case pattern[i] == '*':
			b.WriteString("[^/]*")
			i++
		default:
			j := strings.IndexByte(pattern[i:], '*')
			if j < 0 {
				j = len(pattern) - i
			}
			b.WriteString(regexp.QuoteMeta(pattern[i : i+j]))
			i += j
		}
	}
	b.WriteString("$")
	return b.String()
}
