// Package sanitize derives a safe filename from an arbitrary path.
//
// Only the final path component is ever transformed; parent directory
// segments pass through byte-for-byte. Unsafe characters (whitespace and
// a fixed set of punctuation) are substituted with a configurable
// replacement character, runs of replacements are collapsed, and a
// recognized extension is preserved untouched.
package sanitize

import (
	"os"
	"strings"
	"unicode"
)

// unsafeChars are the punctuation characters substituted with the
// replacement, in addition to all whitespace.
const unsafeChars = `.,":?'#;&*\()[]`

// Sanitizer maps input paths to sanitized paths. It never mutates the
// filesystem; the only filesystem access is the directory probe used to
// decide whether a path can carry an extension.
type Sanitizer struct {
	replacement rune
	isDir       func(string) bool
}

// New returns a Sanitizer using the given replacement character and an
// os.Stat-based directory probe.
func New(replacement rune) *Sanitizer {
	return NewWithClassifier(replacement, func(path string) bool {
		info, err := os.Stat(path)
		return err == nil && info.IsDir()
	})
}

// NewWithClassifier returns a Sanitizer with a caller-supplied directory
// probe. Tests use this to classify paths without touching the
// filesystem.
func NewWithClassifier(replacement rune, isDir func(string) bool) *Sanitizer {
	return &Sanitizer{replacement: replacement, isDir: isDir}
}

// Clean returns the sanitized form of path. The transformation is
// deterministic and total: there are no error outcomes.
func (s *Sanitizer) Clean(path string) string {
	if path == "" {
		return ""
	}
	trimmed := trimTrailingSeparators(path)
	if trimmed == "/" {
		return trimmed
	}

	dir, base := splitLast(trimmed)
	ext := s.extension(trimmed, base)
	stem := cleanComponent(base, s.replacement, ext)

	out := stem
	if ext != "" {
		out += "." + ext
	}
	switch dir {
	case "":
		return out
	case "/":
		return "/" + out
	default:
		return dir + "/" + out
	}
}

// extension returns the preserved extension of base, or "" when the
// entry does not qualify: directories and hidden names never have
// extensions, and the segment after the final dot must be non-empty.
func (s *Sanitizer) extension(fullPath, base string) string {
	if strings.HasPrefix(base, ".") {
		return ""
	}
	i := strings.LastIndex(base, ".")
	if i < 0 {
		return ""
	}
	ext := base[i+1:]
	if ext == "" {
		return ""
	}
	if s.isDir(fullPath) {
		return ""
	}
	return ext
}

// cleanComponent transforms a single path component: character
// substitution, run collapsing, and removal of the separator the
// substitution pass introduced in front of a preserved extension.
func cleanComponent(name string, replacement rune, ext string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r == '×':
			b.WriteRune('x')
		case unicode.IsSpace(r) || strings.ContainsRune(unsafeChars, r):
			b.WriteRune(replacement)
		default:
			b.WriteRune(r)
		}
	}

	collapsed := collapseRuns(b.String(), replacement)

	if ext != "" {
		collapsed = strings.TrimSuffix(collapsed, string(replacement)+ext)
	}
	return collapsed
}

// collapseRuns reduces every run of two or more replacement characters
// to a single one.
func collapseRuns(s string, replacement rune) string {
	var b strings.Builder
	b.Grow(len(s))
	prev := false
	for _, r := range s {
		if r == replacement {
			if prev {
				continue
			}
			prev = true
		} else {
			prev = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// splitLast splits a path at its final separator. The directory part is
// returned verbatim, so segments like "." survive untouched; "/" marks
// an absolute single-component path.
func splitLast(path string) (dir, base string) {
	i := strings.LastIndex(path, "/")
	if i < 0 {
		return "", path
	}
	if i == 0 {
		return "/", path[1:]
	}
	return path[:i], path[i+1:]
}

func trimTrailingSeparators(path string) string {
	if path == "/" {
		return path
	}
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" {
		return "/"
	}
	return trimmed
}
