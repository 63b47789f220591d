// Package strutil provides the small string primitives the config engine
// is built on: trimming, prefix tests, one-sided cuts, and separator
// segment extraction. All functions are allocation-light and never fail;
// a cut whose substring is absent returns the input unchanged.
package strutil

import (
	"strings"
	"unicode"
)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// HasPrefix reports whether s begins with prefix.
func HasPrefix(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}

// StripLeft removes the first occurrence of sub and everything before it.
// If sub does not occur in s, s is returned unchanged.
func StripLeft(s, sub string) string {
	if sub == "" {
		return s
	}
	i := strings.Index(s, sub)
	if i < 0 {
		return s
	}
	return s[i+len(sub):]
}

// StripRight removes the last occurrence of sub and everything after it.
// If sub does not occur in s, s is returned unchanged.
func StripRight(s, sub string) string {
	if sub == "" {
		return s
	}
	i := strings.LastIndex(s, sub)
	if i < 0 {
		return s
	}
	return s[:i]
}

// LastSegment returns the portion of s after the last occurrence of sep,
// or s itself when sep is absent. LastSegment("app.conf", ".") == "conf".
func LastSegment(s, sep string) string {
	if sep == "" {
		return s
	}
	i := strings.LastIndex(s, sep)
	if i < 0 {
		return s
	}
	return s[i+len(sep):]
}

// DeleteSpace removes every whitespace rune from s. Used to normalize
// lines and search targets so indentation and alignment never affect
// key matching.
func DeleteSpace(s string) string {
	// Fast path: most lines carry no interior whitespace beyond what
	// TrimSpace would catch, but we must handle "A = 1" style too.
	if !strings.ContainsFunc(s, unicode.IsSpace) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
