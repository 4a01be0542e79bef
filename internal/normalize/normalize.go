// Package normalize canonicalizes titles and author names so that records
// from different catalogs can be compared with plain string operations.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	stripAccents  = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	parenthetical = regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]`)
)

// Title lowercases a title, drops parenthetical content (edition notes,
// "(Unabridged)" and the like), strips everything outside letters, digits
// and whitespace, and collapses runs of whitespace.
func Title(s string) string {
	s = parenthetical.ReplaceAllString(s, " ")
	return strip(s, false)
}

// Author lowercases an author name and strips punctuation. Apostrophes are
// removed without leaving a gap (O'Brien -> obrien) and hyphens become
// spaces, so double-barrelled surnames compare word by word.
func Author(s string) string {
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, "’", "")
	s = strings.ReplaceAll(s, "-", " ")
	return strip(s, false)
}

// Query cleans text for use in a free-text catalog query: parentheticals
// removed, special characters replaced with spaces, whitespace collapsed.
// Case is preserved since upstream search is case-insensitive anyway.
func Query(s string) string {
	s = parenthetical.ReplaceAllString(s, " ")
	return strip(s, true)
}

func strip(s string, keepCase bool) string {
	folded, _, err := transform.String(stripAccents, s)
	if err == nil {
		s = folded
	}
	if !keepCase {
		s = strings.ToLower(s)
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
