package match

import (
	"regexp"
	"strings"
)

var (
	initialToken = regexp.MustCompile(`\b[A-Za-z]\.`)

	generationalSuffixes = map[string]bool{
		"jr": true,
		"sr": true,
	}
)

// NameVariations returns alternate spellings of an author name to retry a
// failed catalog lookup with: spaced and collapsed initials, a form without
// a generational suffix, and first+last only. The original name comes first
// and the list is deduplicated.
func NameVariations(name string) []string {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return nil
	}

	out := []string{name}
	add := func(v string) {
		v = strings.Join(strings.Fields(v), " ")
		if v == "" {
			return
		}
		for _, seen := range out {
			if strings.EqualFold(seen, v) {
				return
			}
		}
		out = append(out, v)
	}

	if initialToken.MatchString(name) {
		// "J.K. Rowling" -> "J. K. Rowling"
		add(strings.ReplaceAll(name, ".", ". "))
		// "J. K. Rowling" -> "JK Rowling"
		add(collapseInitials(strings.ReplaceAll(name, ".", " ")))
	}

	base := name
	words := strings.Fields(name)
	if len(words) > 1 {
		last := strings.ToLower(strings.TrimSuffix(words[len(words)-1], "."))
		if generationalSuffixes[last] {
			base = strings.Join(words[:len(words)-1], " ")
			add(base)
		}
	}

	if baseWords := strings.Fields(base); len(baseWords) > 2 {
		add(baseWords[0] + " " + baseWords[len(baseWords)-1])
	}

	return out
}

// collapseInitials merges runs of single-letter words: "J K Rowling"
// becomes "JK Rowling".
func collapseInitials(s string) string {
	var out []string
	for _, w := range strings.Fields(s) {
		if len(w) == 1 && len(out) > 0 && isInitialRun(out[len(out)-1]) {
			out[len(out)-1] += w
			continue
		}
		out = append(out, w)
	}
	return strings.Join(out, " ")
}

// isInitialRun reports whether a word is a short run of uppercase letters,
// i.e. collapsed initials rather than a name.
func isInitialRun(w string) bool {
	if len(w) > 3 {
		return false
	}
	for _, r := range w {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
