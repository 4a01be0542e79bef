// Package match scores how well a catalog record fits a requested title and
// author. All functions are pure; they never touch the network.
package match

import (
	"regexp"
	"strings"

	"audiomatch/internal/normalize"
)

// Work is the candidate side of a comparison: one record as a catalog
// returned it.
type Work struct {
	Title   string
	Authors []string
	// Audio is set when the upstream record explicitly flags itself as an
	// audio product.
	Audio bool
}

// Query is the target side: what the user asked for.
type Query struct {
	Title  string
	Author string
}

const (
	titleExact     = 60
	titleContains  = 45
	titlePartial   = 30
	authorExact    = 40
	authorContains = 30
	authorPartial  = 20
	audioBonus     = 5

	sequelMatch    = 10
	sequelUnwanted = -10
	sequelMismatch = -5
)

var integerToken = regexp.MustCompile(`\d+`)

// Score rates a candidate against the target on a 0-110 scale: up to 60 for
// the title, up to 40 for the author, a sequel-number adjustment, and a
// small bonus for confirmed audio products. Deterministic for fixed inputs.
func Score(w Work, q Query) float64 {
	candTitle := normalize.Title(w.Title)
	wantTitle := normalize.Title(q.Title)

	s := titleScore(candTitle, wantTitle)
	s += authorScore(w.Authors, q.Author)
	s += sequelAdjustment(candTitle, wantTitle)
	if w.Audio {
		s += audioBonus
	}
	return s
}

func titleScore(cand, want string) float64 {
	if cand == "" || want == "" {
		return 0
	}
	if cand == want {
		return titleExact
	}
	if strings.Contains(cand, want) || strings.Contains(want, cand) {
		return titleContains
	}
	want_ := significantWords(want)
	if len(want_) == 0 {
		return 0
	}
	candWords := strings.Fields(cand)
	found := 0
	for _, ww := range want_ {
		for _, cw := range candWords {
			if strings.Contains(cw, ww) || strings.Contains(ww, cw) {
				found++
				break
			}
		}
	}
	return titlePartial * float64(found) / float64(len(want_))
}

// authorScore takes the best score across every author the candidate lists.
func authorScore(authors []string, want string) float64 {
	wantNorm := normalize.Author(want)
	if wantNorm == "" {
		return 0
	}
	var best float64
	for _, a := range authors {
		cand := normalize.Author(a)
		if cand == "" {
			continue
		}
		var s float64
		switch {
		case cand == wantNorm:
			s = authorExact
		case strings.Contains(cand, wantNorm) || strings.Contains(wantNorm, cand):
			s = authorContains
		default:
			s = authorPartial * wordOverlap(cand, wantNorm)
		}
		if s > best {
			best = s
		}
	}
	return best
}

// wordOverlap is the fraction of want's words present in cand's words.
func wordOverlap(cand, want string) float64 {
	wantWords := strings.Fields(want)
	if len(wantWords) == 0 {
		return 0
	}
	candWords := make(map[string]bool, len(wantWords))
	for _, w := range strings.Fields(cand) {
		candWords[w] = true
	}
	found := 0
	for _, w := range wantWords {
		if candWords[w] {
			found++
		}
	}
	return float64(found) / float64(len(wantWords))
}

// sequelAdjustment compares the first integer token in each normalized
// title. Sequels the user did not ask for are penalized; an explicitly
// requested volume number must agree.
func sequelAdjustment(cand, want string) float64 {
	candNum := integerToken.FindString(cand)
	wantNum := integerToken.FindString(want)
	switch {
	case wantNum == "" && candNum != "":
		return sequelUnwanted
	case wantNum == "":
		return 0
	case candNum == wantNum:
		return sequelMatch
	default:
		// Wrong volume, or no volume at all.
		return sequelMismatch
	}
}

func significantWords(s string) []string {
	var out []string
	for _, w := range strings.Fields(s) {
		if len(w) > 2 {
			out = append(out, w)
		}
	}
	return out
}

// BestAuthorIndex resolves an ambiguous author name to one entry of an
// upstream result list: exact normalized match wins, then substring
// containment, then surname equality. A non-empty list always yields an
// index; the first entry is the last resort. Returns -1 for an empty list.
func BestAuthorIndex(names []string, want string) int {
	if len(names) == 0 {
		return -1
	}
	wantNorm := normalize.Author(want)
	for i, n := range names {
		if normalize.Author(n) == wantNorm {
			return i
		}
	}
	for i, n := range names {
		cand := normalize.Author(n)
		if cand != "" && (strings.Contains(cand, wantNorm) || strings.Contains(wantNorm, cand)) {
			return i
		}
	}
	if surname := lastWord(wantNorm); surname != "" {
		for i, n := range names {
			if lastWord(normalize.Author(n)) == surname {
				return i
			}
		}
	}
	return 0
}

func lastWord(s string) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}
	return words[len(words)-1]
}
