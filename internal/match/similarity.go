package match

import (
	"strings"

	"audiomatch/internal/normalize"
)

// MinTitleSimilarity is the floor below which a known-works entry is not
// considered a usable title match.
const MinTitleSimilarity = 0.4

// TitleSimilarity rates two titles on a 0-1 scale. Exact normalized
// equality is 1.0 and substring containment 0.8; otherwise the score blends
// word overlap (weight 0.6) with a length-ratio term (weight 0.2). Used to
// pick a work out of an author's known-works list, where titles are short
// and often abbreviated.
func TitleSimilarity(a, b string) float64 {
	na := normalize.Title(a)
	nb := normalize.Title(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 1
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return 0.8
	}
	overlap := wordOverlap(na, nb)
	shorter, longer := len(na), len(nb)
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	ratio := float64(shorter) / float64(longer)
	return 0.6*overlap + 0.2*ratio
}
