package discovery

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"audiomatch/internal/match"
	"audiomatch/internal/normalize"
)

const (
	// Candidates scoring at or below this are noise from the free-text
	// index, not plausible matches.
	scoreFloor = 10
	// How many pooled candidates survive per invocation, and how many get
	// resolved to full detail.
	poolLimit = 5
	// Result cap per query variant.
	variantResultLimit = 25
)

// queryVariants builds up to five keyword queries from cleaned title and
// author text, broadest first. The free-text index tokenizes oddly, so
// several phrasings of the same request surface different candidates.
func queryVariants(title, author string) []string {
	t := normalize.Query(title)
	a := normalize.Query(author)
	if t == "" {
		return nil
	}

	var variants []string
	add := func(v string) {
		v = strings.TrimSpace(v)
		if v == "" {
			return
		}
		for _, seen := range variants {
			if seen == v {
				return
			}
		}
		variants = append(variants, v)
	}

	if a != "" {
		add(t + " " + a)
		add(fmt.Sprintf("%q %s", t, a))
		add(t + " by " + a)
		add(fmt.Sprintf("%q by %s", t, a))
	}
	add(t)

	if len(variants) > 5 {
		variants = variants[:5]
	}
	return variants
}

// keywordCandidates runs every query variant, scores each raw item against
// the target, and pools the results: floor-filtered, deduplicated by
// external identifier keeping the highest score, sorted descending, top
// five. A failed variant is logged and skipped; if every variant fails the
// pool is simply empty.
func (e *Engine) keywordCandidates(ctx context.Context, t Target) []Candidate {
	var pooled []Candidate
	for _, query := range queryVariants(t.Title, t.Author) {
		results, err := e.keyword.Search(ctx, query, variantResultLimit)
		if err != nil {
			e.log.Warn("keyword variant failed", "query", query, "error", err)
			continue
		}
		for _, r := range results {
			score := match.Score(
				match.Work{Title: r.Title, Authors: r.Authors, Audio: r.Audio},
				match.Query{Title: t.Title, Author: t.Author},
			)
			if score <= scoreFloor {
				continue
			}
			pooled = append(pooled, Candidate{
				ExternalID: r.ID,
				Title:      r.Title,
				Authors:    r.Authors,
				Narrator:   strings.Join(r.Narrators, ", "),
				Score:      score,
				Source:     SourceKeywordSearch,
			})
		}
	}

	candidates := dedupeCandidates(pooled)
	if len(candidates) > poolLimit {
		candidates = candidates[:poolLimit]
	}
	return candidates
}

// dedupeCandidates collapses duplicates by external identifier, keeping the
// highest-scoring instance, and returns the survivors sorted descending.
func dedupeCandidates(candidates []Candidate) []Candidate {
	best := make(map[string]Candidate, len(candidates))
	for _, c := range candidates {
		if prev, ok := best[c.ExternalID]; !ok || c.Score > prev.Score {
			best[c.ExternalID] = c
		}
	}
	out := make([]Candidate, 0, len(best))
	for _, c := range best {
		out = append(out, c)
	}
	sortCandidates(out)
	return out
}

func sortCandidates(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].ExternalID < candidates[j].ExternalID
	})
}
