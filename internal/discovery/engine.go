package discovery

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"audiomatch/internal/match"
)

// Strategy names, surfaced to callers as AudiobookRecord.MatchMethod.
const (
	MethodKeywordSearch  = "KeywordSearch"
	MethodISBNLookup     = "IsbnLookup"
	MethodAuthorCatalog  = "AuthorCatalogMatch"
	MethodNameVariations = "AuthorNameVariations"
)

// Engine is the audiobook discovery and entity-matching engine. One value
// serves concurrent invocations: it holds only the catalog adapters and a
// logger, never per-invocation state.
type Engine struct {
	keyword KeywordCatalog
	authors AuthorCatalog
	log     *slog.Logger
}

type Option func(*Engine)

// WithLogger injects a structured logger. Diagnostics never influence
// control flow; the default is slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

func New(keyword KeywordCatalog, authors AuthorCatalog, opts ...Option) *Engine {
	e := &Engine{
		keyword: keyword,
		authors: authors,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type strategy struct {
	name string
	run  func(ctx context.Context, t Target) (*StrategyResult, error)
}

func (e *Engine) strategies() []strategy {
	return []strategy{
		{MethodKeywordSearch, e.keywordStrategy},
		{MethodISBNLookup, e.isbnStrategy},
		{MethodAuthorCatalog, e.authorStrategy},
		{MethodNameVariations, e.variationStrategy},
	}
}

// FindBestMatch tries each strategy in order and returns the first resolved
// audiobook. Upstream failures downgrade to "this strategy produced
// nothing"; the only error is a missing author. When nothing resolves, the
// returned record explains what was found (author only, or nothing) and
// suggests what to try.
func (e *Engine) FindBestMatch(ctx context.Context, t Target) (*AudiobookRecord, error) {
	if strings.TrimSpace(t.Author) == "" {
		return nil, ErrAuthorRequired
	}

	var authorSeen *AuthorProfile
	for _, s := range e.strategies() {
		if ctx.Err() != nil {
			e.log.Info("search cancelled", "title", t.Title, "author", t.Author)
			return e.cancelledRecord(authorSeen, t), nil
		}

		res, err := s.run(ctx, t)
		if err != nil {
			e.log.Warn("strategy failed", "strategy", s.name, "error", err)
			continue
		}
		if res == nil {
			continue
		}
		if res.AuthorProfile != nil {
			authorSeen = res.AuthorProfile
		}
		if res.Record != nil {
			res.Record.MatchMethod = s.name
			e.log.Info("audiobook resolved",
				"strategy", s.name,
				"externalId", res.Record.ExternalID,
				"confidence", res.Record.MatchConfidence)
			return res.Record, nil
		}
	}

	if authorSeen != nil {
		return authorOnlyRecord(authorSeen, t), nil
	}
	return noMatchRecord(t), nil
}

// FindCandidatesForSelection runs the keyword and author-catalog strategies
// without early exit, resolves every pooled candidate, and returns the full
// ranked list (plus any author profile) so the caller can choose manually.
func (e *Engine) FindCandidatesForSelection(ctx context.Context, t Target) (*Selection, error) {
	if strings.TrimSpace(t.Author) == "" {
		return nil, ErrAuthorRequired
	}

	sel := &Selection{Candidates: []AudiobookRecord{}}
	best := make(map[string]AudiobookRecord)

	for _, c := range e.keywordCandidates(ctx, t) {
		w, ch, err := e.authors.WorkDetail(ctx, c.ExternalID)
		if err != nil {
			e.log.Warn("work detail failed", "externalId", c.ExternalID, "error", err)
			continue
		}
		if w == nil {
			continue
		}
		rec := newAudiobookRecord(w, ch)
		rec.MatchMethod = MethodKeywordSearch
		rec.MatchConfidence = c.Score
		keepBest(best, *rec)
	}

	res, err := e.matchViaAuthor(ctx, t, t.Author)
	if err != nil {
		e.log.Warn("author catalog lookup failed", "author", t.Author, "error", err)
	} else if res != nil {
		sel.AuthorProfile = res.AuthorProfile
		if res.Record != nil {
			res.Record.MatchMethod = MethodAuthorCatalog
			keepBest(best, *res.Record)
		}
	}

	for _, rec := range best {
		sel.Candidates = append(sel.Candidates, rec)
	}
	sortRecords(sel.Candidates)
	return sel, nil
}

// EnrichBook resolves the book's own title/author/isbn and returns a copy
// with the audiobook data attached. The input value is never mutated.
func (e *Engine) EnrichBook(ctx context.Context, b Book) (Book, error) {
	rec, err := e.FindBestMatch(ctx, Target{Title: b.Title, Author: b.Author, ISBN: b.ISBN})
	if err != nil {
		return b, err
	}
	b.AudiobookData = rec
	return b, nil
}

// keywordStrategy resolves pooled keyword candidates score-descending and
// accepts the first one the work catalog has data for. A failed detail
// fetch skips to the next candidate rather than aborting the strategy.
func (e *Engine) keywordStrategy(ctx context.Context, t Target) (*StrategyResult, error) {
	candidates := e.keywordCandidates(ctx, t)
	for _, c := range candidates {
		w, ch, err := e.authors.WorkDetail(ctx, c.ExternalID)
		if err != nil {
			e.log.Warn("work detail failed", "externalId", c.ExternalID, "error", err)
			continue
		}
		if w == nil {
			continue
		}
		rec := newAudiobookRecord(w, ch)
		rec.MatchConfidence = c.Score
		return &StrategyResult{Record: rec, Candidates: candidates}, nil
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	return &StrategyResult{Candidates: candidates}, nil
}

// isbnStrategy is a documented no-op: the author/work catalog exposes no
// ISBN endpoint, so the state always falls through. It stays in the chain
// because the isbn parameter is part of the public contract and a future
// upstream may support it.
func (e *Engine) isbnStrategy(ctx context.Context, t Target) (*StrategyResult, error) {
	if t.ISBN == "" {
		return nil, nil
	}
	e.log.Debug("isbn lookup not supported upstream", "isbn", t.ISBN)
	return nil, nil
}

func (e *Engine) authorStrategy(ctx context.Context, t Target) (*StrategyResult, error) {
	return e.matchViaAuthor(ctx, t, t.Author)
}

// variationStrategy retries the author lookup under alternate spellings of
// the name, stopping at the first variant that resolves a work.
func (e *Engine) variationStrategy(ctx context.Context, t Target) (*StrategyResult, error) {
	var authorSeen *AuthorProfile
	for _, variant := range match.NameVariations(t.Author) {
		if variant == t.Author {
			// The original spelling was already tried by the previous state.
			continue
		}
		if ctx.Err() != nil {
			break
		}
		res, err := e.matchViaAuthor(ctx, t, variant)
		if err != nil {
			e.log.Warn("author variant failed", "variant", variant, "error", err)
			continue
		}
		if res == nil {
			continue
		}
		if res.Record != nil {
			return res, nil
		}
		if authorSeen == nil {
			authorSeen = res.AuthorProfile
		}
	}
	if authorSeen == nil {
		return nil, nil
	}
	return &StrategyResult{AuthorProfile: authorSeen}, nil
}

// matchViaAuthor resolves name to one upstream author, then tries to pick
// the target title out of the author's known-works list. A found author
// with no usable work still counts: the profile rides along for the
// AuthorOnly outcome.
func (e *Engine) matchViaAuthor(ctx context.Context, t Target, name string) (*StrategyResult, error) {
	stubs, err := e.authors.SearchAuthors(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(stubs) == 0 {
		return nil, nil
	}

	names := make([]string, len(stubs))
	for i, s := range stubs {
		names[i] = s.Name
	}
	profile, err := e.authors.AuthorDetail(ctx, stubs[match.BestAuthorIndex(names, name)].ID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}

	res := &StrategyResult{AuthorProfile: profile, Candidates: profile.KnownWorks}
	bestWork, similarity := bestKnownWork(profile.KnownWorks, t.Title)
	if bestWork == nil {
		return res, nil
	}

	w, ch, err := e.authors.WorkDetail(ctx, bestWork.ExternalID)
	if err != nil {
		e.log.Warn("work detail failed", "externalId", bestWork.ExternalID, "error", err)
		return res, nil
	}
	if w == nil {
		return res, nil
	}
	rec := newAudiobookRecord(w, ch)
	rec.MatchConfidence = similarity * 100
	res.Record = rec
	return res, nil
}

// bestKnownWork picks the known-works entry most similar to the target
// title, or nil when nothing clears the similarity floor.
func bestKnownWork(works []Candidate, title string) (*Candidate, float64) {
	var (
		best    *Candidate
		bestSim float64
	)
	for i := range works {
		sim := match.TitleSimilarity(works[i].Title, title)
		if sim > bestSim {
			best = &works[i]
			bestSim = sim
		}
	}
	if bestSim < match.MinTitleSimilarity {
		return nil, 0
	}
	return best, bestSim
}

func authorOnlyRecord(p *AuthorProfile, t Target) *AudiobookRecord {
	return &AudiobookRecord{
		HasMatch:    false,
		AuthorFound: true,
		Authors:     []string{p.Name},
		Explanation: fmt.Sprintf("Found author %q in the audiobook catalog, but could not resolve %q to a specific audiobook.", p.Name, t.Title),
		Suggestion:  "The title may not be catalogued as an audiobook yet, or it may be listed under a different title.",
	}
}

func noMatchRecord(t Target) *AudiobookRecord {
	return &AudiobookRecord{
		HasMatch:    false,
		AuthorFound: false,
		Explanation: fmt.Sprintf("No audiobook or author match found for %q by %q.", t.Title, t.Author),
		Suggestion:  "Check the spelling of the author's name, or retry with a shorter form of the title.",
	}
}

func (e *Engine) cancelledRecord(authorSeen *AuthorProfile, t Target) *AudiobookRecord {
	var rec *AudiobookRecord
	if authorSeen != nil {
		rec = authorOnlyRecord(authorSeen, t)
	} else {
		rec = noMatchRecord(t)
	}
	rec.LimitationNote = "search cancelled before all strategies completed"
	return rec
}

func keepBest(best map[string]AudiobookRecord, rec AudiobookRecord) {
	if prev, ok := best[rec.ExternalID]; ok && prev.MatchConfidence >= rec.MatchConfidence {
		return
	}
	best[rec.ExternalID] = rec
}

func sortRecords(records []AudiobookRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].MatchConfidence != records[j].MatchConfidence {
			return records[i].MatchConfidence > records[j].MatchConfidence
		}
		return records[i].ExternalID < records[j].ExternalID
	})
}
