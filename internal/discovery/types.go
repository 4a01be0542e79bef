// Package discovery resolves a book's title and author to the most likely
// matching audiobook across two uncontrolled third-party catalogs. It runs
// ordered fallback strategies, scores and deduplicates the candidates each
// one produces, and either returns a confident match or explains why none
// could be found.
package discovery

import "errors"

// ErrAuthorRequired rejects an invocation with no author. Every strategy
// depends on an author string, so this fails fast instead of burning
// upstream requests.
var ErrAuthorRequired = errors.New("discovery: author is required")

// Target is the immutable input to one engine invocation.
type Target struct {
	Title  string
	Author string
	ISBN   string
}

// Source tags which catalog produced a candidate.
type Source string

const (
	SourceKeywordSearch Source = "KeywordSearch"
	SourceAuthorCatalog Source = "AuthorCatalog"
)

// Candidate is one unresolved audiobook record returned by an adapter,
// carrying a relevance score. Candidates live only within one invocation.
type Candidate struct {
	ExternalID string
	Title      string
	Authors    []string
	Narrator   string
	Score      float64
	Source     Source
}

// AuthorProfile is the intermediate author record used by the
// author-catalog strategies.
type AuthorProfile struct {
	ExternalID  string   `json:"externalId"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	Genres      []string `json:"genres,omitempty"`
	// KnownWorks is rarely populated upstream; an empty list is the
	// expected case, not an error.
	KnownWorks []Candidate `json:"-"`
}

// AudiobookRecord is the canonical result shape. Built once per resolution
// and owned by the caller afterwards; the engine keeps no reference.
type AudiobookRecord struct {
	HasMatch    bool   `json:"hasMatch"`
	AuthorFound bool   `json:"authorFound,omitempty"`
	ExternalID  string `json:"externalId,omitempty"`
	Title       string `json:"title,omitempty"`

	Authors   []string `json:"authors,omitempty"`
	Narrators []string `json:"narrators,omitempty"`
	Genres    []string `json:"genres,omitempty"`

	TotalDurationMs      int64   `json:"totalDurationMs,omitempty"`
	TotalDurationMinutes int64   `json:"totalDurationMinutes,omitempty"`
	TotalDurationHours   float64 `json:"totalDurationHours,omitempty"`
	ChapterCount         int     `json:"chapterCount,omitempty"`

	Publisher   string `json:"publisher,omitempty"`
	Description string `json:"description,omitempty"`
	Summary     string `json:"summary,omitempty"`
	Rating      string `json:"rating,omitempty"`
	ReleaseDate string `json:"releaseDate,omitempty"`
	ISBN        string `json:"isbn,omitempty"`
	Language    string `json:"language,omitempty"`
	CoverURL    string `json:"coverUrl,omitempty"`

	MatchMethod     string  `json:"matchMethod,omitempty"`
	MatchConfidence float64 `json:"matchConfidence,omitempty"`

	Explanation    string `json:"explanation,omitempty"`
	Suggestion     string `json:"suggestion,omitempty"`
	LimitationNote string `json:"limitationNote,omitempty"`
}

// StrategyResult is what one strategy attempt yields. The orchestrator
// consumes and discards it; nothing here outlives the invocation.
type StrategyResult struct {
	// Record is set when the strategy resolved a specific work.
	Record *AudiobookRecord
	// Candidates are the scored, deduplicated candidates the strategy saw,
	// resolved or not.
	Candidates []Candidate
	// AuthorProfile is set when an author was identified along the way,
	// even if no work was resolved.
	AuthorProfile *AuthorProfile
}

// Selection is the multi-result variant's output: every resolved candidate
// from keyword search and the author catalog, ranked, for manual choice.
type Selection struct {
	Candidates    []AudiobookRecord `json:"candidates"`
	AuthorProfile *AuthorProfile    `json:"authorProfile,omitempty"`
}

// Book is the caller-side book record the engine enriches. Passed and
// returned by value; the caller's copy is never mutated.
type Book struct {
	Title         string           `json:"title"`
	Author        string           `json:"author"`
	ISBN          string           `json:"isbn,omitempty"`
	Publisher     string           `json:"publisher,omitempty"`
	Description   string           `json:"description,omitempty"`
	CoverURL      string           `json:"coverUrl,omitempty"`
	AudiobookData *AudiobookRecord `json:"audiobookData,omitempty"`
}
