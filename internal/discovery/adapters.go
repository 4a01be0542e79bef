package discovery

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"audiomatch/internal/platform/audible"
	"audiomatch/internal/platform/audnexus"
)

// KeywordResult is one raw item from the free-text catalog, translated to
// the engine's shape. The matching core never sees upstream wire types.
type KeywordResult struct {
	ID        string
	Title     string
	Authors   []string
	Narrators []string
	Audio     bool
}

// KeywordCatalog is the free-text search upstream: loosely matching
// candidates for an arbitrary keyword string.
type KeywordCatalog interface {
	Search(ctx context.Context, keywords string, limit int) ([]KeywordResult, error)
}

// AuthorStub is one entry of an author-name search result.
type AuthorStub struct {
	ID   string
	Name string
}

// WorkData is a full work record as the author/work catalog returns it,
// already translated out of the upstream wire shape.
type WorkData struct {
	ID        string
	Title     string
	Authors   []string
	Narrators []string
	Genres    []string

	RuntimeMinutes int
	RuntimeSeconds int

	Publisher   string
	Description string
	Summary     string
	Rating      string
	ReleaseDate string
	ISBN        string
	Language    string
	FormatType  string
	Image       string
	Adult       bool
}

// ChapterData is the optional chapter/duration sub-record of a work.
type ChapterData struct {
	RuntimeMs      int64
	RuntimeSeconds int64
	Titles         []string
}

// AuthorCatalog is the author/work upstream: authors by name, full author
// detail by identifier, full work detail by identifier.
//
// WorkDetail returns (nil, nil, nil) when the catalog does not know the
// identifier; an error means a retryable transport failure. The chapter
// sub-record is fetched best-effort and may be nil even on success.
type AuthorCatalog interface {
	SearchAuthors(ctx context.Context, name string) ([]AuthorStub, error)
	AuthorDetail(ctx context.Context, id string) (*AuthorProfile, error)
	WorkDetail(ctx context.Context, id string) (*WorkData, *ChapterData, error)
}

type audibleCatalog struct {
	client *audible.Client
}

// NewAudibleCatalog adapts the Audible products client to the engine's
// KeywordCatalog interface.
func NewAudibleCatalog(c *audible.Client) KeywordCatalog {
	return &audibleCatalog{client: c}
}

func (a *audibleCatalog) Search(ctx context.Context, keywords string, limit int) ([]KeywordResult, error) {
	products, err := a.client.SearchProducts(ctx, keywords, limit)
	if err != nil {
		return nil, err
	}
	results := make([]KeywordResult, 0, len(products))
	for _, p := range products {
		results = append(results, KeywordResult{
			ID:        p.ASIN,
			Title:     p.Title,
			Authors:   personNames(p.Authors),
			Narrators: personNames(p.Narrators),
			Audio:     p.IsAudio(),
		})
	}
	return results, nil
}

func personNames(people []audible.Person) []string {
	names := make([]string, 0, len(people))
	for _, p := range people {
		if p.Name != "" {
			names = append(names, p.Name)
		}
	}
	return names
}

type audnexusCatalog struct {
	client *audnexus.Client
	log    *slog.Logger
}

// NewAudnexusCatalog adapts the Audnexus client to the engine's
// AuthorCatalog interface.
func NewAudnexusCatalog(c *audnexus.Client, logger *slog.Logger) AuthorCatalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &audnexusCatalog{client: c, log: logger}
}

func (a *audnexusCatalog) SearchAuthors(ctx context.Context, name string) ([]AuthorStub, error) {
	raw, err := a.client.SearchAuthors(ctx, name)
	if err != nil {
		if errors.Is(err, audnexus.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	stubs := make([]AuthorStub, 0, len(raw))
	for _, s := range raw {
		stubs = append(stubs, AuthorStub{ID: s.ASIN, Name: s.Name})
	}
	return stubs, nil
}

func (a *audnexusCatalog) AuthorDetail(ctx context.Context, id string) (*AuthorProfile, error) {
	raw, err := a.client.GetAuthor(ctx, id)
	if err != nil {
		if errors.Is(err, audnexus.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	profile := &AuthorProfile{
		ExternalID:  raw.ASIN,
		Name:        raw.Name,
		Description: raw.Description,
		Image:       raw.Image,
	}
	for _, g := range raw.Genres {
		profile.Genres = append(profile.Genres, g.Name)
	}
	for _, w := range raw.Works {
		profile.KnownWorks = append(profile.KnownWorks, Candidate{
			ExternalID: w.ASIN,
			Title:      w.Title,
			Authors:    []string{raw.Name},
			Source:     SourceAuthorCatalog,
		})
	}
	return profile, nil
}

func (a *audnexusCatalog) WorkDetail(ctx context.Context, id string) (*WorkData, *ChapterData, error) {
	raw, err := a.client.GetWork(ctx, id)
	if err != nil {
		if errors.Is(err, audnexus.ErrNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	work := &WorkData{
		ID:             raw.ASIN,
		Title:          strings.TrimSpace(raw.Title),
		RuntimeMinutes: raw.RuntimeLengthMin,
		RuntimeSeconds: raw.RuntimeLengthSec,
		Publisher:      raw.PublisherName,
		Description:    raw.Description,
		Summary:        raw.Summary,
		Rating:         raw.Rating,
		ReleaseDate:    raw.ReleaseDate,
		ISBN:           raw.ISBN,
		Language:       raw.Language,
		FormatType:     raw.FormatType,
		Image:          raw.Image,
		Adult:          raw.IsAdult,
	}
	for _, p := range raw.Authors {
		if p.Name != "" {
			work.Authors = append(work.Authors, p.Name)
		}
	}
	for _, p := range raw.Narrators {
		if p.Name != "" {
			work.Narrators = append(work.Narrators, p.Name)
		}
	}
	for _, g := range raw.Genres {
		work.Genres = append(work.Genres, g.Name)
	}

	// Chapters are best-effort: a failure here only costs the duration and
	// chapter-count fields.
	chapters, err := a.client.GetChapters(ctx, id)
	if err != nil {
		a.log.Debug("chapter fetch failed", "work", id, "error", err)
		return work, nil, nil
	}
	ch := &ChapterData{
		RuntimeMs:      chapters.RuntimeLengthMs,
		RuntimeSeconds: chapters.RuntimeLengthSec,
	}
	for _, c := range chapters.Chapters {
		ch.Titles = append(ch.Titles, c.Title)
	}
	return work, ch, nil
}
