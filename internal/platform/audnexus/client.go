// Package audnexus wraps the Audnexus author/work catalog: authors by name,
// full author records by identifier, and full work records (plus a chapter
// sub-resource) by identifier. All operations are region-scoped reads.
package audnexus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.audnex.us"

// ErrNotFound means the catalog reported the identifier unknown. That is a
// normal "no data" outcome, not a transport failure.
var ErrNotFound = errors.New("audnexus: not found")

type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	region     string
	limiter    *rate.Limiter
	maxRetries int
}

func NewClient(userAgent, region string, rps int, maxRetries int) *Client {
	return NewClientWithBaseURL(defaultBaseURL, userAgent, region, rps, maxRetries)
}

// NewClientWithBaseURL points the client at a custom base URL, mainly for
// httptest servers.
func NewClientWithBaseURL(baseURL, userAgent, region string, rps int, maxRetries int) *Client {
	if region == "" {
		region = "us"
	}
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		userAgent:  userAgent,
		baseURL:    baseURL,
		region:     region,
		limiter:    rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
		maxRetries: maxRetries,
	}
}

// AuthorStub matches one item of /authors?name=.
type AuthorStub struct {
	ASIN string `json:"asin"`
	Name string `json:"name"`
}

type Genre struct {
	ASIN string `json:"asin"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// WorkStub is an entry of an author's known-works list. The catalog
// populates it rarely; an empty list is the common case.
type WorkStub struct {
	ASIN  string `json:"asin"`
	Title string `json:"title"`
}

// Author matches /authors/{asin}.
type Author struct {
	ASIN        string     `json:"asin"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Image       string     `json:"image"`
	Genres      []Genre    `json:"genres"`
	Works       []WorkStub `json:"works"`
}

type Person struct {
	ASIN string `json:"asin"`
	Name string `json:"name"`
}

// Work matches /books/{asin}.
type Work struct {
	ASIN             string   `json:"asin"`
	Title            string   `json:"title"`
	Subtitle         string   `json:"subtitle"`
	Authors          []Person `json:"authors"`
	Narrators        []Person `json:"narrators"`
	RuntimeLengthMin int      `json:"runtimeLengthMin"`
	RuntimeLengthSec int      `json:"runtimeLengthSec"`
	PublisherName    string   `json:"publisherName"`
	Description      string   `json:"description"`
	Summary          string   `json:"summary"`
	Rating           string   `json:"rating"`
	ReleaseDate      string   `json:"releaseDate"`
	ISBN             string   `json:"isbn"`
	Language         string   `json:"language"`
	IsAdult          bool     `json:"isAdult"`
	FormatType       string   `json:"formatType"`
	Image            string   `json:"image"`
	Genres           []Genre  `json:"genres"`
}

type Chapter struct {
	Title         string `json:"title"`
	StartOffsetMs int64  `json:"startOffsetMs"`
	LengthMs      int64  `json:"lengthMs"`
}

// Chapters matches /books/{asin}/chapters.
type Chapters struct {
	ASIN             string    `json:"asin"`
	RuntimeLengthMs  int64     `json:"runtimeLengthMs"`
	RuntimeLengthSec int64     `json:"runtimeLengthSec"`
	Chapters         []Chapter `json:"chapters"`
}

// SearchAuthors queries authors by name within the client's region.
func (c *Client) SearchAuthors(ctx context.Context, name string) ([]AuthorStub, error) {
	q := url.Values{}
	q.Set("name", name)
	q.Set("region", c.region)

	var res []AuthorStub
	if err := c.get(ctx, fmt.Sprintf("%s/authors?%s", c.baseURL, q.Encode()), &res); err != nil {
		return nil, err
	}
	return res, nil
}

// GetAuthor fetches a full author record.
func (c *Client) GetAuthor(ctx context.Context, asin string) (*Author, error) {
	var res Author
	if err := c.get(ctx, c.regionURL("/authors/"+url.PathEscape(asin)), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetWork fetches full work metadata. Returns ErrNotFound when the catalog
// does not know the identifier.
func (c *Client) GetWork(ctx context.Context, asin string) (*Work, error) {
	var res Work
	if err := c.get(ctx, c.regionURL("/books/"+url.PathEscape(asin)), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetChapters fetches the chapter/duration sub-resource for a work.
func (c *Client) GetChapters(ctx context.Context, asin string) (*Chapters, error) {
	var res Chapters
	if err := c.get(ctx, c.regionURL("/books/"+url.PathEscape(asin)+"/chapters"), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) regionURL(path string) string {
	return fmt.Sprintf("%s%s?region=%s", c.baseURL, path, url.QueryEscape(c.region))
}

func (c *Client) get(ctx context.Context, url string, target interface{}) error {
	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			backoff := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", c.userAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			if resp.StatusCode == http.StatusNotFound {
				return ErrNotFound
			}
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				lastErr = fmt.Errorf("unexpected status code: %d", resp.StatusCode)
				continue
			}
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		err = json.NewDecoder(resp.Body).Decode(target)
		resp.Body.Close()
		return err
	}
	return fmt.Errorf("after %d retries: %w", c.maxRetries, lastErr)
}
