// Package audible wraps the keyless Audible catalog search API. The API has
// no authoritative author+title index; callers get loosely matching
// candidates for an arbitrary keyword string and must rank them themselves.
package audible

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.audible.com"

type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	limiter    *rate.Limiter
	maxRetries int
}

func NewClient(userAgent string, rps int, maxRetries int) *Client {
	return NewClientWithBaseURL(defaultBaseURL, userAgent, rps, maxRetries)
}

// NewClientWithBaseURL points the client at a custom base URL, mainly for
// httptest servers.
func NewClientWithBaseURL(baseURL, userAgent string, rps int, maxRetries int) *Client {
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		userAgent:  userAgent,
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
		maxRetries: maxRetries,
	}
}

type Person struct {
	ASIN string `json:"asin"`
	Name string `json:"name"`
}

// Product matches one item of /1.0/catalog/products.
type Product struct {
	ASIN          string   `json:"asin"`
	Title         string   `json:"title"`
	Subtitle      string   `json:"subtitle"`
	Authors       []Person `json:"authors"`
	Narrators     []Person `json:"narrators"`
	FormatType    string   `json:"format_type"`
	ContentType   string   `json:"content_type"`
	Language      string   `json:"language"`
	ReleaseDate   string   `json:"release_date"`
	PublisherName string   `json:"publisher_name"`
}

// IsAudio reports whether the record explicitly flags itself as an audio
// product.
func (p Product) IsAudio() bool {
	return p.FormatType == "unabridged" || p.FormatType == "abridged" ||
		p.ContentType == "Product"
}

type productsResponse struct {
	Products     []Product `json:"products"`
	TotalResults int       `json:"total_results"`
}

// SearchProducts runs one free-text keyword query, capped at limit results
// and sorted by upstream relevance.
func (c *Client) SearchProducts(ctx context.Context, keywords string, limit int) ([]Product, error) {
	q := url.Values{}
	q.Set("keywords", keywords)
	q.Set("num_results", strconv.Itoa(limit))
	q.Set("products_sort_by", "Relevance")
	q.Set("response_groups", "contributors,product_desc,product_attrs")

	u := fmt.Sprintf("%s/1.0/catalog/products?%s", c.baseURL, q.Encode())

	var res productsResponse
	if err := c.get(ctx, u, &res); err != nil {
		return nil, err
	}
	return res.Products, nil
}

func (c *Client) get(ctx context.Context, url string, target interface{}) error {
	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			// Backoff: 1s, 2s, 4s...
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
