// Package search drives paged queries against the GitHub search API,
// merging and deduplicating results across queries up to a caller-supplied
// limit.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultAPIBase is the public GitHub API endpoint.
const DefaultAPIBase = "https://api.github.com"

// perPage is the page size requested from the search endpoint. A page with
// fewer items marks the end of a query's result window, which also keeps us
// inside the API's 1000-result ceiling.
const perPage = 50

// Client queries the search endpoint with a bearer token.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewClient returns a client for the given token. An empty baseURL selects
// the public API.
func NewClient(token, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIBase
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// Search runs the queries in order and returns at most limit items in
// first-seen order. All queries share one identity-keyed accumulator, so an
// item matching two queries counts once and keeps its first-seen copy.
// Items whose kind does not match their query are discarded before they can
// claim a limit slot. Any failed request fails the whole call; no partial
// results are returned.
func (c *Client) Search(ctx context.Context, queries []Query, limit int) ([]Item, error) {
	acc := newAccumulator()
	for _, q := range queries {
		if acc.size() >= limit {
			break
		}
		q.Expr = strings.TrimSpace(q.Expr)
		if q.Expr == "" {
			continue
		}
		if err := c.searchQuery(ctx, q, limit, acc); err != nil {
			return nil, err
		}
	}
	return acc.items(), nil
}

func (c *Client) searchQuery(ctx context.Context, q Query, limit int, acc *accumulator) error {
	for page := 1; ; page++ {
		pageItems, err := c.searchPage(ctx, q.Expr, page)
		if err != nil {
			return err
		}
		for _, it := range pageItems {
			if !q.Kind.Matches(it) {
				continue
			}
			acc.add(it)
			if acc.size() >= limit {
				return nil
			}
		}
		// A short page ends this query even when dedup kept the
		// accumulator from growing.
		if len(pageItems) < perPage {
			return nil
		}
	}
}

type searchResponse struct {
	Items []Item `json:"items"`
}

func (c *Client) searchPage(ctx context.Context, expr string, page int) ([]Item, error) {
	u := fmt.Sprintf("%s/search/issues?q=%s&sort=updated&order=desc&per_page=%d&page=%d",
		c.baseURL, url.QueryEscape(expr), perPage, page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("searching %q: %w", expr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("search API %d for %q: %s", resp.StatusCode, expr, string(b))
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decoding search response for %q: %w", expr, err)
	}
	return sr.Items, nil
}

// accumulator is an insertion-ordered set of items keyed by identity URL.
type accumulator struct {
	order []string
	byURL map[string]Item
}

func newAccumulator() *accumulator {
	return &accumulator{byURL: make(map[string]Item)}
}

func (a *accumulator) add(it Item) {
	if _, ok := a.byURL[it.HTMLURL]; ok {
		return
	}
	a.byURL[it.HTMLURL] = it
	a.order = append(a.order, it.HTMLURL)
}

func (a *accumulator) size() int {
	return len(a.order)
}

func (a *accumulator) items() []Item {
	out := make([]Item, 0, len(a.order))
	for _, u := range a.order {
		out = append(out, a.byURL[u])
	}
	return out
}
