// Package lookup answers open-domain questions with short prose summaries
// from public knowledge APIs. It is a best-effort collaborator: every
// failure, from network errors to malformed payloads, is reported as "no
// result" so the caller can fall through to its own default.
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/ckkulkarni/tatvam/internal/match"
)

const (
	defaultTimeout  = 6 * time.Second
	maxSummaryBytes = 550
	maxResponseSize = 2 << 20 // 2MB
)

// Client queries DuckDuckGo Instant Answers first and the Wikipedia summary
// API second. An optional Cache short-circuits repeated queries.
type Client struct {
	httpClient *http.Client
	cache      *Cache

	// Overridable for tests.
	ddgBase     string
	wikiSearch  string
	wikiSummary string
}

// Option configures a Client.
type Option func(*Client)

// WithCache attaches a summary cache.
func WithCache(c *Cache) Option {
	return func(cl *Client) { cl.cache = c }
}

// WithTimeout overrides the per-lookup HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) { cl.httpClient.Timeout = d }
}

// WithBaseURLs points the client at alternate API endpoints (used by tests).
func WithBaseURLs(ddg, wikiSearch, wikiSummary string) Option {
	return func(cl *Client) {
		cl.ddgBase = ddg
		cl.wikiSearch = wikiSearch
		cl.wikiSummary = wikiSummary
	}
}

// NewClient creates a lookup client with a 6-second timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: defaultTimeout},
		ddgBase:     "https://api.duckduckgo.com/",
		wikiSearch:  "https://en.wikipedia.org/w/api.php",
		wikiSummary: "https://en.wikipedia.org/api/rest_v1/page/summary/",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Summary returns a short prose answer for the query, or ok=false when no
// source produced one. The query is cleaned of filler words before hitting
// the cache or either upstream.
func (c *Client) Summary(ctx context.Context, query string) (string, bool) {
	cleaned := CleanQuery(query)
	if cleaned == "" {
		return "", false
	}

	if c.cache != nil {
		if s, ok := c.cache.Get(cleaned); ok {
			slog.Debug("lookup cache hit", "query", cleaned)
			return s, true
		}
	}

	summary, ok := c.duckDuckGo(ctx, cleaned)
	if !ok {
		summary, ok = c.wikipedia(ctx, cleaned)
	}
	if !ok {
		return "", false
	}

	if c.cache != nil {
		if err := c.cache.Put(cleaned, summary); err != nil {
			slog.Warn("caching summary failed", "error", err)
		}
	}
	return summary, true
}

type ddgResponse struct {
	AbstractText  string `json:"AbstractText"`
	RelatedTopics []struct {
		Text string `json:"Text"`
	} `json:"RelatedTopics"`
}

func (c *Client) duckDuckGo(ctx context.Context, query string) (string, bool) {
	u := c.ddgBase + "?format=json&no_html=1&no_redirect=1&q=" + url.QueryEscape(query)

	var resp ddgResponse
	if err := c.getJSON(ctx, u, &resp); err != nil {
		slog.Debug("duckduckgo lookup failed", "error", err)
		return "", false
	}

	if resp.AbstractText != "" {
		return clampProse(resp.AbstractText), true
	}
	for _, t := range resp.RelatedTopics {
		if t.Text != "" {
			return clampProse(t.Text), true
		}
	}
	return "", false
}

func (c *Client) wikipedia(ctx context.Context, query string) (string, bool) {
	searchURL := c.wikiSearch + "?action=opensearch&origin=*&limit=1&namespace=0&format=json&search=" + url.QueryEscape(query)

	// opensearch returns a positional array: [query, [titles], [descs], [urls]].
	var raw []json.RawMessage
	if err := c.getJSON(ctx, searchURL, &raw); err != nil {
		slog.Debug("wikipedia search failed", "error", err)
		return "", false
	}
	if len(raw) < 2 {
		return "", false
	}
	var titles []string
	if err := json.Unmarshal(raw[1], &titles); err != nil || len(titles) == 0 {
		return "", false
	}

	var page struct {
		Extract string `json:"extract"`
	}
	if err := c.getJSON(ctx, c.wikiSummary+url.PathEscape(titles[0]), &page); err != nil {
		slog.Debug("wikipedia summary failed", "title", titles[0], "error", err)
		return "", false
	}
	if page.Extract == "" {
		return "", false
	}
	return clampProse(page.Extract), true
}

func (c *Client) getJSON(ctx context.Context, u string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, req.URL.Host)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	return json.Unmarshal(data, v)
}

// clampProse strips any HTML markup an upstream slipped past its no-html
// flag, then truncates to the display limit at a sentence boundary.
func clampProse(s string) string {
	return match.Clamp(stripHTML(s), maxSummaryBytes)
}

func stripHTML(s string) string {
	if !strings.ContainsAny(s, "<>") {
		return s
	}
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return strings.Join(strings.Fields(b.String()), " ")
}
