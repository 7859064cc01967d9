package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"resty.dev/v3"

	"github.com/custodia-labs/wik/internal/core/domain"
	"github.com/custodia-labs/wik/internal/core/ports/driven"
)

// DefaultUserAgent identifies the client when no user agent is configured.
const DefaultUserAgent = "wik (https://github.com/custodia-labs/wik)"

// Verify interface compliance.
var _ driven.EncyclopediaClient = (*Client)(nil)

// Config holds the settings a Client is built from.
type Config struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
	UserAgent         string
}

// ConfigFromSettings maps API settings onto a client Config.
func ConfigFromSettings(s domain.APISettings) Config {
	return Config{
		BaseURL:           s.BaseURL,
		Timeout:           s.Timeout(),
		RequestsPerSecond: s.RequestsPerSecond,
		UserAgent:         s.UserAgent,
	}
}

// Client talks to a MediaWiki installation.
type Client struct {
	http    *resty.Client
	limiter *RateLimiter
	baseURL string
}

// NewClient creates a client for the given configuration.
// Zero values fall back to the package defaults.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = domain.DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = time.Duration(domain.DefaultTimeoutSeconds) * time.Second
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = domain.DefaultRequestsPerSecond
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	httpClient := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent)

	return &Client{
		http:    httpClient,
		limiter: NewRateLimiter(rps),
		baseURL: baseURL,
	}
}

// BaseURL returns the installation root requests are made against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases the underlying HTTP client.
func (c *Client) Close() error {
	return c.http.Close()
}

// SearchURL renders the full-text search request for query.
// The result is stable for equal inputs and doubles as the cache key.
func (c *Client) SearchURL(query string, limit int) string {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", strconv.Itoa(limit))
	params.Set("format", "json")
	return c.baseURL + "/w/api.php?" + params.Encode()
}

// ArticleURL renders the rendered-HTML request for title.
func (c *Client) ArticleURL(title string) string {
	return c.baseURL + "/w/rest.php/v1/page/" + url.PathEscape(strings.ReplaceAll(title, " ", "_")) + "/html"
}

// searchEnvelope is the Action API response shape for list=search.
type searchEnvelope struct {
	Query *struct {
		Search []domain.SearchResult `json:"search"`
	} `json:"query"`
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

// Search runs a full-text search.
func (c *Client) Search(ctx context.Context, query string, limit int) (*domain.SearchResponse, error) {
	endpoint := c.SearchURL(query, limit)

	body, err := c.get(ctx, endpoint, "application/json")
	if err != nil {
		return nil, err
	}

	var envelope searchEnvelope
	if err := json.Unmarshal([]byte(body), &envelope); err != nil {
		return nil, fmt.Errorf("%w: search response: %w", domain.ErrDeserialization, err)
	}
	if envelope.Error != nil {
		return nil, &APIError{
			StatusCode: http.StatusOK,
			Message:    envelope.Error.Code + ": " + envelope.Error.Info,
			URL:        endpoint,
		}
	}
	if envelope.Query == nil {
		return nil, fmt.Errorf("%w: search response has no query object", domain.ErrDeserialization)
	}

	results := envelope.Query.Search
	if results == nil {
		results = []domain.SearchResult{}
	}
	return &domain.SearchResponse{Results: results}, nil
}

// ArticleHTML fetches the rendered HTML of an article.
func (c *Client) ArticleHTML(ctx context.Context, title string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", fmt.Errorf("%w: empty title", domain.ErrInvalidInput)
	}
	return c.get(ctx, c.ArticleURL(title), "text/html")
}

// get issues a throttled GET and returns the body of a successful response.
func (c *Client) get(ctx context.Context, endpoint, accept string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: rate limiter: %w", domain.ErrTransport, err)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", accept).
		Get(endpoint)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrTransport, err)
	}

	if resp.IsError() || resp.StatusCode() >= http.StatusMultipleChoices {
		if resp.StatusCode() == http.StatusTooManyRequests {
			c.limiter.RecordRateLimit(retryAfter(resp.Header().Get("Retry-After")))
		}
		return "", &APIError{
			StatusCode: resp.StatusCode(),
			Message:    statusMessage(resp.StatusCode(), resp.String()),
			URL:        endpoint,
		}
	}

	return resp.String(), nil
}

// retryAfter parses a Retry-After header given in seconds.
func retryAfter(header string) time.Duration {
	seconds, err := strconv.Atoi(strings.TrimSpace(header))
	if err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

func statusMessage(code int, body string) string {
	msg := http.StatusText(code)
	body = strings.TrimSpace(body)
	if len(body) > 200 {
		body = body[:200]
	}
	if body != "" {
		msg += ": " + body
	}
	return msg
}
