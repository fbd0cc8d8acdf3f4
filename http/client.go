// Package http provides the HTTP edge of the menu service: the client
// fetching the menu page from the Studierendenwerk endpoint and the server
// exposing the extracted menu as JSON.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pwalkow/mensa"
)

// DefaultEndpoint is the Studierendenwerk XHR endpoint serving the menu
// page for a single venue and day.
const DefaultEndpoint = "https://www.stw.berlin/xhr/speiseplan-wochentag.html"

// DefaultFetchTimeout is the default timeout for menu page requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Client implements mensa.PageFetcher at compile time.
var _ mensa.PageFetcher = (*Client)(nil)

// Client fetches the raw menu page via a form POST. The endpoint expects
// the fields date (YYYY-MM-DD) and resources_id (venue identifier).
type Client struct {
	client   *http.Client
	endpoint string
	timeout  time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the menu page endpoint. Useful for tests and
// mirrors.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithTimeout sets the timeout for menu page requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient supplies a custom http.Client. The timeout option is
// ignored when a client is supplied.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient creates a new menu page Client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		endpoint: DefaultEndpoint,
		timeout:  DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{Timeout: c.timeout}
	}

	return c
}

// FetchPage retrieves the menu page HTML for the given venue and date.
// Transport errors are returned unwrapped; the core treats them as opaque
// upstream failures.
func (c *Client) FetchPage(ctx context.Context, mensaID string, date mensa.Date) (string, error) {
	form := url.Values{
		"date":         {date.String()},
		"resources_id": {mensaID},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", mensa.Errorf(mensa.EUNAVAILABLE, "menu endpoint returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
