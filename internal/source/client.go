// Package source resolves and fetches remote CSV text.
package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/dgallion1/sheetview/internal/apperr"
)

// Options configures a Client.
type Options struct {
	Timeout     time.Duration
	MaxBytes    int64
	Rate        float64 // fetches per second across the client
	Burst       int
	UserAgent   string
	StatsWindow time.Duration
	Transport   http.RoundTripper // nil uses http.DefaultTransport
}

// Client fetches CSV resources, bypassing HTTP caches.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	tokens     *tokenSource
	stats      *FetchStats
	maxBytes   int64
	userAgent  string
	log        *slog.Logger
}

func NewClient(opts Options, log *slog.Logger) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = 10 << 20
	}
	if opts.Rate <= 0 {
		opts.Rate = 5
	}
	if opts.Burst <= 0 {
		opts.Burst = 10
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout, Transport: opts.Transport},
		limiter:    rate.NewLimiter(rate.Limit(opts.Rate), opts.Burst),
		tokens:     newTokenSource(),
		stats:      NewFetchStats(opts.StatsWindow),
		maxBytes:   opts.MaxBytes,
		userAgent:  opts.UserAgent,
		log:        log,
	}
}

// FetchCSV returns the text at rawURL. Google Sheets URLs are normalized to
// CSV export first, and failures for them carry the publish-to-web hint.
func (c *Client) FetchCSV(ctx context.Context, rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", apperr.Input("No CSV URL provided")
	}
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", apperr.Input("Invalid CSV URL: %q", rawURL)
	}

	sheets := IsGoogleSheetsURL(rawURL)
	target := rawURL
	if sheets {
		if target, err = NormalizeGoogleSheetsURL(rawURL); err != nil {
			return "", apperr.Wrap(apperr.KindInput, err, "Invalid Google Sheets URL")
		}
	}

	text, err := c.fetch(ctx, target)
	if err != nil {
		if sheets {
			return "", apperr.WithHint(err, "Failed to load Google Sheet", PublishHint)
		}
		return "", err
	}
	return text, nil
}

// Stats exposes the rolling fetch latency window.
func (c *Client) Stats() *FetchStats {
	return c.stats
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) fetch(ctx context.Context, target string) (text string, err error) {
	start := time.Now()
	defer func() {
		c.stats.Record(time.Since(start), len(text), err)
	}()

	busted, err := appendQueryPair(target, "_", c.tokens.Next())
	if err != nil {
		return "", apperr.Wrap(apperr.KindInput, err, "Invalid CSV URL")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", apperr.Wrap(apperr.KindFetch, err, "wait for fetch slot")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, busted, nil)
	if err != nil {
		return "", apperr.Wrap(apperr.KindInput, err, "create request")
	}
	req.Header.Set("Cache-Control", "no-cache, no-store")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.1")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperr.Wrap(apperr.KindFetch, err, "fetch csv")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))
		return "", apperr.Fetch("HTTP error! status: %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(strings.ToLower(contentType), "text") {
		return "", apperr.Fetch("Response is not CSV/text content. Received: %s", contentTypeOrNone(contentType))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return "", apperr.Wrap(apperr.KindFetch, err, "read csv body")
	}
	if int64(len(body)) > c.maxBytes {
		return "", apperr.Fetch("CSV exceeds max size (%d bytes)", c.maxBytes)
	}

	c.log.Debug("fetched csv",
		"host", req.URL.Host,
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return string(body), nil
}

func contentTypeOrNone(ct string) string {
	if ct == "" {
		return "none"
	}
	return fmt.Sprintf("%q", ct)
}
