// Package http provides the HTTP implementation of mediumreader.Fetcher.
// It sends realistic browser headers (Medium serves bot-detected requests a
// stripped page) and retries transient failures with backoff.
package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	mediumreader "github.com/abdukarimovhm/medium-reader"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// defaultUserAgent mirrors a current desktop Chrome build.
const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

// browserHeaders are sent with every request so the page served matches
// what a reader's browser would get.
var browserHeaders = map[string]string{
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.9",
	"Upgrade-Insecure-Requests": "1",
	"Sec-Fetch-Dest":            "document",
	"Sec-Fetch-Mode":            "navigate",
	"Sec-Fetch-User":            "?1",
	"Cache-Control":             "max-age=0",
	"DNT":                       "1",
}

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Ensure Fetcher implements mediumreader.Fetcher at compile time.
var _ mediumreader.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves raw article HTML over plain HTTP GET.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	retryDelays []time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithRetryDelays sets the backoff delays between attempts. An empty slice
// disables retries. Useful for testing without waiting for real delays.
func WithRetryDelays(delays []time.Duration) Option {
	return func(f *Fetcher) {
		f.retryDelays = delays
	}
}

// NewFetcher creates a new HTTP Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		userAgent:   defaultUserAgent,
		retryDelays: DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML at url, retrying transient failures. Failures
// surface as EUNAVAILABLE network errors; extraction problems are never
// retried here because they are deterministic.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(f.retryDelays); attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", mediumreader.Errorf(mediumreader.EUNAVAILABLE, "fetch %s: %v", url, ctx.Err())
			case <-time.After(f.retryDelays[attempt-1]):
			}
		}

		html, retryable, err := f.fetchOnce(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err
		if !retryable {
			break
		}
	}
	return "", lastErr
}

func (f *Fetcher) fetchOnce(ctx context.Context, url string) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", false, mediumreader.Errorf(mediumreader.EINVALID, "invalid URL %s: %v", url, err)
	}

	for key, value := range browserHeaders {
		req.Header.Set(key, value)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Referer", refererFor(url))

	resp, err := f.client.Do(req)
	if err != nil {
		return "", ctx.Err() == nil, mediumreader.Errorf(mediumreader.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Server errors are worth another attempt; client errors are not.
		retryable := resp.StatusCode >= 500
		return "", retryable, mediumreader.Errorf(mediumreader.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", true, mediumreader.Errorf(mediumreader.EUNAVAILABLE, "read response from %s: %v", url, err)
	}

	return string(body), false, nil
}

// refererFor picks a plausible referrer: Medium pages look like internal
// navigation, anything else like a search result.
func refererFor(url string) string {
	if strings.Contains(url, "medium.com") {
		return "https://medium.com/"
	}
	return "https://www.google.com/"
}
