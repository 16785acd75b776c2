// Package fetch implements the Fetcher interface.
// It performs HTTP GET requests for remote outlines and reads local files
// for file:// URLs and bare paths.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/gaurav-prasanna/opmlpipe/core"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "opmlpipe/" + core.Version + " (https://github.com/gaurav-prasanna/opmlpipe)"
	acceptOutline    = "text/x-opml, application/xml;q=0.9, text/xml;q=0.9, */*;q=0.1"
)

// HTTPFetcher fetches outlines via HTTP or from the local filesystem.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// Option configures an HTTPFetcher.
type Option func(*HTTPFetcher)

// WithClient replaces the default HTTP client.
func WithClient(c *http.Client) Option {
	return func(f *HTTPFetcher) { f.client = c }
}

// WithUserAgent replaces the default User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *HTTPFetcher) { f.userAgent = ua }
}

// New creates an HTTPFetcher with a sensible timeout.
func New(opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		client:    &http.Client{Timeout: defaultTimeout},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch retrieves the text at rawURL. Failures are reported as
// *core.FetchError.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (*core.FetchResult, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, &core.FetchError{URL: rawURL, Reason: "invalid URL", Err: err}
	}

	switch u.Scheme {
	case "http", "https":
		return f.fetchHTTP(ctx, rawURL)
	case "file":
		return readFile(rawURL, u.Path)
	case "":
		return readFile(rawURL, rawURL)
	default:
		return nil, &core.FetchError{URL: rawURL, Reason: fmt.Sprintf("unsupported scheme %q", u.Scheme)}
	}
}

func (f *HTTPFetcher) fetchHTTP(ctx context.Context, rawURL string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &core.FetchError{URL: rawURL, Reason: "creating request", Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", acceptOutline)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &core.FetchError{URL: rawURL, Reason: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &core.FetchError{
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Reason:     http.StatusText(resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &core.FetchError{URL: rawURL, Reason: "reading response body", Err: err}
	}

	return &core.FetchResult{
		URL:        rawURL,
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}, nil
}

func readFile(rawURL, path string) (*core.FetchResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &core.FetchError{URL: rawURL, Reason: "reading file", Err: err}
	}
	return &core.FetchResult{URL: rawURL, StatusCode: http.StatusOK, Body: string(data)}, nil
}

// Text fetches rawURL with f and returns only the body.
func Text(ctx context.Context, f core.Fetcher, rawURL string) (string, error) {
	res, err := f.Fetch(ctx, rawURL)
	if err != nil {
		return "", err
	}
	return res.Body, nil
}
