// Package httputil provides the hardened HTTP client used for page and manifest fetches
// plus URL helpers shared by the extractors.
package httputil

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"appledev/internal/logging"
)

// DefaultUserAgent is sent when the configuration does not override it.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_5) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Safari/605.1.15"

// maxBodySize caps page, feed and manifest bodies.
const maxBodySize = 10 * 1024 * 1024

// ErrResponseTooLarge is returned when a body exceeds the fetch size limit.
var ErrResponseTooLarge = errors.New("response too large")

// Fetcher downloads the text of a page. The id names the request in logs and errors.
type Fetcher interface {
	Fetch(ctx context.Context, url, id string) (string, error)
}

// NewClient creates a hardened HTTP client with secure defaults.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
			ForceAttemptHTTP2:   true,
			MaxIdleConns:        10,
			IdleConnTimeout:     30 * time.Second,
			DisableCompression:  false,
			MaxIdleConnsPerHost: 5,
		},
	}
}

// PageFetcher implements Fetcher over an *http.Client.
type PageFetcher struct {
	client    *http.Client
	userAgent string
	maxBody   int64
}

// NewPageFetcher creates a PageFetcher. An empty userAgent selects DefaultUserAgent.
func NewPageFetcher(client *http.Client, userAgent string) *PageFetcher {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &PageFetcher{client: client, userAgent: userAgent, maxBody: maxBodySize}
}

// Fetch performs a GET request and returns the body as text.
func (p *PageFetcher) Fetch(ctx context.Context, url, id string) (string, error) {
	if err := ValidateURL(url); err != nil {
		return "", fmt.Errorf("%s: invalid URL: %w", id, err)
	}

	logging.Debug("downloading", "id", id, "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%s: creating request: %w", id, err)
	}

	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/json,application/vnd.apple.mpegurl;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: request failed: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s: unexpected status %d for %s", id, resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, p.maxBody+1))
	if err != nil {
		return "", fmt.Errorf("%s: reading response: %w", id, err)
	}
	if int64(len(body)) > p.maxBody {
		return "", fmt.Errorf("%s: %w: more than %d bytes from %s", id, ErrResponseTooLarge, p.maxBody, url)
	}

	return string(body), nil
}
