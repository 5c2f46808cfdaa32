package scraper

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"lottery-history/internal/models"
)

// Fetcher downloads "Past Winning Numbers" pages and turns them into draws.
type Fetcher struct {
	client *http.Client
	cutoff time.Time
}

// NewFetcher creates a Fetcher with the given per-request timeout and the
// earliest draw date to retain.
func NewFetcher(timeout time.Duration, cutoff time.Time) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
		cutoff: cutoff,
	}
}

// FetchDraws downloads the page at url and parses its draw rows. A failed
// download or parse is reported as an error; the caller decides whether to
// degrade it to an empty result.
func (f *Fetcher) FetchDraws(ctx context.Context, url string) ([]models.Draw, error) {
	html, err := f.FetchHTML(ctx, url)
	if err != nil {
		return nil, err
	}
	return ParseDrawRows(html, f.cutoff)
}

// FetchHTML downloads the raw HTML at url. Non-200 responses are errors.
func (f *Fetcher) FetchHTML(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}

	// Mimic a regular browser; some lottery pages reject bare clients.
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; Lottery-History/1.0)")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Connection", "keep-alive")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s returned non-OK status: %d", url, resp.StatusCode)
	}

	body := resp.Body
	if strings.Contains(resp.Header.Get("Content-Encoding"), "gzip") {
		gzReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return "", fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzReader.Close()
		body = gzReader
	}

	raw, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(raw), nil
}
