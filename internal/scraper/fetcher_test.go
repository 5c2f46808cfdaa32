package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFetchDraws(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(resultsPage))
	}))
	defer srv.Close()

	fetcher := NewFetcher(5*time.Second, cutoff)
	draws, err := fetcher.FetchDraws(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Len(t, draws, 2)
	require.Equal(t, "2025-05-30", draws[0].Date)
}

func TestFetchDrawsNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	fetcher := NewFetcher(5*time.Second, cutoff)
	_, err := fetcher.FetchDraws(context.Background(), srv.URL)
	require.Error(t, err)
	require.Contains(t, err.Error(), "non-OK status")
}

func TestFetchDrawsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	fetcher := NewFetcher(time.Second, cutoff)
	_, err := fetcher.FetchDraws(context.Background(), srv.URL)
	require.Error(t, err)
}

func TestFetchHTMLSendsBrowserHeaders(t *testing.T) {
	var userAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	fetcher := NewFetcher(5*time.Second, cutoff)
	_, err := fetcher.FetchHTML(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Contains(t, userAgent, "Mozilla")
}
