package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	mediumreader "github.com/abdukarimovhm/medium-reader"
	mrhttp "github.com/abdukarimovhm/medium-reader/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noRetries keeps failure tests fast.
var noRetries = mrhttp.WithRetryDelays(nil)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		html, err := mrhttp.NewFetcher(noRetries).Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", html)
	})

	t.Run("sends browser-like headers", func(t *testing.T) {
		t.Parallel()

		var gotUA, gotAccept, gotReferer string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			gotAccept = r.Header.Get("Accept")
			gotReferer = r.Header.Get("Referer")
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		_, err := mrhttp.NewFetcher(noRetries).Fetch(context.Background(), server.URL)
		require.NoError(t, err)

		assert.Contains(t, gotUA, "Mozilla/5.0")
		assert.Contains(t, gotAccept, "text/html")
		assert.Equal(t, "https://www.google.com/", gotReferer)
	})

	t.Run("non-200 is a network error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		_, err := mrhttp.NewFetcher(noRetries).Fetch(context.Background(), server.URL)

		require.Error(t, err)
		assert.Equal(t, mediumreader.EUNAVAILABLE, mediumreader.ErrorCode(err))
		assert.Contains(t, mediumreader.ErrorMessage(err), "HTTP 404")
	})

	t.Run("retries server errors until success", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			_, _ = w.Write([]byte("recovered"))
		}))
		defer server.Close()

		fetcher := mrhttp.NewFetcher(mrhttp.WithRetryDelays([]time.Duration{time.Millisecond, time.Millisecond}))

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)

		assert.Equal(t, "recovered", html)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("does not retry client errors", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		fetcher := mrhttp.NewFetcher(mrhttp.WithRetryDelays([]time.Duration{time.Millisecond}))

		_, err := fetcher.Fetch(context.Background(), server.URL)

		require.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("late"))
		}))
		defer server.Close()

		fetcher := mrhttp.NewFetcher(mrhttp.WithTimeout(10*time.Millisecond), noRetries)

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, mediumreader.EUNAVAILABLE, mediumreader.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("late"))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := mrhttp.NewFetcher(noRetries).Fetch(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("unreachable host is a network error", func(t *testing.T) {
		t.Parallel()

		fetcher := mrhttp.NewFetcher(mrhttp.WithTimeout(100*time.Millisecond), noRetries)

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page")

		require.Error(t, err)
		assert.Equal(t, mediumreader.EUNAVAILABLE, mediumreader.ErrorCode(err))
	})
}
