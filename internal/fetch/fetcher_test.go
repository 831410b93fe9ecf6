package fetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"orgscout-engine/internal/fetch"
	"orgscout-engine/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profileHTML = `<html><body><h1>Acme Inc</h1></body></html>`

// fastConfig keeps the per-host limiter out of the way in tests.
func fastConfig(retries int) fetch.Config {
	return fetch.Config{
		Timeout:    5 * time.Second,
		Retries:    retries,
		PerHostRPS: 1000,
		Burst:      100,
	}
}

func TestFetchDocument_SetsUserAgent(t *testing.T) {
	t.Parallel()

	var gotUA atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA.Store(r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(profileHTML))
	}))
	defer srv.Close()

	cfg := fastConfig(0)
	cfg.UserAgent = "OrgScout/test"
	f := fetch.New(cfg, nil)

	doc, err := f.FetchDocument(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Acme Inc", doc.Find("h1").Text())
	assert.Equal(t, "OrgScout/test", gotUA.Load())
}

func TestFetchDocument_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(profileHTML))
	}))
	defer srv.Close()

	f := fetch.New(fastConfig(2), nil)

	doc, err := f.FetchDocument(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Acme Inc", doc.Find("h1").Text())
	assert.Equal(t, int32(3), calls.Load())
}

func TestFetchDocument_NoRetryOnNotFound(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	f := fetch.New(fastConfig(3), nil)

	_, err := f.FetchDocument(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load(), "4xx should not be retried")
}

func TestFetchDocument_ExhaustedRetriesFail(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := fetch.New(fastConfig(1), nil)

	_, err := f.FetchDocument(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestFetchDocument_CacheReadThrough(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(profileHTML))
	}))
	defer srv.Close()

	db, err := store.Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer db.Close()

	cache, err := store.NewPageCache(db, time.Hour)
	require.NoError(t, err)

	f := fetch.New(fastConfig(0), cache)

	for i := 0; i < 2; i++ {
		doc, err := f.FetchDocument(context.Background(), srv.URL)
		require.NoError(t, err)
		assert.Equal(t, "Acme Inc", doc.Find("h1").Text())
	}

	assert.Equal(t, int32(1), calls.Load(), "second fetch should come from cache")
}
