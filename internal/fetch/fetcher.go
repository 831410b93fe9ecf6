package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"orgscout-engine/internal/scrape/util"
	"orgscout-engine/internal/store"

	"github.com/PuerkitoBio/goquery"
)

type Config struct {
	Timeout    time.Duration
	Retries    int
	UserAgent  string
	PerHostRPS float64
	Burst      int
}

// Fetcher owns everything between a source URL and a parsed document:
// politeness (per-host rate limit), retry policy, and the page cache.
// The crawl layer only sees "document or no document".
type Fetcher struct {
	cfg   Config
	hc    *http.Client
	lim   *util.HostLimiter
	cache *store.PageCache // nil disables caching
}

const maxBodyBytes = 4 << 20

func New(cfg Config, cache *store.PageCache) *Fetcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = "OrgScout/1.0 (+local)"
	}
	if cfg.PerHostRPS <= 0 {
		cfg.PerHostRPS = 2
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	return &Fetcher{
		cfg:   cfg,
		hc:    &http.Client{Timeout: cfg.Timeout},
		lim:   util.NewHostLimiter(cfg.PerHostRPS, cfg.Burst),
		cache: cache,
	}
}

func (f *Fetcher) FetchDocument(ctx context.Context, rawURL string) (*goquery.Document, error) {
	body, err := f.fetchBody(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromReader(bytes.NewReader(body))
}

func (f *Fetcher) fetchBody(ctx context.Context, rawURL string) ([]byte, error) {
	if f.cache != nil {
		if b, ok, err := f.cache.Get(ctx, rawURL); err == nil && ok {
			return b, nil
		} else if err != nil {
			log.Printf("[cache] read error url=%s err=%v", rawURL, err)
		}
	}

	var lastErr error
	for attempt := 0; attempt <= f.cfg.Retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff(attempt)):
			}
		}

		if err := f.lim.WaitURL(ctx, rawURL); err != nil {
			return nil, err
		}

		body, retryable, err := f.doOnce(ctx, rawURL)
		if err == nil {
			if f.cache != nil {
				if cerr := f.cache.Put(ctx, rawURL, body); cerr != nil {
					log.Printf("[cache] write error url=%s err=%v", rawURL, cerr)
				}
			}
			return body, nil
		}

		lastErr = err
		if !retryable {
			break
		}
	}
	return nil, lastErr
}

func (f *Fetcher) doOnce(ctx context.Context, rawURL string) (body []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	res, err := f.hc.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusTooManyRequests || res.StatusCode >= 500:
		return nil, true, fmt.Errorf("fetch %s: status %d", rawURL, res.StatusCode)
	case res.StatusCode >= 400:
		return nil, false, fmt.Errorf("fetch %s: status %d", rawURL, res.StatusCode)
	}

	b, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, true, fmt.Errorf("fetch %s: read body: %w", rawURL, err)
	}
	return b, false, nil
}

func backoff(attempt int) time.Duration {
	d := 500 * time.Millisecond << (attempt - 1)
	if d > 5*time.Second {
		d = 5 * time.Second
	}
	return d
}
