package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"orgscout-engine/internal/config"
	"orgscout-engine/internal/crawl"
	"orgscout-engine/internal/fetch"
	"orgscout-engine/internal/input"
	"orgscout-engine/internal/sink"
	"orgscout-engine/internal/store"

	"github.com/gofrs/flock"
)

func main() {
	// Engine data dir: use env if provided, else local folder.
	dataDir := os.Getenv("ORGSCOUT_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One engine per data dir; two runs sharing a page cache DB is asking
	// for trouble.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("lock failed: %v", err)
	}
	if !locked {
		log.Fatalf("another engine is already running in %s", dataDir)
	}
	defer lock.Unlock()

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	cfg, err := config.Load(userCfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfg, res := config.NormalizeAndValidate(cfg)
	for _, w := range res.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !res.OK() {
		for _, e := range res.Errors {
			log.Printf("[config] error: %s", e)
		}
		log.Fatalf("config invalid (%s)", userCfgPath)
	}

	var cache *store.PageCache
	if cfg.Cache.Enabled {
		db, err := store.Open(filepath.Join(dataDir, "orgscout.db"))
		if err != nil {
			log.Fatalf("cache db open failed: %v", err)
		}
		defer db.Close()

		cache, err = store.NewPageCache(db, cfg.CacheTTL())
		if err != nil {
			log.Fatalf("cache init failed: %v", err)
		}
	}

	rows, err := input.LoadRows(cfg.Input.CSVPath, cfg.Input.IdentifierColumn, cfg.Input.URLColumn)
	if err != nil {
		log.Fatalf("input load failed: %v", err)
	}
	log.Printf("[input] %d rows from %s", len(rows), cfg.Input.CSVPath)

	fetcher := fetch.New(fetch.Config{
		Timeout:    cfg.FetchTimeout(),
		Retries:    cfg.Crawl.Retries,
		UserAgent:  cfg.Crawl.UserAgent,
		PerHostRPS: cfg.Crawl.PerHostRPS,
		Burst:      cfg.Crawl.Burst,
	}, cache)

	runner := &crawl.Runner{
		Fetcher:     fetcher,
		Concurrency: cfg.Crawl.Concurrency,
	}
	records := runner.Run(context.Background(), rows)
	log.Printf("[crawl] %d/%d rows produced records", len(records), len(rows))

	outPath := cfg.Output.Path
	if !filepath.IsAbs(outPath) {
		outPath = filepath.Join(dataDir, outPath)
	}
	// The whole collection is written once; a failed write loses the run.
	if err := sink.WriteRecords(outPath, records); err != nil {
		log.Fatalf("output write failed (%s): %v", outPath, err)
	}
	log.Printf("[sink] wrote %d records to %s", len(records), outPath)
}
