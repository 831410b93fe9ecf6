package crawl

import (
	"context"
	"log"

	"orgscout-engine/internal/domain"
	"orgscout-engine/internal/scrape"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/sync/errgroup"
)

// Fetcher is the transport collaborator: it owns retries, rate limiting,
// and caching. The runner only cares whether a document came back.
type Fetcher interface {
	FetchDocument(ctx context.Context, url string) (*goquery.Document, error)
}

type Runner struct {
	Fetcher     Fetcher
	Concurrency int // <=1 means the classic sequential crawl
}

// Run fetches and extracts every source row. A row whose fetch fails is
// logged and skipped; the batch always runs to completion.
//
// Output order equals input order at any concurrency: each record lands in
// an index-addressed slot and failed rows are compacted out afterwards.
// With Concurrency <= 1 the errgroup degenerates to the sequential loop,
// one in-flight fetch at a time.
func (r *Runner) Run(ctx context.Context, rows []domain.SourceRow) []domain.OrganizationRecord {
	workers := r.Concurrency
	if workers < 1 {
		workers = 1
	}

	slots := make([]*domain.OrganizationRecord, len(rows))

	var g errgroup.Group
	g.SetLimit(workers)

	for i, row := range rows {
		i, row := i, row
		g.Go(func() error {
			doc, err := r.Fetcher.FetchDocument(ctx, row.SourceURL)
			if err != nil {
				log.Printf("[crawl] skip %s (%s): %v", row.Identifier, row.SourceURL, err)
				return nil // best-effort: one dead page must not kill the batch
			}

			rec := scrape.Extract(doc)
			if rec.Name == "" {
				// page came back but didn't look like a profile; keep the
				// record anyway, the identifier tells us which row it was
				log.Printf("[crawl] %s: extracted record has no name", row.Identifier)
			}
			slots[i] = &rec
			return nil
		})
	}
	_ = g.Wait()

	out := make([]domain.OrganizationRecord, 0, len(rows))
	for _, rec := range slots {
		if rec != nil {
			out = append(out, *rec)
		}
	}
	return out
}
