package scrape

import (
	"orgscout-engine/internal/domain"
	"orgscout-engine/internal/scrape/util"

	"github.com/PuerkitoBio/goquery"
)

// extractJobs emits exactly one listing per matched row. A row with no
// attribute spans still counts, it just comes out all-empty.
func extractJobs(doc *goquery.Document) []domain.JobListing {
	jobs := []domain.JobListing{}

	doc.Find(selJobRow).Each(func(_ int, row *goquery.Selection) {
		var j domain.JobListing
		j.Title = util.CleanText(row.Find(selJobTitle).First().Text())

		attrs := row.Find(selJobAttr)
		fields := [...]*string{
			jobAttrLocation:   &j.Location,
			jobAttrPay:        &j.Pay,
			jobAttrEquity:     &j.Equity,
			jobAttrExperience: &j.Experience,
		}
		for i, f := range fields {
			if i < attrs.Length() {
				*f = util.CleanText(attrs.Eq(i).Text())
			}
		}

		jobs = append(jobs, j)
	})

	return jobs
}
