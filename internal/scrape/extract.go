package scrape

import (
	"strings"

	"orgscout-engine/internal/domain"
	"orgscout-engine/internal/scrape/util"

	"github.com/PuerkitoBio/goquery"
)

// Extract maps one parsed profile page to an OrganizationRecord. It is a
// pure function of the document: no network, no filesystem, and it never
// fails: a fragment missing from the page leaves its field empty instead
// of aborting the record.
func Extract(doc *goquery.Document) domain.OrganizationRecord {
	rec := domain.OrganizationRecord{
		Jobs:        []domain.JobListing{},
		Founders:    []domain.Founder{},
		NewsStories: []domain.NewsStory{},
		LaunchPosts: []domain.LaunchPost{},
	}

	rec.Name = util.CleanText(doc.Find(selName).First().Text())
	// description is rendered pre-line; keep inner newlines, trim the edges
	rec.Description = strings.TrimSpace(doc.Find(selDescription).First().Text())
	rec.Founded = factValue(doc, factFounded)
	rec.TeamSize = factValue(doc, factTeamSize)

	rec.Jobs = extractJobs(doc)
	rec.Founders = extractFounders(doc)
	rec.LaunchPosts = extractLaunchPosts(doc)
	// NewsStories has no source section on the current layout; stays empty.

	return rec
}

// factValue reads one value span out of the company fact card. Pages with
// a shorter card simply don't have that offset, which degrades to "".
func factValue(doc *goquery.Document, pos int) string {
	spans := doc.Find(selFactSpan)
	if pos >= spans.Length() {
		return ""
	}
	return util.CleanText(spans.Eq(pos).Text())
}
