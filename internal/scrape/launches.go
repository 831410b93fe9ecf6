package scrape

import (
	"orgscout-engine/internal/domain"
	"orgscout-engine/internal/scrape/util"

	"github.com/PuerkitoBio/goquery"
)

// extractLaunchPosts reads the launch announcement blocks. Launch hrefs are
// site-relative on the live pages, so every link gets resolved against the
// site origin before it lands in the record.
func extractLaunchPosts(doc *goquery.Document) []domain.LaunchPost {
	posts := []domain.LaunchPost{}

	doc.Find(selLaunchPost).Each(func(_ int, blk *goquery.Selection) {
		p := domain.LaunchPost{
			Title:       util.CleanText(blk.Find(selLaunchTitle).First().Text()),
			Description: util.CleanText(blk.Find(selLaunchBody).First().Text()),
			Links:       []string{},
		}

		blk.Find(selLaunchAnchor).Each(func(_ int, a *goquery.Selection) {
			href, ok := a.Attr("href")
			if !ok {
				return
			}
			if abs := util.AbsoluteURL(siteOrigin, href); abs != "" {
				p.Links = append(p.Links, abs)
			}
		})

		if p.Title == "" || p.Description == "" {
			return
		}
		posts = append(posts, p)
	})

	return posts
}
