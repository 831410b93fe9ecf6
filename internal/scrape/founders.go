package scrape

import (
	"strings"

	"orgscout-engine/internal/domain"
	"orgscout-engine/internal/scrape/util"

	"github.com/PuerkitoBio/goquery"
)

// extractFounders walks the founder cards in document order. A card only
// qualifies when both name and bio are present; social links never qualify
// a card on their own.
func extractFounders(doc *goquery.Document) []domain.Founder {
	founders := []domain.Founder{}

	doc.Find(selFounderCard).Each(func(_ int, card *goquery.Selection) {
		info := card.Find(selFounderInfo).First()

		f := domain.Founder{
			Name:        util.CleanText(info.Find(selFounderName).First().Text()),
			Description: util.CleanText(info.Find(selFounderBio).First().Text()),
			Links:       []string{},
		}

		card.Find(selFounderLink).Each(func(_ int, a *goquery.Selection) {
			href, ok := a.Attr("href")
			if !ok {
				return
			}
			if href = strings.TrimSpace(href); href != "" {
				f.Links = append(f.Links, href)
			}
		})

		if f.Name == "" || f.Description == "" {
			return
		}
		founders = append(founders, f)
	})

	return founders
}
