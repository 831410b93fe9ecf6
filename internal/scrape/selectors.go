package scrape

// Selector table for the company profile layout. The page structure is
// fixed, so every marker and positional offset the extractor relies on is
// named here; a site redesign means updating this file, not hunting
// literals through the sub-extractors.
const (
	siteOrigin = "https://www.ycombinator.com"

	selName        = "h1"
	selDescription = "p.whitespace-pre-line"
	selFactSpan    = "div.ycdc-card span"

	selJobRow   = "div.flex.w-full.flex-row.justify-between.py-4"
	selJobTitle = ".ycdc-with-link-color"
	selJobAttr  = ".list-item"

	selFounderCard  = "div.flex.flex-row.flex-col"
	selFounderInfo  = "div.flex-grow"
	selFounderLink  = "div.mt-1.space-x-2 a[href]"
	selFounderName  = "h3"
	selFounderBio   = "p"
	selLaunchPost   = "div.company-launch"
	selLaunchTitle  = "h3"
	selLaunchBody   = "div"
	selLaunchAnchor = "a[href]"
)

// The fact card interleaves label and value spans
// (Founded: / 2012 / Team Size: / 11 / Location: / San Francisco),
// so values sit at the odd offsets.
const (
	factFounded  = 1
	factTeamSize = 3
	factLocation = 5
)

// Job attribute spans appear in a fixed order within each listing row.
const (
	jobAttrLocation = iota
	jobAttrPay
	jobAttrEquity
	jobAttrExperience
)
