package domain

// SourceRow is one line of the input table: which organization to scrape
// and where its profile page lives.
type SourceRow struct {
	Identifier string
	SourceURL  string
}
