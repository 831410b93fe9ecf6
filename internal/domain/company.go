package domain

// OrganizationRecord is one scraped company profile. Scalar fields stay ""
// when the page doesn't carry them; list fields are always non-nil so the
// output document serializes them as [] rather than null.
type OrganizationRecord struct {
	Name        string       `json:"name"`
	Founded     string       `json:"founded,omitempty"`
	Description string       `json:"description,omitempty"`
	TeamSize    string       `json:"teamSize,omitempty"`
	Jobs        []JobListing `json:"jobs"`
	Founders    []Founder    `json:"founders"`
	NewsStories []NewsStory  `json:"newsStories"`
	LaunchPosts []LaunchPost `json:"launchPosts"`
}

type Founder struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Links       []string `json:"links"`
}

type JobListing struct {
	Title      string `json:"title"`
	Location   string `json:"location"`
	Pay        string `json:"pay"`
	Equity     string `json:"equity"`
	Experience string `json:"experience"`
}

// NewsStory is part of the output schema but no page section feeds it yet;
// records always carry an empty list.
type NewsStory struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

type LaunchPost struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Links       []string `json:"links"`
}
