package domain

import "context"

// Article holds the text extracted from a fetched encyclopedia page.
type Article struct {
	URL      string
	Title    string
	Summary  string
	Text     string
	Sections []string
}

// ArticleFetcher retrieves an article page and extracts its readable text.
// Implementations make exactly one outbound request per call; there is no
// retry policy.
type ArticleFetcher interface {
	Fetch(ctx context.Context, url string) (*Article, error)
}
