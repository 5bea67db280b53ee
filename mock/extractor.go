package mock

import mediumreader "github.com/abdukarimovhm/medium-reader"

var _ mediumreader.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of mediumreader.Extractor.
type Extractor struct {
	ExtractFn func(rawHTML, sourceURL string) (*mediumreader.Article, error)
}

func (e *Extractor) Extract(rawHTML, sourceURL string) (*mediumreader.Article, error) {
	return e.ExtractFn(rawHTML, sourceURL)
}
