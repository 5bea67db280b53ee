// Package readability provides an opt-in, last-resort extraction strategy
// wrapping go-readability. It is kept out of the default chain so the
// deterministic failure reasons of the JSON-LD and DOM strategies are
// preserved; the CLI appends it only when asked to.
package readability

import (
	"strings"

	mediumreader "github.com/abdukarimovhm/medium-reader"
	mrgoquery "github.com/abdukarimovhm/medium-reader/goquery"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements mediumreader.Extractor at compile time.
var _ mediumreader.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability and re-expresses its cleaned content HTML
// as content blocks.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract runs readability over the raw page. It declines with ENOTFOUND
// when readability finds no content or no title, so the chain's final
// error stays meaningful.
func (e *Extractor) Extract(rawHTML, sourceURL string) (*mediumreader.Article, error) {
	if rawHTML == "" {
		return nil, mediumreader.Errorf(mediumreader.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, mediumreader.Errorf(mediumreader.ENOTFOUND, "readability: %v", err)
	}
	if article.Content == "" || strings.TrimSpace(article.Title) == "" {
		return nil, mediumreader.Errorf(mediumreader.ENOTFOUND, "readability found no content")
	}

	blocks, err := mrgoquery.BlocksFromHTML(article.Content)
	if err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return nil, mediumreader.Errorf(mediumreader.ENOTFOUND, "readability found no content")
	}

	return &mediumreader.Article{
		Title:     strings.TrimSpace(article.Title),
		Author:    strings.TrimSpace(article.Byline),
		SourceURL: sourceURL,
		Blocks:    blocks,
	}, nil
}
