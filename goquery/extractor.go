// Package goquery implements DOM-heuristic article extraction. It is the
// fallback strategy for pages whose structured data is missing or
// incomplete: ordered selector rules locate the title, byline and body
// container, and the container's children are classified into content
// blocks in document order.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	mediumreader "github.com/abdukarimovhm/medium-reader"
)

// Ensure Extractor implements mediumreader.Extractor at compile time.
var _ mediumreader.Extractor = (*Extractor)(nil)

// Extractor extracts an article from the parsed document tree.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract applies the ordered heuristics to the page. It fails with
// EINVALID "no body container found" when no element plausibly holds the
// article body, and EINVALID "empty title" when a body exists but no title
// can be recovered.
func (e *Extractor) Extract(rawHTML, sourceURL string) (*mediumreader.Article, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, mediumreader.Errorf(mediumreader.EINVALID, "failed to parse HTML: %v", err)
	}

	container := findBodyContainer(doc)
	if container == nil {
		return nil, mediumreader.Errorf(mediumreader.EINVALID, "no body container found")
	}

	blocks := BlocksFromSelection(container)
	if len(blocks) == 0 {
		return nil, mediumreader.Errorf(mediumreader.EINVALID, "no body container found")
	}

	title := firstMatch(doc, titleRules, minTitleLen)
	if title == "" {
		return nil, mediumreader.Errorf(mediumreader.EINVALID, "empty title")
	}

	// A title block at the top of the container duplicates the rendered
	// heading; drop it.
	if h, ok := blocks[0].(mediumreader.Heading); ok && h.Level == 1 && h.Text == title {
		blocks = blocks[1:]
	}
	if len(blocks) == 0 {
		return nil, mediumreader.Errorf(mediumreader.EINVALID, "no body container found")
	}

	return &mediumreader.Article{
		Title:         title,
		Author:        firstMatch(doc, authorRules, 0),
		PublishedDate: firstMatch(doc, dateRules, 0),
		Description:   metaContent(doc, `meta[property="og:description"]`),
		HeroImage:     metaContent(doc, `meta[property="og:image"]`),
		SourceURL:     sourceURL,
		Blocks:        blocks,
	}, nil
}

// firstMatch tries each rule in order and returns the first usable text:
// longer than minLen and not a known chrome word.
func firstMatch(doc *goquery.Document, rules []textRule, minLen int) string {
	for _, rule := range rules {
		var found string
		doc.Find(rule.Selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			var text string
			if rule.Attr != "" {
				text, _ = sel.Attr(rule.Attr)
			} else {
				text = sel.Text()
			}
			text = collapseText(text)
			if utf8.RuneCountInString(text) <= minLen || chromeWords[strings.ToLower(text)] {
				return true
			}
			found = text
			return false
		})
		if found != "" {
			return found
		}
	}
	return ""
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}

// findBodyContainer returns the element most likely to hold the article
// body. Known container selectors are tried in order; failing those, the
// element with the highest density of paragraph-like children wins.
func findBodyContainer(doc *goquery.Document) *goquery.Selection {
	for _, selector := range containerRules {
		sel := doc.Find(selector).First()
		if sel.Length() > 0 && sel.Find("p").Length() > 0 {
			return sel
		}
	}

	var best *goquery.Selection
	bestScore := 0
	doc.Find("div, section, main, article").Each(func(_ int, sel *goquery.Selection) {
		score := sel.ChildrenFiltered("p, h1, h2, h3, h4, h5, h6, pre, blockquote, figure, ul, ol").Length()
		if score > bestScore {
			best = sel
			bestScore = score
		}
	})

	if bestScore < minContainerScore {
		return nil
	}
	return best
}
