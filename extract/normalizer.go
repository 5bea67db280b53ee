// Package extract normalizes the output of the extraction strategies into
// a single validated article: it runs the strategies in order, strips
// boilerplate blocks, and tags truncation signals.
package extract

import (
	"strings"
	"unicode/utf8"

	mediumreader "github.com/abdukarimovhm/medium-reader"
)

// Ensure Normalizer implements mediumreader.Extractor at compile time.
var _ mediumreader.Extractor = (*Normalizer)(nil)

// Normalizer runs an ordered chain of extraction strategies and
// post-processes the first candidate article into its final form. Exactly
// one strategy is the source of truth per article; partial results from
// different strategies are never merged.
type Normalizer struct {
	strategies []mediumreader.Extractor
	rules      Rules
}

// NewNormalizer creates a Normalizer running the given strategies in order.
func NewNormalizer(rules Rules, strategies ...mediumreader.Extractor) *Normalizer {
	return &Normalizer{strategies: strategies, rules: rules}
}

// Extract returns the normalized article, or the last strategy's error when
// every strategy fails. The returned article satisfies Validate; callers
// treat it as immutable.
func (n *Normalizer) Extract(rawHTML, sourceURL string) (*mediumreader.Article, error) {
	var article *mediumreader.Article
	var lastErr error

	for _, strategy := range n.strategies {
		candidate, err := strategy.Extract(rawHTML, sourceURL)
		if err != nil {
			lastErr = err
			continue
		}
		article = candidate
		break
	}

	if article == nil {
		if lastErr == nil || mediumreader.ErrorCode(lastErr) == mediumreader.ENOTFOUND {
			return nil, mediumreader.Errorf(mediumreader.EINVALID, "no content found")
		}
		return nil, lastErr
	}

	blocks := n.stripBoilerplate(article.Blocks)
	if len(blocks) == 0 {
		return nil, mediumreader.Errorf(mediumreader.EINVALID, "no content found")
	}

	// Copy rather than mutate: strategy output stays untouched and the
	// normalized article is the only one callers ever see.
	normalized := *article
	normalized.Blocks = blocks
	normalized.Truncated = n.detectTruncation(rawHTML, blocks)

	if err := normalized.Validate(); err != nil {
		return nil, err
	}
	return &normalized, nil
}

// stripBoilerplate drops short blocks matching the denylist. Only
// paragraphs and quotes are candidates; headings, code, images and lists
// never read like chrome.
func (n *Normalizer) stripBoilerplate(blocks []mediumreader.Block) []mediumreader.Block {
	kept := make([]mediumreader.Block, 0, len(blocks))
	for _, b := range blocks {
		switch b.(type) {
		case mediumreader.Paragraph, mediumreader.Quote:
			if n.isBoilerplate(mediumreader.BlockText(b)) {
				continue
			}
		}
		kept = append(kept, b)
	}
	return kept
}

func (n *Normalizer) isBoilerplate(text string) bool {
	if utf8.RuneCountInString(text) > n.rules.MaxBoilerplateRunes {
		return false
	}
	lower := strings.ToLower(text)
	for _, phrase := range n.rules.Boilerplate {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// detectTruncation reports whether the page carries only a preview: either
// an explicit marker appears in the raw markup, or the body is shorter than
// the configured threshold and its last block looks cut off mid-sentence.
// Truncation is informational, never an error.
func (n *Normalizer) detectTruncation(rawHTML string, blocks []mediumreader.Block) bool {
	lower := strings.ToLower(rawHTML)
	for _, marker := range n.rules.TruncationMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}

	total := 0
	for _, b := range blocks {
		total += utf8.RuneCountInString(mediumreader.BlockText(b))
	}
	if total >= n.rules.MinBodyRunes {
		return false
	}

	last := strings.TrimSpace(mediumreader.BlockText(blocks[len(blocks)-1]))
	return looksCutOff(last)
}

// looksCutOff reports whether text ends with an ellipsis or stops without
// terminal punctuation, the way a clipped preview does. A short article
// that ends in a complete sentence is not a preview.
func looksCutOff(text string) bool {
	if text == "" {
		return false
	}
	if strings.HasSuffix(text, "...") || strings.HasSuffix(text, "…") {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text)
	return !strings.ContainsRune(`.!?)"'”’`, r)
}
