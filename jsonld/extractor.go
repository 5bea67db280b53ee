// Package jsonld extracts article content from JSON-LD structured data
// embedded in a page. This is the preferred extraction strategy: when a
// page carries a complete article record for search engines, it is more
// reliable than DOM heuristics.
package jsonld

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	mediumreader "github.com/abdukarimovhm/medium-reader"
)

// Ensure Extractor implements mediumreader.Extractor at compile time.
var _ mediumreader.Extractor = (*Extractor)(nil)

// Extractor scans script[type="application/ld+json"] blocks and accepts the
// first article-like record with a non-empty headline and body.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// record is the subset of a JSON-LD article record we care about. Author
// and image come in several shapes in the wild (string, object, array), so
// they are decoded leniently.
type record struct {
	Type          json.RawMessage `json:"@type"`
	Headline      string          `json:"headline"`
	Description   string          `json:"description"`
	ArticleBody   string          `json:"articleBody"`
	DatePublished string          `json:"datePublished"`
	DateCreated   string          `json:"dateCreated"`
	Author        json.RawMessage `json:"author"`
	Image         json.RawMessage `json:"image"`
}

// Extract parses the page's JSON-LD blocks and returns a candidate article.
// It declines with ENOTFOUND when no article-like record with a usable body
// exists; callers fall through to the DOM extractor.
func (e *Extractor) Extract(rawHTML, sourceURL string) (*mediumreader.Article, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, mediumreader.Errorf(mediumreader.EINVALID, "failed to parse HTML: %v", err)
	}

	var found *record
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		for _, rec := range decodeRecords(sel.Text()) {
			if !isArticleType(rec.Type) {
				continue
			}
			if strings.TrimSpace(rec.Headline) == "" || strings.TrimSpace(rec.ArticleBody) == "" {
				continue
			}
			found = rec
			return false
		}
		return true
	})

	if found == nil {
		return nil, mediumreader.Errorf(mediumreader.ENOTFOUND, "no structured data")
	}

	blocks := splitParagraphs(found.ArticleBody)
	if len(blocks) == 0 {
		return nil, mediumreader.Errorf(mediumreader.ENOTFOUND, "no structured data")
	}

	date := found.DatePublished
	if date == "" {
		date = found.DateCreated
	}

	return &mediumreader.Article{
		Title:         strings.TrimSpace(found.Headline),
		Author:        authorName(found.Author),
		PublishedDate: date,
		Description:   strings.TrimSpace(found.Description),
		HeroImage:     imageURL(found.Image),
		SourceURL:     sourceURL,
		Blocks:        blocks,
	}, nil
}

// decodeRecords decodes a JSON-LD script body into records. A script may
// hold a single record or a top-level array; malformed JSON is skipped.
func decodeRecords(raw string) []*record {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if strings.HasPrefix(raw, "[") {
		var recs []*record
		if err := json.Unmarshal([]byte(raw), &recs); err != nil {
			return nil
		}
		// A JSON null element decodes to a nil record; drop it.
		out := recs[:0]
		for _, rec := range recs {
			if rec != nil {
				out = append(out, rec)
			}
		}
		return out
	}

	rec := &record{}
	if err := json.Unmarshal([]byte(raw), rec); err != nil {
		return nil
	}
	return []*record{rec}
}

// isArticleType reports whether a JSON-LD @type value (string or array of
// strings) names an article-like record.
func isArticleType(raw json.RawMessage) bool {
	for _, typ := range typeStrings(raw) {
		switch typ {
		case "Article", "BlogPosting", "NewsArticle":
			return true
		}
		if strings.Contains(strings.ToLower(typ), "article") {
			return true
		}
	}
	return false
}

func typeStrings(raw json.RawMessage) []string {
	if len(raw) == 0 {
		return nil
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return []string{single}
	}

	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		return many
	}
	return nil
}

// authorName extracts an author name from the string, object, or array
// forms JSON-LD uses.
func authorName(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		return strings.TrimSpace(name)
	}

	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Name != "" {
		return strings.TrimSpace(obj.Name)
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return authorName(list[0])
	}
	return ""
}

// imageURL extracts an image URL from the string, object, or array forms.
func imageURL(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var u string
	if err := json.Unmarshal(raw, &u); err == nil {
		return strings.TrimSpace(u)
	}

	var obj struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.URL != "" {
		return strings.TrimSpace(obj.URL)
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return imageURL(list[0])
	}
	return ""
}

// splitParagraphs turns a plain-text article body into Paragraph blocks,
// one per blank-line-separated chunk, preserving order. Structured data
// rarely encodes headings or images, so richer block types are never
// invented here.
func splitParagraphs(body string) []mediumreader.Block {
	body = strings.ReplaceAll(body, "\r\n", "\n")

	var blocks []mediumreader.Block
	for _, chunk := range strings.Split(body, "\n\n") {
		text := strings.TrimSpace(chunk)
		if text == "" {
			continue
		}
		// Single newlines inside a paragraph are soft wraps.
		text = strings.Join(strings.Fields(text), " ")
		blocks = append(blocks, mediumreader.Paragraph{Text: text})
	}
	return blocks
}
