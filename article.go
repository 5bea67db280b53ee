package mediumreader

import "strings"

// Article is the normalized representation of a single fetched article.
// It is constructed once per fetch, immutable after normalization, and
// consumed by the renderer. Only the rendered document persists.
type Article struct {
	Title         string
	Author        string
	PublishedDate string
	Description   string
	HeroImage     string
	SourceURL     string

	// Blocks holds the body content in the source document's reading order.
	Blocks []Block

	// Truncated marks a page that appears to carry only a preview of the
	// article (paywall marker or suspiciously short body). Informational,
	// never an error.
	Truncated bool
}

// Validate returns an error if the article violates its invariants.
func (a *Article) Validate() error {
	if a.Title == "" {
		return Errorf(EINVALID, "empty title")
	}
	if a.SourceURL == "" {
		return Errorf(EINVALID, "article source URL required")
	}
	if len(a.Blocks) == 0 {
		return Errorf(EINVALID, "article has no content blocks")
	}
	for _, b := range a.Blocks {
		if h, ok := b.(Heading); ok && (h.Level < 1 || h.Level > 6) {
			return Errorf(EINVALID, "heading level %d out of range", h.Level)
		}
	}
	return nil
}

// Block is one element of an article body. The set of implementations is
// closed: Heading, Paragraph, Image, CodeBlock, Quote and List.
type Block interface {
	block()
}

// Heading is a section heading with a level between 1 and 6.
type Heading struct {
	Level int
	Text  string
}

// Paragraph is a run of body text. Spans, when present, carry the inline
// formatting of the text; Text is always the full plain text.
type Paragraph struct {
	Text  string
	Spans []Span
}

// Span is a contiguous run of paragraph text with uniform inline formatting.
type Span struct {
	Text   string
	Bold   bool
	Italic bool
	Href   string
}

// Image is an embedded image. Alt may be empty.
type Image struct {
	Src string
	Alt string
}

// CodeBlock is a preformatted code listing. Language may be empty.
type CodeBlock struct {
	Text     string
	Language string
}

// Quote is a block quotation.
type Quote struct {
	Text string
}

// List is an ordered or unordered list of plain-text items.
type List struct {
	Ordered bool
	Items   []string
}

func (Heading) block()   {}
func (Paragraph) block() {}
func (Image) block()     {}
func (CodeBlock) block() {}
func (Quote) block()     {}
func (List) block()      {}

// BlockText returns the plain text of a block, used for boilerplate
// matching and body-length checks.
func BlockText(b Block) string {
	switch v := b.(type) {
	case Heading:
		return v.Text
	case Paragraph:
		return v.Text
	case Image:
		return v.Alt
	case CodeBlock:
		return v.Text
	case Quote:
		return v.Text
	case List:
		return strings.Join(v.Items, "\n")
	}
	return ""
}
