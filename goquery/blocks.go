package goquery

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	mediumreader "github.com/abdukarimovhm/medium-reader"
	"golang.org/x/net/html"
)

// BlocksFromSelection walks the container's children in document order and
// classifies each into a content block by element semantics. Wrapper
// elements are recursed into; unrecognized or empty nodes are skipped, not
// emitted as empty blocks.
func BlocksFromSelection(container *goquery.Selection) []mediumreader.Block {
	var blocks []mediumreader.Block
	container.Children().Each(func(_ int, child *goquery.Selection) {
		blocks = append(blocks, classify(child)...)
	})
	return blocks
}

// BlocksFromHTML classifies the top-level elements of an HTML fragment.
// It exists for strategies that produce cleaned content HTML (e.g. the
// readability fallback) and need it re-expressed as content blocks.
func BlocksFromHTML(fragment string) ([]mediumreader.Block, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, mediumreader.Errorf(mediumreader.EINVALID, "failed to parse HTML: %v", err)
	}
	return BlocksFromSelection(doc.Find("body")), nil
}

func classify(sel *goquery.Selection) []mediumreader.Block {
	node := sel.Get(0)
	if node == nil || node.Type != html.ElementNode {
		return nil
	}

	switch node.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		text := collapseText(sel.Text())
		if text == "" {
			return nil
		}
		return []mediumreader.Block{mediumreader.Heading{
			Level: int(node.Data[1] - '0'),
			Text:  text,
		}}

	case "p":
		return paragraph(sel)

	case "img":
		return image(sel, "")

	case "figure":
		caption := collapseText(sel.Find("figcaption").Text())
		return image(sel.Find("img").First(), caption)

	case "pre":
		return codeBlock(sel)

	case "blockquote":
		text := collapseText(sel.Text())
		if text == "" {
			return nil
		}
		return []mediumreader.Block{mediumreader.Quote{Text: text}}

	case "ul", "ol":
		return list(sel, node.Data == "ol")

	case "div", "section", "article", "main", "header", "footer":
		// Layout wrappers: recurse, preserving document order.
		var blocks []mediumreader.Block
		sel.Children().Each(func(_ int, child *goquery.Selection) {
			blocks = append(blocks, classify(child)...)
		})
		return blocks
	}

	return nil
}

func paragraph(sel *goquery.Selection) []mediumreader.Block {
	text := collapseText(sel.Text())
	if text == "" {
		return nil
	}

	p := mediumreader.Paragraph{Text: text}
	spans := inlineSpans(sel.Get(0))
	// A single unformatted span adds nothing over the plain text.
	if len(spans) > 1 || (len(spans) == 1 && (spans[0].Bold || spans[0].Italic || spans[0].Href != "")) {
		p.Spans = spans
	}
	return []mediumreader.Block{p}
}

func image(sel *goquery.Selection, altFallback string) []mediumreader.Block {
	if sel.Length() == 0 {
		return nil
	}
	src, _ := sel.Attr("src")
	if src == "" {
		// Lazy-loaded images keep the real URL off to the side.
		src, _ = sel.Attr("data-src")
	}
	if src == "" {
		return nil
	}
	alt, _ := sel.Attr("alt")
	if alt == "" {
		alt = altFallback
	}
	return []mediumreader.Block{mediumreader.Image{Src: src, Alt: alt}}
}

func codeBlock(sel *goquery.Selection) []mediumreader.Block {
	// Preformatted text keeps its newlines; only outer padding is trimmed.
	text := strings.Trim(sel.Text(), "\n")
	if strings.TrimSpace(text) == "" {
		return nil
	}

	language := languageFromClass(sel)
	if language == "" {
		language = languageFromClass(sel.Find("code").First())
	}
	return []mediumreader.Block{mediumreader.CodeBlock{Text: text, Language: language}}
}

func languageFromClass(sel *goquery.Selection) string {
	class, _ := sel.Attr("class")
	for _, c := range strings.Fields(class) {
		if lang, ok := strings.CutPrefix(c, "language-"); ok {
			return lang
		}
	}
	return ""
}

func list(sel *goquery.Selection, ordered bool) []mediumreader.Block {
	var items []string
	sel.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		if text := collapseText(li.Text()); text != "" {
			items = append(items, text)
		}
	})
	if len(items) == 0 {
		return nil
	}
	return []mediumreader.Block{mediumreader.List{Ordered: ordered, Items: items}}
}

// inlineSpans flattens a paragraph node into formatting runs. Nested
// formatting elements combine (bold inside a link yields a bold link span).
func inlineSpans(node *html.Node) []mediumreader.Span {
	if node == nil {
		return nil
	}
	spans := appendSpans(nil, node, mediumreader.Span{})

	// Trim outer whitespace without disturbing inter-span spacing.
	if len(spans) > 0 {
		spans[0].Text = strings.TrimLeft(spans[0].Text, " ")
		last := len(spans) - 1
		spans[last].Text = strings.TrimRight(spans[last].Text, " ")
	}

	out := spans[:0]
	for _, s := range spans {
		if s.Text != "" {
			out = append(out, s)
		}
	}
	return out
}

func appendSpans(spans []mediumreader.Span, node *html.Node, state mediumreader.Span) []mediumreader.Span {
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			text := collapseSpace(c.Data)
			if text == "" {
				continue
			}
			span := state
			span.Text = text
			spans = append(spans, span)

		case html.ElementNode:
			next := state
			switch c.Data {
			case "strong", "b":
				next.Bold = true
			case "em", "i":
				next.Italic = true
			case "a":
				next.Href = attrValue(c, "href")
			}
			spans = appendSpans(spans, c, next)
		}
	}
	return spans
}

func attrValue(node *html.Node, key string) string {
	for _, a := range node.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// collapseText collapses all whitespace runs and trims the result.
func collapseText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// collapseSpace collapses whitespace runs to single spaces but preserves
// leading/trailing spaces, which carry meaning between adjacent spans.
func collapseSpace(s string) string {
	var b strings.Builder
	space := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !space {
				b.WriteRune(' ')
				space = true
			}
			continue
		}
		b.WriteRune(r)
		space = false
	}
	return b.String()
}
