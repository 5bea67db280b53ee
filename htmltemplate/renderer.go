// Package htmltemplate renders a normalized article as a standalone HTML
// document. All styling is embedded; the output needs no network access to
// display correctly.
package htmltemplate

import (
	"bytes"
	_ "embed"
	"fmt"
	"html"
	"html/template"
	"strings"

	mediumreader "github.com/abdukarimovhm/medium-reader"
	"github.com/araddon/dateparse"
)

//go:embed article.html.tmpl
var templateText string

// Ensure Renderer implements mediumreader.Renderer at compile time.
var _ mediumreader.Renderer = (*Renderer)(nil)

// Renderer serializes articles with an embedded html/template.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	tmpl := template.Must(template.New("article").Funcs(template.FuncMap{
		"blockHTML":  blockHTML,
		"formatDate": formatDate,
	}).Parse(templateText))
	return &Renderer{tmpl: tmpl}
}

// Render produces the complete document for a validated article.
func (r *Renderer) Render(article *mediumreader.Article) (string, error) {
	if err := article.Validate(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, article); err != nil {
		return "", mediumreader.Errorf(mediumreader.EINTERNAL, "render article: %v", err)
	}
	return buf.String(), nil
}

// formatDate turns a machine date into a readable one. Publish dates in the
// wild come in many shapes, so parsing is lenient; an unparseable date is
// shown as-is rather than dropped.
func formatDate(date string) string {
	if date == "" {
		return ""
	}
	t, err := dateparse.ParseAny(date)
	if err != nil {
		return date
	}
	return t.Format("January 2, 2006")
}

// blockHTML renders one content block. Markup is built by hand with
// explicit escaping because the block set is closed and each variant has
// exactly one rendering.
func blockHTML(b mediumreader.Block) template.HTML {
	var sb strings.Builder

	switch v := b.(type) {
	case mediumreader.Heading:
		fmt.Fprintf(&sb, "<h%d>%s</h%d>", v.Level, html.EscapeString(v.Text), v.Level)

	case mediumreader.Paragraph:
		sb.WriteString("<p>")
		if len(v.Spans) == 0 {
			sb.WriteString(html.EscapeString(v.Text))
		} else {
			for _, span := range v.Spans {
				writeSpan(&sb, span)
			}
		}
		sb.WriteString("</p>")

	case mediumreader.Image:
		sb.WriteString("<figure>")
		fmt.Fprintf(&sb, `<img src="%s" alt="%s" loading="lazy">`,
			html.EscapeString(v.Src), html.EscapeString(v.Alt))
		if v.Alt != "" {
			fmt.Fprintf(&sb, "<figcaption>%s</figcaption>", html.EscapeString(v.Alt))
		}
		sb.WriteString("</figure>")

	case mediumreader.CodeBlock:
		sb.WriteString("<pre><code")
		if v.Language != "" {
			fmt.Fprintf(&sb, ` class="language-%s"`, html.EscapeString(v.Language))
		}
		sb.WriteString(">")
		sb.WriteString(html.EscapeString(v.Text))
		sb.WriteString("</code></pre>")

	case mediumreader.Quote:
		fmt.Fprintf(&sb, "<blockquote>%s</blockquote>", html.EscapeString(v.Text))

	case mediumreader.List:
		tag := "ul"
		if v.Ordered {
			tag = "ol"
		}
		fmt.Fprintf(&sb, "<%s>", tag)
		for _, item := range v.Items {
			fmt.Fprintf(&sb, "<li>%s</li>", html.EscapeString(item))
		}
		fmt.Fprintf(&sb, "</%s>", tag)
	}

	return template.HTML(sb.String())
}

func writeSpan(sb *strings.Builder, span mediumreader.Span) {
	text := html.EscapeString(span.Text)
	if span.Bold {
		text = "<strong>" + text + "</strong>"
	}
	if span.Italic {
		text = "<em>" + text + "</em>"
	}
	if span.Href != "" {
		text = fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(span.Href), text)
	}
	sb.WriteString(text)
}
