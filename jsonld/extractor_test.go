package jsonld_test

import (
	"testing"

	mediumreader "github.com/abdukarimovhm/medium-reader"
	"github.com/abdukarimovhm/medium-reader/jsonld"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sourceURL = "https://medium.com/@author/test-title"

func page(script string) string {
	return `<html><head><script type="application/ld+json">` + script + `</script></head><body></body></html>`
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts article from JSON-LD", func(t *testing.T) {
		t.Parallel()

		html := page(`{
			"@type": "Article",
			"headline": "Test Title",
			"articleBody": "Para one.\n\nPara two.",
			"author": {"name": "Jane Writer"},
			"datePublished": "2024-03-01T12:00:00Z"
		}`)

		article, err := jsonld.NewExtractor().Extract(html, sourceURL)
		require.NoError(t, err)

		assert.Equal(t, "Test Title", article.Title)
		assert.Equal(t, "Jane Writer", article.Author)
		assert.Equal(t, "2024-03-01T12:00:00Z", article.PublishedDate)
		assert.Equal(t, sourceURL, article.SourceURL)
		require.Len(t, article.Blocks, 2)
		assert.Equal(t, mediumreader.Paragraph{Text: "Para one."}, article.Blocks[0])
		assert.Equal(t, mediumreader.Paragraph{Text: "Para two."}, article.Blocks[1])
		assert.False(t, article.Truncated)
	})

	t.Run("preserves paragraph order", func(t *testing.T) {
		t.Parallel()

		html := page(`{"@type": "BlogPosting", "headline": "T", "articleBody": "First.\n\nSecond.\n\nThird."}`)

		article, err := jsonld.NewExtractor().Extract(html, sourceURL)
		require.NoError(t, err)

		require.Len(t, article.Blocks, 3)
		assert.Equal(t, "First.", mediumreader.BlockText(article.Blocks[0]))
		assert.Equal(t, "Second.", mediumreader.BlockText(article.Blocks[1]))
		assert.Equal(t, "Third.", mediumreader.BlockText(article.Blocks[2]))
	})

	t.Run("accepts top-level array of records", func(t *testing.T) {
		t.Parallel()

		html := page(`[
			{"@type": "Organization", "name": "Medium"},
			{"@type": "NewsArticle", "headline": "From Array", "articleBody": "Body text."}
		]`)

		article, err := jsonld.NewExtractor().Extract(html, sourceURL)
		require.NoError(t, err)

		assert.Equal(t, "From Array", article.Title)
	})

	t.Run("skips null array elements", func(t *testing.T) {
		t.Parallel()

		html := page(`[null, {"@type": "Article", "headline": "Real Title", "articleBody": "Real body."}]`)

		article, err := jsonld.NewExtractor().Extract(html, sourceURL)
		require.NoError(t, err)

		assert.Equal(t, "Real Title", article.Title)
	})

	t.Run("accepts @type array containing article", func(t *testing.T) {
		t.Parallel()

		html := page(`{"@type": ["Thing", "TechArticle"], "headline": "Typed", "articleBody": "Body."}`)

		article, err := jsonld.NewExtractor().Extract(html, sourceURL)
		require.NoError(t, err)

		assert.Equal(t, "Typed", article.Title)
	})

	t.Run("author as string", func(t *testing.T) {
		t.Parallel()

		html := page(`{"@type": "Article", "headline": "T", "articleBody": "B.", "author": "Jane Writer"}`)

		article, err := jsonld.NewExtractor().Extract(html, sourceURL)
		require.NoError(t, err)

		assert.Equal(t, "Jane Writer", article.Author)
	})

	t.Run("author as array of objects", func(t *testing.T) {
		t.Parallel()

		html := page(`{"@type": "Article", "headline": "T", "articleBody": "B.", "author": [{"name": "First Author"}, {"name": "Second"}]}`)

		article, err := jsonld.NewExtractor().Extract(html, sourceURL)
		require.NoError(t, err)

		assert.Equal(t, "First Author", article.Author)
	})

	t.Run("image as object", func(t *testing.T) {
		t.Parallel()

		html := page(`{"@type": "Article", "headline": "T", "articleBody": "B.", "image": {"url": "https://example.com/hero.png"}}`)

		article, err := jsonld.NewExtractor().Extract(html, sourceURL)
		require.NoError(t, err)

		assert.Equal(t, "https://example.com/hero.png", article.HeroImage)
	})

	t.Run("falls back to dateCreated", func(t *testing.T) {
		t.Parallel()

		html := page(`{"@type": "Article", "headline": "T", "articleBody": "B.", "dateCreated": "2023-01-01"}`)

		article, err := jsonld.NewExtractor().Extract(html, sourceURL)
		require.NoError(t, err)

		assert.Equal(t, "2023-01-01", article.PublishedDate)
	})

	t.Run("declines when no JSON-LD present", func(t *testing.T) {
		t.Parallel()

		_, err := jsonld.NewExtractor().Extract("<html><body><p>hello</p></body></html>", sourceURL)

		require.Error(t, err)
		assert.Equal(t, mediumreader.ENOTFOUND, mediumreader.ErrorCode(err))
		assert.Equal(t, "no structured data", mediumreader.ErrorMessage(err))
	})

	t.Run("declines when record has no body", func(t *testing.T) {
		t.Parallel()

		html := page(`{"@type": "Article", "headline": "Title Only"}`)

		_, err := jsonld.NewExtractor().Extract(html, sourceURL)

		require.Error(t, err)
		assert.Equal(t, mediumreader.ENOTFOUND, mediumreader.ErrorCode(err))
	})

	t.Run("declines when body is whitespace", func(t *testing.T) {
		t.Parallel()

		html := page(`{"@type": "Article", "headline": "T", "articleBody": "  \n\n  "}`)

		_, err := jsonld.NewExtractor().Extract(html, sourceURL)

		require.Error(t, err)
		assert.Equal(t, mediumreader.ENOTFOUND, mediumreader.ErrorCode(err))
	})

	t.Run("skips malformed JSON and keeps scanning", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
			<script type="application/ld+json">{not json</script>
			<script type="application/ld+json">{"@type": "Article", "headline": "Second Script", "articleBody": "B."}</script>
		</head><body></body></html>`

		article, err := jsonld.NewExtractor().Extract(html, sourceURL)
		require.NoError(t, err)

		assert.Equal(t, "Second Script", article.Title)
	})

	t.Run("ignores non-article records", func(t *testing.T) {
		t.Parallel()

		html := page(`{"@type": "WebSite", "headline": "Not An Article", "articleBody": "B."}`)

		_, err := jsonld.NewExtractor().Extract(html, sourceURL)

		require.Error(t, err)
		assert.Equal(t, mediumreader.ENOTFOUND, mediumreader.ErrorCode(err))
	})
}
