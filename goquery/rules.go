package goquery

// The fallback heuristics live here as ordered data rather than branching
// logic, so markup-format drift can be patched without touching the
// extractor control flow.

// textRule locates a piece of text in the document. Selector picks the
// candidate nodes; Attr, when set, reads an attribute instead of the node
// text. Rules are tried in order and the first usable match wins.
type textRule struct {
	Selector string
	Attr     string
}

// titleRules locate the article title, most specific first.
var titleRules = []textRule{
	{Selector: `h1[data-testid="storyTitle"]`},
	{Selector: `article h1`},
	{Selector: `meta[property="og:title"]`, Attr: "content"},
	{Selector: `meta[name="twitter:title"]`, Attr: "content"},
	{Selector: `h1`},
	{Selector: `title`},
}

// authorRules locate the byline, most specific first. The trailing rule
// reads the first anchor in the article's own header, the usual home of a
// byline when no explicit author markup exists.
var authorRules = []textRule{
	{Selector: `a[data-testid="authorName"]`},
	{Selector: `meta[name="author"]`, Attr: "content"},
	{Selector: `a[rel="author"]`},
	{Selector: `link[rel="author"]`, Attr: "title"},
	{Selector: `article header a`},
}

// dateRules locate the publish date.
var dateRules = []textRule{
	{Selector: `meta[property="article:published_time"]`, Attr: "content"},
	{Selector: `time[datetime]`, Attr: "datetime"},
}

// containerRules locate the element holding the article body, most
// specific first. When none match, a paragraph-density scan takes over.
var containerRules = []string{
	`div[data-testid="postBody"]`,
	`article section`,
	`article`,
	`main`,
}

// chromeWords are texts that look like titles or bylines but belong to the
// site chrome, never to the article.
var chromeWords = map[string]bool{
	"medium":  true,
	"home":    true,
	"about":   true,
	"follow":  true,
	"sign in": true,
	"sign up": true,
}

// minTitleLen rejects single-word chrome fragments matched by the broad
// trailing rules (bare h1, title tag). Counted in runes.
const minTitleLen = 5

// minContainerScore is the minimum number of paragraph-like children an
// element needs to be considered a body container by the density scan.
const minContainerScore = 2
