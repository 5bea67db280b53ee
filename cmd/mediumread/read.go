package main

import (
	"fmt"
	"net/url"
	"strings"

	mediumreader "github.com/abdukarimovhm/medium-reader"
)

// Run executes the read command: fetch the page, extract the article,
// render it and save it locally, then hand it to the browser.
func (c *ReadCmd) Run(deps *Dependencies) error {
	if !looksLikeMediumURL(c.URL) {
		fmt.Fprintf(deps.Stderr, "warning: %s does not look like a Medium URL, trying anyway\n", c.URL)
	}

	fmt.Fprintf(deps.Stdout, "Fetching %s\n", c.URL)
	rawHTML, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		return categorize(err)
	}

	fmt.Fprintln(deps.Stdout, "Extracting article content")
	article, err := deps.Extractor.Extract(rawHTML, c.URL)
	if err != nil {
		return categorize(err)
	}

	if article.Truncated {
		fmt.Fprintln(deps.Stderr, "warning: this looks like a member-only preview; the saved copy may be incomplete")
	}

	document, err := deps.Renderer.Render(article)
	if err != nil {
		return categorize(err)
	}

	path, err := deps.Store.Save(deps.Ctx, article.Title, document)
	if err != nil {
		return categorize(err)
	}

	fmt.Fprintf(deps.Stdout, "Saved %q to %s\n", article.Title, path)

	// The article is already on disk, so a viewer failure is only a warning.
	if !c.NoOpen {
		if err := deps.Opener.Open(path); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: could not open article: %s\n", mediumreader.ErrorMessage(err))
		}
	}

	return nil
}

// categorize prefixes an error message with its user-facing category so the
// shell output distinguishes a dead network from unrecognized markup.
func categorize(err error) error {
	msg := mediumreader.ErrorMessage(err)
	switch mediumreader.ErrorCode(err) {
	case mediumreader.EUNAVAILABLE:
		return fmt.Errorf("network error: %s", msg)
	case mediumreader.EINVALID:
		return fmt.Errorf("parse error: %s", msg)
	case mediumreader.EINTERNAL:
		return fmt.Errorf("filesystem error: %s", msg)
	default:
		return fmt.Errorf("error: %s", msg)
	}
}

func looksLikeMediumURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	host := strings.ToLower(u.Host)
	return host == "medium.com" || host == "www.medium.com" || strings.HasSuffix(host, ".medium.com")
}
