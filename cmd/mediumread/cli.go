package main

import (
	"context"
	"io"

	mediumreader "github.com/abdukarimovhm/medium-reader"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Fetcher   mediumreader.Fetcher
	Extractor mediumreader.Extractor
	Renderer  mediumreader.Renderer
	Store     mediumreader.ArticleStore
	Opener    mediumreader.Opener
}

// ReadCmd handles the fetch-extract-render-save pipeline for one article.
type ReadCmd struct {
	URL    string
	NoOpen bool
}
