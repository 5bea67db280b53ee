package slog

import (
	"log/slog"
	"time"

	mediumreader "github.com/abdukarimovhm/medium-reader"
)

// Ensure LoggingExtractor implements mediumreader.Extractor.
var _ mediumreader.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an extraction strategy with debug logging, naming
// the strategy so chain behavior is visible when diagnosing markup drift.
type LoggingExtractor struct {
	next   mediumreader.Extractor
	name   string
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next mediumreader.Extractor, name string, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, name: name, logger: logger}
}

// Extract delegates to the wrapped strategy and logs the outcome.
func (e *LoggingExtractor) Extract(rawHTML, sourceURL string) (*mediumreader.Article, error) {
	begin := time.Now()
	article, err := e.next.Extract(rawHTML, sourceURL)
	if err != nil {
		e.logger.Debug("extraction strategy declined",
			"strategy", e.name,
			"duration", time.Since(begin),
			"reason", mediumreader.ErrorMessage(err),
		)
		return nil, err
	}
	e.logger.Debug("extraction strategy succeeded",
		"strategy", e.name,
		"duration", time.Since(begin),
		"blocks", len(article.Blocks),
		"truncated", article.Truncated,
	)
	return article, nil
}
