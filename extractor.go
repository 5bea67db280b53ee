package mediumreader

// Extractor attempts to extract an article from raw HTML.
//
// Implementations are strategies in an ordered chain: an extractor that
// cannot find the signals it relies on declines with an ENOTFOUND error and
// the caller falls through to the next strategy. Any other error is a
// definitive parse failure for that strategy.
type Extractor interface {
	Extract(rawHTML, sourceURL string) (*Article, error)
}
