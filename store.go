package mediumreader

import "context"

// ArticleStore persists rendered documents under deterministic,
// collision-free filenames derived from the article title.
type ArticleStore interface {
	// Save writes the rendered document and returns the final path.
	// Either a complete file is written or nothing is; a failure mid-write
	// never leaves a truncated file behind.
	Save(ctx context.Context, title, document string) (path string, err error)
}
