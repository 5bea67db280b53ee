package mock

import (
	"context"

	mediumreader "github.com/abdukarimovhm/medium-reader"
)

var _ mediumreader.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of mediumreader.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
