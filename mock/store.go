package mock

import (
	"context"

	mediumreader "github.com/abdukarimovhm/medium-reader"
)

var _ mediumreader.ArticleStore = (*ArticleStore)(nil)

// ArticleStore is a mock implementation of mediumreader.ArticleStore.
type ArticleStore struct {
	SaveFn func(ctx context.Context, title, document string) (string, error)
}

func (s *ArticleStore) Save(ctx context.Context, title, document string) (string, error) {
	return s.SaveFn(ctx, title, document)
}
