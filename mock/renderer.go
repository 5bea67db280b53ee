package mock

import mediumreader "github.com/abdukarimovhm/medium-reader"

var _ mediumreader.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of mediumreader.Renderer.
type Renderer struct {
	RenderFn func(article *mediumreader.Article) (string, error)
}

func (r *Renderer) Render(article *mediumreader.Article) (string, error) {
	return r.RenderFn(article)
}
