package mediumreader

// Renderer serializes a validated article into a standalone document.
// Implementations must produce output that is viewable offline with no
// external resource dependencies. Rendering has no side effects; writing
// the result to storage is the caller's responsibility.
type Renderer interface {
	Render(article *Article) (string, error)
}
