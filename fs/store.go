package fs

import (
	"context"
	"os"
	"path/filepath"

	mediumreader "github.com/abdukarimovhm/medium-reader"
)

// Ensure Store implements mediumreader.ArticleStore at compile time.
var _ mediumreader.ArticleStore = (*Store)(nil)

// Store writes rendered documents into a directory with atomic semantics:
// the document is written to a temporary file and renamed into place, so a
// failure mid-write never leaves a truncated .html behind.
type Store struct {
	dir string
}

// NewStore creates a Store writing into dir. The directory is created on
// first save if absent.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Save persists the document under a collision-free name derived from the
// title and returns the final path.
func (s *Store) Save(ctx context.Context, title, document string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", mediumreader.Errorf(mediumreader.EINTERNAL, "create directory %s: %v", s.dir, err)
	}

	name := ResolveCollision(s.dir, Slugify(title))
	finalPath := filepath.Join(s.dir, name+".html")

	tmp, err := os.CreateTemp(s.dir, "."+name+"-*.tmp")
	if err != nil {
		return "", mediumreader.Errorf(mediumreader.EINTERNAL, "create temp file: %v", err)
	}

	if _, err := tmp.WriteString(document); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", mediumreader.Errorf(mediumreader.EINTERNAL, "write document: %v", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", mediumreader.Errorf(mediumreader.EINTERNAL, "write document: %v", err)
	}

	if err := os.Rename(tmp.Name(), finalPath); err != nil {
		os.Remove(tmp.Name())
		return "", mediumreader.Errorf(mediumreader.EINTERNAL, "save document: %v", err)
	}

	return finalPath, nil
}
