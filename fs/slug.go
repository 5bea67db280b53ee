// Package fs provides filename sanitization and atomic file storage for
// rendered articles.
package fs

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// maxSlugLen bounds slugs so deeply-nested paths stay under filesystem
// filename limits with room for a collision suffix and extension.
const maxSlugLen = 80

// Slugify turns a free-text title into a filesystem-safe, human-readable
// slug: lowercase, alphanumeric runs joined by single hyphens, bounded
// length. It is pure, deterministic and idempotent. An empty result falls
// back to "article".
func Slugify(title string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
		default:
			// Whitespace, punctuation and anything illegal in a filename
			// collapses into a single separator.
			pending = true
		}
	}

	slug := b.String()
	if len(slug) > maxSlugLen {
		slug = strings.TrimRight(slug[:maxSlugLen], "-")
	}
	if slug == "" {
		return "article"
	}
	return slug
}

// ResolveCollision returns a filename (without extension) that does not
// collide with an existing .html file in dir: baseName unchanged when free,
// otherwise baseName-1, baseName-2, ... checked in increasing order. The
// choice is deterministic for a given directory state.
func ResolveCollision(dir, baseName string) string {
	if !exists(filepath.Join(dir, baseName+".html")) {
		return baseName
	}
	for n := 1; ; n++ {
		candidate := baseName + "-" + strconv.Itoa(n)
		if !exists(filepath.Join(dir, candidate+".html")) {
			return candidate
		}
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
