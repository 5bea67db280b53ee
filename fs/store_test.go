package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/abdukarimovhm/medium-reader/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Save(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("writes document under slugged name", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewStore(dir)

		path, err := store.Save(ctx, "Test Title", "<html>doc</html>")
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dir, "test-title.html"), path)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "<html>doc</html>", string(content))
	})

	t.Run("same title twice yields suffixed name", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewStore(dir)

		first, err := store.Save(ctx, "Test Title", "one")
		require.NoError(t, err)
		second, err := store.Save(ctx, "Test Title", "two")
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dir, "test-title.html"), first)
		assert.Equal(t, filepath.Join(dir, "test-title-1.html"), second)

		content, err := os.ReadFile(first)
		require.NoError(t, err)
		assert.Equal(t, "one", string(content), "existing file must never be overwritten")
	})

	t.Run("creates missing directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "articles")
		store := fs.NewStore(dir)

		path, err := store.Save(ctx, "Deep Save", "doc")
		require.NoError(t, err)

		assert.FileExists(t, path)
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewStore(dir)

		_, err := store.Save(ctx, "Tidy", "doc")
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "tidy.html", entries[0].Name())
	})

	t.Run("cancelled context writes nothing", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		store := fs.NewStore(dir)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := store.Save(cancelled, "Never", "doc")
		require.Error(t, err)

		entries, readErr := os.ReadDir(dir)
		require.NoError(t, readErr)
		assert.Empty(t, entries)
	})

	t.Run("uncreatable directory is a filesystem error", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

		// A path through a regular file cannot be created as a directory.
		store := fs.NewStore(filepath.Join(file, "articles"))

		_, err := store.Save(ctx, "Nope", "doc")
		require.Error(t, err)
	})
}
