package photos

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// touch creates an image-sized placeholder file with the given modification time.
func touch(t *testing.T, dir, name string, mtime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("not really a jpeg"), 0o644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

func mustPhoto(t *testing.T, dir, name string) *Photo {
	t.Helper()
	p, err := NewPhoto(touch(t, dir, name, time.Date(2024, 3, 5, 12, 0, 0, 0, time.Local)))
	require.NoError(t, err)
	return p
}
