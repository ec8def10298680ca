package tabular

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCache(t *testing.T) {
	t.Run("load memoizes by path", func(t *testing.T) {
		dir := t.TempDir()
		path := writeCSV(t, dir, "items.csv", "id\nsword\n")

		cache := NewCache(4)
		first, err := cache.Load(path)
		require.NoError(t, err)
		require.Len(t, first, 1)

		// Mutating the file is invisible until eviction.
		require.NoError(t, os.WriteFile(path, []byte("id\nsword\nshield\n"), 0o644))
		second, err := cache.Load(path)
		require.NoError(t, err)
		assert.Len(t, second, 1)
		assert.Equal(t, 1, cache.Len())
	})

	t.Run("reload re-parses the file", func(t *testing.T) {
		dir := t.TempDir()
		path := writeCSV(t, dir, "items.csv", "id\nsword\n")

		cache := NewCache(4)
		_, err := cache.Load(path)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(path, []byte("id\nsword\nshield\n"), 0o644))
		records, err := cache.Reload(path)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("missing file returns error and caches nothing", func(t *testing.T) {
		cache := NewCache(4)
		records, err := cache.Load(filepath.Join(t.TempDir(), "absent.csv"))
		assert.Error(t, err)
		assert.Nil(t, records)
		assert.Equal(t, 0, cache.Len())
	})

	t.Run("evict drops a single path", func(t *testing.T) {
		dir := t.TempDir()
		a := writeCSV(t, dir, "a.csv", "id\n1\n")
		b := writeCSV(t, dir, "b.csv", "id\n2\n")

		cache := NewCache(4)
		_, err := cache.Load(a)
		require.NoError(t, err)
		_, err = cache.Load(b)
		require.NoError(t, err)
		require.Equal(t, 2, cache.Len())

		cache.Evict(a)
		assert.Equal(t, 1, cache.Len())
	})

	t.Run("size bound evicts the oldest entry", func(t *testing.T) {
		dir := t.TempDir()
		a := writeCSV(t, dir, "a.csv", "id\n1\n")
		b := writeCSV(t, dir, "b.csv", "id\n2\n")
		c := writeCSV(t, dir, "c.csv", "id\n3\n")

		cache := NewCache(2)
		for _, p := range []string{a, b, c} {
			_, err := cache.Load(p)
			require.NoError(t, err)
		}
		assert.Equal(t, 2, cache.Len())
	})
}
