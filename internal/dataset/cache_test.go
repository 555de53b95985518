package dataset_test

import (
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YnHaddad/MSBA382Dash/internal/dataset"
	"github.com/YnHaddad/MSBA382Dash/internal/dataset/datasettest"
)

func TestCacheReusesUnchangedSource(t *testing.T) {
	path := datasettest.WriteSample(t, t.TempDir())
	cache := dataset.NewCache(dataset.NewLoader(nil, nil))

	first, err := cache.Get(path)
	require.NoError(t, err)
	second, err := cache.Get(path)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, dataset.CacheStats{Hits: 1, Misses: 1}, cache.Stats())
}

func TestCacheReloadsWhenIdentityChanges(t *testing.T) {
	dir := t.TempDir()
	path := datasettest.WriteSample(t, dir)
	cache := dataset.NewCache(nil)

	first, err := cache.Get(path)
	require.NoError(t, err)

	datasettest.WriteWorkbook(t, dir, "coverage.xlsx", []datasettest.Sheet{
		{Name: "BCG", Header: datasettest.Header(2023), Rows: [][]any{{"Jordan", "MENA", 99}}},
	})
	// Force a distinct modification time even on coarse-grained filesystems.
	later := first.Source().ModTime.Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, later, later))

	second, err := cache.Get(path)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, []string{"BCG"}, second.Indicators())
	assert.Equal(t, []string{"DTP1", "DTP3", "MCV1"}, first.Indicators(), "old snapshot is untouched")
}

func TestCacheInvalidate(t *testing.T) {
	path := datasettest.WriteSample(t, t.TempDir())
	cache := dataset.NewCache(nil)

	first, err := cache.Get(path)
	require.NoError(t, err)

	cache.Invalidate()

	second, err := cache.Get(path)
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, int64(2), cache.Stats().Misses)
}

func TestCacheMissingSource(t *testing.T) {
	cache := dataset.NewCache(nil)
	_, err := cache.Get("does-not-exist.xlsx")
	assert.ErrorIs(t, err, dataset.ErrSourceNotFound)
}

func TestCacheConcurrentGet(t *testing.T) {
	path := datasettest.WriteSample(t, t.TempDir())
	cache := dataset.NewCache(nil)

	var wg sync.WaitGroup
	results := make([]*dataset.Dataset, 20)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ds, err := cache.Get(path)
			assert.NoError(t, err)
			results[i] = ds
		}(i)
	}
	wg.Wait()

	for _, ds := range results {
		assert.Same(t, results[0], ds)
	}
	assert.Equal(t, int64(1), cache.Stats().Misses)
}
