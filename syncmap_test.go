package memhashmap

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sync"
	"testing"
)

func TestNewSyncMemHashMap(t *testing.T) {
	t.Run("creates a new sync mem hash map", func(t *testing.T) {
		// Execute
		smhm, err := NewSyncMemHashMap[string, int](0, nil)

		// Check
		require.NoError(t, err, "creates sync mem hash map")
		assert.Equal(t, 0, smhm.Len(), "starts out empty")
		assert.Equal(t, 8, smhm.Stat(false).Buckets, "default number of buckets")
	})

	t.Run("error when key type has no stock algorithm", func(t *testing.T) {
		// Execute
		_, err := NewSyncMemHashMap[int, int](0, nil)

		// Check
		assert.Error(t, err)
	})

	t.Run("error when supplying a negative capacity", func(t *testing.T) {
		// Execute
		_, err := NewSyncMemHashMap[string, int](-1, nil)

		// Check
		assert.Error(t, err)
	})
}

func TestSyncMemHashMapOperations(t *testing.T) {
	t.Run("exposes the full mem hash map surface", func(t *testing.T) {
		// Prepare
		smhm, err := NewSyncMemHashMap[string, int](0, nil)
		require.NoError(t, err, "creates sync mem hash map")

		// Execute and Check
		smhm.Set("a", 1)
		smhm.Set("b", 2)
		assert.Equal(t, 2, smhm.Len(), "entries added")

		value, found := smhm.Get("a")
		assert.True(t, found, "entry found")
		assert.Equal(t, 1, value, "correct value")

		assert.Equal(t, 99, smhm.GetOrDefault("c", 99), "default for absent key")
		assert.True(t, smhm.Contains("b"), "existing key reported present")

		found = smhm.Modify("a", func(value int) int { return value + 10 })
		assert.True(t, found, "entry modified")
		assert.Equal(t, 11, smhm.GetOrDefault("a", 0), "modified value stored")

		assert.Len(t, smhm.Keys(), 2, "keys listed")
		assert.Len(t, smhm.Values(), 2, "values listed")
		assert.Len(t, smhm.Entries(), 2, "entries listed")

		var visited int
		smhm.Range(func(key string, value int) bool {
			visited++
			return true
		})
		assert.Equal(t, 2, visited, "range visited all entries")

		require.NoError(t, smhm.Rehash(32), "rehashes sync mem hash map")
		assert.Equal(t, 32, smhm.Stat(false).Buckets, "rehash applied")
		assert.Equal(t, 2, smhm.Len(), "entries kept through rehash")

		value, found = smhm.Pop("a")
		assert.True(t, found, "entry popped")
		assert.Equal(t, 11, value, "popped value returned")
		assert.Equal(t, 1, smhm.Len(), "size shrunk")

		smhm.Clear()
		assert.Equal(t, 0, smhm.Len(), "cleared")
	})
}

func TestSyncMemHashMapConcurrency(t *testing.T) {
	t.Run("handles concurrent writers and readers", func(t *testing.T) {
		// Prepare
		smhm, err := NewSyncMemHashMap[uint64, uint64](0, identityAlgorithm{})
		require.NoError(t, err, "creates sync mem hash map")

		const nWriters = 8
		const nPerWriter = 200

		// Execute
		var wg sync.WaitGroup
		for w := uint64(0); w < nWriters; w++ {
			wg.Add(2)

			go func(w uint64) {
				defer wg.Done()
				for i := uint64(0); i < nPerWriter; i++ {
					smhm.Set(w*nPerWriter+i, w)
				}
			}(w)

			go func(w uint64) {
				defer wg.Done()
				for i := uint64(0); i < nPerWriter; i++ {
					smhm.Get(w*nPerWriter + i)
					smhm.Len()
				}
			}(w)
		}
		wg.Wait()

		// Check
		assert.Equal(t, nWriters*nPerWriter, smhm.Len(), "all writes landed")
		for w := uint64(0); w < nWriters; w++ {
			for i := uint64(0); i < nPerWriter; i++ {
				value, found := smhm.Get(w*nPerWriter + i)
				require.True(t, found, "entry present after concurrent writes")
				require.Equal(t, w, value, "correct value after concurrent writes")
			}
		}
	})

	t.Run("serializes modifications of a shared counter", func(t *testing.T) {
		// Prepare
		smhm, err := NewSyncMemHashMap[string, int](0, nil)
		require.NoError(t, err, "creates sync mem hash map")
		smhm.Set("counter", 0)

		const nWorkers = 8
		const nIncrements = 250

		// Execute
		var wg sync.WaitGroup
		for w := 0; w < nWorkers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < nIncrements; i++ {
					smhm.Modify("counter", func(value int) int { return value + 1 })
				}
			}()
		}
		wg.Wait()

		// Check
		assert.Equal(t, nWorkers*nIncrements, smhm.GetOrDefault("counter", -1), "no increment lost")
	})
}
