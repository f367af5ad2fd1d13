package memhashmap

import (
	"github.com/gostonefire/memhashmap/internal/buckets"
)

// MapValues - Returns a new hash map holding every key of m with f applied to its value.
// The new map reuses the bucket algorithm of m and keeps its bucket count and chain structure,
// since keys, and thereby bucket selection, are untouched. m itself is left unmodified.
// It is a package level function rather than a method since a Go method cannot introduce the new
// value type parameter W.
//   - m is the hash map to transform
//   - f is applied to every entry and must return the value to store under the entry's key
func MapValues[K, V, W any](m *MemHashMap[K, V], f func(key K, value V) W) *MemHashMap[K, W] {
	out := &MemHashMap[K, W]{
		bucketAlg: m.bucketAlg,
		buckets:   buckets.NewArray[K, W](m.buckets.NumBuckets(), m.bucketAlg.HashFunc, m.bucketAlg.KeyEqual),
		size:      m.size,
	}

	for i := 0; i < m.buckets.NumBuckets(); i++ {
		chain := m.buckets.Get(i)
		if len(chain) == 0 {
			continue
		}

		newChain := make(buckets.Chain[K, W], 0, len(chain))
		for _, entry := range chain {
			newChain = append(newChain, buckets.Entry[K, W]{Key: entry.Key, Value: f(entry.Key, entry.Value)})
		}
		out.buckets.Update(i, newChain)
	}

	return out
}

// FilterMap - Returns a new hash map holding the entries of m for which f reports true to keep,
// with f's result as their new values. Surviving entries keep their per bucket relative order, and
// the new map reuses the bucket algorithm and bucket count of m, since keys, and thereby bucket
// selection, are untouched. m itself is left unmodified.
// It is a package level function rather than a method since a Go method cannot introduce the new
// value type parameter W.
//   - m is the hash map to transform
//   - f is applied to every entry, returning the value to store and whether to keep the entry at all
func FilterMap[K, V, W any](m *MemHashMap[K, V], f func(key K, value V) (W, bool)) *MemHashMap[K, W] {
	out := &MemHashMap[K, W]{
		bucketAlg: m.bucketAlg,
		buckets:   buckets.NewArray[K, W](m.buckets.NumBuckets(), m.bucketAlg.HashFunc, m.bucketAlg.KeyEqual),
	}

	for i := 0; i < m.buckets.NumBuckets(); i++ {
		var newChain buckets.Chain[K, W]
		for _, entry := range m.buckets.Get(i) {
			if value, keep := f(entry.Key, entry.Value); keep {
				newChain = append(newChain, buckets.Entry[K, W]{Key: entry.Key, Value: value})
			}
		}

		if newChain != nil {
			out.buckets.Update(i, newChain)
			out.size += len(newChain)
		}
	}

	return out
}

// Filter - Returns a new hash map holding the entries for which the predicate reports true, with
// their values preserved. It is a value preserving FilterMap, see that function for the structural
// guarantees.
//   - predicate is applied to every entry and returns whether to keep it
func (M *MemHashMap[K, V]) Filter(predicate func(key K, value V) bool) *MemHashMap[K, V] {
	return FilterMap(M, func(key K, value V) (V, bool) {
		return value, predicate(key, value)
	})
}
