package memhashmap

import (
	"github.com/gostonefire/memhashmap/hashfunc"
	"sync"
)

// SyncMemHashMap - A MemHashMap guarded by a sync.RWMutex making it safe for concurrent use by
// multiple goroutines. Read operations share the read lock while mutating operations take the
// write lock, so the wrapper suits workloads with many readers over few writers. The zero value
// is not usable, use NewSyncMemHashMap.
type SyncMemHashMap[K, V any] struct {
	mutex sync.RWMutex
	inner *MemHashMap[K, V]
}

// NewSyncMemHashMap - Returns a new synchronized in-memory hash map holding keys of type K and
// values of type V. Parameters are those of NewMemHashMap.
//   - initialCapacity is the number of buckets to start out with, it is rounded up to the nearest exponent of 2 and zero selects the default of 8 buckets.
//   - bucketAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface. If nil, a stock algorithm is selected for string and byte slice keys, any other key type requires a custom one.
//
// It returns:
//   - syncMemHashMap is a pointer to a SyncMemHashMap struct
//   - err is a normal Go Error which should be nil if everything went ok
func NewSyncMemHashMap[K, V any](initialCapacity int, bucketAlgorithm hashfunc.HashAlgorithm[K]) (syncMemHashMap *SyncMemHashMap[K, V], err error) {
	inner, err := NewMemHashMap[K, V](initialCapacity, bucketAlgorithm)
	if err != nil {
		return
	}

	syncMemHashMap = &SyncMemHashMap[K, V]{inner: inner}

	return
}

// Get - Gets the value that corresponds to the given key, see MemHashMap.Get
func (S *SyncMemHashMap[K, V]) Get(key K) (value V, found bool) {
	S.mutex.RLock()
	defer S.mutex.RUnlock()

	value, found = S.inner.Get(key)
	return
}

// GetOrDefault - Gets the value that corresponds to the given key, or the given default when the
// key is absent, see MemHashMap.GetOrDefault
func (S *SyncMemHashMap[K, V]) GetOrDefault(key K, defaultValue V) (value V) {
	S.mutex.RLock()
	defer S.mutex.RUnlock()

	value = S.inner.GetOrDefault(key, defaultValue)
	return
}

// Contains - Returns true if the given key is present in the hash map
func (S *SyncMemHashMap[K, V]) Contains(key K) bool {
	S.mutex.RLock()
	defer S.mutex.RUnlock()

	return S.inner.Contains(key)
}

// Set - Updates an existing entry with a new value or adds it if no existing is found with same
// key, see MemHashMap.Set
func (S *SyncMemHashMap[K, V]) Set(key K, value V) {
	S.mutex.Lock()
	defer S.mutex.Unlock()

	S.inner.Set(key, value)
}

// Pop - Returns the value corresponding to key and removes its entry from the hash map, see
// MemHashMap.Pop
func (S *SyncMemHashMap[K, V]) Pop(key K) (value V, found bool) {
	S.mutex.Lock()
	defer S.mutex.Unlock()

	value, found = S.inner.Pop(key)
	return
}

// Modify - Replaces the value stored under key by the result of applying f to it, see
// MemHashMap.Modify. The write lock is held while f runs, so f must not call back into the map.
func (S *SyncMemHashMap[K, V]) Modify(key K, f func(value V) V) (found bool) {
	S.mutex.Lock()
	defer S.mutex.Unlock()

	found = S.inner.Modify(key, f)
	return
}

// Len - Returns the number of entries currently held by the hash map
func (S *SyncMemHashMap[K, V]) Len() int {
	S.mutex.RLock()
	defer S.mutex.RUnlock()

	return S.inner.Len()
}

// Clear - Removes all entries, keeping the current number of buckets
func (S *SyncMemHashMap[K, V]) Clear() {
	S.mutex.Lock()
	defer S.mutex.Unlock()

	S.inner.Clear()
}

// Keys - Returns the keys of all entries, see MemHashMap.Keys
func (S *SyncMemHashMap[K, V]) Keys() (keys []K) {
	S.mutex.RLock()
	defer S.mutex.RUnlock()

	keys = S.inner.Keys()
	return
}

// Values - Returns the values of all entries, see MemHashMap.Values
func (S *SyncMemHashMap[K, V]) Values() (values []V) {
	S.mutex.RLock()
	defer S.mutex.RUnlock()

	values = S.inner.Values()
	return
}

// Entries - Returns all entries flattened into one slice, see MemHashMap.Entries
func (S *SyncMemHashMap[K, V]) Entries() (entries []Entry[K, V]) {
	S.mutex.RLock()
	defer S.mutex.RUnlock()

	entries = S.inner.Entries()
	return
}

// Range - Calls f for every entry in the hash map until f returns false, see MemHashMap.Range.
// The read lock is held for the duration of the call, so f must not mutate the map or deadlock
// follows.
func (S *SyncMemHashMap[K, V]) Range(f func(key K, value V) bool) {
	S.mutex.RLock()
	defer S.mutex.RUnlock()

	S.inner.Range(f)
}

// Rehash - Rebuilds the bucket array at a new capacity, see MemHashMap.Rehash
func (S *SyncMemHashMap[K, V]) Rehash(newCapacity int) (err error) {
	S.mutex.Lock()
	defer S.mutex.Unlock()

	err = S.inner.Rehash(newCapacity)
	return
}

// Stat - Produces a HashMapStat struct with information on usage and distribution over buckets,
// see MemHashMap.Stat
func (S *SyncMemHashMap[K, V]) Stat(includeDistribution bool) (hashMapStat HashMapStat) {
	S.mutex.RLock()
	defer S.mutex.RUnlock()

	hashMapStat = S.inner.Stat(includeDistribution)
	return
}
