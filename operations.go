package memhashmap

// Get - Gets the value that corresponds to the given key.
//   - key is the identifier of an entry
//
// It returns:
//   - value is the value of the matching entry if found, otherwise the zero value of V
//   - found is true if the key was present in the hash map
func (M *MemHashMap[K, V]) Get(key K) (value V, found bool) {
	value, found = M.buckets.Lookup(key)
	return
}

// GetOrDefault - Gets the value that corresponds to the given key, or the given default when the
// key is absent.
//   - key is the identifier of an entry
//   - defaultValue is the value to return when the key is absent
func (M *MemHashMap[K, V]) GetOrDefault(key K, defaultValue V) (value V) {
	value, found := M.buckets.Lookup(key)
	if !found {
		value = defaultValue
	}

	return
}

// Contains - Returns true if the given key is present in the hash map
func (M *MemHashMap[K, V]) Contains(key K) bool {
	return M.buckets.Contains(key)
}

// Set - Updates an existing entry with a new value or adds it if no existing is found with same key.
// An updated entry keeps its position in its collision chain and never triggers growth. When adding
// pushes the number of entries above the number of buckets, the bucket array doubles and all entries
// are redistributed.
//   - key is the identifier of an entry
//   - value is the value to store along with its key
func (M *MemHashMap[K, V]) Set(key K, value V) {
	if added := M.buckets.Upsert(key, value); !added {
		return
	}

	M.size++
	if M.size > M.buckets.NumBuckets() {
		M.buckets.Expand()
	}
}

// Pop - Returns the value corresponding to key and removes its entry from the hash map.
// Popping never shrinks the bucket array.
//   - key is the identifier of an entry
//
// It returns:
//   - value is the value of the matching entry if found, otherwise the zero value of V
//   - found is true if the key was present in the hash map
func (M *MemHashMap[K, V]) Pop(key K) (value V, found bool) {
	value, found = M.buckets.Remove(key)
	if found {
		M.size--
	}

	return
}

// Modify - Replaces the value stored under key by the result of applying f to it, keeping the
// entry's position in its collision chain. A key not present leaves the hash map untouched.
//   - key is the identifier of an entry
//   - f is applied to the current value and must return the value to store
//
// It returns:
//   - found is true if the key was present in the hash map
func (M *MemHashMap[K, V]) Modify(key K, f func(value V) V) (found bool) {
	found = M.buckets.Modify(key, f)
	return
}

// Len - Returns the number of entries currently held by the hash map
func (M *MemHashMap[K, V]) Len() int {
	return M.size
}

// Clear - Removes all entries, keeping the current number of buckets
func (M *MemHashMap[K, V]) Clear() {
	M.buckets.Clear()
	M.size = 0
}

// Keys - Returns the keys of all entries, in the same order as Entries lists them
func (M *MemHashMap[K, V]) Keys() (keys []K) {
	keys = make([]K, 0, M.size)
	M.buckets.Range(func(key K, value V) bool {
		keys = append(keys, key)
		return true
	})

	return
}

// Values - Returns the values of all entries, in the same order as Entries lists them
func (M *MemHashMap[K, V]) Values() (values []V) {
	values = make([]V, 0, M.size)
	M.buckets.Range(func(key K, value V) bool {
		values = append(values, value)
		return true
	})

	return
}

// Entries - Returns all entries flattened into one slice, in bucket order and within a bucket in
// insertion order among entries not replaced. The order is an artifact of the current bucket count
// and should not be relied upon across growth or rehash.
func (M *MemHashMap[K, V]) Entries() (entries []Entry[K, V]) {
	list := M.buckets.EntryList()

	entries = make([]Entry[K, V], 0, len(list))
	for _, entry := range list {
		entries = append(entries, Entry[K, V]{Key: entry.Key, Value: entry.Value})
	}

	return
}

// Range - Calls f for every entry in the hash map until f returns false. Entries are visited
// bucket by bucket and within a bucket in chain order. The hash map must not be mutated during
// the call.
//   - f is called with the key and value of every entry, returning false stops the iteration
func (M *MemHashMap[K, V]) Range(f func(key K, value V) bool) {
	M.buckets.Range(f)
}

// Stat - Walks through the entire set of buckets and produces a HashMapStat struct with information
// on usage and distribution over buckets.
//   - includeDistribution set to true will include a slice of length Buckets with number of entries per bucket, false will set HashMapStat.BucketDistribution to nil.
func (M *MemHashMap[K, V]) Stat(includeDistribution bool) (hashMapStat HashMapStat) {
	lengths := M.buckets.ChainLengths()

	hashMapStat.Records = M.size
	hashMapStat.Buckets = len(lengths)

	// Process chain lengths bucket by bucket
	for _, length := range lengths {
		if length > hashMapStat.MaxChainLength {
			hashMapStat.MaxChainLength = length
		}
		if length == 0 {
			hashMapStat.EmptyBuckets++
		}
	}

	if includeDistribution {
		hashMapStat.BucketDistribution = lengths
	}

	return
}
