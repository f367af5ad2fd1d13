package buckets

// Entry - Represents one key/value pair stored in a bucket chain
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Chain - Represents all entries sharing one bucket. Entries are kept in insertion order, where
// updating the value of an existing key keeps its position in the chain. A chain never holds two
// entries with keys that are equal under the equality function of the owning Array.
type Chain[K, V any] []Entry[K, V]

// Array - Represents the bucket array together with the hash and equality functions used to place
// keys in it. The number of buckets is always a positive power of two, hence the bucket an entry
// belongs to is selected by masking the key hash with the number of buckets minus one. All
// key level operations read exactly one chain, compute a new version of it and write it back,
// leaving every other bucket untouched.
type Array[K, V any] struct {
	chains []Chain[K, V]
	hash   func(key K) uint64
	eq     func(a, b K) bool
}

// NewArray - Returns a new Array with all chains empty.
//   - nBuckets is the number of buckets to create and must be a positive power of two
//   - hash is the function used to hash keys, its result is masked down to a bucket index
//   - eq is the function used to compare keys, keys equal under eq must hash equal
func NewArray[K, V any](nBuckets int, hash func(key K) uint64, eq func(a, b K) bool) Array[K, V] {
	return Array[K, V]{
		chains: make([]Chain[K, V], nBuckets),
		hash:   hash,
		eq:     eq,
	}
}

// NumBuckets - Returns the current number of buckets
func (A *Array[K, V]) NumBuckets() int {
	return len(A.chains)
}

// IndexFor - Returns the bucket index the given key hashes to.
// The hash is masked with the number of buckets minus one, which for a power of two number of
// buckets equals taking the hash modulo the number of buckets, in unsigned 64 bit arithmetic.
func (A *Array[K, V]) IndexFor(key K) int {
	return int(A.hash(key) & uint64(len(A.chains)-1))
}

// Get - Returns the chain held by the bucket at the given index
func (A *Array[K, V]) Get(index int) Chain[K, V] {
	return A.chains[index]
}

// Update - Replaces the chain held by the bucket at the given index, leaving all other buckets
// untouched. The caller is responsible for only storing entries whose keys hash to the index.
func (A *Array[K, V]) Update(index int, chain Chain[K, V]) {
	A.chains[index] = chain
}

// Lookup - Scans the chain the given key hashes to for an entry with a matching key.
//   - key is the identifier of an entry
//
// It returns:
//   - value is the value of the matching entry if found, otherwise the zero value of V
//   - found is true if the key was present
func (A *Array[K, V]) Lookup(key K) (value V, found bool) {
	chain := A.chains[A.IndexFor(key)]
	for i := range chain {
		if A.eq(chain[i].Key, key) {
			value = chain[i].Value
			found = true
			return
		}
	}

	return
}

// Contains - Returns true if the chain the given key hashes to holds an entry with a matching key
func (A *Array[K, V]) Contains(key K) bool {
	chain := A.chains[A.IndexFor(key)]
	for i := range chain {
		if A.eq(chain[i].Key, key) {
			return true
		}
	}

	return false
}

// Upsert - Updates an existing entry with a new value or adds the entry if no existing is found
// with same key. An updated entry keeps its position in its chain, an added entry goes to the end
// of its chain.
//   - key is the identifier of an entry
//   - value is the value to store along with its key
//
// It returns:
//   - added is true if a new entry was added, false if an existing one was updated
func (A *Array[K, V]) Upsert(key K, value V) (added bool) {
	index := A.IndexFor(key)
	chain := A.chains[index]

	// Try to find an existing entry with matching key
	for i := range chain {
		if A.eq(chain[i].Key, key) {
			chain[i].Value = value
			return
		}
	}

	A.chains[index] = append(chain, Entry[K, V]{Key: key, Value: value})
	added = true

	return
}

// Remove - Removes the first entry with a matching key from the chain the given key hashes to.
// Remaining entries keep their relative order, and the number of buckets is never changed.
//   - key is the identifier of an entry
//
// It returns:
//   - value is the value of the removed entry if found, otherwise the zero value of V
//   - removed is true if the key was present
func (A *Array[K, V]) Remove(key K) (value V, removed bool) {
	index := A.IndexFor(key)
	chain := A.chains[index]

	for i := range chain {
		if A.eq(chain[i].Key, key) {
			value = chain[i].Value

			last := len(chain) - 1
			copy(chain[i:], chain[i+1:])
			chain[last] = Entry[K, V]{}
			A.chains[index] = chain[:last]

			removed = true
			return
		}
	}

	return
}

// Modify - Replaces the value of the entry with a matching key by the result of applying f to it.
// The entry keeps its position in its chain. A key not present leaves the array untouched.
//   - key is the identifier of an entry
//   - f is applied to the current value and must return the value to store
//
// It returns:
//   - found is true if the key was present
func (A *Array[K, V]) Modify(key K, f func(value V) V) (found bool) {
	chain := A.chains[A.IndexFor(key)]
	for i := range chain {
		if A.eq(chain[i].Key, key) {
			chain[i].Value = f(chain[i].Value)
			found = true
			return
		}
	}

	return
}

// Range - Calls f for every entry in the array, bucket by bucket and within a bucket in chain
// order, until f returns false. The array must not be mutated during the call.
func (A *Array[K, V]) Range(f func(key K, value V) bool) {
	for _, chain := range A.chains {
		for i := range chain {
			if !f(chain[i].Key, chain[i].Value) {
				return
			}
		}
	}
}

// EntryList - Returns all entries flattened into one slice, in bucket order and within a bucket
// in chain order
func (A *Array[K, V]) EntryList() (entries []Entry[K, V]) {
	entries = make([]Entry[K, V], 0)
	for _, chain := range A.chains {
		entries = append(entries, chain...)
	}

	return
}

// ChainLengths - Returns the number of entries held by each bucket
func (A *Array[K, V]) ChainLengths() (lengths []int) {
	lengths = make([]int, len(A.chains))
	for i, chain := range A.chains {
		lengths[i] = len(chain)
	}

	return
}

// Clear - Removes all entries, keeping the current number of buckets
func (A *Array[K, V]) Clear() {
	A.chains = make([]Chain[K, V], len(A.chains))
}

// Expand - Doubles the number of buckets and redistributes every entry according to the new
// bucket count. An entry lands either at its old index or at its old index plus the previous
// number of buckets, and entries from the same old chain keep their relative order. The number
// of entries is never changed by an expansion.
func (A *Array[K, V]) Expand() {
	A.Resize(len(A.chains) * 2)
}

// Resize - Rebuilds the bucket array at the given bucket count and redistributes every entry
// according to it. Redistribution is pure movement of entries, it never updates values and never
// changes the number of entries, and entries from the same old chain keep their relative order.
//   - nBuckets is the new number of buckets and must be a positive power of two
func (A *Array[K, V]) Resize(nBuckets int) {
	old := A.chains
	A.chains = make([]Chain[K, V], nBuckets)

	for _, chain := range old {
		for _, entry := range chain {
			index := A.IndexFor(entry.Key)
			A.chains[index] = append(A.chains[index], entry)
		}
	}
}
