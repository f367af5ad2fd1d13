package memhashmap

import (
	"fmt"
	"github.com/gostonefire/memhashmap/hashfunc"
	"github.com/gostonefire/memhashmap/internal/buckets"
	"github.com/gostonefire/memhashmap/internal/utils"
)

// defaultCapacity - The number of buckets a MemHashMap starts out with when no initial capacity is requested
const defaultCapacity int = 8

// Entry - Represents one key/value pair held by the hash map
type Entry[K, V any] struct {
	Key   K
	Value V
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of entries stored
//   - Buckets is the current number of buckets
//   - MaxChainLength is the number of entries in the longest collision chain
//   - EmptyBuckets is the number of buckets holding no entries
//   - BucketDistribution is the number of entries stored in each bucket
type HashMapStat struct {
	Records            int
	Buckets            int
	MaxChainLength     int
	EmptyBuckets       int
	BucketDistribution []int
}

// MemHashMap - The main implementation struct.
// It holds entries in an array of collision chains where the bucket an entry belongs to is selected
// by masking the hash of its key, and it grows the array by doubling whenever the number of entries
// exceeds the number of buckets. The struct is not safe for concurrent use, see SyncMemHashMap for
// a synchronized alternative.
type MemHashMap[K, V any] struct {
	bucketAlg hashfunc.HashAlgorithm[K]
	buckets   buckets.Array[K, V]
	size      int
}

// NewMemHashMap - Returns a new in-memory hash map holding keys of type K and values of type V.
//   - initialCapacity is the number of buckets to start out with, it is rounded up to the nearest exponent of 2 and zero selects the default of 8 buckets.
//   - bucketAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface. If nil, a stock algorithm is selected for string and byte slice keys, any other key type requires a custom one.
//
// It returns:
//   - memHashMap is a pointer to a MemHashMap struct
//   - err is a normal Go Error which should be nil if everything went ok
func NewMemHashMap[K, V any](initialCapacity int, bucketAlgorithm hashfunc.HashAlgorithm[K]) (memHashMap *MemHashMap[K, V], err error) {
	// Check if initialCapacity is valid
	if initialCapacity < 0 {
		err = fmt.Errorf("initialCapacity must be zero (default) or a positive value")
		return
	}
	if initialCapacity == 0 {
		initialCapacity = defaultCapacity
	}

	// If no bucket algorithm was given then use a stock algorithm
	if bucketAlgorithm == nil {
		bucketAlgorithm, err = stockAlgorithm[K]()
		if err != nil {
			return
		}
	}

	memHashMap = &MemHashMap[K, V]{
		bucketAlg: bucketAlgorithm,
		buckets:   buckets.NewArray[K, V](utils.RoundUp2(initialCapacity), bucketAlgorithm.HashFunc, bucketAlgorithm.KeyEqual),
	}

	return
}

// NewMemHashMapFromEntries - Returns a new in-memory hash map populated with the given entries.
// Entries are set in slice order, hence if the same key occurs more than once the last value wins.
// The initial capacity is taken from the number of entries given.
//   - entries is the key/value pairs to populate the hash map with
//   - bucketAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface. If nil, a stock algorithm is selected for string and byte slice keys, any other key type requires a custom one.
//
// It returns:
//   - memHashMap is a pointer to a MemHashMap struct
//   - err is a normal Go Error which should be nil if everything went ok
func NewMemHashMapFromEntries[K, V any](entries []Entry[K, V], bucketAlgorithm hashfunc.HashAlgorithm[K]) (memHashMap *MemHashMap[K, V], err error) {
	memHashMap, err = NewMemHashMap[K, V](len(entries), bucketAlgorithm)
	if err != nil {
		return
	}

	for _, entry := range entries {
		memHashMap.Set(entry.Key, entry.Value)
	}

	return
}

// Rehash - Rebuilds the bucket array at a new capacity and redistributes every entry according to
// the new bucket count. It is used when the current distribution no longer serves, for instance to
// pre-size before a bulk load or to compact a map whose entries have largely been popped. A capacity
// below the current number of entries is allowed and only means chains get longer. The number of
// entries is never changed by a rehash.
//   - newCapacity is the number of buckets to rebuild to, it is rounded up to the nearest exponent of 2
//
// It returns:
//   - err is a normal Go Error which should be nil if everything went ok
func (M *MemHashMap[K, V]) Rehash(newCapacity int) (err error) {
	// Check if newCapacity is valid
	if newCapacity < 1 {
		err = fmt.Errorf("newCapacity must be a positive value higher than 0 (zero)")
		return
	}

	M.buckets.Resize(utils.RoundUp2(newCapacity))

	return
}

// stockAlgorithm - Returns a stock bucket algorithm for key types that have one.
// Only string and byte slice keys have stock algorithms, any other key type needs a custom
// hashfunc.HashAlgorithm given at construction.
func stockAlgorithm[K any]() (bucketAlgorithm hashfunc.HashAlgorithm[K], err error) {
	var key K
	var alg any

	switch any(key).(type) {
	case string:
		alg = hashfunc.StringAlgorithm{}
	case []byte:
		alg = hashfunc.BytesAlgorithm{}
	default:
		err = fmt.Errorf("no stock bucket algorithm exists for the key type, a custom one must be given")
		return
	}

	bucketAlgorithm = alg.(hashfunc.HashAlgorithm[K])

	return
}

// wellFormed - Verifies the internal consistency of the hash map: every entry must sit in the
// bucket its key hashes to, no chain may hold two entries with equal keys, and the tracked size
// must equal the total number of entries over all chains.
//
// It returns:
//   - err describing the first violation found, or nil if the hash map is consistent
func (M *MemHashMap[K, V]) wellFormed() (err error) {
	nBuckets := M.buckets.NumBuckets()
	if nBuckets < 1 {
		err = fmt.Errorf("number of buckets is %d, must always be positive", nBuckets)
		return
	}

	var total int
	for i := 0; i < nBuckets; i++ {
		chain := M.buckets.Get(i)
		total += len(chain)

		for j := range chain {
			if index := M.buckets.IndexFor(chain[j].Key); index != i {
				err = fmt.Errorf("entry in bucket %d hashes to bucket %d", i, index)
				return
			}
			for k := j + 1; k < len(chain); k++ {
				if M.bucketAlg.KeyEqual(chain[j].Key, chain[k].Key) {
					err = fmt.Errorf("bucket %d holds two entries with equal keys", i)
					return
				}
			}
		}
	}

	if total != M.size {
		err = fmt.Errorf("tracked size is %d but buckets hold %d entries", M.size, total)
		return
	}

	return
}
