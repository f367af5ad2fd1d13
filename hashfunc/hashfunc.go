package hashfunc

import (
	"github.com/fxamacker/circlehash"
	"github.com/gostonefire/memhashmap/internal/utils"
	"golang.org/x/exp/constraints"
)

// HashAlgorithm - Interface that permits an implementation using the MemHashMap to supply a custom
// bucket selection algorithm suited for its particular key type or distribution of keys.
type HashAlgorithm[K any] interface {
	// HashFunc - Given key it generates a hash value over the full unsigned 64 bit range.
	// The hash map masks the value down to a bucket index, so an implementation must spread keys
	// well also in the low bits. The function must be deterministic for a given key, and keys that
	// are equal according to KeyEqual must generate the same hash value.
	HashFunc(key K) uint64

	// KeyEqual - Returns true if a and b are to be treated as the same key
	KeyEqual(a, b K) bool
}

// StringAlgorithm - Implements HashAlgorithm for string keys using the CircleHash64 hash function.
// The zero value is ready to use, and a zero Seed gives a hash sequence that is stable between
// processes and runs.
type StringAlgorithm struct {
	Seed uint64
}

// HashFunc - Given key it generates a hash value using CircleHash64 over the string bytes
func (S StringAlgorithm) HashFunc(key string) uint64 {
	return circlehash.Hash64String(key, S.Seed)
}

// KeyEqual - Returns true if a and b are equal strings
func (S StringAlgorithm) KeyEqual(a, b string) bool {
	return a == b
}

// BytesAlgorithm - Implements HashAlgorithm for byte slice keys using the CircleHash64 hash function.
// The zero value is ready to use, and a zero Seed gives a hash sequence that is stable between
// processes and runs.
type BytesAlgorithm struct {
	Seed uint64
}

// HashFunc - Given key it generates a hash value using CircleHash64 over the byte slice
func (B BytesAlgorithm) HashFunc(key []byte) uint64 {
	return circlehash.Hash64(key, B.Seed)
}

// KeyEqual - Returns true if a and b are equal both in size and contents
func (B BytesAlgorithm) KeyEqual(a, b []byte) bool {
	return utils.IsEqual(a, b)
}

// IntegerAlgorithm - Implements HashAlgorithm for keys of any integer type.
// The key is widened to an unsigned 64 bit word and hashed with CircleHash64, which spreads also
// small and sequential keys well over the full hash range. The zero value is ready to use, and a
// zero Seed gives a hash sequence that is stable between processes and runs.
type IntegerAlgorithm[K constraints.Integer] struct {
	Seed uint64
}

// HashFunc - Given key it generates a hash value using CircleHash64 over the key as a 64 bit word
func (I IntegerAlgorithm[K]) HashFunc(key K) uint64 {
	return circlehash.Hash64Uint64x2(uint64(key), 0, I.Seed)
}

// KeyEqual - Returns true if a and b are equal integers
func (I IntegerAlgorithm[K]) KeyEqual(a, b K) bool {
	return a == b
}
