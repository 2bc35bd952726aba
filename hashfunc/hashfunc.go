package hashfunc

import (
	"github.com/gostonefire/indexedpq/internal/hash"
	"golang.org/x/exp/constraints"
)

// HashAlgorithm - Interface that a key type has to be supported by to be stored in a hash table, either as key
// directly or as an item in an indexed priority queue.
//
// The hash code of a key must not change while the key is stored, and keys that are Equal must produce
// the same hash code. Any violation will result in keys not being found.
type HashAlgorithm[K any] interface {
	// HashCode - Given key it generates a hash code. Negative values are permitted, the hash table masks away
	// the sign bit before selecting a bucket.
	HashCode(key K) int64

	// Equal - Returns true if a and b are to be considered the same key
	Equal(a, b K) bool
}

// NullChecker - Optional interface a HashAlgorithm may implement to decide which keys are to be rejected as null.
// If not implemented, nil interfaces, pointers, maps, slices, channels and funcs are treated as null.
type NullChecker[K any] interface {
	IsNull(key K) bool
}

// Funcs - Adapts a pair of functions to the HashAlgorithm interface
type Funcs[K any] struct {
	HashFunc  func(key K) int64
	EqualFunc func(a, b K) bool
}

// New - Returns a HashAlgorithm built from the given hash code and equality functions
func New[K any](hashFunc func(key K) int64, equalFunc func(a, b K) bool) Funcs[K] {
	return Funcs[K]{HashFunc: hashFunc, EqualFunc: equalFunc}
}

// HashCode - Calls the wrapped hash function
func (F Funcs[K]) HashCode(key K) int64 {
	return F.HashFunc(key)
}

// Equal - Calls the wrapped equality function
func (F Funcs[K]) Equal(a, b K) bool {
	return F.EqualFunc(a, b)
}

// NewComparable - Returns a HashAlgorithm for any comparable type, hashing with hash/maphash
func NewComparable[K comparable]() HashAlgorithm[K] {
	return hash.NewComparableHashAlgorithm[K]()
}

// NewBytes - Returns a HashAlgorithm for byte slices, hashing with crc32
func NewBytes() HashAlgorithm[[]byte] {
	return hash.NewBytesHashAlgorithm()
}

// NewString - Returns a HashAlgorithm for strings, hashing with xxhash
func NewString() HashAlgorithm[string] {
	return hash.NewStringHashAlgorithm()
}

// NewInteger - Returns a HashAlgorithm for integers where the hash code is the value itself
func NewInteger[K constraints.Integer]() HashAlgorithm[K] {
	return hash.NewIntegerHashAlgorithm[K]()
}
