package hash

import "hash/maphash"

// ComparableHashAlgorithm - Hash algorithm for any comparable key type. Hash codes are produced by
// maphash.Comparable using a seed that is unique to each instance, and keys are compared using ==.
type ComparableHashAlgorithm[K comparable] struct {
	seed maphash.Seed
}

// NewComparableHashAlgorithm - Returns a pointer to a new ComparableHashAlgorithm instance with a fresh random seed
func NewComparableHashAlgorithm[K comparable]() *ComparableHashAlgorithm[K] {
	return &ComparableHashAlgorithm[K]{seed: maphash.MakeSeed()}
}

// HashCode - Returns the hash code of key, it may be negative
func (C *ComparableHashAlgorithm[K]) HashCode(key K) int64 {
	return int64(maphash.Comparable(C.seed, key))
}

// Equal - Returns true if a == b
func (C *ComparableHashAlgorithm[K]) Equal(a, b K) bool {
	return a == b
}
