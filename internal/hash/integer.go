package hash

import "golang.org/x/exp/constraints"

// IntegerHashAlgorithm - Hash algorithm for integer keys where the hash code is the key value itself.
// Negative keys give negative hash codes. Since the bucket is the hash code modulo the table size, consecutive
// keys land in consecutive buckets, which makes bucket placement fully predictable.
type IntegerHashAlgorithm[K constraints.Integer] struct{}

// NewIntegerHashAlgorithm - Returns a pointer to a new IntegerHashAlgorithm instance
func NewIntegerHashAlgorithm[K constraints.Integer]() *IntegerHashAlgorithm[K] {
	return &IntegerHashAlgorithm[K]{}
}

// HashCode - Returns key as hash code
func (I *IntegerHashAlgorithm[K]) HashCode(key K) int64 {
	return int64(key)
}

// Equal - Returns true if a == b
func (I *IntegerHashAlgorithm[K]) Equal(a, b K) bool {
	return a == b
}
