package hash

import "github.com/cespare/xxhash/v2"

// StringHashAlgorithm - Hash algorithm for string keys using 64-bit xxhash. The full 64 bits are returned as
// hash code, which means roughly half of all keys get a negative hash code.
type StringHashAlgorithm struct{}

// NewStringHashAlgorithm - Returns a pointer to a new StringHashAlgorithm instance
func NewStringHashAlgorithm() *StringHashAlgorithm {
	return &StringHashAlgorithm{}
}

// HashCode - Returns the xxhash of key reinterpreted as a signed value
func (S *StringHashAlgorithm) HashCode(key string) int64 {
	return int64(xxhash.Sum64String(key))
}

// Equal - Returns true if a == b
func (S *StringHashAlgorithm) Equal(a, b string) bool {
	return a == b
}
