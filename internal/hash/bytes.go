package hash

import (
	"hash/crc32"

	"github.com/gostonefire/indexedpq/internal/utils"
)

// BytesHashAlgorithm - Hash algorithm for byte slice keys. The hash code is calculated using crc32.ChecksumIEEE
// over the key, which always gives a non-negative hash code, and keys are compared byte by byte.
type BytesHashAlgorithm struct{}

// NewBytesHashAlgorithm - Returns a pointer to a new BytesHashAlgorithm instance
func NewBytesHashAlgorithm() *BytesHashAlgorithm {
	return &BytesHashAlgorithm{}
}

// HashCode - Returns the crc32 checksum of key
func (B *BytesHashAlgorithm) HashCode(key []byte) int64 {
	return int64(crc32.ChecksumIEEE(key))
}

// Equal - Returns true if a and b are equal both in size and contents
func (B *BytesHashAlgorithm) Equal(a, b []byte) bool {
	return utils.IsEqual(a, b)
}

// IsNull - A nil slice is treated as a null key, an empty but non nil slice is a valid key
func (B *BytesHashAlgorithm) IsNull(key []byte) bool {
	return key == nil
}
