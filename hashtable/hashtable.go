package hashtable

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/gostonefire/indexedpq/hashfunc"
	"github.com/gostonefire/indexedpq/internal/utils"
)

// entry - One key/value pair in a bucket chain. The non-negative hash code is kept so that a rehash never has
// to call the hash algorithm again.
type entry[K, V any] struct {
	hashCode int64
	key      K
	value    V
}

// HashTable - Open chaining hash table where the bucket array always has one of the sizes returned by Primes.
// Each bucket is a slice of entries, the last entry in the slice is the head of the chain and is the most
// recently added one. When the number of entries exceeds size * max load factor all entries are rehashed
// into a bucket array of the next size in the sequence. The table never shrinks.
//
// A HashTable is not safe for concurrent use.
type HashTable[K, V any] struct {
	buckets       [][]entry[K, V]
	count         int
	sizeIndex     int
	maxLoadFactor float64
	appendOnly    bool
	hashAlgorithm hashfunc.HashAlgorithm[K]
	isNull        func(key K) bool
	logger        *slog.Logger
}

// New - Returns a pointer to a new, empty hash table.
//   - hashAlgorithm provides hash codes and equality for keys, it can not be nil
//   - conf is a Conf struct with table configuration, the zero value gives a table with max load factor 1.0 starting at the smallest prime size
//
// It returns:
//   - hashTable is a pointer to the created HashTable
//   - err is a standard error if the configuration is invalid
func New[K, V any](hashAlgorithm hashfunc.HashAlgorithm[K], conf Conf) (hashTable *HashTable[K, V], err error) {
	if hashAlgorithm == nil {
		err = fmt.Errorf("hash algorithm can not be nil")
		return
	}

	maxLoadFactor, err := conf.getMaxLoadFactor()
	if err != nil {
		return
	}

	sizeIndex, err := conf.getSizeIndex(maxLoadFactor)
	if err != nil {
		return
	}

	hashTable = &HashTable[K, V]{
		buckets:       make([][]entry[K, V], primes[sizeIndex]),
		sizeIndex:     sizeIndex,
		maxLoadFactor: maxLoadFactor,
		appendOnly:    conf.AppendOnly,
		hashAlgorithm: hashAlgorithm,
		isNull:        nullCheck(hashAlgorithm),
		logger:        conf.getLogger(),
	}

	return
}

// NewComparable - Returns a pointer to a new, empty hash table for comparable keys using the default
// maphash based hash algorithm. See New for conf.
func NewComparable[K comparable, V any](conf Conf) (hashTable *HashTable[K, V], err error) {
	return New[K, V](hashfunc.NewComparable[K](), conf)
}

// nullCheck - Returns the function deciding what keys are null, preferring the hash algorithm's own if it has one
func nullCheck[K any](hashAlgorithm hashfunc.HashAlgorithm[K]) func(key K) bool {
	if nc, ok := hashAlgorithm.(hashfunc.NullChecker[K]); ok {
		return nc.IsNull
	}

	if utils.CanBeNil[K]() {
		return func(key K) bool { return utils.IsNil(key) }
	}

	return func(key K) bool { return false }
}

// Count - Returns the number of entries stored
func (H *HashTable[K, V]) Count() int {
	return H.count
}

// Size - Returns the current length of the bucket array
func (H *HashTable[K, V]) Size() int {
	return len(H.buckets)
}

// SizeIndex - Returns the position of the current size in the sequence returned by Primes
func (H *HashTable[K, V]) SizeIndex() int {
	return H.sizeIndex
}

// MaxLoadFactor - Returns the load factor threshold that triggers a rehash
func (H *HashTable[K, V]) MaxLoadFactor() float64 {
	return H.maxLoadFactor
}

// TryGet - Gets the value stored with key. It never fails, a null key is simply not found.
//
// It returns:
//   - value is the stored value, or the zero value if not found
//   - found is true if key has an entry
func (H *HashTable[K, V]) TryGet(key K) (value V, found bool) {
	if H.isNull(key) {
		return
	}

	_, bucketNo, pos := H.locate(key)
	if pos < 0 {
		return
	}

	value = H.buckets[bucketNo][pos].value
	found = true

	return
}

// Contains - Returns true if key has an entry
func (H *HashTable[K, V]) Contains(key K) bool {
	_, found := H.TryGet(key)
	return found
}

// Get - Gets the value stored with key.
//
// It returns:
//   - value is the stored value
//   - err is of type NullKey if key is null or KeyNotFound if key has no entry
func (H *HashTable[K, V]) Get(key K) (value V, err error) {
	if H.isNull(key) {
		err = NullKey{}
		return
	}

	_, bucketNo, pos := H.locate(key)
	if pos < 0 {
		err = KeyNotFound{}
		return
	}

	value = H.buckets[bucketNo][pos].value

	return
}

// Set - Updates the value of an existing entry. Set never adds a new entry, use Add for that.
//
// It returns:
//   - err is of type NullKey if key is null or KeyNotFound if key has no entry
func (H *HashTable[K, V]) Set(key K, value V) (err error) {
	if H.isNull(key) {
		err = NullKey{}
		return
	}

	_, bucketNo, pos := H.locate(key)
	if pos < 0 {
		err = KeyNotFound{}
		return
	}

	H.buckets[bucketNo][pos].value = value

	return
}

// Add - Adds a new entry at the head of the bucket chain selected by the key's hash code. If the entry makes
// count exceed size * max load factor, and there is a larger size available, all entries are rehashed.
// A failed Add leaves the table untouched.
//
// It returns:
//   - err is of type NullKey if key is null or DuplicateKey if key already has an entry
func (H *HashTable[K, V]) Add(key K, value V) (err error) {
	if H.isNull(key) {
		err = NullKey{}
		return
	}

	hashCode, bucketNo, pos := H.locate(key)
	if pos >= 0 {
		err = DuplicateKey{}
		return
	}

	H.buckets[bucketNo] = append(H.buckets[bucketNo], entry[K, V]{hashCode: hashCode, key: key, value: value})
	H.count++

	if float64(H.count) > float64(len(H.buckets))*H.maxLoadFactor && H.sizeIndex < len(primes)-1 {
		H.rehash(H.sizeIndex + 1)
	}

	return
}

// Remove - Unlinks the entry for key from its bucket chain. The bucket array is never shrunk.
//
// It returns:
//   - err is of type NotSupported if the table is append only, NullKey if key is null or KeyNotFound if key has no entry
func (H *HashTable[K, V]) Remove(key K) (err error) {
	if H.appendOnly {
		err = NotSupported{}
		return
	}

	if H.isNull(key) {
		err = NullKey{}
		return
	}

	_, bucketNo, pos := H.locate(key)
	if pos < 0 {
		err = KeyNotFound{}
		return
	}

	H.buckets[bucketNo] = slices.Delete(H.buckets[bucketNo], pos, pos+1)
	H.count--

	return
}

// locate - Returns the non-negative hash code of key, the bucket it belongs to and its position in that
// bucket, or -1 as position if the key has no entry
func (H *HashTable[K, V]) locate(key K) (hashCode int64, bucketNo int, pos int) {
	hashCode = utils.NonNegative(H.hashAlgorithm.HashCode(key))
	bucketNo = int(hashCode % int64(len(H.buckets)))

	bucket := H.buckets[bucketNo]
	for pos = len(bucket) - 1; pos >= 0; pos-- {
		if bucket[pos].hashCode == hashCode && H.hashAlgorithm.Equal(bucket[pos].key, key) {
			return
		}
	}

	return
}

// rehash - Moves every entry into a new bucket array of size primes[sizeIndex] using the cached hash codes.
// Chains are walked from tail to head so that relative age among entries sharing a new chain is kept.
func (H *HashTable[K, V]) rehash(sizeIndex int) {
	size := int64(primes[sizeIndex])
	buckets := make([][]entry[K, V], size)

	for _, bucket := range H.buckets {
		for _, e := range bucket {
			bucketNo := e.hashCode % size
			buckets[bucketNo] = append(buckets[bucketNo], e)
		}
	}

	H.logger.Debug("rehashed hash table", "from", len(H.buckets), "to", len(buckets), "count", H.count)

	H.buckets = buckets
	H.sizeIndex = sizeIndex
}
