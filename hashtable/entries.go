package hashtable

import "iter"

// Entries - Is used to iterate over all entries of a hash table one by one. Buckets are visited in order and
// each bucket chain from head to tail, so within a bucket the most recently added entry comes first.
// The hash table must not be modified while iterating.
type Entries[K, V any] struct {
	buckets  [][]entry[K, V]
	bucketNo int
	pos      int
}

// Entries - Returns a pointer to a new Entries iterator positioned at the first entry of the table
func (H *HashTable[K, V]) Entries() *Entries[K, V] {
	E := &Entries[K, V]{buckets: H.buckets, bucketNo: -1}
	E.advance()

	return E
}

// HasNext - Returns true if there are more entries to be fetched from a call to Next.
func (E *Entries[K, V]) HasNext() bool {
	return E.bucketNo < len(E.buckets)
}

// Next - Returns entry.
// It returns:
//   - key and value of the next entry.
//   - err is of type NoMoreEntries if there are no more entries when calling this function.
func (E *Entries[K, V]) Next() (key K, value V, err error) {
	if !E.HasNext() {
		err = NoMoreEntries{}
		return
	}

	e := E.buckets[E.bucketNo][E.pos]
	key, value = e.key, e.value

	E.advance()

	return
}

// advance - Moves one step towards the tail of the current chain, continuing with the head of the next
// non-empty bucket when the current chain is exhausted
func (E *Entries[K, V]) advance() {
	E.pos--
	for E.pos < 0 {
		E.bucketNo++
		if E.bucketNo >= len(E.buckets) {
			return
		}
		E.pos = len(E.buckets[E.bucketNo]) - 1
	}
}

// All - Returns an iterator over all key/value pairs, in the same order as Entries
func (H *HashTable[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		E := H.Entries()
		for E.HasNext() {
			key, value, _ := E.Next()
			if !yield(key, value) {
				return
			}
		}
	}
}

// Keys - Returns all keys stored, in the same order as Entries
func (H *HashTable[K, V]) Keys() (keys []K) {
	keys = make([]K, 0, H.count)
	for key := range H.All() {
		keys = append(keys, key)
	}

	return
}
