package indexedpq

import (
	"errors"
	"fmt"
	"math"

	"github.com/gostonefire/indexedpq/hashfunc"
	"github.com/gostonefire/indexedpq/hashtable"
)

// slot - One heap position. seq is the insertion sequence number and only takes part in ordering when the
// queue keeps a stable order.
type slot[T any] struct {
	priority int
	seq      uint64
	item     T
}

// IndexedPriorityQueue - Fixed capacity binary max-heap where every item also has an entry in a hash table
// pointing out its current heap slot, so that the priority of any item can be changed in O(log n).
//
// The heap is 1-indexed, slot 0 is a sentinel holding the highest possible priority which stops every sift up
// at the root. Slots 1 to Count hold live items and for every slot i the parent is found at i/2.
//
// An IndexedPriorityQueue is not safe for concurrent use.
type IndexedPriorityQueue[T any] struct {
	heap    []slot[T]
	count   int
	seq     uint64
	stable  bool
	indexOf *hashtable.HashTable[T, int]
}

// New - Returns a pointer to a new, empty queue.
//   - hashAlgorithm provides hash codes and equality for items, it can not be nil
//   - conf is a Conf struct with queue configuration, Capacity must be set
//
// It returns:
//   - queue is a pointer to the created IndexedPriorityQueue
//   - err is a standard error if the configuration is invalid
func New[T any](hashAlgorithm hashfunc.HashAlgorithm[T], conf Conf) (queue *IndexedPriorityQueue[T], err error) {
	indexConf, err := conf.indexConf()
	if err != nil {
		return
	}

	indexOf, err := hashtable.New[T, int](hashAlgorithm, indexConf)
	if err != nil {
		err = fmt.Errorf("error while creating item index: %s", err)
		return
	}

	heap := make([]slot[T], conf.Capacity+1)
	heap[0] = slot[T]{priority: math.MaxInt}

	queue = &IndexedPriorityQueue[T]{
		heap:    heap,
		stable:  conf.StableOrder,
		indexOf: indexOf,
	}

	return
}

// NewComparable - Returns a pointer to a new, empty queue for comparable items using the default maphash based
// hash algorithm. See New for conf.
func NewComparable[T comparable](conf Conf) (queue *IndexedPriorityQueue[T], err error) {
	return New[T](hashfunc.NewComparable[T](), conf)
}

// Count - Returns the number of items in the queue
func (I *IndexedPriorityQueue[T]) Count() int {
	return I.count
}

// Capacity - Returns the maximum number of items the queue can hold
func (I *IndexedPriorityQueue[T]) Capacity() int {
	return len(I.heap) - 1
}

// Contains - Returns true if item is in the queue
func (I *IndexedPriorityQueue[T]) Contains(item T) bool {
	return I.indexOf.Contains(item)
}

// Add - Adds item with the given priority at the first free slot and sifts it up towards the root.
//
// It returns:
//   - err is of type CapacityExceeded if the queue is full, DuplicateItem if item is already queued or hashtable.NullKey if item is null
func (I *IndexedPriorityQueue[T]) Add(item T, priority int) (err error) {
	if I.count == I.Capacity() {
		err = CapacityExceeded{}
		return
	}

	pos := I.count + 1
	if err = I.indexOf.Add(item, pos); err != nil {
		if errors.Is(err, hashtable.DuplicateKey{}) {
			err = DuplicateItem{}
		}
		return
	}

	I.seq++
	I.heap[pos] = slot[T]{priority: priority, seq: I.seq, item: item}
	I.count = pos

	I.siftUp(pos)

	return
}

// RemoveTop - Removes and returns the item with the highest priority.
//
// It returns:
//   - item is the removed item
//   - err is of type EmptyQueue if there are no items
func (I *IndexedPriorityQueue[T]) RemoveTop() (item T, err error) {
	if I.count == 0 {
		err = EmptyQueue{}
		return
	}

	item = I.heap[1].item
	I.removeAt(1)

	return
}

// PeekTopPriority - Returns the highest priority in the queue without removing anything.
//
// It returns:
//   - priority is the priority of the top item
//   - err is of type EmptyQueue if there are no items
func (I *IndexedPriorityQueue[T]) PeekTopPriority() (priority int, err error) {
	if I.count == 0 {
		err = EmptyQueue{}
		return
	}

	priority = I.heap[1].priority

	return
}

// PeekTop - Returns the item with the highest priority together with that priority without removing anything.
//
// It returns:
//   - item is the top item
//   - priority is the priority of the top item
//   - err is of type EmptyQueue if there are no items
func (I *IndexedPriorityQueue[T]) PeekTop() (item T, priority int, err error) {
	if I.count == 0 {
		err = EmptyQueue{}
		return
	}

	item, priority = I.heap[1].item, I.heap[1].priority

	return
}

// Priority - Returns the current priority of item.
//
// It returns:
//   - priority is the priority of item
//   - err is of type ItemNotFound if item is not queued or hashtable.NullKey if item is null
func (I *IndexedPriorityQueue[T]) Priority(item T) (priority int, err error) {
	pos, err := I.slotOf(item)
	if err != nil {
		return
	}

	priority = I.heap[pos].priority

	return
}

// IncreasePriority - Raises the priority of item by one and sifts it up.
//
// It returns:
//   - err is of type ItemNotFound if item is not queued, PriorityOverflow if the priority already is math.MaxInt or hashtable.NullKey if item is null
func (I *IndexedPriorityQueue[T]) IncreasePriority(item T) (err error) {
	pos, err := I.slotOf(item)
	if err != nil {
		return
	}

	if I.heap[pos].priority == math.MaxInt {
		err = PriorityOverflow{}
		return
	}

	I.heap[pos].priority++
	I.siftUp(pos)

	return
}

// DecreasePriority - Lowers the priority of item by one and sifts it down.
//
// It returns:
//   - err is of type ItemNotFound if item is not queued, PriorityOverflow if the priority already is math.MinInt or hashtable.NullKey if item is null
func (I *IndexedPriorityQueue[T]) DecreasePriority(item T) (err error) {
	pos, err := I.slotOf(item)
	if err != nil {
		return
	}

	if I.heap[pos].priority == math.MinInt {
		err = PriorityOverflow{}
		return
	}

	I.heap[pos].priority--
	I.siftDown(pos)

	return
}

// SetPriority - Gives item a new priority and moves it in whatever direction that requires. In a queue with
// stable order the item keeps its original place among items of equal priority.
//
// It returns:
//   - err is of type ItemNotFound if item is not queued or hashtable.NullKey if item is null
func (I *IndexedPriorityQueue[T]) SetPriority(item T, priority int) (err error) {
	pos, err := I.slotOf(item)
	if err != nil {
		return
	}

	old := I.heap[pos].priority
	I.heap[pos].priority = priority

	switch {
	case priority > old:
		I.siftUp(pos)
	case priority < old:
		I.siftDown(pos)
	}

	return
}

// Remove - Removes item from the queue wherever it is in the heap.
//
// It returns:
//   - priority is the priority item had
//   - err is of type ItemNotFound if item is not queued or hashtable.NullKey if item is null
func (I *IndexedPriorityQueue[T]) Remove(item T) (priority int, err error) {
	pos, err := I.slotOf(item)
	if err != nil {
		return
	}

	priority = I.heap[pos].priority
	I.removeAt(pos)

	return
}

// slotOf - Returns the heap slot of item, mapping a missing index entry to ItemNotFound
func (I *IndexedPriorityQueue[T]) slotOf(item T) (pos int, err error) {
	pos, err = I.indexOf.Get(item)
	if errors.Is(err, hashtable.KeyNotFound{}) {
		err = ItemNotFound{}
	}

	return
}

// removeAt - Moves the last live slot into pos, drops the item previously at pos from the index and
// restores the heap property around pos
func (I *IndexedPriorityQueue[T]) removeAt(pos int) {
	last := I.count
	item := I.heap[pos].item

	I.swap(pos, last)
	if err := I.indexOf.Remove(item); err != nil {
		panic(fmt.Sprintf("item index out of sync with heap slot %d: %s", last, err))
	}

	I.heap[last] = slot[T]{}
	I.count--

	if pos <= I.count {
		I.siftUp(pos)
		I.siftDown(pos)
	}
}

// higher - Returns true if slot i is to be closer to the root than slot j
func (I *IndexedPriorityQueue[T]) higher(i, j int) bool {
	if I.heap[i].priority != I.heap[j].priority {
		return I.heap[i].priority > I.heap[j].priority
	}

	return I.stable && I.heap[i].seq < I.heap[j].seq
}

// siftUp - Swaps the slot at pos with its parent as long as it is higher. Nothing is higher than the
// sentinel at slot 0, so the loop ends at the root at the latest.
func (I *IndexedPriorityQueue[T]) siftUp(pos int) {
	for I.higher(pos, pos/2) {
		I.swap(pos, pos/2)
		pos /= 2
	}
}

// siftDown - Swaps the slot at pos with its highest child as long as that child is higher. The left child
// wins unless the right child is strictly higher.
func (I *IndexedPriorityQueue[T]) siftDown(pos int) {
	for {
		child := 2 * pos
		if child > I.count {
			return
		}

		if child+1 <= I.count && I.higher(child+1, child) {
			child++
		}

		if !I.higher(child, pos) {
			return
		}

		I.swap(pos, child)
		pos = child
	}
}

// swap - Swaps two heap slots and updates both index entries
func (I *IndexedPriorityQueue[T]) swap(i, j int) {
	if i == j {
		return
	}

	I.heap[i], I.heap[j] = I.heap[j], I.heap[i]

	if err := I.indexOf.Set(I.heap[i].item, i); err != nil {
		panic(fmt.Sprintf("item index out of sync with heap slot %d: %s", i, err))
	}
	if err := I.indexOf.Set(I.heap[j].item, j); err != nil {
		panic(fmt.Sprintf("item index out of sync with heap slot %d: %s", j, err))
	}
}
