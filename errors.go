package indexedpq

// CapacityExceeded - Custom error to inform that the queue is full
type CapacityExceeded struct {
	msg string
}

// Error - Used to notify that the queue has no free slot
func (E CapacityExceeded) Error() string {
	if E.msg == "" {
		return "capacity exceeded"
	}
	return E.msg
}

// EmptyQueue - Custom error to inform that the queue has no items
type EmptyQueue struct {
	msg string
}

// Error - Used to notify that the queue is empty
func (E EmptyQueue) Error() string {
	if E.msg == "" {
		return "empty queue"
	}
	return E.msg
}

// ItemNotFound - Custom error to inform that an item is not in the queue
type ItemNotFound struct {
	msg string
}

// Error - Used to notify that an item was not found
func (E ItemNotFound) Error() string {
	if E.msg == "" {
		return "item not found"
	}
	return E.msg
}

// DuplicateItem - Custom error to inform that an item is already in the queue
type DuplicateItem struct {
	msg string
}

// Error - Used to notify that an item already exists
func (E DuplicateItem) Error() string {
	if E.msg == "" {
		return "duplicate item"
	}
	return E.msg
}

// PriorityOverflow - Custom error to inform that a priority can not be moved further in the requested direction
type PriorityOverflow struct {
	msg string
}

// Error - Used to notify that a priority would overflow
func (E PriorityOverflow) Error() string {
	if E.msg == "" {
		return "priority overflow"
	}
	return E.msg
}
