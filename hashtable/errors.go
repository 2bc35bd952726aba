package hashtable

// NullKey - Custom error to inform that a key is null and can not be stored
type NullKey struct {
	msg string
}

// Error - Used to notify that a null key was given
func (E NullKey) Error() string {
	if E.msg == "" {
		return "null key"
	}
	return E.msg
}

// DuplicateKey - Custom error to inform that a key is already present in the hash table
type DuplicateKey struct {
	msg string
}

// Error - Used to notify that a key already exists
func (E DuplicateKey) Error() string {
	if E.msg == "" {
		return "duplicate key"
	}
	return E.msg
}

// KeyNotFound - Custom error to inform that no entry was found for a key
type KeyNotFound struct {
	msg string
}

// Error - Used to notify that no entry was found
func (E KeyNotFound) Error() string {
	if E.msg == "" {
		return "key not found"
	}
	return E.msg
}

// NotSupported - Custom error to inform that an operation is not supported by the hash table as configured
type NotSupported struct {
	msg string
}

// Error - Used to notify that an operation is not supported
func (E NotSupported) Error() string {
	if E.msg == "" {
		return "operation not supported"
	}
	return E.msg
}

// NoMoreEntries - Custom error to inform that an iterator has no more entries to return
type NoMoreEntries struct {
	msg string
}

// Error - Used to notify that an iterator is exhausted
func (E NoMoreEntries) Error() string {
	if E.msg == "" {
		return "no more entries"
	}
	return E.msg
}
