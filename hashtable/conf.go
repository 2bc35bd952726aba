package hashtable

import (
	"fmt"
	"log/slog"
	"math"
)

// DefaultMaxLoadFactor - Max load factor used when none is given in Conf
const DefaultMaxLoadFactor float64 = 1.0

// Conf - Is a struct to be passed in the call to New and contains configuration for the hash table.
// The zero value is a valid configuration.
//   - MaxLoadFactor is the threshold on count / size that triggers a rehash to the next prime size, 0 means DefaultMaxLoadFactor
//   - InitialCapacity is the number of entries the table should hold before its first rehash, 0 starts at the smallest prime
//   - AppendOnly makes Remove fail with NotSupported
//   - Logger receives debug logging of rehash events, nil discards all logging
type Conf struct {
	MaxLoadFactor   float64
	InitialCapacity int
	AppendOnly      bool
	Logger          *slog.Logger
}

// getMaxLoadFactor - Returns the validated max load factor with the default applied
func (C Conf) getMaxLoadFactor() (maxLoadFactor float64, err error) {
	if math.IsNaN(C.MaxLoadFactor) || math.IsInf(C.MaxLoadFactor, 0) || C.MaxLoadFactor < 0 {
		err = fmt.Errorf("max load factor must be a finite positive value, got %v", C.MaxLoadFactor)
		return
	}

	maxLoadFactor = C.MaxLoadFactor
	if maxLoadFactor == 0 {
		maxLoadFactor = DefaultMaxLoadFactor
	}

	return
}

// getSizeIndex - Returns the index in the prime sequence of the smallest size that holds InitialCapacity
// entries without exceeding maxLoadFactor. The largest size is returned if none does.
func (C Conf) getSizeIndex(maxLoadFactor float64) (sizeIndex int, err error) {
	if C.InitialCapacity < 0 {
		err = fmt.Errorf("initial capacity can not be negative, got %d", C.InitialCapacity)
		return
	}

	for sizeIndex = 0; sizeIndex < len(primes)-1; sizeIndex++ {
		if float64(primes[sizeIndex])*maxLoadFactor >= float64(C.InitialCapacity) {
			return
		}
	}

	return
}

// getLogger - Returns the configured logger or one that discards everything
func (C Conf) getLogger() *slog.Logger {
	if C.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return C.Logger
}
