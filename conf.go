package indexedpq

import (
	"fmt"

	"github.com/gostonefire/indexedpq/hashtable"
)

// Conf - Is a struct to be passed in the call to New and contains configuration for the queue.
//   - Capacity is the maximum number of items the queue can hold, it must be greater than zero
//   - StableOrder set to true makes items of equal priority leave the queue in the order they were added
//   - Index is the configuration of the hash table mapping items to heap slots. Index.InitialCapacity defaults to Capacity and Index.AppendOnly must be false.
type Conf struct {
	Capacity    int
	StableOrder bool
	Index       hashtable.Conf
}

// indexConf - Validates the queue configuration and returns the configuration for the item index
func (C Conf) indexConf() (conf hashtable.Conf, err error) {
	if C.Capacity <= 0 {
		err = fmt.Errorf("capacity must be greater than zero, got %d", C.Capacity)
		return
	}

	if C.Index.AppendOnly {
		err = fmt.Errorf("the item index can not be append only")
		return
	}

	conf = C.Index
	if conf.InitialCapacity == 0 {
		conf.InitialCapacity = C.Capacity
	}

	return
}
