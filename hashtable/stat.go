package hashtable

// HashTableStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of entries stored
//   - Buckets is the current length of the bucket array
//   - SizeIndex is the position of Buckets in the sequence returned by Primes
//   - LoadFactor is Records / Buckets
//   - LongestChain is the number of entries in the most populated bucket
//   - EmptyBuckets is the number of buckets without entries
//   - BucketDistribution is the number of entries stored in each bucket
type HashTableStat struct {
	Records            int
	Buckets            int
	SizeIndex          int
	LoadFactor         float64
	LongestChain       int
	EmptyBuckets       int
	BucketDistribution []int
}

// Stat - Walks through the entire set of buckets and produce a HashTableStat struct with information.
//   - includeDistribution set to true will include a slice of length Buckets with number of entries per bucket, false will set HashTableStat.BucketDistribution to nil.
func (H *HashTable[K, V]) Stat(includeDistribution bool) (hashTableStat *HashTableStat) {
	hts := HashTableStat{
		Buckets:   len(H.buckets),
		SizeIndex: H.sizeIndex,
	}

	if includeDistribution {
		hts.BucketDistribution = make([]int, len(H.buckets))
	}

	for i, bucket := range H.buckets {
		n := len(bucket)
		hts.Records += n
		if n == 0 {
			hts.EmptyBuckets++
		}
		if n > hts.LongestChain {
			hts.LongestChain = n
		}
		if includeDistribution {
			hts.BucketDistribution[i] = n
		}
	}

	hts.LoadFactor = float64(hts.Records) / float64(hts.Buckets)

	hashTableStat = &hts
	return
}
