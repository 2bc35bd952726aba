package hashtable

import (
	"math"
	"slices"

	"github.com/gostonefire/indexedpq/internal/utils"
)

// firstPrime - Size of every newly created hash table unless an initial capacity is given
const firstPrime int64 = 107

// primeCeiling - Tables never grow to or beyond this size
const primeCeiling int64 = math.MaxInt32

// primes - The ascending sequence of bucket array sizes a hash table steps through as it grows.
// Each entry is the nearest prime equal to or higher than twice the previous entry.
var primes = primeSequence(firstPrime, primeCeiling)

// primeSequence - Builds the size sequence starting at the nearest prime from first and stopping before ceiling
func primeSequence(first, ceiling int64) (sequence []int) {
	for p := utils.NextPrime(first); p < ceiling; p = utils.NextPrime(2 * p) {
		sequence = append(sequence, int(p))
	}

	return
}

// Primes - Returns a copy of the bucket array sizes a hash table can have, in the order they are used
func Primes() []int {
	return slices.Clone(primes)
}
