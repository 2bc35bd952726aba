package utils

import (
	"math"
	"reflect"
)

// IsEqual - Returns true if a and b are equal both in size and contents
func IsEqual(a, b []byte) bool {
	lenA := len(a)
	if lenA != len(b) {
		return false
	}

	for i := 0; i < lenA; i++ {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// NonNegative - Masks away the sign bit of a hash code so that it can safely be used as dividend in a modulo
// operation. Masking rather than taking the absolute value keeps math.MinInt64 from overflowing.
func NonNegative(hashCode int64) int64 {
	return hashCode & math.MaxInt64
}

// NextPrime - Returns n if it is a prime number, otherwise the nearest higher prime number.
func NextPrime(n int64) int64 {
OUTER:
	for {
		if n == 2 || n == 3 {
			return n
		}

		if n <= 1 || n%2 == 0 || n%3 == 0 {
			n++
			continue
		}

		for i := int64(5); i*i <= n; i += 6 {
			if n%i == 0 || n%(i+2) == 0 {
				n++
				continue OUTER
			}
		}

		return n
	}
}

// IsNil - Returns true if v is a nil interface or a nil pointer, map, slice, channel or func.
// Values of any other kind are never nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// CanBeNil - Returns true if values of type T can ever be nil, that is if T is an interface, pointer, map,
// slice, channel or func type.
func CanBeNil[T any]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
