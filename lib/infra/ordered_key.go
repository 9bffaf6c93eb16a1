package infra

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint that permits any integer type.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint that permits any floating-point type.
// NaN is not ordered by <, so a NaN key breaks the strict weak ordering.
type Float interface {
	~float32 | ~float64
}

// OrderedKey
// byte => ~uint8
type OrderedKey interface {
	Integer | Float | ~string
}

// OrderedKeyLess reports whether i is strictly less than j.
// It must be a strict weak ordering:
//  1. irreflexive, less(i, i) is false.
//  2. transitive, less(i, j) && less(j, k) implies less(i, k).
//  3. i and j are equivalent if !less(i, j) && !less(j, i).
type OrderedKeyLess[K any] func(i, j K) bool

func OrderedLess[K OrderedKey](i, j K) bool {
	return i < j
}

// OrderedKeyCompare derives a three-way result from a less function.
// Assume i is the new key.
//  1. i == j, return 0.
//  2. i > j, return 1, turn to right part.
//  3. i < j, return -1, turn to left part.
func OrderedKeyCompare[K any](less OrderedKeyLess[K], i, j K) int64 {
	if less(i, j) {
		return -1
	} else if less(j, i) {
		return 1
	}
	return 0
}
