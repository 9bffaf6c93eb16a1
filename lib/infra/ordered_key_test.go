package infra

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedLess_Float(t *testing.T) {
	assert.True(t, OrderedLess(1.0, 1.1))
	assert.False(t, OrderedLess(1.1, 1.0))
	assert.Equal(t, int64(0), OrderedKeyCompare[float64](OrderedLess[float64], 2.5, 2.5))
	assert.Equal(t, int64(-1), OrderedKeyCompare[float32](OrderedLess[float32], -0.5, 0.5))

	// NaN is neither less nor greater than any key, it is equivalent
	// to every key and breaks the transitivity of equivalence.
	nan := math.NaN()
	assert.False(t, OrderedLess(nan, 1.0))
	assert.False(t, OrderedLess(1.0, nan))
	assert.Equal(t, int64(0), OrderedKeyCompare[float64](OrderedLess[float64], nan, 1.0))
	assert.Equal(t, int64(0), OrderedKeyCompare[float64](OrderedLess[float64], nan, 2.0))
	assert.Equal(t, int64(-1), OrderedKeyCompare[float64](OrderedLess[float64], 1.0, 2.0))
}

func TestOrderedKeyCompare(t *testing.T) {
	testcases := []struct {
		name     string
		i, j     int
		expected int64
	}{
		{"less", 1, 2, -1},
		{"greater", 3, 2, 1},
		{"equal", 7, 7, 0},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			require.Equal(tt, tc.expected, OrderedKeyCompare[int](OrderedLess[int], tc.i, tc.j))
		})
	}
}

func TestOrderedKeyCompare_Equivalence(t *testing.T) {
	caseInsensitive := OrderedKeyLess[string](func(i, j string) bool {
		return strings.ToLower(i) < strings.ToLower(j)
	})
	require.Equal(t, int64(0), OrderedKeyCompare(caseInsensitive, "Go", "gO"))
	require.Equal(t, int64(-1), OrderedKeyCompare(caseInsensitive, "alpha", "Beta"))
	require.Equal(t, int64(1), OrderedKeyCompare(caseInsensitive, "zeta", "Beta"))
}
