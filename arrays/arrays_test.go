package arrays_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalgo/arrays"
)

func TestRotate(t *testing.T) {
	cases := []struct {
		name string
		in   []int
		d    int
		want []int
	}{
		{"left by 2", []int{1, 2, 3, 4, 5, 6}, 2, []int{3, 4, 5, 6, 1, 2}},
		{"coprime", []int{1, 2, 3, 4, 5}, 3, []int{4, 5, 1, 2, 3}},
		{"full turn", []int{1, 2, 3}, 3, []int{1, 2, 3}},
		{"more than len", []int{1, 2, 3}, 7, []int{2, 3, 1}},
		{"right by 1", []int{1, 2, 3, 4}, -1, []int{4, 1, 2, 3}},
		{"zero", []int{9, 8}, 0, []int{9, 8}},
		{"single", []int{5}, 4, []int{5}},
		{"empty", []int{}, 3, []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			arrays.Rotate(tc.in, tc.d)
			assert.Equal(t, tc.want, tc.in)
		})
	}
}

func TestRotate_Strings(t *testing.T) {
	s := []string{"a", "b", "c", "d"}
	arrays.Rotate(s, 2)
	assert.Equal(t, []string{"c", "d", "a", "b"}, s)
}

func TestCountingSort(t *testing.T) {
	in := []int{4, -2, 7, 0, -2, 3, 4}
	got, err := arrays.CountingSort(in)
	require.NoError(t, err)
	assert.Equal(t, []int{-2, -2, 0, 3, 4, 4, 7}, got)
	assert.Equal(t, []int{4, -2, 7, 0, -2, 3, 4}, in, "input must not be modified")

	got, err = arrays.CountingSort(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCountingSort_RangeTooLarge(t *testing.T) {
	_, err := arrays.CountingSort([]int{math.MinInt, math.MaxInt})
	assert.ErrorIs(t, err, arrays.ErrRangeTooLarge)

	_, err = arrays.CountingSortBy([]int{0, 10}, func(v int) int { return v }, 5)
	assert.ErrorIs(t, err, arrays.ErrRangeTooLarge)
}

func TestCountingSortBy_Stable(t *testing.T) {
	type rec struct {
		name string
		age  int
	}
	in := []rec{{"ann", 30}, {"bob", 25}, {"cid", 30}, {"dee", 25}}
	got, err := arrays.CountingSortBy(in, func(r rec) int { return r.age }, 100)
	require.NoError(t, err)
	assert.Equal(t, []rec{{"bob", 25}, {"dee", 25}, {"ann", 30}, {"cid", 30}}, got)
}

func TestTernarySearch(t *testing.T) {
	a := []int{-5, -1, 0, 3, 8, 13, 21, 34}
	for i, v := range a {
		assert.Equal(t, i, arrays.TernarySearch(a, v))
	}
	assert.Equal(t, -1, arrays.TernarySearch(a, 4))
	assert.Equal(t, -1, arrays.TernarySearch(a, -100))
	assert.Equal(t, -1, arrays.TernarySearch(a, 100))
	assert.Equal(t, -1, arrays.TernarySearch([]int{}, 1))

	words := []string{"alfa", "bravo", "charlie"}
	assert.Equal(t, 1, arrays.TernarySearch(words, "bravo"))
}

func TestTernarySearch_Duplicates(t *testing.T) {
	a := []int{1, 2, 2, 2, 3}
	idx := arrays.TernarySearch(a, 2)
	require.GreaterOrEqual(t, idx, 1)
	assert.Equal(t, 2, a[idx])
}

func TestTernaryMax(t *testing.T) {
	peak := func(x int) int { return -(x - 17) * (x - 17) }
	got, err := arrays.TernaryMax(peak, -100, 100)
	require.NoError(t, err)
	assert.Equal(t, 17, got)

	inc := func(x int) int { return x }
	got, err = arrays.TernaryMax(inc, 0, 9)
	require.NoError(t, err)
	assert.Equal(t, 9, got)

	got, err = arrays.TernaryMax(inc, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	_, err = arrays.TernaryMax(inc, 5, 4)
	assert.ErrorIs(t, err, arrays.ErrEmptyRange)
}

func TestTernaryMax_ExtremeRanges(t *testing.T) {
	negAbs := func(x int) int {
		if x < 0 {
			return x
		}
		return -x
	}
	// width exceeds MaxInt
	got, err := arrays.TernaryMax(negAbs, math.MinInt/2-10, math.MaxInt/2+10)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	inc := func(x int) int { return x }
	got, err = arrays.TernaryMax(inc, math.MinInt, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, got)

	// final scan ends exactly at MaxInt
	got, err = arrays.TernaryMax(inc, math.MaxInt-2, math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, got)

	dec := func(x int) int { return -x }
	got, err = arrays.TernaryMax(dec, math.MinInt, math.MinInt+1)
	require.NoError(t, err)
	assert.Equal(t, math.MinInt, got)
}
