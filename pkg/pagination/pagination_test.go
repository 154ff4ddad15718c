package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		count, size, want int
	}{
		{count: 0, size: 6, want: 0},
		{count: 1, size: 6, want: 1},
		{count: 6, size: 6, want: 1},
		{count: 7, size: 6, want: 2},
		{count: 12, size: 6, want: 2},
		{count: 13, size: 0, want: 3},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TotalPages(tc.count, tc.size), "count=%d size=%d", tc.count, tc.size)
	}
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 3))
	assert.Equal(t, 1, ClampPage(-4, 3))
	assert.Equal(t, 2, ClampPage(2, 3))
	assert.Equal(t, 3, ClampPage(9, 3))
	assert.Equal(t, 1, ClampPage(5, 0))
}

func TestSliceFirstPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}

	page, w := Slice(items, 1, 6)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, page)
	assert.Equal(t, 2, w.TotalPages)
	assert.Equal(t, 12, w.Total)

	page, w = Slice(items, 2, 6)
	assert.Equal(t, []int{7, 8, 9, 10, 11, 12}, page)
	assert.Equal(t, 2, w.Page)
}

func TestSliceShortSequence(t *testing.T) {
	page, w := Slice([]string{"a", "b"}, 1, 6)
	assert.Equal(t, []string{"a", "b"}, page)
	assert.Equal(t, 1, w.TotalPages)
}

func TestSliceClampsOutOfRangePages(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page, w := Slice(items, 99, 6)
	assert.Equal(t, []int{7}, page)
	assert.Equal(t, 2, w.Page)

	page, w = Slice(items, -1, 6)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, page)
	assert.Equal(t, 1, w.Page)
}

func TestSliceEmptySequence(t *testing.T) {
	page, w := Slice([]int{}, 3, 6)
	assert.Empty(t, page)
	assert.Equal(t, 1, w.Page)
	assert.Equal(t, 0, w.TotalPages)
	assert.Equal(t, 0, w.Start)
	assert.Equal(t, 0, w.End)
}

func TestNormalizePageSize(t *testing.T) {
	assert.Equal(t, DefaultPageSize, NormalizePageSize(0))
	assert.Equal(t, MaxPageSize, NormalizePageSize(MaxPageSize+1))
	assert.Equal(t, 10, NormalizePageSize(10))
}
