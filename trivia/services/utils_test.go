package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := make([]int, 0, 30)
	for i := 1; i <= 30; i++ {
		items = append(items, i)
	}

	assert.Equal(t, items[:10], paginate(items, 1, 10))
	assert.Equal(t, items[10:20], paginate(items, 2, 10))
	assert.Equal(t, items[20:], paginate(items, 3, 10))
	assert.Empty(t, paginate(items, 4, 10))
}

func TestPaginatePartialLastPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{4, 5}, paginate(items, 2, 3))
	assert.Empty(t, paginate(items, 3, 3))
}

func TestPaginateInvalidPage(t *testing.T) {
	items := []int{1, 2, 3}

	assert.Empty(t, paginate(items, 0, 10))
	assert.Empty(t, paginate(items, -1, 10))
	assert.Empty(t, paginate(items, 1, 0))
	assert.Empty(t, paginate([]int{}, 1, 10))
}
