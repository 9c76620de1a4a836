package response_test

import (
	"testing"

	"go-leave/internal/shared/response"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginationMeta(t *testing.T) {
	meta := response.NewPaginationMeta(21, 2, 10)
	assert.Equal(t, int64(21), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.PageSize)

	assert.Equal(t, 0, response.NewPaginationMeta(5, 1, 0).TotalPages)
}

func TestPageBounds(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		page, size int
		start, end int
	}{
		{"first page", 25, 1, 10, 0, 10},
		{"last partial page", 25, 3, 10, 20, 25},
		{"past the end", 5, 3, 10, 5, 5},
		{"empty", 0, 1, 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := response.PageBounds(tt.n, tt.page, tt.size)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []string{"e", "d", "c", "b", "a"}

	t.Run("middle page", func(t *testing.T) {
		page, meta := response.Paginate(items, response.PageQuery{Page: 2, PageSize: 2})
		assert.Equal(t, []string{"c", "b"}, page)
		assert.Equal(t, int64(5), meta.Total)
		assert.Equal(t, 3, meta.TotalPages)
	})

	t.Run("bad query falls back to defaults", func(t *testing.T) {
		page, meta := response.Paginate(items, response.PageQuery{Page: -4, PageSize: 0})
		assert.Equal(t, items, page)
		assert.Equal(t, 1, meta.Page)
		assert.Equal(t, response.DefaultPageSize, meta.PageSize)
	})

	t.Run("page size is capped", func(t *testing.T) {
		q := response.PageQuery{Page: 1, PageSize: 5000}.Normalize()
		assert.Equal(t, response.MaxPageSize, q.PageSize)
	})
}
