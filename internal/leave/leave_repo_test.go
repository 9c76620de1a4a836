package leave_test

import (
	"context"
	"testing"

	"go-leave/internal/leave"

	"github.com/stretchr/testify/assert"
)

func ids(records []leave.LeaveRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create prepends", func(t *testing.T) {
		repo := leave.NewMemoryRepository(leave.LeaveRecord{ID: "a"}, leave.LeaveRecord{ID: "b"})

		err := repo.Create(ctx, &leave.LeaveRecord{ID: "c"})
		assert.NoError(t, err)

		list, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Equal(t, []string{"c", "a", "b"}, ids(list))
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		repo := leave.NewMemoryRepository(leave.LeaveRecord{ID: "a"})

		err := repo.Create(ctx, &leave.LeaveRecord{ID: "a"})
		assert.ErrorIs(t, err, leave.ErrDuplicateID)

		list, _ := repo.List(ctx)
		assert.Len(t, list, 1)
	})

	t.Run("find by id", func(t *testing.T) {
		repo := leave.NewMemoryRepository(leave.LeaveRecord{ID: "a", Reason: "trip"})

		got, err := repo.FindByID(ctx, "a")
		assert.NoError(t, err)
		assert.Equal(t, "trip", got.Reason)

		_, err = repo.FindByID(ctx, "zzz")
		assert.ErrorIs(t, err, leave.ErrRecordNotFound)
	})

	t.Run("delete removes exactly one", func(t *testing.T) {
		repo := leave.NewMemoryRepository(leave.LeaveRecord{ID: "a"}, leave.LeaveRecord{ID: "b"}, leave.LeaveRecord{ID: "c"})

		removed, err := repo.Delete(ctx, "b")
		assert.NoError(t, err)
		assert.True(t, removed)

		list, _ := repo.List(ctx)
		assert.Equal(t, []string{"a", "c"}, ids(list))
	})

	t.Run("delete absent id is no-op", func(t *testing.T) {
		repo := leave.NewMemoryRepository(leave.LeaveRecord{ID: "a"})

		removed, err := repo.Delete(ctx, "missing")
		assert.NoError(t, err)
		assert.False(t, removed)

		list, _ := repo.List(ctx)
		assert.Equal(t, []string{"a"}, ids(list))
	})

	t.Run("list returns a copy", func(t *testing.T) {
		seed := []leave.LeaveRecord{{ID: "a", Status: "approved"}}
		repo := leave.NewMemoryRepository(seed...)
		seed[0].Status = "mutated"

		list, _ := repo.List(ctx)
		list[0].Status = "mutated too"

		again, _ := repo.List(ctx)
		assert.Equal(t, "approved", again[0].Status)
	})
}
