package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/sbilibin2017/users-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserMemoryRepository_SaveAndGet(t *testing.T) {
	repo := NewUserMemoryRepository()
	ctx := context.Background()

	first, err := repo.Save(ctx, "cnych", "123@qq.com")
	require.NoError(t, err)
	second, err := repo.Save(ctx, "cnych1", "1231@qq.com")
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.False(t, first.CreatedAt.IsZero())

	byID, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, *second, *byID)

	byEmail, err := repo.GetByEmail(ctx, "123@qq.com")
	require.NoError(t, err)
	assert.Equal(t, *first, *byEmail)
}

func TestUserMemoryRepository_Absent(t *testing.T) {
	repo := NewUserMemoryRepository()
	ctx := context.Background()

	user, err := repo.GetByID(ctx, -1)
	assert.NoError(t, err)
	assert.Nil(t, user)

	user, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)

	users, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, users)
}

func TestUserMemoryRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserMemoryRepository()
	ctx := context.Background()

	_, err := repo.Save(ctx, "cnych", "123@qq.com")
	require.NoError(t, err)

	user, err := repo.Save(ctx, "other", "123@qq.com")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, models.ErrUniqueViolation)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	// ids are never reused after a rejected insert
	next, err := repo.Save(ctx, "next", "next@qq.com")
	require.NoError(t, err)
	assert.Equal(t, int64(2), next.ID)
}

func TestUserMemoryRepository_Ordering(t *testing.T) {
	repo := NewUserMemoryRepository()
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	stamps := []time.Time{base.Add(2 * time.Hour), base, base}
	i := 0
	repo.now = func() time.Time {
		ts := stamps[i]
		i++
		return ts
	}

	for _, email := range []string{"a@qq.com", "b@qq.com", "c@qq.com"} {
		_, err := repo.Save(ctx, email[:1], email)
		require.NoError(t, err)
	}

	byID, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids(byID))

	recent, err := repo.ListByCreatedAtDesc(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 2}, ids(recent))
}

func ids(users []models.User) []int64 {
	out := make([]int64, 0, len(users))
	for _, u := range users {
		out = append(out, u.ID)
	}
	return out
}
