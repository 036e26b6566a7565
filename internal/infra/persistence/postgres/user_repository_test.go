package postgres

import (
	"context"
	"testing"

	"shopbot/internal/domain/entity"
	"shopbot/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{ID: "psid-1", Phone: "99110022"}))
	require.NoError(t, repo.Create(ctx, &entity.User{ID: "psid-1", Phone: "88112233"}))

	user, err := repo.FindByID(ctx, "psid-1")
	require.NoError(t, err)
	assert.Equal(t, "99110022", user.Phone)
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.LockByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_FillContactDefaults_FirstWriteWins(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{ID: "psid-1"}))

	require.NoError(t, repo.FillContactDefaults(ctx, "psid-1", "99110022", ""))
	require.NoError(t, repo.FillContactDefaults(ctx, "psid-1", "88112233", "Сүхбаатар дүүрэг 1-р хороо"))
	require.NoError(t, repo.FillContactDefaults(ctx, "psid-1", "", "Баянзүрх дүүрэг"))

	user, err := repo.LockByID(ctx, "psid-1")
	require.NoError(t, err)
	assert.Equal(t, "99110022", user.Phone)
	assert.Equal(t, "Сүхбаатар дүүрэг 1-р хороо", user.Address)
	assert.True(t, user.HasContact())
}
