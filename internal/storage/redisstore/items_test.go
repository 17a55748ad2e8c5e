package redisstore

import (
	"context"
	"testing"
	"time"

	"catalog-api/internal/models"
	"catalog-api/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testKey = "catalog:items"

func setupRepo(t *testing.T) (*ItemRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewItemRepo(rdb, testKey, zap.NewNop()), mr
}

func newItem(name string, price float64) *models.Item {
	return &models.Item{
		ID:          uuid.New(),
		Name:        name,
		Description: name + " description",
		Price:       price,
		CreatedDate: time.Now().UTC().Truncate(time.Millisecond),
	}
}

func TestItemRepo_CreateAndGet(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()
	item := newItem("Potion", 9)

	require.NoError(t, repo.Create(ctx, item))

	got, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, got.ID)
	assert.Equal(t, item.Name, got.Name)
	assert.Equal(t, item.Description, got.Description)
	assert.Equal(t, item.Price, got.Price)
	assert.True(t, item.CreatedDate.Equal(got.CreatedDate))
}

func TestItemRepo_CreateDuplicate(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()
	item := newItem("Potion", 9)

	require.NoError(t, repo.Create(ctx, item))
	assert.ErrorIs(t, repo.Create(ctx, item), storage.ErrConflict)
}

func TestItemRepo_GetAll(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	items, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	for _, it := range []*models.Item{newItem("Potion", 9), newItem("Antidote", 12), newItem("Hi-Potion", 30)} {
		require.NoError(t, repo.Create(ctx, it))
	}

	items, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestItemRepo_GetByID_NotFound(t *testing.T) {
	repo, _ := setupRepo(t)

	got, err := repo.GetByID(context.Background(), uuid.New())
	assert.Nil(t, got)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestItemRepo_GetByID_CorruptDocument(t *testing.T) {
	repo, mr := setupRepo(t)
	id := uuid.New()
	mr.HSet(testKey, id.String(), "{not json")

	_, err := repo.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, storage.ErrIntegrity)
}

func TestItemRepo_Update(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()
	item := newItem("Potion", 9)
	require.NoError(t, repo.Create(ctx, item))

	item.Name = "Mega Potion"
	item.Price = 45
	require.NoError(t, repo.Update(ctx, item))

	got, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mega Potion", got.Name)
	assert.Equal(t, float64(45), got.Price)
}

func TestItemRepo_Update_Missing(t *testing.T) {
	repo, mr := setupRepo(t)
	item := newItem("Ghost", 1)

	assert.ErrorIs(t, repo.Update(context.Background(), item), storage.ErrNotFound)
	// The conditional replace must not create the field.
	assert.False(t, mr.Exists(testKey))
}

func TestItemRepo_Delete(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()
	item := newItem("Potion", 9)
	require.NoError(t, repo.Create(ctx, item))

	require.NoError(t, repo.Delete(ctx, item.ID))

	_, err := repo.GetByID(ctx, item.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, item.ID), storage.ErrNotFound)
}

func TestItemRepo_StoreUnavailable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })
	repo := NewItemRepo(rdb, testKey, zap.NewNop())

	_, err := repo.GetAll(context.Background())
	assert.Error(t, err)
}
