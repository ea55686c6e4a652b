package memory_test

import (
	"context"
	"testing"

	"app/internal/domain/model"
	"app/internal/infra/memory"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductCache_PutAndResolve(t *testing.T) {
	ctx := context.Background()
	c := memory.NewProductCache()

	p := model.Product{ID: "42", Title: "Coffee", Price: 999}
	require.NoError(t, c.Put(ctx, p))

	got, err := c.Resolve(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestProductCache_ResolveUnknownIsNotFound(t *testing.T) {
	c := memory.NewProductCache()

	_, err := c.Resolve(context.Background(), "missing")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

// 同じIDは上書きされる（IDは商品ごとに安定している前提）
func TestProductCache_PutOverwrites(t *testing.T) {
	ctx := context.Background()
	c := memory.NewProductCache()

	require.NoError(t, c.Put(ctx, model.Product{ID: "42", Title: "Coffee", Price: 999}))
	require.NoError(t, c.Put(ctx, model.Product{ID: "42", Title: "Coffee", Price: 1099}))

	got, err := c.Resolve(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, int64(1099), got.Price)
}
