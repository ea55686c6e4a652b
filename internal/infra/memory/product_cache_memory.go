package memory

import (
	"context"
	"sync"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// ProductCache のメモリ実装。
type ProductCache struct {
	mu       sync.RWMutex
	products map[string]model.Product
}

// DI
func NewProductCache() *ProductCache {
	return &ProductCache{products: make(map[string]model.Product)}
}

func (c *ProductCache) Put(ctx context.Context, p model.Product) error {
	_ = ctx

	c.mu.Lock()
	defer c.mu.Unlock()

	c.products[p.ID] = p
	return nil
}

func (c *ProductCache) Resolve(ctx context.Context, productID string) (model.Product, error) {
	_ = ctx

	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.products[productID]
	if !ok {
		return model.Product{}, repo.ErrNotFound
	}
	return p, nil
}
