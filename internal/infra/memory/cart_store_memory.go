package memory

import (
	"context"
	"sync"

	"app/internal/domain/model"
)

// CartStore のメモリ実装。map + RWMutexで十分（操作は常に1ユーザー分だけ）。
type CartStore struct {
	mu    sync.RWMutex
	carts map[int64][]model.CartEntry
}

// DI
func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[int64][]model.CartEntry)}
}

func (s *CartStore) Add(ctx context.Context, userID int64, entry model.CartEntry) error {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[userID] = append(s.carts[userID], entry)
	return nil
}

func (s *CartStore) Get(ctx context.Context, userID int64) ([]model.CartEntry, error) {
	_ = ctx

	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.carts[userID]
	// 内部スライスを渡すと後のAddで書き換わるのでコピーを返す
	out := make([]model.CartEntry, len(entries))
	copy(out, entries)
	return out, nil
}

func (s *CartStore) Clear(ctx context.Context, userID int64) error {
	_ = ctx

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, userID)
	return nil
}
