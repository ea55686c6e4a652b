package repository

import (
	"context"

	"app/internal/domain/model"
)

// ProductCache は一覧表示した商品をID→商品で引き直すための一時キャッシュ。
// ボタン押下時のID解決にだけ使う。同じIDは上書き（IDは商品ごとに安定）。
type ProductCache interface {
	Put(ctx context.Context, p model.Product) error
	// キャッシュに無いIDは ErrNotFound。
	Resolve(ctx context.Context, productID string) (model.Product, error)
}
