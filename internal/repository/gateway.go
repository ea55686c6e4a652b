package repository

import (
	"context"

	"app/internal/domain/model"
)

// ProductCatalog はコマースバックエンドの商品一覧（読み取り専用）。
type ProductCatalog interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
}

// DraftOrders は支払い済みカートをドラフト注文として登録する。
// 支払い確認は呼び出し側（決済完了イベント）で済んでいる前提。
type DraftOrders interface {
	// 1明細につき数量1の注文行を作り、注文IDを返す。
	CreateDraftOrder(ctx context.Context, email string, entries []model.CartEntry) (int64, error)
}
