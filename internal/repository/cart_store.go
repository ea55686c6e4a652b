package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// CartStore はユーザーIDごとのカート（プロセス内メモリ）への操作。
// プロセス再起動で消える。永続化はしない。
type CartStore interface {
	// 明細を末尾に追加する。カートが無ければ作る。
	Add(ctx context.Context, userID int64, entry model.CartEntry) error
	// 追加順のまま明細を返す。空なら空スライス（エラーにはしない）。
	Get(ctx context.Context, userID int64) ([]model.CartEntry, error)
	// カートごと削除する。無くてもエラーにしない（冪等）。
	Clear(ctx context.Context, userID int64) error
}
