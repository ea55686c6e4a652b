package usecase

import (
	"context"
	"errors"
	"fmt"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/google/uuid"
)

var (
	// カートが空（エラーというより通常分岐。案内メッセージにする）
	ErrCartEmpty = errors.New("cart is empty")
	// ボタンの商品IDがキャッシュに無い（/productsし直してもらう）
	ErrSelectionExpired = errors.New("selection expired")
)

const (
	// 一覧は先頭10件だけ表示する（表示ポリシー）
	maxListedProducts = 10

	invoiceCurrency = "USD"

	// 実メールは収集しないのでユーザーIDから合成する
	emailDomain = "telegram.shop"
)

// ShopUsecase は会話フロー（閲覧→カート→決済→注文転送）の業務ロジック。
type ShopUsecase struct {
	catalog repo.ProductCatalog
	orders  repo.DraftOrders
	carts   repo.CartStore
	cache   repo.ProductCache
}

// DI
func NewShopUsecase(
	catalog repo.ProductCatalog,
	orders repo.DraftOrders,
	carts repo.CartStore,
	cache repo.ProductCache,
) *ShopUsecase {
	return &ShopUsecase{
		catalog: catalog,
		orders:  orders,
		carts:   carts,
		cache:   cache,
	}
}

// ListProducts はカタログの先頭10件を返す。
// 表示した分だけ（表示したものすべて）をIDキャッシュに積む。
func (u *ShopUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := u.catalog.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	if len(products) > maxListedProducts {
		products = products[:maxListedProducts]
	}

	for _, p := range products {
		if err := u.cache.Put(ctx, p); err != nil {
			return nil, fmt.Errorf("cache product %s: %w", p.ID, err)
		}
	}

	return products, nil
}

type CartOutput struct {
	Items []model.CartEntry
	Total int64 // 最小通貨単位
}

// GetCart はカートの明細と合計を返す。空でもエラーにしない。
func (u *ShopUsecase) GetCart(ctx context.Context, userID int64) (CartOutput, error) {
	items, err := u.carts.Get(ctx, userID)
	if err != nil {
		return CartOutput{}, fmt.Errorf("get cart: %w", err)
	}
	return CartOutput{Items: items, Total: model.CartTotal(items)}, nil
}

// AddToCart はボタンの商品IDをキャッシュで引き直してカートに積む。
// キャッシュに無いIDは ErrSelectionExpired（何も積まない）。
func (u *ShopUsecase) AddToCart(ctx context.Context, userID int64, productID string) (model.Product, error) {
	p, err := u.cache.Resolve(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, ErrSelectionExpired
	}
	if err != nil {
		return model.Product{}, fmt.Errorf("resolve product %s: %w", productID, err)
	}

	entry := model.CartEntry{ProductID: p.ID, Title: p.Title, Price: p.Price}
	if err := u.carts.Add(ctx, userID, entry); err != nil {
		return model.Product{}, fmt.Errorf("add to cart: %w", err)
	}

	return p, nil
}

type PriceLine struct {
	Label  string
	Amount int64 // 最小通貨単位
}

type CheckoutOutput struct {
	Payload  string // 請求書ごとに発行する不透明トークン
	Currency string
	Lines    []PriceLine
	Total    int64
}

// Checkout は請求書の行（1明細=1行）を組み立てる。空カートは ErrCartEmpty。
func (u *ShopUsecase) Checkout(ctx context.Context, userID int64) (CheckoutOutput, error) {
	items, err := u.carts.Get(ctx, userID)
	if err != nil {
		return CheckoutOutput{}, fmt.Errorf("get cart: %w", err)
	}
	if len(items) == 0 {
		return CheckoutOutput{}, ErrCartEmpty
	}

	lines := make([]PriceLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, PriceLine{Label: item.Title, Amount: item.Price})
	}

	return CheckoutOutput{
		Payload:  uuid.NewString(),
		Currency: invoiceCurrency,
		Lines:    lines,
		Total:    model.CartTotal(items),
	}, nil
}

type PaymentOutput struct {
	OrderID int64
	Total   int64
}

// ConfirmPayment は決済完了後の処理。
// カート全量をドラフト注文として転送し、成功したときだけカートを消す。
// 注文転送に失敗したらカートはそのまま残す（支払い済み・注文未記録の旨は呼び出し側でログする）。
func (u *ShopUsecase) ConfirmPayment(ctx context.Context, userID int64) (PaymentOutput, error) {
	items, err := u.carts.Get(ctx, userID)
	if err != nil {
		return PaymentOutput{}, fmt.Errorf("get cart: %w", err)
	}
	if len(items) == 0 {
		return PaymentOutput{}, ErrCartEmpty
	}

	email := fmt.Sprintf("%d@%s", userID, emailDomain)
	orderID, err := u.orders.CreateDraftOrder(ctx, email, items)
	if err != nil {
		return PaymentOutput{}, fmt.Errorf("create draft order: %w", err)
	}

	if err := u.carts.Clear(ctx, userID); err != nil {
		return PaymentOutput{}, fmt.Errorf("clear cart: %w", err)
	}

	return PaymentOutput{OrderID: orderID, Total: model.CartTotal(items)}, nil
}
