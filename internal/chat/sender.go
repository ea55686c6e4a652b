package chat

import (
	"context"

	"app/internal/domain/model"
)

// InvoiceLine は請求書の1行。Amountは最小通貨単位。
type InvoiceLine struct {
	Label  string
	Amount int64
}

// Invoice はチャット内決済のリクエスト。
type Invoice struct {
	Title       string
	Description string
	Payload     string
	Currency    string
	Lines       []InvoiceLine
}

// Sender はチャット基盤への出力境界。
type Sender interface {
	SendText(ctx context.Context, chatID int64, text string) error
	// 商品カード1件を「カートに追加」ボタン付きで送る。
	SendProduct(ctx context.Context, chatID int64, p model.Product, actionToken string) error
	SendInvoice(ctx context.Context, chatID int64, inv Invoice) error
	// ボタン押下の応答（押しっぱなし表示の解除）。
	AnswerAction(ctx context.Context, callbackID string, text string) error
	NotifyAdmin(ctx context.Context, text string) error
}
