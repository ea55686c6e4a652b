package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"app/internal/chat"
	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// ユーザー向け文言
const (
	welcomeText = "🛍 Welcome to our shop!\n\n" +
		"/products – Browse products\n" +
		"/cart – View cart\n" +
		"/checkout – Pay inside Telegram"

	emptyCartText        = "🛒 Your cart is empty."
	addedToCartText      = "✅ Added to cart"
	selectionExpiredText = "⚠️ That selection has expired. Send /products to browse again."
	genericErrorText     = "⚠️ Something went wrong. Please try again later."

	invoiceTitle       = "Order Payment"
	invoiceDescription = "Pay securely inside Telegram"
)

// BotHandler はチャットイベントのハンドラ。
// イベントを usecase 呼び出しに変換し、結果をメッセージとして描画する。
type BotHandler struct {
	uc     *usecase.ShopUsecase
	sender chat.Sender
	logger *zap.Logger
	events *prometheus.CounterVec // bot_events_total{event,outcome}（nil可）
}

// DI
func NewBotHandler(uc *usecase.ShopUsecase, sender chat.Sender, logger *zap.Logger, events *prometheus.CounterVec) *BotHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BotHandler{uc: uc, sender: sender, logger: logger, events: events}
}

// Handle はイベント1件を種別で振り分ける。Dispatcherから呼ばれる。
func (h *BotHandler) Handle(ctx context.Context, ev chat.Event) {
	switch e := ev.(type) {
	case chat.SessionStart:
		h.handleStart(ctx, e)
	case chat.Command:
		switch e.Name {
		case "products":
			h.handleProducts(ctx, e)
		case "cart":
			h.handleCart(ctx, e)
		case "checkout":
			h.handleCheckout(ctx, e)
		default:
			// 未知のコマンドは応答しない
		}
	case chat.Action:
		h.handleAddToCart(ctx, e)
	case chat.PaymentConfirmed:
		h.handlePaymentConfirmed(ctx, e)
	}
}

func (h *BotHandler) handleStart(ctx context.Context, e chat.SessionStart) {
	const event = "start"

	if err := h.sender.SendText(ctx, e.User.ID, welcomeText); err != nil {
		h.fail(event, "send welcome", e.User.ID, err)
		return
	}
	h.count(event, "success")
}

func (h *BotHandler) handleProducts(ctx context.Context, e chat.Command) {
	const event = "products"

	products, err := h.uc.ListProducts(ctx)
	if err != nil {
		h.fail(event, "list products", e.User.ID, err)
		h.reply(ctx, e.User.ID, genericErrorText)
		return
	}

	// 商品ごとに「カートに追加」ボタン付きで1通ずつ送る
	for _, p := range products {
		if err := h.sender.SendProduct(ctx, e.User.ID, p, p.ID); err != nil {
			h.fail(event, "send product", e.User.ID, err)
			return
		}
	}
	h.count(event, "success")
}

func (h *BotHandler) handleCart(ctx context.Context, e chat.Command) {
	const event = "cart"

	out, err := h.uc.GetCart(ctx, e.User.ID)
	if err != nil {
		h.fail(event, "get cart", e.User.ID, err)
		h.reply(ctx, e.User.ID, genericErrorText)
		return
	}

	if len(out.Items) == 0 {
		h.reply(ctx, e.User.ID, emptyCartText)
		h.count(event, "success")
		return
	}

	var b strings.Builder
	b.WriteString("🛒 Your Cart:\n")
	for _, item := range out.Items {
		fmt.Fprintf(&b, "- %s ($%s)\n", item.Title, model.FormatPrice(item.Price))
	}
	fmt.Fprintf(&b, "\n💰 Total: $%s", model.FormatPrice(out.Total))

	h.reply(ctx, e.User.ID, b.String())
	h.count(event, "success")
}

func (h *BotHandler) handleCheckout(ctx context.Context, e chat.Command) {
	const event = "checkout"

	out, err := h.uc.Checkout(ctx, e.User.ID)
	if errors.Is(err, usecase.ErrCartEmpty) {
		h.reply(ctx, e.User.ID, emptyCartText)
		h.count(event, "success")
		return
	}
	if err != nil {
		h.fail(event, "checkout", e.User.ID, err)
		h.reply(ctx, e.User.ID, genericErrorText)
		return
	}

	lines := make([]chat.InvoiceLine, 0, len(out.Lines))
	for _, l := range out.Lines {
		lines = append(lines, chat.InvoiceLine{Label: l.Label, Amount: l.Amount})
	}

	inv := chat.Invoice{
		Title:       invoiceTitle,
		Description: invoiceDescription,
		Payload:     out.Payload,
		Currency:    out.Currency,
		Lines:       lines,
	}
	if err := h.sender.SendInvoice(ctx, e.User.ID, inv); err != nil {
		h.fail(event, "send invoice", e.User.ID, err)
		h.reply(ctx, e.User.ID, genericErrorText)
		return
	}
	h.count(event, "success")
}

func (h *BotHandler) handleAddToCart(ctx context.Context, e chat.Action) {
	const event = "add_to_cart"

	// 先にボタン押下へ応答する（押しっぱなし表示の解除）
	if err := h.sender.AnswerAction(ctx, e.CallbackID, ""); err != nil {
		h.logger.Warn("answer_action_failed", zap.Int64("user_id", e.User.ID), zap.Error(err))
	}

	_, err := h.uc.AddToCart(ctx, e.User.ID, e.Token)
	if errors.Is(err, usecase.ErrSelectionExpired) {
		h.reply(ctx, e.User.ID, selectionExpiredText)
		h.count(event, "expired")
		return
	}
	if err != nil {
		h.fail(event, "add to cart", e.User.ID, err)
		h.reply(ctx, e.User.ID, genericErrorText)
		return
	}

	h.reply(ctx, e.User.ID, addedToCartText)
	h.count(event, "success")
}

func (h *BotHandler) handlePaymentConfirmed(ctx context.Context, e chat.PaymentConfirmed) {
	const event = "payment_confirmed"

	out, err := h.uc.ConfirmPayment(ctx, e.User.ID)
	if errors.Is(err, usecase.ErrCartEmpty) {
		// 決済完了なのにカートが空＝通常起きない。運用で追えるようログだけ残す
		h.logger.Error("payment_confirmed_with_empty_cart",
			zap.Int64("user_id", e.User.ID),
			zap.String("payload", e.Payload),
		)
		h.reply(ctx, e.User.ID, genericErrorText)
		h.count(event, "error")
		return
	}
	if err != nil {
		// 支払い済みだが注文が未記録の状態。補償処理は持たないので必ずログで拾えるようにする
		h.logger.Error("draft_order_failed_after_payment",
			zap.Int64("user_id", e.User.ID),
			zap.String("payload", e.Payload),
			zap.Error(err),
		)
		h.reply(ctx, e.User.ID, genericErrorText)
		h.count(event, "error")
		return
	}

	h.reply(ctx, e.User.ID, fmt.Sprintf("✅ Payment successful!\n🧾 Shopify Order ID: %d", out.OrderID))

	notice := fmt.Sprintf("🧾 New Paid Order\nOrder ID: %d\nUser: %s", out.OrderID, e.User.DisplayName())
	if err := h.sender.NotifyAdmin(ctx, notice); err != nil {
		h.logger.Error("notify_admin_failed", zap.Int64("order_id", out.OrderID), zap.Error(err))
	}
	h.count(event, "success")
}

// reply は送信エラーをログだけに落とす（ここで返せる相手がいない）。
func (h *BotHandler) reply(ctx context.Context, chatID int64, text string) {
	if err := h.sender.SendText(ctx, chatID, text); err != nil {
		h.logger.Error("send_text_failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func (h *BotHandler) fail(event, op string, userID int64, err error) {
	h.logger.Error("bot_event_failed",
		zap.String("event", event),
		zap.String("op", op),
		zap.Int64("user_id", userID),
		zap.Error(err),
	)
	h.count(event, "error")
}

func (h *BotHandler) count(event, outcome string) {
	if h.events == nil {
		return
	}
	h.events.WithLabelValues(event, outcome).Inc()
}
