package telegram

import (
	"context"
	"fmt"

	"app/internal/chat"
	"app/internal/domain/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// chat.Sender の実装。
// tgbotapiはcontextを取らないAPIなので、送信前にctxだけ確認する。

func (b *Bot) SendText(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("telegram: send text: %w", err)
	}
	return nil
}

func (b *Bot) SendProduct(ctx context.Context, chatID int64, p model.Product, actionToken string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("📦 %s\n💵 $%s", p.Title, model.FormatPrice(p.Price)))
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ Add to Cart", actionToken),
		),
	)

	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("telegram: send product: %w", err)
	}
	return nil
}

func (b *Bot) SendInvoice(ctx context.Context, chatID int64, inv chat.Invoice) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	prices := make([]tgbotapi.LabeledPrice, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		prices = append(prices, tgbotapi.LabeledPrice{Label: l.Label, Amount: int(l.Amount)})
	}

	cfg := tgbotapi.NewInvoice(chatID, inv.Title, inv.Description, inv.Payload,
		b.providerToken, "", inv.Currency, prices)

	if _, err := b.api.Send(cfg); err != nil {
		return fmt.Errorf("telegram: send invoice: %w", err)
	}
	return nil
}

func (b *Bot) AnswerAction(ctx context.Context, callbackID string, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		return fmt.Errorf("telegram: answer callback: %w", err)
	}
	return nil
}

func (b *Bot) NotifyAdmin(ctx context.Context, text string) error {
	return b.SendText(ctx, b.adminChatID, text)
}
