package telegram

import (
	"context"
	"fmt"

	"app/internal/chat"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const pollTimeoutSeconds = 30

// Bot はTelegram Bot APIのアダプタ。
// 受信updateを chat.Event に変換してDispatcherへ渡し、chat.Sender として送信も担う。
type Bot struct {
	api           *tgbotapi.BotAPI
	providerToken string
	adminChatID   int64
	logger        *zap.Logger
}

// DI
func New(botToken, providerToken string, adminChatID int64, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("telegram: connect: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bot{
		api:           api,
		providerToken: providerToken,
		adminChatID:   adminChatID,
		logger:        logger,
	}, nil
}

// Run はロングポーリングでupdateを受け続ける。ctxキャンセルで抜ける。
func (b *Bot) Run(ctx context.Context, dispatcher *chat.Dispatcher) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeoutSeconds
	u.AllowedUpdates = []string{"message", "callback_query", "pre_checkout_query"}

	updates := b.api.GetUpdatesChan(u)

	b.logger.Info("telegram_polling_started", zap.String("bot", b.api.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			dispatcher.Wait()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				dispatcher.Wait()
				return nil
			}
			b.handleUpdate(ctx, dispatcher, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, dispatcher *chat.Dispatcher, update tgbotapi.Update) {
	// pre-checkoutはBot APIの制限時間内に応答しないと決済が失敗する。
	// イベント化せずこの場で承認する。
	if q := update.PreCheckoutQuery; q != nil {
		answer := tgbotapi.PreCheckoutConfig{PreCheckoutQueryID: q.ID, OK: true}
		if _, err := b.api.Request(answer); err != nil {
			b.logger.Error("answer_pre_checkout_failed", zap.Error(err))
		}
		return
	}

	ev, ok := toEvent(update)
	if !ok {
		return
	}
	dispatcher.Dispatch(ctx, ev)
}

// toEvent はTelegramのupdateを閉じたイベント型に写す。対象外のupdateはfalse。
func toEvent(update tgbotapi.Update) (chat.Event, bool) {
	switch {
	case update.CallbackQuery != nil:
		q := update.CallbackQuery
		if q.From == nil || q.Data == "" {
			return nil, false
		}
		return chat.Action{User: toUser(q.From), Token: q.Data, CallbackID: q.ID}, true

	case update.Message != nil && update.Message.SuccessfulPayment != nil:
		m := update.Message
		if m.From == nil {
			return nil, false
		}
		return chat.PaymentConfirmed{
			User:    toUser(m.From),
			Payload: m.SuccessfulPayment.InvoicePayload,
		}, true

	case update.Message != nil && update.Message.IsCommand():
		m := update.Message
		if m.From == nil {
			return nil, false
		}
		if m.Command() == "start" {
			return chat.SessionStart{User: toUser(m.From)}, true
		}
		return chat.Command{User: toUser(m.From), Name: m.Command()}, true
	}

	return nil, false
}

func toUser(u *tgbotapi.User) chat.User {
	return chat.User{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.UserName,
	}
}
