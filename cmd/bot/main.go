package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"app/internal/chat"
	"app/internal/config"
	"app/internal/handler"
	"app/internal/infra/memory"
	"app/internal/infra/shopify"
	"app/internal/infra/telegram"
	"app/internal/logging"
	"app/internal/metrics"
	"app/internal/server"
	"app/internal/usecase"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const serviceName = "shop-bot"

func main() {
	// .envは開発用。無ければ環境変数だけで動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.MustNewLogger(serviceName, cfg.GoEnv)
	defer func() { _ = logger.Sync() }()

	m := metrics.New(prometheus.DefaultRegisterer)

	//ストア（メモリ実装）生成
	cartStore := memory.NewCartStore()
	productCache := memory.NewProductCache()

	//Shopifyクライアント
	httpClient := &http.Client{Timeout: 15 * time.Second}
	shopifyClient := shopify.NewClient(httpClient, cfg.ShopifyStore, cfg.ShopifyAPIVersion, cfg.ShopifyToken, logger, m.ShopifyRequests)

	//Usecase生成
	uc := usecase.NewShopUsecase(shopifyClient, shopifyClient, cartStore, productCache)

	//Telegram接続
	bot, err := telegram.New(cfg.BotToken, cfg.ProviderToken, cfg.AdminChatID, logger)
	if err != nil {
		logger.Fatal("telegram_init_failed", zap.Error(err))
	}

	//Handler生成
	h := handler.NewBotHandler(uc, bot, logger, m.BotEvents)
	dispatcher := chat.NewDispatcher(h)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//運用用HTTPサーバー（/healthz, /metrics）
	e := server.New()
	go func() {
		logger.Info("ops_server_start", zap.String("port", cfg.Port))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("ops_server_error", zap.Error(err))
		}
	}()

	//ボット本体（ロングポーリング）
	go func() {
		if err := bot.Run(ctx, dispatcher); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("bot_stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("ops_server_shutdown_error", zap.Error(err))
	}

	// 処理中のイベントを出し切ってから終了
	dispatcher.Wait()
	logger.Info("stopped")
}
