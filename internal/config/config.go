package config

import (
	"fmt"
	"os"
	"strconv"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // 運用用HTTPサーバーのポート

	BotToken      string // Telegram Bot APIトークン
	ProviderToken string // Telegram Payments プロバイダトークン

	ShopifyStore      string // ストアのホスト名（example.myshopify.com）
	ShopifyToken      string // Admin APIアクセストークン
	ShopifyAPIVersion string // 省略時 2023-10

	AdminChatID int64 // 注文通知を送る運用者チャット

	GoEnv string // dev/prod
}

// Loadは環境変数
func Load() (Config, error) {
	adminChatID, err := mustInt64("ADMIN_CHAT_ID")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port: os.Getenv("PORT"),

		BotToken:      os.Getenv("BOT_TOKEN"),
		ProviderToken: os.Getenv("PROVIDER_TOKEN"),

		ShopifyStore:      os.Getenv("SHOPIFY_STORE"),
		ShopifyToken:      os.Getenv("SHOPIFY_TOKEN"),
		ShopifyAPIVersion: os.Getenv("SHOPIFY_API_VERSION"),

		AdminChatID: adminChatID,

		GoEnv: os.Getenv("GO_ENV"),
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.BotToken == "" {
		return Config{}, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.ProviderToken == "" {
		return Config{}, fmt.Errorf("PROVIDER_TOKEN is required")
	}
	if cfg.ShopifyStore == "" {
		return Config{}, fmt.Errorf("SHOPIFY_STORE is required")
	}
	if cfg.ShopifyToken == "" {
		return Config{}, fmt.Errorf("SHOPIFY_TOKEN is required")
	}
	if cfg.GoEnv == "" {
		return Config{}, fmt.Errorf("GO_ENV is required")
	}

	if cfg.ShopifyAPIVersion == "" {
		cfg.ShopifyAPIVersion = "2023-10"
	}

	return cfg, nil
}

func mustInt64(key string) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}
