package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// 默认 webhook 指向飞书工作流入口，可用 FEISHU_WEBHOOK_URL 覆盖
const defaultWebhookURL = "https://larkcommunity.feishu.cn/base/workflow/webhook/event/O7fjaz3CTw5lHOh5g0ccP70EnKf"

type Config struct {
	// Product Hunt API bearer token。没有内置默认值：缺失视为抓取失败，
	// 由上层降级到 mock 数据
	Token string

	WebhookURL string

	HTTPTimeout time.Duration
}

// Load 读取配置，优先级：调用方显式覆盖 > 环境变量 > 内置默认值。
// 本地开发时支持 .env 文件（CI 里变量已注入，加载失败直接忽略）
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Token:       getEnv("PRODUCTHUNT_DEVELOPER_TOKEN", ""),
		WebhookURL:  getEnv("FEISHU_WEBHOOK_URL", defaultWebhookURL),
		HTTPTimeout: 10 * time.Second,
	}

	log.Printf("config loaded: webhook=%s token_set=%v", cfg.WebhookURL, cfg.Token != "")
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
