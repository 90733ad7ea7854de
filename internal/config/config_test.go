package config

import (
	"os"
	"testing"
)

func TestGetEnvWithDefault(t *testing.T) {
	const key = "TEST_WEBHOOK_URL"

	// 环境变量未设置时，应该返回默认值
	_ = os.Unsetenv(key)
	if got := getEnv(key, "https://example.com/hook"); got != "https://example.com/hook" {
		t.Fatalf("getEnv(%q) = %q, want default", key, got)
	}

	// 环境变量设置后，应优先返回环境变量
	if err := os.Setenv(key, "https://other.example.com"); err != nil {
		t.Fatalf("Setenv error: %v", err)
	}
	defer os.Unsetenv(key)
	if got := getEnv(key, "https://example.com/hook"); got != "https://other.example.com" {
		t.Fatalf("getEnv(%q) = %q, want env value", key, got)
	}
}

func TestLoadReadsTokenAndWebhook(t *testing.T) {
	_ = os.Setenv("PRODUCTHUNT_DEVELOPER_TOKEN", "test-token")
	_ = os.Setenv("FEISHU_WEBHOOK_URL", "https://hooks.example.com/abc")
	defer func() {
		_ = os.Unsetenv("PRODUCTHUNT_DEVELOPER_TOKEN")
		_ = os.Unsetenv("FEISHU_WEBHOOK_URL")
	}()

	cfg := Load()
	if cfg.Token != "test-token" {
		t.Fatalf("Token = %q, want %q", cfg.Token, "test-token")
	}
	if cfg.WebhookURL != "https://hooks.example.com/abc" {
		t.Fatalf("WebhookURL = %q, want env override", cfg.WebhookURL)
	}
}

func TestLoadDefaultsWhenEnvUnset(t *testing.T) {
	_ = os.Unsetenv("PRODUCTHUNT_DEVELOPER_TOKEN")
	_ = os.Unsetenv("FEISHU_WEBHOOK_URL")

	cfg := Load()
	if cfg.Token != "" {
		t.Fatalf("Token should be empty without env, got %q", cfg.Token)
	}
	if cfg.WebhookURL != defaultWebhookURL {
		t.Fatalf("WebhookURL = %q, want built-in default", cfg.WebhookURL)
	}
	if cfg.HTTPTimeout <= 0 {
		t.Fatalf("HTTPTimeout should be positive, got %v", cfg.HTTPTimeout)
	}
}
