package main

import (
	"flag"
	"log"
	"time"

	"github.com/decohack/producthunt-daily/internal/collector"
	"github.com/decohack/producthunt-daily/internal/config"
	"github.com/decohack/producthunt-daily/internal/pipeline"
	"github.com/decohack/producthunt-daily/internal/processor"
	"github.com/decohack/producthunt-daily/internal/publisher"
)

// 单次执行的命令行入口：抓取昨天的 Product Hunt 榜单并推送到 webhook。
// 定时触发交给外部（GitHub Actions / crontab），进程本身跑完即退出，
// webhook 推送失败只记日志，不改变退出码
func main() {
	var (
		tokenFlag   = flag.String("token", "", "Product Hunt developer token（优先于环境变量）")
		webhookFlag = flag.String("webhook", "", "webhook 地址（优先于环境变量）")
		dateFlag    = flag.String("date", "", "目标日期 YYYY-MM-DD，默认昨天（UTC）")
	)
	flag.Parse()

	cfg := config.Load()
	if *tokenFlag != "" {
		cfg.Token = *tokenFlag
	}
	if *webhookFlag != "" {
		cfg.WebhookURL = *webhookFlag
	}

	date := time.Now().UTC().AddDate(0, 0, -1)
	if *dateFlag != "" {
		parsed, err := time.Parse("2006-01-02", *dateFlag)
		if err != nil {
			log.Fatalf("invalid -date %q: %v", *dateFlag, err)
		}
		date = parsed
	}

	p := pipeline.New(
		collector.NewProductHuntFetcher(cfg.Token, date),
		&collector.MockFetcher{},
		processor.NewProcessor(processor.NewOGImageScraper()),
		publisher.NewWebhookPublisher(cfg.WebhookURL, cfg.HTTPTimeout),
	)

	_ = p.RunOnce(date)
}
