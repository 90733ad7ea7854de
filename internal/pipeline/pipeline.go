package pipeline

import (
	"log"
	"time"

	"github.com/decohack/producthunt-daily/internal/collector"
	"github.com/decohack/producthunt-daily/internal/processor"
	"github.com/decohack/producthunt-daily/internal/publisher"
)

const previewCount = 5

// Publisher 抽象报告的出口，方便测试替换
type Publisher interface {
	Publish(report publisher.Report) error
}

// Pipeline 串起一次完整的 抓取 → 清洗 → 推送 流程
type Pipeline struct {
	fetcher   collector.Fetcher
	fallback  collector.Fetcher
	processor *processor.Processor
	publisher Publisher
}

func New(fetcher, fallback collector.Fetcher, p *processor.Processor, pub Publisher) *Pipeline {
	return &Pipeline{
		fetcher:   fetcher,
		fallback:  fallback,
		processor: p,
		publisher: pub,
	}
}

// RunOnce 执行一轮任务。抓取失败降级到兜底数据源；
// 推送失败只记日志——任务本身照常算完成，返回值仅供调用方记录
func (p *Pipeline) RunOnce(date time.Time) error {
	log.Printf("start daily report job for %s...", date.Format("2006-01-02"))

	posts, err := p.fetcher.Fetch()
	if err != nil {
		log.Printf("fetch %s error: %v, falling back to %s",
			p.fetcher.Name(), err, p.fallback.Name())
		posts, err = p.fallback.Fetch()
		if err != nil {
			// 兜底数据源是本地常量，正常不可能走到这里
			log.Printf("fallback fetch error: %v", err)
			return err
		}
	}

	products := p.processor.Process(posts)
	log.Printf("processed %d products", len(products))

	for i, prod := range products {
		if i >= previewCount {
			break
		}
		log.Printf("%d. %s | votes=%d | %s", i+1, prod.Name, prod.VotesCount, prod.CreatedAt)
	}

	// 报告里的日期是运行日（今天），不是榜单日期
	report := publisher.BuildReport(time.Now().UTC(), "Product Hunt API", products)
	if err := p.publisher.Publish(report); err != nil {
		log.Printf("publish report error: %v", err)
		log.Println("daily report job done (webhook delivery failed)")
		return err
	}

	log.Println("daily report job done")
	return nil
}
