package publisher

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/decohack/producthunt-daily/internal/processor"
)

const reportMaxProducts = 10

// 飞书工作流按这些中文字段名取值，改动需要同步改工作流配置

// ProductEntry 是报告里的单条产品
type ProductEntry struct {
	Rank        int    `json:"排名"`
	Name        string `json:"产品名称"`
	Tagline     string `json:"标语"`
	Description string `json:"详细描述"`
	OGImageURL  string `json:"产品图片链接"`
	VotesCount  int    `json:"票数"`
	CreatedAt   string `json:"创建时间"`
	Featured    string `json:"是否精选"`
	Website     string `json:"官方网站"`
	URL         string `json:"Product Hunt链接"`
	Keyword     string `json:"关键词"`
	MediaType   string `json:"媒体类型"`
}

// Report 是推送到 webhook 的完整 JSON 文档
type Report struct {
	Date       string         `json:"日期"`
	Source     string         `json:"数据来源"`
	Total      int            `json:"产品总数"`
	TotalVotes int            `json:"总票数"`
	AvgVotes   int            `json:"平均票数"`
	MaxVotes   int            `json:"最高票数"`
	MinVotes   int            `json:"最低票数"`
	Products   []ProductEntry `json:"产品列表"`
}

// BuildReport 取前 10 条产品并汇总统计。
// 入参约定已按票数降序：最高票取第一条，最低票取第 10 条（不足取末条）
func BuildReport(date time.Time, source string, products []processor.Product) Report {
	top := products
	if len(top) > reportMaxProducts {
		top = top[:reportMaxProducts]
	}

	entries := make([]ProductEntry, 0, len(top))
	totalVotes := 0
	for i, p := range top {
		totalVotes += p.VotesCount

		mediaType := "无图片"
		if p.OGImageURL != "" {
			mediaType = "图片"
		}

		entries = append(entries, ProductEntry{
			Rank:        i + 1,
			Name:        p.Name,
			Tagline:     p.Tagline,
			Description: p.Description,
			OGImageURL:  p.OGImageURL,
			VotesCount:  p.VotesCount,
			CreatedAt:   p.CreatedAt,
			Featured:    p.Featured,
			Website:     p.Website,
			URL:         p.URL,
			Keyword:     p.Keyword,
			MediaType:   mediaType,
		})
	}

	report := Report{
		Date:     date.Format("2006-01-02"),
		Source:   source,
		Total:    len(entries),
		Products: entries,
	}
	if len(top) > 0 {
		report.TotalVotes = totalVotes
		report.AvgVotes = totalVotes / len(top)
		report.MaxVotes = top[0].VotesCount
		report.MinVotes = top[len(top)-1].VotesCount
	}

	return report
}

// WebhookPublisher 把报告 POST 到配置的 webhook 地址
type WebhookPublisher struct {
	url    string
	client *http.Client
}

func NewWebhookPublisher(url string, timeout time.Duration) *WebhookPublisher {
	return &WebhookPublisher{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

// Publish 发送报告。非 2xx 或网络错误都算发送失败，
// 由调用方决定是否只记日志继续
func (w *WebhookPublisher) Publish(report Report) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("webhook: marshal report: %w", err)
	}

	log.Printf("posting report to webhook: %s (%d products, %d bytes)",
		w.url, report.Total, len(payload))

	resp, err := w.client.Post(w.url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("webhook: post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook: unexpected status %d", resp.StatusCode)
	}

	log.Printf("webhook accepted report: status %d", resp.StatusCode)
	return nil
}
