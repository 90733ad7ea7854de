package processor

import (
	"log"
	"strings"
	"time"

	"github.com/decohack/producthunt-daily/internal/collector"
)

// Product 是推送前的展示结构，时间已本地化、关键词已提取
type Product struct {
	Name        string
	Tagline     string
	Description string
	VotesCount  int
	CreatedAt   string // 本地化后的展示字符串，如 "2025年03月08日 AM12:01 (北京时间)"
	Featured    string // "是" / "否"
	Website     string
	URL         string
	OGImageURL  string
	Keyword     string
}

// ImageResolver 解析产品展示图的窄接口：API 没带图时用它兜底。
// 任何失败都返回空串，不允许中断记录处理
type ImageResolver interface {
	Resolve(pageURL string) string
}

// Processor 把 API 原始记录清洗为 Product
type Processor struct {
	images ImageResolver
}

func NewProcessor(images ImageResolver) *Processor {
	return &Processor{images: images}
}

// Process 逐条转换。name 为空的记录直接丢弃，
// 其余字段解析失败时降级为空值，不影响记录本身
func (p *Processor) Process(posts []collector.RawPost) []Product {
	out := make([]Product, 0, len(posts))

	for _, post := range posts {
		name := strings.TrimSpace(post.Name)
		if name == "" {
			log.Printf("skip post with empty name: id=%s", post.ID)
			continue
		}

		out = append(out, Product{
			Name:        name,
			Tagline:     post.Tagline,
			Description: post.Description,
			VotesCount:  post.VotesCount,
			CreatedAt:   toBeijingTime(post.CreatedAt),
			Featured:    featuredLabel(post.FeaturedAt),
			Website:     post.Website,
			URL:         post.URL,
			OGImageURL:  p.resolveImage(post),
			Keyword:     generateKeywords(name, post.Tagline),
		})
	}

	return out
}

// resolveImage 优先取 media 第一张图，否则抓产品页的 og:image 兜底
func (p *Processor) resolveImage(post collector.RawPost) string {
	if len(post.Media) > 0 && post.Media[0].URL != "" {
		return post.Media[0].URL
	}
	if p.images == nil || post.URL == "" {
		return ""
	}
	return p.images.Resolve(post.URL)
}

var keywordReplacer = strings.NewReplacer("&", ",", "|", ",", "-", ",")

// generateKeywords 从名称和标语里提取关键词：统一分隔符后按逗号切分、
// 去空白、去重（保留首次出现顺序），逗号空格连接
func generateKeywords(name, tagline string) string {
	parts := strings.Split(keywordReplacer.Replace(name+", "+tagline), ",")

	seen := make(map[string]struct{}, len(parts))
	words := make([]string, 0, len(parts))
	for _, part := range parts {
		word := strings.TrimSpace(part)
		if word == "" {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}

	if len(words) == 0 {
		return name
	}
	return strings.Join(words, ", ")
}

// toBeijingTime 把 UTC 时间串转为北京时间展示串。
// 解析失败降级为空串（与其它字段的容错策略保持一致），不中断记录
func toBeijingTime(utcTimeStr string) string {
	if utcTimeStr == "" {
		return ""
	}

	t, err := time.Parse("2006-01-02T15:04:05Z", utcTimeStr)
	if err != nil {
		log.Printf("parse createdAt %q failed: %v", utcTimeStr, err)
		return ""
	}

	loc, err := time.LoadLocation("Asia/Shanghai")
	if err != nil {
		loc = time.FixedZone("CST", 8*60*60)
	}

	return t.In(loc).Format("2006年01月02日 PM03:04 (北京时间)")
}

func featuredLabel(featuredAt string) string {
	if featuredAt != "" {
		return "是"
	}
	return "否"
}
