package processor

import (
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
)

const (
	ogClientTimeout = 10 * time.Second
	ogMaxBodyBytes  = 2 << 20 // 2MB，防止超大 HTML
	ogScraperUA     = "DecohackBot/1.0 (https://decohack.com)"
)

// OGImageScraper 抓取产品页的 Open Graph / Twitter 图片标签。
// 页面结构是外部不稳定依赖，所有错误都吞掉返回空串
type OGImageScraper struct {
	client *http.Client
}

func NewOGImageScraper() *OGImageScraper {
	return &OGImageScraper{
		client: &http.Client{Timeout: ogClientTimeout},
	}
}

var _ ImageResolver = (*OGImageScraper)(nil)

// Resolve 先走 colly，失败或没抓到再退回普通 HTTP + goquery 解析
func (s *OGImageScraper) Resolve(pageURL string) string {
	if img := s.resolveWithColly(pageURL); img != "" {
		return img
	}
	return s.resolveWithHTTP(pageURL)
}

func (s *OGImageScraper) resolveWithColly(pageURL string) string {
	c := colly.NewCollector(
		colly.UserAgent(ogScraperUA),
	)
	c.SetRequestTimeout(ogClientTimeout)

	var ogImage, twitterImage string

	c.OnHTML("meta[property='og:image']", func(e *colly.HTMLElement) {
		if ogImage == "" {
			ogImage = strings.TrimSpace(e.Attr("content"))
		}
	})
	c.OnHTML("meta[name='twitter:image']", func(e *colly.HTMLElement) {
		if twitterImage == "" {
			twitterImage = strings.TrimSpace(e.Attr("content"))
		}
	})

	if err := c.Visit(pageURL); err != nil {
		log.Printf("fetch og:image (colly) %s: %v", pageURL, err)
		return ""
	}

	if ogImage != "" {
		return ogImage
	}
	return twitterImage
}

// resolveWithHTTP 备用：直接 GET 页面后用 goquery 找 meta 标签
func (s *OGImageScraper) resolveWithHTTP(pageURL string) string {
	req, err := http.NewRequest(http.MethodGet, pageURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", ogScraperUA)

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("fetch og:image (http) %s: %v", pageURL, err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, ogMaxBodyBytes))
	if err != nil {
		log.Printf("parse og:image page %s: %v", pageURL, err)
		return ""
	}

	if content, ok := doc.Find("meta[property='og:image']").First().Attr("content"); ok {
		if img := strings.TrimSpace(content); img != "" {
			return img
		}
	}
	if content, ok := doc.Find("meta[name='twitter:image']").First().Attr("content"); ok {
		return strings.TrimSpace(content)
	}
	return ""
}
