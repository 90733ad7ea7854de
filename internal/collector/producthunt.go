package collector

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"time"
)

const (
	phAPIURL           = "https://api.producthunt.com/v2/api/graphql"
	phMaxPosts         = 30
	phMaxRetries       = 3
	phClientTimeout    = 15 * time.Second
	phMaxResponseBytes = 1 << 20 // 1MB
	phUserAgent        = "DecohackBot/1.0 (https://decohack.com)"
	phOrigin           = "https://decohack.com"
)

// 查询按票数排序，postedAfter/postedBefore 框定整个自然日（UTC），
// after 为游标分页参数
const phQueryTemplate = `
{
  posts(order: VOTES, postedAfter: "%sT00:00:00Z", postedBefore: "%sT23:59:59Z", after: "%s") {
    nodes {
      id
      name
      tagline
      description
      votesCount
      createdAt
      featuredAt
      website
      url
      media {
        url
        type
        videoUrl
      }
    }
    pageInfo {
      hasNextPage
      endCursor
    }
  }
}
`

// ProductHuntFetcher 通过官方 GraphQL API 抓取指定日期的产品榜单
type ProductHuntFetcher struct {
	token string
	date  time.Time

	// endpoint / retryDelay 可在测试里替换
	endpoint   string
	retryDelay time.Duration
	client     *http.Client
}

func NewProductHuntFetcher(token string, date time.Time) *ProductHuntFetcher {
	return &ProductHuntFetcher{
		token:      token,
		date:       date,
		endpoint:   phAPIURL,
		retryDelay: time.Second,
		client:     &http.Client{Timeout: phClientTimeout},
	}
}

func (p *ProductHuntFetcher) Name() string {
	return "producthunt"
}

// Fetch 游标分页累积结果，直到凑满 30 条或没有下一页，
// 最后按票数降序截取前 30 条
func (p *ProductHuntFetcher) Fetch() ([]RawPost, error) {
	if p.token == "" {
		return nil, fmt.Errorf("producthunt: missing developer token")
	}

	dateStr := p.date.Format("2006-01-02")
	log.Printf("fetch Product Hunt posts for %s...", dateStr)

	var all []RawPost
	hasNextPage := true
	cursor := ""

	for hasNextPage && len(all) < phMaxPosts {
		query := fmt.Sprintf(phQueryTemplate, dateStr, dateStr, cursor)

		body, err := p.postWithRetry(query)
		if err != nil {
			return nil, fmt.Errorf("producthunt: fetch page: %w", err)
		}

		var resp phResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("producthunt: unmarshal response: %w", err)
		}
		if len(resp.Errors) > 0 {
			return nil, fmt.Errorf("producthunt: api error: %s", resp.Errors[0].Message)
		}

		all = append(all, resp.Data.Posts.Nodes...)
		hasNextPage = resp.Data.Posts.PageInfo.HasNextPage
		cursor = resp.Data.Posts.PageInfo.EndCursor
	}

	// API 按 VOTES 返回，但跨页累积后再排一次，稳定排序保持页内顺序
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].VotesCount > all[j].VotesCount
	})
	if len(all) > phMaxPosts {
		all = all[:phMaxPosts]
	}

	log.Printf("fetched %d posts from Product Hunt", len(all))
	return all, nil
}

type phResponse struct {
	Data struct {
		Posts struct {
			Nodes    []RawPost `json:"nodes"`
			PageInfo struct {
				HasNextPage bool   `json:"hasNextPage"`
				EndCursor   string `json:"endCursor"`
			} `json:"pageInfo"`
		} `json:"posts"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// postWithRetry 发送 GraphQL 请求；网络错误和 429/5xx 指数退避重试，
// 其余非 200 状态码立即失败
func (p *ProductHuntFetcher) postWithRetry(query string) ([]byte, error) {
	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt <= phMaxRetries; attempt++ {
		if attempt > 0 {
			delay := p.retryDelay * time.Duration(1<<(attempt-1))
			log.Printf("producthunt: retry %d/%d after %v: %v", attempt, phMaxRetries, delay, lastErr)
			time.Sleep(delay)
		}

		req, err := http.NewRequest(http.MethodPost, p.endpoint, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+p.token)
		req.Header.Set("User-Agent", phUserAgent)
		req.Header.Set("Origin", phOrigin)
		req.Header.Set("Accept-Language", "en-US,en;q=0.9,zh-CN;q=0.8,zh;q=0.7")

		resp, err := p.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, phMaxResponseBytes))
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode == http.StatusOK {
			return body, nil
		}
		if isRetryableStatus(resp.StatusCode) {
			lastErr = fmt.Errorf("retryable status %d", resp.StatusCode)
			continue
		}
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return nil, fmt.Errorf("retries exhausted: %w", lastErr)
}

func isRetryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}
