package collector

// Media 是 API 返回的产品配图/视频条目
type Media struct {
	URL      string `json:"url"`
	Type     string `json:"type"`
	VideoURL string `json:"videoUrl"`
}

// RawPost 对应 Product Hunt GraphQL posts.nodes 的单条记录
type RawPost struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Tagline     string  `json:"tagline"`
	Description string  `json:"description"`
	VotesCount  int     `json:"votesCount"`
	CreatedAt   string  `json:"createdAt"`
	FeaturedAt  string  `json:"featuredAt"`
	Website     string  `json:"website"`
	URL         string  `json:"url"`
	Media       []Media `json:"media"`
}

// Fetcher 抽象一个产品数据源
type Fetcher interface {
	Name() string
	Fetch() ([]RawPost, error)
}
