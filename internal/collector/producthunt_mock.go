package collector

import "log"

// MockFetcher 返回固定的 3 条示例产品：API 抓取失败时的兜底数据源，
// 保证整条流水线仍能跑完并推送
type MockFetcher struct{}

func (m *MockFetcher) Name() string {
	return "producthunt_mock"
}

func (m *MockFetcher) Fetch() ([]RawPost, error) {
	log.Println("using mock Product Hunt data...")

	return []RawPost{
		{
			ID:          "1",
			Name:        "Venice",
			Tagline:     "Private & censorship-resistant AI | Unlock unlimited intelligence",
			Description: "Venice is a private, censorship-resistant AI platform powered by open-source models and decentralized infrastructure. The app combines the benefits of decentralized blockchain technology with the power of generative AI.",
			VotesCount:  566,
			CreatedAt:   "2025-03-07T16:01:00Z",
			FeaturedAt:  "2025-03-07T16:01:00Z",
			Website:     "https://www.producthunt.com/r/4D6Z6F7I3SXTGN",
			URL:         "https://www.producthunt.com/posts/venice-3",
			Media: []Media{
				{
					URL:  "https://ph-files.imgix.net/97baee49-6dda-47f5-8a47-91d2c56e1976.jpeg",
					Type: "image",
				},
			},
		},
		{
			ID:          "2",
			Name:        "Mistral OCR",
			Tagline:     "Introducing the world's most powerful document understanding API",
			Description: "Introducing Mistral OCR—an advanced, lightweight optical character recognition model focused on speed, accuracy, and efficiency. Whether extracting text from images or digitizing documents, it delivers top-tier performance with ease.",
			VotesCount:  477,
			CreatedAt:   "2025-03-07T16:01:00Z",
			FeaturedAt:  "2025-03-07T16:01:00Z",
			Website:     "https://www.producthunt.com/r/SPXNTAWQSVRLGH",
			URL:         "https://www.producthunt.com/posts/mistral-ocr",
			Media: []Media{
				{
					URL:  "https://ph-files.imgix.net/4224517b-29e4-4944-98c9-2eee59374870.png",
					Type: "image",
				},
			},
		},
		{
			ID:          "3",
			Name:        "AI Code Reviewer",
			Tagline:     "Automated code review powered by AI",
			Description: "An intelligent code review tool that uses AI to analyze your code, suggest improvements, and catch potential bugs before they reach production.",
			VotesCount:  324,
			CreatedAt:   "2025-03-07T14:30:00Z",
			Website:     "https://example.com/ai-code-reviewer",
			URL:         "https://www.producthunt.com/posts/ai-code-reviewer",
			Media:       []Media{},
		},
	}, nil
}
