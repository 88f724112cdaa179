package models

import "time"

// NewsSentimentResponse is the NEWS_SENTIMENT response: scoring metadata
// plus the article feed.
type NewsSentimentResponse struct {
	Items                    string        `av:"items,required"`
	SentimentScoreDefinition string        `av:"sentiment_score_definition,required"`
	RelevanceScoreDefinition string        `av:"relevance_score_definition,required"`
	Feed                     []NewsArticle `av:"feed,required"`
}

// NewsArticle is one article in the news feed with its sentiment scoring.
type NewsArticle struct {
	Title                 string            `av:"title,required"`
	URL                   string            `av:"url,required"`
	TimePublished         time.Time         `av:"time_published,required,compact"`
	Authors               []string          `av:"authors,required"`
	Summary               string            `av:"summary,required"`
	BannerImage           *string           `av:"banner_image"`
	Source                string            `av:"source,required"`
	CategoryWithinSource  string            `av:"category_within_source,required"`
	SourceDomain          string            `av:"source_domain,required"`
	Topics                []Topic           `av:"topics,required"`
	OverallSentimentScore *float64          `av:"overall_sentiment_score"`
	OverallSentimentLabel string            `av:"overall_sentiment_label,required"`
	TickerSentiment       []TickerSentiment `av:"ticker_sentiment,required"`
}

// Topic is a topic classification attached to an article.
type Topic struct {
	Topic          string   `av:"topic,required"`
	RelevanceScore *float64 `av:"relevance_score"`
}

// TickerSentiment is the per-ticker sentiment scoring within an article.
type TickerSentiment struct {
	Ticker               string   `av:"ticker,required"`
	RelevanceScore       *float64 `av:"relevance_score"`
	TickerSentimentScore *float64 `av:"ticker_sentiment_score"`
	TickerSentimentLabel string   `av:"ticker_sentiment_label"`
}
