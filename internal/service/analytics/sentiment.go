package analytics

import (
	"context"
	"fmt"

	"github.com/noah-vh/airbour-web-sub001/internal/domain"
	"github.com/noah-vh/airbour-web-sub001/internal/metrics"
)

// SentimentInput holds the parameters of a sentiment distribution.
type SentimentInput struct {
	Limit int
	Days  int
}

// Validate checks all fields and collects all errors.
func (i SentimentInput) Validate() error {
	var v domain.ValidationError
	if i.Limit < 0 || i.Limit > MaxSentimentLimit {
		v.Add("limit", "must be between 1 and 5000")
	}
	if i.Days < 0 || i.Days > MaxSentimentDays {
		v.Add("days", "must be between 1 and 365")
	}
	return v.Err()
}

// GetSentimentDistribution classifies the newest Limit mentions fetched in
// the last Days days.
func (s *Service) GetSentimentDistribution(ctx context.Context, input SentimentInput) (*domain.SentimentDistribution, error) {
	defer metrics.TimeAnalytics("sentiment_distribution")()

	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Limit == 0 {
		input.Limit = s.cfg.SentimentScanLimit
	}
	if input.Days == 0 {
		input.Days = DefaultSentimentDays
	}

	mentions, err := s.mentions.ListSince(ctx, orgID, s.clock().Add(-days(input.Days)), input.Limit)
	if err != nil {
		return nil, fmt.Errorf("list mentions: %w", err)
	}

	dist := BuildSentimentDistribution(mentions)
	return &dist, nil
}

// BuildSentimentDistribution scores every mention and reports the split.
// Percentages are all zero when there are no mentions.
func BuildSentimentDistribution(mentions []*domain.RawMention) domain.SentimentDistribution {
	var (
		dist    domain.SentimentDistribution
		confSum float64
	)
	for _, m := range mentions {
		score := domain.ScoreSentiment(m.Content)
		switch score.Sentiment {
		case domain.SentimentPositive:
			dist.Counts.Positive++
		case domain.SentimentNegative:
			dist.Counts.Negative++
		default:
			dist.Counts.Neutral++
		}
		confSum += score.Confidence
	}

	dist.Total = len(mentions)
	dist.TrendDirection = domain.SentimentNeutral
	if dist.Total == 0 {
		return dist
	}

	total := float64(dist.Total)
	dist.Percentages = domain.SentimentPercentages{
		Positive: float64(dist.Counts.Positive) / total * 100,
		Negative: float64(dist.Counts.Negative) / total * 100,
		Neutral:  float64(dist.Counts.Neutral) / total * 100,
	}
	dist.AverageConfidence = confSum / total

	switch {
	case dist.Percentages.Positive > dist.Percentages.Negative:
		dist.TrendDirection = domain.SentimentPositive
	case dist.Percentages.Negative > dist.Percentages.Positive:
		dist.TrendDirection = domain.SentimentNegative
	}
	return dist
}
