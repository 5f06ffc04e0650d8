package domain

import (
	"time"

	"github.com/google/uuid"
)

// VelocityBucket is the activity of one calendar day.
type VelocityBucket struct {
	Date              string  `json:"date"`
	Signals           int     `json:"signals"`
	Mentions          int     `json:"mentions"`
	Velocity          int     `json:"velocity"`
	SignalGrowthRate  float64 `json:"signalGrowthRate"`
	MentionGrowthRate float64 `json:"mentionGrowthRate"`
}

// VelocitySummary aggregates a velocity trend.
type VelocitySummary struct {
	TotalSignals          int             `json:"totalSignals"`
	TotalMentions         int             `json:"totalMentions"`
	AverageSignalsPerDay  float64         `json:"averageSignalsPerDay"`
	AverageMentionsPerDay float64         `json:"averageMentionsPerDay"`
	PeakVelocity          *VelocityBucket `json:"peakVelocity"`
	Period                VelocityPeriod  `json:"period"`
}

// VelocityPeriod echoes the request parameters of a velocity trend.
type VelocityPeriod struct {
	Days        int         `json:"days"`
	Granularity Granularity `json:"granularity"`
}

// VelocityTrends is the result of a velocity computation.
type VelocityTrends struct {
	Trends  []VelocityBucket `json:"trends"`
	Summary VelocitySummary  `json:"summary"`
}

// SentimentCounts holds per-polarity counts.
type SentimentCounts struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// SentimentPercentages holds per-polarity shares in percent.
type SentimentPercentages struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

// SentimentDistribution is the result of classifying recent mentions.
type SentimentDistribution struct {
	Total             int                  `json:"total"`
	Counts            SentimentCounts      `json:"counts"`
	Percentages       SentimentPercentages `json:"percentages"`
	AverageConfidence float64              `json:"averageConfidence"`
	TrendDirection    Sentiment            `json:"trendDirection"`
}

// SentimentScore is the heuristic classification of one text.
type SentimentScore struct {
	Sentiment  Sentiment `json:"sentiment"`
	Confidence float64   `json:"confidence"`
}

// TagStat is one retained tag and its co-occurring neighbours.
type TagStat struct {
	Tag         string   `json:"tag"`
	Count       int      `json:"count"`
	Trending    bool     `json:"trending"`
	RelatedTags []string `json:"relatedTags"`
}

// TagAnalysis is the result of tokenising signal text into tags.
type TagAnalysis struct {
	Tags            []TagStat `json:"tags"`
	TotalUniqueTags int       `json:"totalUniqueTags"`
	SignalsAnalyzed int       `json:"signalsAnalyzed"`
}

// SourceMetric is the activity of one source.
type SourceMetric struct {
	SourceID    uuid.UUID    `json:"sourceId"`
	Name        string       `json:"name"`
	Type        SourceType   `json:"type"`
	Status      SourceStatus `json:"status"`
	Mentions    int          `json:"mentions"`
	Health      string       `json:"health"`
	ErrorCount  int          `json:"errorCount"`
	LastUpdated *time.Time   `json:"lastUpdated,omitempty"`
}

// SourceMetrics is the per-source activity report.
type SourceMetrics struct {
	Sources []SourceMetric    `json:"sources"`
	Health  SourceHealthStats `json:"health"`
}

// SignalMetricsView is the metrics block of one signal.
type SignalMetricsView struct {
	SignalID     uuid.UUID `json:"signalId"`
	Name         string    `json:"name"`
	Lifecycle    Lifecycle `json:"lifecycle"`
	MentionCount int       `json:"mentionCount"`
	SourceCount  int       `json:"sourceCount"`
	Sentiment    float64   `json:"sentiment"`
	Growth       float64   `json:"growth"`
	Confidence   float64   `json:"confidence"`
}

// DashboardStats is the headline block of the dashboard.
type DashboardStats struct {
	TotalSignals      int     `json:"totalSignals"`
	ActiveSignals     int     `json:"activeSignals"`
	NewSignalsWeek    int     `json:"newSignalsWeek"`
	Mentions24h       int     `json:"mentions24h"`
	Mentions7d        int     `json:"mentions7d"`
	TotalSources      int     `json:"totalSources"`
	ActiveSources     int     `json:"activeSources"`
	ErrorSources      int     `json:"errorSources"`
	ActiveSubscribers int     `json:"activeSubscribers"`
	AverageConfidence float64 `json:"averageConfidence"`
}
