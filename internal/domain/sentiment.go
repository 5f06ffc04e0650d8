package domain

import "strings"

var (
	positiveWords = []string{
		"good", "great", "excellent", "positive", "amazing",
		"innovative", "breakthrough", "success", "growth",
	}
	negativeWords = []string{
		"bad", "terrible", "negative", "fail", "problem",
		"issue", "decline", "crisis",
	}
)

// ScoreSentiment classifies text by counting the distinct positive and
// negative lexicon words it contains. The larger side wins with confidence
// min(0.9, 0.5+0.1*count); a tie is neutral at 0.5.
func ScoreSentiment(text string) SentimentScore {
	lower := strings.ToLower(text)
	pos := countPresent(lower, positiveWords)
	neg := countPresent(lower, negativeWords)

	switch {
	case pos > neg:
		return SentimentScore{Sentiment: SentimentPositive, Confidence: sentimentConfidence(pos)}
	case neg > pos:
		return SentimentScore{Sentiment: SentimentNegative, Confidence: sentimentConfidence(neg)}
	default:
		return SentimentScore{Sentiment: SentimentNeutral, Confidence: 0.5}
	}
}

// Value maps the score onto [-0.9, 0.9]: +confidence for positive,
// -confidence for negative, 0 for neutral.
func (s SentimentScore) Value() float64 {
	switch s.Sentiment {
	case SentimentPositive:
		return s.Confidence
	case SentimentNegative:
		return -s.Confidence
	default:
		return 0
	}
}

func countPresent(text string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			n++
		}
	}
	return n
}

func sentimentConfidence(n int) float64 {
	return min(0.9, 0.5+0.1*float64(n))
}
