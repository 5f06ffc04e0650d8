package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/noah-vh/airbour-web-sub001/internal/domain"
	"github.com/noah-vh/airbour-web-sub001/internal/metrics"
)

const (
	// TrendingTagCount is the occurrence count a tag must exceed to be
	// flagged as trending.
	TrendingTagCount = 5
	maxRelatedTags   = 5
)

// TagInput holds the parameters of a tag analysis.
type TagInput struct {
	Limit    int
	MinCount int
}

// Validate checks all fields and collects all errors.
func (i TagInput) Validate() error {
	var v domain.ValidationError
	if i.Limit < 0 || i.Limit > MaxTagLimit {
		v.Add("limit", "must be between 1 and 200")
	}
	if i.MinCount < 0 {
		v.Add("minCount", "must be non-negative")
	}
	return v.Err()
}

// GetTagAnalysis tokenises the free text of the most recent signals into
// tags and links tags that appear on the same signal.
func (s *Service) GetTagAnalysis(ctx context.Context, input TagInput) (*domain.TagAnalysis, error) {
	defer metrics.TimeAnalytics("tag_analysis")()

	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Limit == 0 {
		input.Limit = DefaultTagLimit
	}
	if input.MinCount == 0 {
		input.MinCount = DefaultTagMinCount
	}

	signals, err := s.signals.ListRecent(ctx, orgID, s.cfg.TagScanLimit)
	if err != nil {
		return nil, fmt.Errorf("list signals: %w", err)
	}

	analysis := BuildTagAnalysis(signals, input.Limit, input.MinCount)
	return &analysis, nil
}

// BuildTagAnalysis counts every token of each signal's reasoning and
// description. Tags seen fewer than minCount times are dropped, the rest are
// ordered by count (ties by tag) and capped at limit. Related tags are other
// retained tags sharing at least one signal, in retained order.
func BuildTagAnalysis(signals []*domain.Signal, limit, minCount int) domain.TagAnalysis {
	counts := make(map[string]int)
	perSignal := make([]map[string]struct{}, len(signals))
	for i, sig := range signals {
		set := make(map[string]struct{})
		for _, tok := range domain.Tokenize(sig.ClassificationReasoningConcise + " " + sig.Description) {
			counts[tok]++
			set[tok] = struct{}{}
		}
		perSignal[i] = set
	}

	retained := make([]string, 0, len(counts))
	for tag, n := range counts {
		if n >= minCount {
			retained = append(retained, tag)
		}
	}
	sort.Slice(retained, func(a, b int) bool {
		if counts[retained[a]] != counts[retained[b]] {
			return counts[retained[a]] > counts[retained[b]]
		}
		return retained[a] < retained[b]
	})
	if len(retained) > limit {
		retained = retained[:limit]
	}

	// Signals carrying each retained tag, by index.
	carriers := make(map[string][]int, len(retained))
	for _, tag := range retained {
		for i, set := range perSignal {
			if _, ok := set[tag]; ok {
				carriers[tag] = append(carriers[tag], i)
			}
		}
	}

	out := domain.TagAnalysis{
		Tags:            make([]domain.TagStat, 0, len(retained)),
		TotalUniqueTags: len(counts),
		SignalsAnalyzed: len(signals),
	}
	for _, tag := range retained {
		related := make([]string, 0, maxRelatedTags)
		for _, other := range retained {
			if other == tag {
				continue
			}
			if shareSignal(carriers[tag], perSignal, other) {
				related = append(related, other)
				if len(related) == maxRelatedTags {
					break
				}
			}
		}
		out.Tags = append(out.Tags, domain.TagStat{
			Tag:         tag,
			Count:       counts[tag],
			Trending:    counts[tag] > TrendingTagCount,
			RelatedTags: related,
		})
	}
	return out
}

func shareSignal(signalIdx []int, perSignal []map[string]struct{}, tag string) bool {
	for _, i := range signalIdx {
		if _, ok := perSignal[i][tag]; ok {
			return true
		}
	}
	return false
}
