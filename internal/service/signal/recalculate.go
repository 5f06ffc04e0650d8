package signal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/noah-vh/airbour-web-sub001/internal/domain"
)

// RecalcResult reports how many signals had their metrics rewritten.
type RecalcResult struct {
	Updated int `json:"updated"`
}

// RecalculateAllSignalMetrics recomputes the metrics of every active signal
// from the raw mentions of the last two weeks. A mention belongs to a signal
// when its content contains any of the signal keywords.
func (s *Service) RecalculateAllSignalMetrics(ctx context.Context) (*RecalcResult, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	all, err := s.signals.List(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("list signals: %w", err)
	}
	active := activeOnly(all)
	if len(active) == 0 {
		return &RecalcResult{}, nil
	}

	now := s.clock()
	mentions, err := s.mentions.ListSince(ctx, orgID, now.Add(-RecalcWindow), RecalcMentionLimit)
	if err != nil {
		return nil, fmt.Errorf("list mentions: %w", err)
	}

	metrics := make(map[uuid.UUID]domain.SignalMetrics, len(active))
	latest := time.Time{}
	for _, sig := range active {
		metrics[sig.ID] = computeMetrics(sig, mentions, now)
		if lt := sig.LastTouched(); lt.After(latest) {
			latest = lt
		}
	}

	updated, err := s.signals.UpdateMetricsBatch(ctx, orgID, metrics, s.touchTime(latest))
	if err != nil {
		return nil, fmt.Errorf("update metrics: %w", err)
	}

	s.log.InfoContext(ctx, "signal metrics recalculated",
		slog.String("org_id", orgID.String()),
		slog.Int("signals", updated),
		slog.Int("mentions", len(mentions)),
	)
	return &RecalcResult{Updated: updated}, nil
}

// computeMetrics derives the metrics of sig from mentions fetched within the
// recalculation window ending at now. Growth compares the newer half of the
// window with the older one and is 0 when the older half is empty.
func computeMetrics(sig *domain.Signal, mentions []*domain.RawMention, now time.Time) domain.SignalMetrics {
	keywords := keywordSet(sig)
	if len(keywords) == 0 {
		return domain.SignalMetrics{}
	}

	halfway := now.Add(-RecalcHalfWindow)
	sources := make(map[string]struct{})
	var matched, recent, previous int
	var sentiment float64

	for _, m := range mentions {
		if !mentionMatches(m.Content, keywords) {
			continue
		}
		matched++
		if m.Source != "" {
			sources[m.Source] = struct{}{}
		}
		sentiment += domain.ScoreSentiment(m.Content).Value()
		if m.FetchedAt.Before(halfway) {
			previous++
		} else {
			recent++
		}
	}

	out := domain.SignalMetrics{MentionCount: matched, SourceCount: len(sources)}
	if matched > 0 {
		out.Sentiment = sentiment / float64(matched)
	}
	if previous > 0 {
		out.Growth = float64(recent-previous) / float64(previous) * 100
	}
	return out
}

func mentionMatches(content string, keywords map[string]struct{}) bool {
	lower := strings.ToLower(content)
	for kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
