package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/noah-vh/airbour-web-sub001/internal/domain"
	"github.com/noah-vh/airbour-web-sub001/internal/metrics"
)

// GetSignalMetrics returns the metrics of one signal when id is set, or of
// the limit active signals with the most mentions otherwise.
func (s *Service) GetSignalMetrics(ctx context.Context, id *uuid.UUID, limit int) ([]domain.SignalMetricsView, error) {
	defer metrics.TimeAnalytics("signal_metrics")()

	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if id != nil {
		sig, err := s.signals.GetByID(ctx, orgID, *id)
		if err != nil {
			return nil, fmt.Errorf("get signal: %w", err)
		}
		return []domain.SignalMetricsView{metricsView(sig)}, nil
	}

	limit, err = clampLimit(limit, DefaultSignalMetricsLimit)
	if err != nil {
		return nil, err
	}

	all, err := s.signals.List(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("list signals: %w", err)
	}

	active := make([]*domain.Signal, 0, len(all))
	for _, sig := range all {
		if sig.Status == domain.SignalStatusActive {
			active = append(active, sig)
		}
	}
	sort.SliceStable(active, func(a, b int) bool {
		return active[a].Metrics().MentionCount > active[b].Metrics().MentionCount
	})
	if len(active) > limit {
		active = active[:limit]
	}

	out := make([]domain.SignalMetricsView, len(active))
	for i, sig := range active {
		out[i] = metricsView(sig)
	}
	return out, nil
}

func metricsView(sig *domain.Signal) domain.SignalMetricsView {
	m := sig.Metrics()
	return domain.SignalMetricsView{
		SignalID:     sig.ID,
		Name:         domain.NewSignalView(sig, nil).Name,
		Lifecycle:    domain.BehaviorToLifecycle(sig.BehaviorLayer),
		MentionCount: m.MentionCount,
		SourceCount:  m.SourceCount,
		Sentiment:    m.Sentiment,
		Growth:       m.Growth,
		Confidence:   sig.Confidence,
	}
}

// GetDashboardStats gathers the dashboard headline numbers. The underlying
// reads run concurrently; any failure fails the whole call.
func (s *Service) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	defer metrics.TimeAnalytics("dashboard_stats")()

	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock()

	var (
		signals     []*domain.Signal
		sources     []*domain.Source
		mentions24h int
		mentions7d  int
		subscribers int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		signals, err = s.signals.List(gctx, orgID)
		if err != nil {
			return fmt.Errorf("list signals: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		sources, err = s.sources.List(gctx, orgID, domain.SourceFilter{})
		if err != nil {
			return fmt.Errorf("list sources: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		mentions24h, err = s.mentions.CountSince(gctx, orgID, now.Add(-24*time.Hour))
		if err != nil {
			return fmt.Errorf("count mentions 24h: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		mentions7d, err = s.mentions.CountSince(gctx, orgID, now.Add(-7*24*time.Hour))
		if err != nil {
			return fmt.Errorf("count mentions 7d: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		subscribers, err = s.subscribers.CountByStatus(gctx, orgID, domain.SubscriberActive)
		if err != nil {
			return fmt.Errorf("count subscribers: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.log.ErrorContext(ctx, "dashboard stats failed",
			slog.String("org_id", orgID.String()),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	stats := &domain.DashboardStats{
		TotalSignals:      len(signals),
		Mentions24h:       mentions24h,
		Mentions7d:        mentions7d,
		TotalSources:      len(sources),
		ActiveSubscribers: subscribers,
	}

	weekAgo := now.Add(-7 * 24 * time.Hour)
	var confSum float64
	for _, sig := range signals {
		if sig.Status == domain.SignalStatusActive {
			stats.ActiveSignals++
		}
		if !sig.CreatedAt.Before(weekAgo) {
			stats.NewSignalsWeek++
		}
		confSum += sig.Confidence
	}
	if len(signals) > 0 {
		stats.AverageConfidence = confSum / float64(len(signals))
	}

	for _, src := range sources {
		if src.IsActive {
			stats.ActiveSources++
		}
		if src.Status == domain.SourceStatusError {
			stats.ErrorSources++
		}
	}
	return stats, nil
}

// TrendingSignal is an active signal with its velocity score.
type TrendingSignal struct {
	domain.SignalView
	VelocityScore float64 `json:"velocityScore"`
}

// VelocityScore approximates how fast a signal is moving:
// mentionCount × (1 + growth/100).
func VelocityScore(sig *domain.Signal) float64 {
	m := sig.Metrics()
	return float64(m.MentionCount) * (1 + m.Growth/100)
}

// GetTrendingSignals ranks active signals created in the last week by
// velocity score, highest first.
func (s *Service) GetTrendingSignals(ctx context.Context, limit int) ([]TrendingSignal, error) {
	defer metrics.TimeAnalytics("trending_signals")()

	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	limit, err = clampLimit(limit, DefaultTrendingLimit)
	if err != nil {
		return nil, err
	}

	recent, err := s.signals.ListCreatedSince(ctx, orgID, s.clock().Add(-TrendingWindow), s.cfg.SignalScanLimit)
	if err != nil {
		return nil, fmt.Errorf("list signals: %w", err)
	}

	out := make([]TrendingSignal, 0, len(recent))
	for _, sig := range recent {
		if sig.Status != domain.SignalStatusActive {
			continue
		}
		out = append(out, TrendingSignal{
			SignalView:    domain.NewSignalView(sig, nil),
			VelocityScore: VelocityScore(sig),
		})
	}
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].VelocityScore > out[b].VelocityScore
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// GetRecentlyActiveSignals returns signals touched in the last hours hours,
// most recent first.
func (s *Service) GetRecentlyActiveSignals(ctx context.Context, hours, limit int) ([]domain.SignalView, error) {
	defer metrics.TimeAnalytics("recently_active_signals")()

	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if hours < 0 || hours > MaxRecentHours {
		return nil, domain.NewValidationError("hours", "must be between 1 and 720")
	}
	if hours == 0 {
		hours = DefaultRecentHours
	}
	limit, err = clampLimit(limit, DefaultRecentLimit)
	if err != nil {
		return nil, err
	}

	since := s.clock().Add(-time.Duration(hours) * time.Hour)
	signals, err := s.signals.ListTouchedSince(ctx, orgID, since, limit)
	if err != nil {
		return nil, fmt.Errorf("list signals: %w", err)
	}
	return views(signals), nil
}

func clampLimit(limit, def int) (int, error) {
	switch {
	case limit < 0:
		return 0, domain.NewValidationError("limit", "must be non-negative")
	case limit == 0:
		return def, nil
	case limit > MaxResultLimit:
		return MaxResultLimit, nil
	}
	return limit, nil
}
