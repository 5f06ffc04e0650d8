package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/noah-vh/airbour-web-sub001/internal/domain"
	"github.com/noah-vh/airbour-web-sub001/internal/metrics"
)

const bucketLayout = "2006-01-02"

// VelocityInput holds the parameters of a velocity trend.
type VelocityInput struct {
	Days        int
	Granularity domain.Granularity
}

// Validate checks all fields and collects all errors.
func (i VelocityInput) Validate() error {
	var v domain.ValidationError
	if i.Days < 0 || i.Days > MaxVelocityDays {
		v.Add("days", "must be between 1 and 365")
	}
	if i.Granularity != "" && !i.Granularity.IsValid() {
		v.Add("granularity", "invalid value")
	}
	return v.Err()
}

// GetVelocityTrends buckets signal creation and mention fetches per calendar
// day over the last Days days. Granularity is validated and echoed back but
// every granularity produces daily buckets.
func (s *Service) GetVelocityTrends(ctx context.Context, input VelocityInput) (*domain.VelocityTrends, error) {
	defer metrics.TimeAnalytics("velocity_trends")()

	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Days == 0 {
		input.Days = DefaultVelocityDays
	}
	if input.Granularity == "" {
		input.Granularity = domain.GranularityDaily
	}

	since := s.clock().Add(-days(input.Days))

	var (
		signals  []*domain.Signal
		mentions []*domain.RawMention
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		signals, err = s.signals.ListCreatedSince(gctx, orgID, since, s.cfg.SignalScanLimit)
		if err != nil {
			return fmt.Errorf("list signals: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		mentions, err = s.mentions.ListSince(gctx, orgID, since, s.cfg.MentionScanLimit)
		if err != nil {
			return fmt.Errorf("list mentions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	trends := BuildVelocityTrends(signals, mentions, since, input.Days, input.Granularity)
	return &trends, nil
}

// BuildVelocityTrends counts signals created and mentions fetched at or after
// since, keyed by UTC date. Only dates with activity get a bucket. Growth
// rates compare each bucket with the one before it in date order.
func BuildVelocityTrends(signals []*domain.Signal, mentions []*domain.RawMention, since time.Time, numDays int, granularity domain.Granularity) domain.VelocityTrends {
	buckets := make(map[string]*domain.VelocityBucket)
	bucket := func(t time.Time) *domain.VelocityBucket {
		key := t.UTC().Format(bucketLayout)
		b, ok := buckets[key]
		if !ok {
			b = &domain.VelocityBucket{Date: key}
			buckets[key] = b
		}
		return b
	}

	for _, sig := range signals {
		if sig.CreatedAt.Before(since) {
			continue
		}
		bucket(sig.CreatedAt).Signals++
	}
	for _, m := range mentions {
		if m.FetchedAt.Before(since) {
			continue
		}
		bucket(m.FetchedAt).Mentions++
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := domain.VelocityTrends{
		Trends: make([]domain.VelocityBucket, 0, len(keys)),
		Summary: domain.VelocitySummary{
			Period: domain.VelocityPeriod{Days: numDays, Granularity: granularity},
		},
	}

	var prev *domain.VelocityBucket
	for _, k := range keys {
		b := buckets[k]
		b.Velocity = b.Signals + b.Mentions
		if prev != nil {
			b.SignalGrowthRate = percentChange(prev.Signals, b.Signals)
			b.MentionGrowthRate = percentChange(prev.Mentions, b.Mentions)
		}
		out.Trends = append(out.Trends, *b)
		out.Summary.TotalSignals += b.Signals
		out.Summary.TotalMentions += b.Mentions
		prev = b
	}

	for i := range out.Trends {
		if out.Summary.PeakVelocity == nil || out.Trends[i].Velocity > out.Summary.PeakVelocity.Velocity {
			peak := out.Trends[i]
			out.Summary.PeakVelocity = &peak
		}
	}
	if numDays > 0 {
		out.Summary.AverageSignalsPerDay = float64(out.Summary.TotalSignals) / float64(numDays)
		out.Summary.AverageMentionsPerDay = float64(out.Summary.TotalMentions) / float64(numDays)
	}
	return out
}

// percentChange is the change from prev to cur in percent, 0 when prev is 0.
func percentChange(prev, cur int) float64 {
	if prev == 0 {
		return 0
	}
	return float64(cur-prev) / float64(prev) * 100
}
