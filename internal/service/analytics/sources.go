package analytics

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/noah-vh/airbour-web-sub001/internal/domain"
	"github.com/noah-vh/airbour-web-sub001/internal/metrics"
)

// GetSourceMetrics reports mention activity per source over timeframe along
// with the health summary of the same window. An empty timeframe means 24h.
func (s *Service) GetSourceMetrics(ctx context.Context, timeframe domain.Timeframe) (*domain.SourceMetrics, error) {
	defer metrics.TimeAnalytics("source_metrics")()

	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if timeframe == "" {
		timeframe = domain.Timeframe24h
	}
	if !timeframe.IsValid() {
		return nil, domain.NewValidationError("timeframe", "must be one of 24h, 7d, 30d")
	}

	now := s.clock()

	var (
		sources  []*domain.Source
		mentions []*domain.RawMention
	)
	g, gctx := errgroup.WithContext(ctx)
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
		mentions, err = s.mentions.ListSince(gctx, orgID, now.Add(-timeframe.Duration()), s.cfg.MentionScanLimit)
		if err != nil {
			return fmt.Errorf("list mentions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	metrics := BuildSourceMetrics(sources, mentions, timeframe, now)
	return &metrics, nil
}

// BuildSourceMetrics attributes mentions to sources and orders sources by
// mention count, then name. A mention is attributed to a source when its
// source field equals the source name ignoring case, or when the source name
// occurs in its external id or author. Attribution is loose: one mention may
// count toward several sources.
func BuildSourceMetrics(sources []*domain.Source, mentions []*domain.RawMention, timeframe domain.Timeframe, now time.Time) domain.SourceMetrics {
	out := domain.SourceMetrics{
		Sources: make([]domain.SourceMetric, 0, len(sources)),
		Health:  domain.NewSourceHealthStats(sources, timeframe, now),
	}

	for _, src := range sources {
		out.Sources = append(out.Sources, domain.SourceMetric{
			SourceID:    src.ID,
			Name:        src.Name,
			Type:        src.Type,
			Status:      src.Status,
			Mentions:    countAttributed(src.Name, mentions),
			Health:      src.Health(),
			ErrorCount:  src.ErrorCount,
			LastUpdated: src.LastUpdated,
		})
	}

	sort.SliceStable(out.Sources, func(a, b int) bool {
		if out.Sources[a].Mentions != out.Sources[b].Mentions {
			return out.Sources[a].Mentions > out.Sources[b].Mentions
		}
		return out.Sources[a].Name < out.Sources[b].Name
	})
	return out
}

func countAttributed(name string, mentions []*domain.RawMention) int {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return 0
	}

	n := 0
	for _, m := range mentions {
		if strings.ToLower(m.Source) == name ||
			strings.Contains(strings.ToLower(m.ExternalID), name) ||
			strings.Contains(strings.ToLower(m.Author), name) {
			n++
		}
	}
	return n
}
