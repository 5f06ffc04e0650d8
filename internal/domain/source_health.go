package domain

import "time"

// NewSourceHealthStats reports the health of sources updated within
// timeframe before now. Totals, health split, error count and the per-type
// breakdown cover only that subset. Stalled counts enabled sources whose last
// update is older than the window; sources never updated are in neither.
func NewSourceHealthStats(sources []*Source, timeframe Timeframe, now time.Time) SourceHealthStats {
	if !timeframe.IsValid() {
		timeframe = Timeframe24h
	}
	cutoff := now.Add(-timeframe.Duration())

	stats := SourceHealthStats{
		Timeframe: timeframe,
		ByType:    make(map[SourceType]TypeHealth),
	}
	for _, s := range sources {
		if s.LastUpdated == nil {
			continue
		}
		if s.LastUpdated.Before(cutoff) {
			if s.IsActive {
				stats.Stalled++
			}
			continue
		}

		stats.Total++
		th := stats.ByType[s.Type]
		th.Total++
		if s.IsHealthy() {
			stats.Healthy++
			th.Healthy++
		}
		stats.ByType[s.Type] = th
		if s.Status == SourceStatusError {
			stats.Error++
		}
	}
	stats.Unhealthy = stats.Total - stats.Healthy
	if stats.Total > 0 {
		stats.HealthPercentage = float64(stats.Healthy) / float64(stats.Total) * 100
	}
	return stats
}
