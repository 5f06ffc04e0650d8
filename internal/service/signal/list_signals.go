package signal

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/noah-vh/airbour-web-sub001/internal/domain"
)

// ListSignals returns the signals of the organisation that match every
// filter in input, newest first. Filters apply in order: lifecycle (through
// its behavior layer), STEEP category, text search, status.
func (s *Service) ListSignals(ctx context.Context, input ListSignalsInput) ([]domain.SignalView, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	all, err := s.signals.List(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("list signals: %w", err)
	}
	latest, err := s.latestUpdates(ctx, orgID, all)
	if err != nil {
		return nil, err
	}

	matched := applyFilter(all, latest, input)
	out := make([]domain.SignalView, 0, len(matched))
	for _, sig := range matched {
		out = append(out, domain.NewSignalView(sig, latest[sig.ID]))
	}
	return out, nil
}

func applyFilter(signals []*domain.Signal, latest map[uuid.UUID]*domain.SignalUpdate, f ListSignalsInput) []*domain.Signal {
	out := signals
	if f.Lifecycle != nil {
		behavior := domain.LifecycleToBehavior(*f.Lifecycle)
		out = keep(out, func(sig *domain.Signal) bool { return sig.BehaviorLayer == behavior })
	}
	if f.Steep != nil {
		out = keep(out, func(sig *domain.Signal) bool { return sig.Steep != nil && *sig.Steep == *f.Steep })
	}
	if f.Search != nil {
		if q := strings.TrimSpace(*f.Search); q != "" {
			out = keep(out, func(sig *domain.Signal) bool { return matchesSearch(sig, latest[sig.ID], q) })
		}
	}
	if f.Status != nil {
		out = keep(out, func(sig *domain.Signal) bool { return sig.Status == *f.Status })
	}
	return out
}

func matchesSearch(sig *domain.Signal, latest *domain.SignalUpdate, q string) bool {
	if domain.ContainsFold(sig.Description, q) || domain.ContainsFold(sig.ClassificationReasoningConcise, q) {
		return true
	}
	return latest != nil && domain.ContainsFold(latest.Value, q)
}

func keep(signals []*domain.Signal, pred func(*domain.Signal) bool) []*domain.Signal {
	out := make([]*domain.Signal, 0, len(signals))
	for _, sig := range signals {
		if pred(sig) {
			out = append(out, sig)
		}
	}
	return out
}

func activeOnly(signals []*domain.Signal) []*domain.Signal {
	return keep(signals, func(sig *domain.Signal) bool { return sig.Status == domain.SignalStatusActive })
}

// GetSignal returns one signal by id.
func (s *Service) GetSignal(ctx context.Context, id uuid.UUID) (*domain.SignalView, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	sig, err := s.signals.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, fmt.Errorf("get signal: %w", err)
	}
	return s.view(ctx, orgID, sig)
}

// SearchSignals returns up to limit non-merged signals whose text matches
// query, case-insensitively.
func (s *Service) SearchSignals(ctx context.Context, query string, limit int) ([]domain.SignalView, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.NewValidationError("query", "required")
	}

	views, err := s.ListSignals(ctx, ListSignalsInput{Search: &query})
	if err != nil {
		return nil, err
	}

	limit = clampLimit(limit, DefaultSearchLimit)
	out := make([]domain.SignalView, 0, min(limit, len(views)))
	for _, v := range views {
		if v.Status == domain.SignalStatusMerged {
			continue
		}
		out = append(out, v)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// GetSignalsByLifecycle returns the signals displayed at lifecycle.
func (s *Service) GetSignalsByLifecycle(ctx context.Context, lifecycle domain.Lifecycle) ([]domain.SignalView, error) {
	return s.ListSignals(ctx, ListSignalsInput{Lifecycle: &lifecycle})
}

// GetSignalsBySteep returns the signals of one STEEP category.
func (s *Service) GetSignalsBySteep(ctx context.Context, category domain.SteepCategory) ([]domain.SignalView, error) {
	return s.ListSignals(ctx, ListSignalsInput{Steep: &category})
}

// GetSignalStats summarises the signals of the organisation.
func (s *Service) GetSignalStats(ctx context.Context) (*domain.SignalStats, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	all, err := s.signals.List(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("list signals: %w", err)
	}
	return signalStats(all, s.clock()), nil
}

func signalStats(signals []*domain.Signal, now time.Time) *domain.SignalStats {
	stats := &domain.SignalStats{
		Total:        len(signals),
		ByLifecycle:  make(map[domain.Lifecycle]int),
		BySteep:      make(map[string]int),
		ByClassifier: make(map[string]int),
	}
	weekAgo := now.Add(-7 * 24 * time.Hour)

	var confidence float64
	for _, sig := range signals {
		switch sig.Status {
		case domain.SignalStatusActive:
			stats.Active++
		case domain.SignalStatusArchived:
			stats.Archived++
		case domain.SignalStatusMerged:
			stats.Merged++
		}
		stats.ByLifecycle[domain.BehaviorToLifecycle(sig.BehaviorLayer)]++
		if sig.Steep != nil {
			stats.BySteep[string(*sig.Steep)]++
		} else {
			stats.BySteep["uncategorized"]++
		}
		classifier := sig.ClassifiedBy
		if classifier == "" {
			classifier = "unknown"
		}
		stats.ByClassifier[classifier]++
		confidence += sig.Confidence
		if !sig.CreatedAt.Before(weekAgo) {
			stats.CreatedLast7Days++
		}
	}
	if len(signals) > 0 {
		stats.AverageConfidence = confidence / float64(len(signals))
	}
	return stats
}

// NewsletterInput selects signals for a newsletter issue. Zero values take
// the defaults: 7 days, 0.5 confidence, 10 signals.
type NewsletterInput struct {
	Days          int
	MinConfidence *float64
	Limit         int
}

// ListSignalsForNewsletter returns recent active signals above a confidence
// threshold, most confident first.
func (s *Service) ListSignalsForNewsletter(ctx context.Context, input NewsletterInput) ([]domain.SignalView, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	days := input.Days
	if days <= 0 {
		days = DefaultNewsletterDays
	}
	minConfidence := DefaultNewsletterMinConfidence
	if input.MinConfidence != nil {
		minConfidence = *input.MinConfidence
	}
	if minConfidence < 0 || minConfidence > 1 {
		return nil, domain.NewValidationError("minConfidence", "must be between 0 and 1")
	}
	limit := clampLimit(input.Limit, DefaultNewsletterLimit)

	since := s.clock().Add(-time.Duration(days) * 24 * time.Hour)
	signals, err := s.signals.ListForNewsletter(ctx, orgID, since, minConfidence, limit)
	if err != nil {
		return nil, fmt.Errorf("list newsletter signals: %w", err)
	}
	return s.views(ctx, orgID, signals)
}

// GetTrendingSignals returns active signals ordered by growth, then mention
// count, both descending.
func (s *Service) GetTrendingSignals(ctx context.Context, limit int) ([]domain.SignalView, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	all, err := s.signals.List(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("list signals: %w", err)
	}

	active := activeOnly(all)
	sort.SliceStable(active, func(i, j int) bool {
		a, b := active[i].Metrics(), active[j].Metrics()
		if a.Growth != b.Growth {
			return a.Growth > b.Growth
		}
		return a.MentionCount > b.MentionCount
	})

	limit = clampLimit(limit, DefaultTrendingLimit)
	if len(active) > limit {
		active = active[:limit]
	}
	return s.views(ctx, orgID, active)
}

// GetRelatedSignals returns other active signals sharing at least one
// keyword with id, ranked by the number of shared keywords.
func (s *Service) GetRelatedSignals(ctx context.Context, id uuid.UUID, limit int) ([]domain.SignalView, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	target, err := s.signals.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, fmt.Errorf("get signal: %w", err)
	}
	keywords := keywordSet(target)
	if len(keywords) == 0 {
		return []domain.SignalView{}, nil
	}

	all, err := s.signals.List(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("list signals: %w", err)
	}

	type candidate struct {
		sig     *domain.Signal
		overlap int
	}
	var candidates []candidate
	for _, sig := range activeOnly(all) {
		if sig.ID == target.ID {
			continue
		}
		n := 0
		for kw := range keywordSet(sig) {
			if _, ok := keywords[kw]; ok {
				n++
			}
		}
		if n > 0 {
			candidates = append(candidates, candidate{sig: sig, overlap: n})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].overlap > candidates[j].overlap
	})

	limit = clampLimit(limit, DefaultRelatedLimit)
	related := make([]*domain.Signal, 0, min(limit, len(candidates)))
	for _, c := range candidates {
		if len(related) == limit {
			break
		}
		related = append(related, c.sig)
	}
	return s.views(ctx, orgID, related)
}

func keywordSet(sig *domain.Signal) map[string]struct{} {
	kws := domain.SignalKeywords(sig)
	set := make(map[string]struct{}, len(kws))
	for _, kw := range kws {
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
			set[kw] = struct{}{}
		}
	}
	return set
}

// SignalWithUpdates is a signal view with its full update history, newest
// first.
type SignalWithUpdates struct {
	domain.SignalView
	Updates []*domain.SignalUpdate `json:"updates"`
}

// ListSignalsWithUpdates returns the most recent signals with their updates.
func (s *Service) ListSignalsWithUpdates(ctx context.Context, limit int) ([]SignalWithUpdates, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	signals, err := s.signals.ListRecent(ctx, orgID, clampLimit(limit, DefaultWithUpdatesLimit))
	if err != nil {
		return nil, fmt.Errorf("list recent signals: %w", err)
	}
	if len(signals) == 0 {
		return []SignalWithUpdates{}, nil
	}

	grouped, err := s.updatesBySignal(ctx, orgID, signalIDs(signals))
	if err != nil {
		return nil, err
	}

	out := make([]SignalWithUpdates, 0, len(signals))
	for _, sig := range signals {
		updates := grouped[sig.ID]
		var latest *domain.SignalUpdate
		if len(updates) > 0 {
			latest = updates[0]
		} else {
			updates = []*domain.SignalUpdate{}
		}
		out = append(out, SignalWithUpdates{
			SignalView: domain.NewSignalView(sig, latest),
			Updates:    updates,
		})
	}
	return out, nil
}

// GetSignalUpdates returns the updates of each signal in ids, newest first.
// Signals without updates map to an empty slice.
func (s *Service) GetSignalUpdates(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]*domain.SignalUpdate, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	grouped, err := s.updatesBySignal(ctx, orgID, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if grouped[id] == nil {
			grouped[id] = []*domain.SignalUpdate{}
		}
	}
	return grouped, nil
}

func (s *Service) updatesBySignal(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID][]*domain.SignalUpdate, error) {
	updates, err := s.updates.ListUpdates(ctx, orgID, ids)
	if err != nil {
		return nil, fmt.Errorf("list updates: %w", err)
	}
	grouped := make(map[uuid.UUID][]*domain.SignalUpdate, len(ids))
	for _, u := range updates {
		grouped[u.SignalID] = append(grouped[u.SignalID], u)
	}
	return grouped, nil
}

func signalIDs(signals []*domain.Signal) []uuid.UUID {
	ids := make([]uuid.UUID, len(signals))
	for i, sig := range signals {
		ids[i] = sig.ID
	}
	return ids
}
