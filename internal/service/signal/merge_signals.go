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

// MergeResult reports the outcome of a merge.
type MergeResult struct {
	Primary domain.SignalView `json:"primary"`
	Merged  []uuid.UUID       `json:"merged"`
}

// MergeSignals folds the secondaries into the primary signal in one
// transaction. The primary must be active. Its keywords become the union of
// all keyword lists, counts are summed and sentiment and growth become the
// mention-weighted mean. Secondaries are kept with status merged and a
// pointer to the primary. Any missing signal aborts the whole merge.
func (s *Service) MergeSignals(ctx context.Context, input MergeSignalsInput) (*MergeResult, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	secondaryIDs := dedupe(input.SecondaryIDs)

	var primary *domain.Signal
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.signals.GetByID(txCtx, orgID, input.PrimaryID)
		if err != nil {
			return fmt.Errorf("get primary signal: %w", err)
		}
		if p.Status != domain.SignalStatusActive {
			return fmt.Errorf("primary signal %s is %s: %w", p.ID, p.Status, domain.ErrNotFound)
		}

		secondaries, err := s.signals.ListByIDs(txCtx, orgID, secondaryIDs)
		if err != nil {
			return fmt.Errorf("list secondary signals: %w", err)
		}
		if err := checkSecondaries(secondaryIDs, secondaries); err != nil {
			return err
		}

		at := s.touchTime(lastTouched(p, secondaries))

		patch := domain.SignalPatch{Keywords: unionKeywords(p, secondaries)}
		if input.Description != nil {
			d := strings.TrimSpace(*input.Description)
			patch.Description = &d
		}
		if _, err := s.signals.Update(txCtx, orgID, p.ID, patch, at); err != nil {
			return fmt.Errorf("update primary signal: %w", err)
		}

		p, err = s.signals.UpdateMetrics(txCtx, orgID, p.ID, mergedMetrics(p, secondaries), at)
		if err != nil {
			return fmt.Errorf("update primary metrics: %w", err)
		}

		for _, sec := range secondaries {
			if err := s.signals.MarkMerged(txCtx, orgID, sec.ID, p.ID, at); err != nil {
				return fmt.Errorf("mark signal %s merged: %w", sec.ID, err)
			}
		}

		primary = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "signals merged",
		slog.String("org_id", orgID.String()),
		slog.String("primary_id", primary.ID.String()),
		slog.Int("secondaries", len(secondaryIDs)),
	)

	view, err := s.view(ctx, orgID, primary)
	if err != nil {
		return nil, err
	}
	return &MergeResult{Primary: *view, Merged: secondaryIDs}, nil
}

func checkSecondaries(ids []uuid.UUID, found []*domain.Signal) error {
	byID := make(map[uuid.UUID]*domain.Signal, len(found))
	for _, sig := range found {
		byID[sig.ID] = sig
	}
	for _, id := range ids {
		sig, ok := byID[id]
		if !ok {
			return fmt.Errorf("secondary signal %s: %w", id, domain.ErrNotFound)
		}
		if sig.Status == domain.SignalStatusMerged {
			return fmt.Errorf("secondary signal %s already merged: %w", id, domain.ErrConflict)
		}
	}
	return nil
}

func lastTouched(primary *domain.Signal, others []*domain.Signal) time.Time {
	t := primary.LastTouched()
	for _, sig := range others {
		if lt := sig.LastTouched(); lt.After(t) {
			t = lt
		}
	}
	return t
}

func unionKeywords(primary *domain.Signal, others []*domain.Signal) []string {
	all := append([]string{}, primary.Keywords...)
	for _, sig := range others {
		all = append(all, sig.Keywords...)
	}
	return domain.NormalizeTags(all)
}

func mergedMetrics(primary *domain.Signal, others []*domain.Signal) domain.SignalMetrics {
	all := append([]*domain.Signal{primary}, others...)

	var out domain.SignalMetrics
	var sentiment, growth float64
	for _, sig := range all {
		m := sig.Metrics()
		out.MentionCount += m.MentionCount
		out.SourceCount += m.SourceCount
		sentiment += m.Sentiment * float64(m.MentionCount)
		growth += m.Growth * float64(m.MentionCount)
	}
	if out.MentionCount > 0 {
		out.Sentiment = sentiment / float64(out.MentionCount)
		out.Growth = growth / float64(out.MentionCount)
	}
	return out
}
