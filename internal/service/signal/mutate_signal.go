package signal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/noah-vh/airbour-web-sub001/internal/domain"
)

const defaultClassifier = "manual"

// CreateSignal stores a new active signal.
func (s *Service) CreateSignal(ctx context.Context, input CreateSignalInput) (*domain.SignalView, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	classifier := strings.TrimSpace(input.ClassifiedBy)
	if classifier == "" {
		classifier = defaultClassifier
	}

	created, err := s.signals.Create(ctx, &domain.Signal{
		ID:                             uuid.New(),
		OrgID:                          orgID,
		Description:                    strings.TrimSpace(input.Description),
		ClassificationReasoningConcise: strings.TrimSpace(input.Reasoning),
		BehaviorLayer:                  input.behavior(),
		ClassifiedBy:                   classifier,
		Steep:                          input.Steep,
		Confidence:                     input.Confidence,
		Keywords:                       domain.NormalizeTags(input.Keywords),
		Tags:                           domain.NormalizeTags(input.Tags),
		Status:                         domain.SignalStatusActive,
		CreatedAt:                      s.clock(),
	})
	if err != nil {
		return nil, fmt.Errorf("create signal: %w", err)
	}

	s.log.InfoContext(ctx, "signal created",
		slog.String("org_id", orgID.String()),
		slog.String("signal_id", created.ID.String()),
	)

	return s.view(ctx, orgID, created)
}

// UpdateSignal applies the non-nil fields of input to a signal.
func (s *Service) UpdateSignal(ctx context.Context, id uuid.UUID, input UpdateSignalInput) (*domain.SignalView, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.patch(ctx, orgID, id, input.patch())
	if err != nil {
		return nil, err
	}
	return s.view(ctx, orgID, updated)
}

// UpdateSignalDescription replaces the description of a signal.
func (s *Service) UpdateSignalDescription(ctx context.Context, id uuid.UUID, description string) (*domain.SignalView, error) {
	return s.UpdateSignal(ctx, id, UpdateSignalInput{Description: &description})
}

func (s *Service) patch(ctx context.Context, orgID, id uuid.UUID, patch domain.SignalPatch) (*domain.Signal, error) {
	prev, err := s.signals.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, fmt.Errorf("get signal: %w", err)
	}

	updated, err := s.signals.Update(ctx, orgID, id, patch, s.touchTime(prev.LastTouched()))
	if err != nil {
		return nil, fmt.Errorf("update signal: %w", err)
	}
	return updated, nil
}

// DeleteSignal removes a signal and its updates. A signal that other signals
// were merged into cannot be deleted: ErrConflict.
func (s *Service) DeleteSignal(ctx context.Context, id uuid.UUID) error {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.checkNoMergedSecondaries(ctx, orgID, []uuid.UUID{id}); err != nil {
			return err
		}
		return s.signals.Delete(ctx, orgID, id)
	})
	if err != nil {
		return fmt.Errorf("delete signal: %w", err)
	}

	s.log.InfoContext(ctx, "signal deleted",
		slog.String("org_id", orgID.String()),
		slog.String("signal_id", id.String()),
	)
	return nil
}

// DeleteResult reports the outcome of a bulk delete.
type DeleteResult struct {
	Deleted  int         `json:"deleted"`
	NotFound []uuid.UUID `json:"notFound"`
}

// DeleteSignals removes every signal in ids that exists and reports the rest.
// The batch is rejected with ErrConflict when it holds a merge primary whose
// secondaries are not deleted along with it.
func (s *Service) DeleteSignals(ctx context.Context, ids []uuid.UUID) (*DeleteResult, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, domain.NewValidationError("ids", "at least one required")
	}
	if len(ids) > MaxDeleteBatch {
		return nil, domain.NewValidationError("ids", "max 100 ids")
	}

	unique := dedupe(ids)
	var deleted []uuid.UUID
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.checkNoMergedSecondaries(ctx, orgID, unique); err != nil {
			return err
		}
		var err error
		deleted, err = s.signals.DeleteMany(ctx, orgID, unique)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("delete signals: %w", err)
	}

	gone := make(map[uuid.UUID]struct{}, len(deleted))
	for _, id := range deleted {
		gone[id] = struct{}{}
	}
	result := &DeleteResult{Deleted: len(deleted), NotFound: []uuid.UUID{}}
	for _, id := range unique {
		if _, ok := gone[id]; !ok {
			result.NotFound = append(result.NotFound, id)
		}
	}

	s.log.InfoContext(ctx, "signals deleted",
		slog.String("org_id", orgID.String()),
		slog.Int("deleted", result.Deleted),
		slog.Int("not_found", len(result.NotFound)),
	)
	return result, nil
}

// checkNoMergedSecondaries fails with ErrConflict when a signal outside ids
// is merged into one of ids.
func (s *Service) checkNoMergedSecondaries(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) error {
	primaries, err := s.signals.ListMergedPrimaries(ctx, orgID, ids)
	if err != nil {
		return fmt.Errorf("list merge primaries: %w", err)
	}
	if len(primaries) > 0 {
		return fmt.Errorf("signal %s has merged signals: %w", primaries[0], domain.ErrConflict)
	}
	return nil
}

// ToggleSaveSignal flips the saved flag and returns the new value.
func (s *Service) ToggleSaveSignal(ctx context.Context, id uuid.UUID) (bool, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return false, err
	}

	saved, err := s.signals.ToggleSave(ctx, orgID, id)
	if err != nil {
		return false, fmt.Errorf("toggle save: %w", err)
	}
	return saved, nil
}

// IncrementViewCount records one view and returns the new count.
func (s *Service) IncrementViewCount(ctx context.Context, id uuid.UUID) (int, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return 0, err
	}

	count, err := s.signals.IncrementViewCount(ctx, orgID, id)
	if err != nil {
		return 0, fmt.Errorf("increment view count: %w", err)
	}
	return count, nil
}

// UpdateSignalMetrics overwrites the given metrics of one signal. Absent
// metrics are stored as zero once any metric is written.
func (s *Service) UpdateSignalMetrics(ctx context.Context, id uuid.UUID, input UpdateMetricsInput) (*domain.SignalView, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	prev, err := s.signals.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, fmt.Errorf("get signal: %w", err)
	}

	updated, err := s.signals.UpdateMetrics(ctx, orgID, id, input.apply(prev.Metrics()), s.touchTime(prev.LastTouched()))
	if err != nil {
		return nil, fmt.Errorf("update metrics: %w", err)
	}
	return s.view(ctx, orgID, updated)
}

// AddSignalUpdate attaches a timestamped annotation to a signal. The newest
// update drives the displayed name and description.
func (s *Service) AddSignalUpdate(ctx context.Context, id uuid.UUID, input AddUpdateInput) (*domain.SignalUpdate, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	u, err := s.updates.AddUpdate(ctx, orgID, &domain.SignalUpdate{
		ID:        uuid.New(),
		SignalID:  id,
		Title:     strings.TrimSpace(input.Title),
		Value:     strings.TrimSpace(input.Value),
		CreatedAt: s.clock(),
	})
	if err != nil {
		return nil, fmt.Errorf("add signal update: %w", err)
	}
	return u, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
