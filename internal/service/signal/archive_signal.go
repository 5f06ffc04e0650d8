package signal

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/noah-vh/airbour-web-sub001/internal/domain"
)

// ArchiveSignal moves a signal to the archived state with an optional reason.
// Merged signals cannot be archived.
func (s *Service) ArchiveSignal(ctx context.Context, id uuid.UUID, reason *string) (*domain.SignalView, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	reason = trimPtr(reason)
	if reason != nil && *reason == "" {
		reason = nil
	}
	if reason != nil && utf8.RuneCountInString(*reason) > MaxArchiveReasonLength {
		return nil, domain.NewValidationError("reason", "max 500 characters")
	}

	prev, err := s.signals.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, fmt.Errorf("get signal: %w", err)
	}
	if prev.Status == domain.SignalStatusMerged {
		return nil, fmt.Errorf("archive merged signal %s: %w", id, domain.ErrConflict)
	}

	archived, err := s.signals.Archive(ctx, orgID, id, reason, s.touchTime(prev.LastTouched()))
	if err != nil {
		return nil, fmt.Errorf("archive signal: %w", err)
	}

	s.log.InfoContext(ctx, "signal archived",
		slog.String("org_id", orgID.String()),
		slog.String("signal_id", id.String()),
	)
	return s.view(ctx, orgID, archived)
}

// RestoreSignal returns an archived signal to the active state and clears
// its archive metadata.
func (s *Service) RestoreSignal(ctx context.Context, id uuid.UUID) (*domain.SignalView, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	prev, err := s.signals.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, fmt.Errorf("get signal: %w", err)
	}
	if prev.Status == domain.SignalStatusMerged {
		return nil, fmt.Errorf("restore merged signal %s: %w", id, domain.ErrConflict)
	}

	restored, err := s.signals.Restore(ctx, orgID, id, s.touchTime(prev.LastTouched()))
	if err != nil {
		return nil, fmt.Errorf("restore signal: %w", err)
	}

	s.log.InfoContext(ctx, "signal restored",
		slog.String("org_id", orgID.String()),
		slog.String("signal_id", id.String()),
	)
	return s.view(ctx, orgID, restored)
}
