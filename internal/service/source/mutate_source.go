package source

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/noah-vh/airbour-web-sub001/internal/domain"
	"github.com/noah-vh/airbour-web-sub001/pkg/ctxutil"
)

// CreateSource registers a source. New sources are enabled and pending with
// full health and no coverage.
func (s *Service) CreateSource(ctx context.Context, input CreateSourceInput) (*domain.Source, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.create(ctx, orgID, &domain.Source{
		Name:                 strings.TrimSpace(input.Name),
		URL:                  strings.TrimSpace(input.URL),
		Type:                 input.Type,
		FetchIntervalMinutes: input.FetchIntervalMinutes,
		Keywords:             domain.NormalizeTags(input.Keywords),
	})
}

func (s *Service) create(ctx context.Context, orgID uuid.UUID, src *domain.Source) (*domain.Source, error) {
	now := s.clock()
	src.ID = uuid.New()
	src.OrgID = orgID
	src.Status = domain.SourceStatusPending
	src.IsActive = true
	src.HealthScore = DefaultHealthScore
	src.CoverageScore = 0
	src.CreatedAt = now
	src.UpdatedAt = now
	if src.FetchIntervalMinutes == 0 {
		src.FetchIntervalMinutes = DefaultFetchIntervalMinutes
	}
	if userID, ok := ctxutil.UserIDFromCtx(ctx); ok {
		src.UserID = &userID
	}

	created, err := s.sources.Create(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("create source: %w", err)
	}

	s.log.InfoContext(ctx, "source created",
		slog.String("org_id", orgID.String()),
		slog.String("source_id", created.ID.String()),
		slog.String("type", string(created.Type)),
	)
	return created, nil
}

// UpdateSource applies the non-nil fields of input to a source.
func (s *Service) UpdateSource(ctx context.Context, id uuid.UUID, input UpdateSourceInput) (*domain.Source, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	src, err := s.sources.Update(ctx, orgID, id, input.patch(), s.clock())
	if err != nil {
		return nil, fmt.Errorf("update source: %w", err)
	}
	return src, nil
}

// DeleteSource removes a source.
func (s *Service) DeleteSource(ctx context.Context, id uuid.UUID) error {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return err
	}

	if err := s.sources.Delete(ctx, orgID, id); err != nil {
		return fmt.Errorf("delete source: %w", err)
	}

	s.log.InfoContext(ctx, "source deleted",
		slog.String("org_id", orgID.String()),
		slog.String("source_id", id.String()),
	)
	return nil
}

// RefreshSource marks a source pending so the collector picks it up. No
// fetch happens here.
func (s *Service) RefreshSource(ctx context.Context, id uuid.UUID) (*domain.Source, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	src, err := s.sources.MarkPending(ctx, orgID, id, s.clock())
	if err != nil {
		return nil, fmt.Errorf("refresh source: %w", err)
	}
	return src, nil
}

// RefreshAllSources marks every enabled source pending and returns how many
// were touched.
func (s *Service) RefreshAllSources(ctx context.Context) (int, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return 0, err
	}

	n, err := s.sources.MarkAllPending(ctx, orgID, s.clock())
	if err != nil {
		return 0, fmt.Errorf("refresh sources: %w", err)
	}

	s.log.InfoContext(ctx, "sources refreshed",
		slog.String("org_id", orgID.String()),
		slog.Int("count", n),
	)
	return n, nil
}

// ToggleSource flips whether a source is enabled. Its status is unchanged.
func (s *Service) ToggleSource(ctx context.Context, id uuid.UUID) (*domain.Source, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	src, err := s.sources.ToggleActive(ctx, orgID, id, s.clock())
	if err != nil {
		return nil, fmt.Errorf("toggle source: %w", err)
	}
	return src, nil
}

// UpdateSourceHealth records a health report from the collector.
func (s *Service) UpdateSourceHealth(ctx context.Context, id uuid.UUID, input HealthInput) (*domain.Source, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	src, err := s.sources.UpdateHealth(ctx, orgID, id, domain.SourceHealthUpdate{
		Status:      input.Status,
		ErrorCount:  input.ErrorCount,
		LastError:   input.LastError,
		HealthScore: input.HealthScore,
	}, s.clock())
	if err != nil {
		return nil, fmt.Errorf("update source health: %w", err)
	}

	if input.Status == domain.SourceStatusError {
		s.log.WarnContext(ctx, "source reported error",
			slog.String("org_id", orgID.String()),
			slog.String("source_id", id.String()),
			slog.Int("error_count", input.ErrorCount),
		)
	}
	return src, nil
}

// UpdateSourceCoverage stores a coverage score in [0, 100].
func (s *Service) UpdateSourceCoverage(ctx context.Context, id uuid.UUID, coverage float64) (*domain.Source, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	var v domain.ValidationError
	validateScore(&v, "coverage", coverage)
	if err := v.Err(); err != nil {
		return nil, err
	}

	src, err := s.sources.UpdateCoverage(ctx, orgID, id, coverage, s.clock())
	if err != nil {
		return nil, fmt.Errorf("update source coverage: %w", err)
	}
	return src, nil
}

// UpdateRateLimitCounters accounts requests against the source's hourly
// window, opening a new window when the current one has expired.
func (s *Service) UpdateRateLimitCounters(ctx context.Context, id uuid.UUID, requests int) (*domain.Source, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	if requests <= 0 {
		return nil, domain.NewValidationError("requests", "must be positive")
	}

	src, err := s.sources.AddRateLimitRequests(ctx, orgID, id, requests, s.clock())
	if err != nil {
		return nil, fmt.Errorf("update rate limit: %w", err)
	}
	return src, nil
}
