package source

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/noah-vh/airbour-web-sub001/internal/domain"
	"github.com/noah-vh/airbour-web-sub001/pkg/ctxutil"
)

// ListSources returns the sources matching filter, ordered by name.
func (s *Service) ListSources(ctx context.Context, filter domain.SourceFilter) ([]*domain.Source, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	var v domain.ValidationError
	if filter.Status != nil && !filter.Status.IsValid() {
		v.Add("status", "invalid value")
	}
	if filter.Type != nil && !filter.Type.IsValid() {
		v.Add("type", "invalid value")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	sources, err := s.sources.List(ctx, orgID, filter)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	return sources, nil
}

// GetSource returns one source by id.
func (s *Service) GetSource(ctx context.Context, id uuid.UUID) (*domain.Source, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	src, err := s.sources.GetByID(ctx, orgID, id)
	if err != nil {
		return nil, fmt.Errorf("get source: %w", err)
	}
	return src, nil
}

// GetSourcesByUser returns the sources created by userID, or by the caller
// when userID is nil.
func (s *Service) GetSourcesByUser(ctx context.Context, userID *uuid.UUID) ([]*domain.Source, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	uid := uuid.Nil
	if userID != nil {
		uid = *userID
	} else if id, ok := ctxutil.UserIDFromCtx(ctx); ok {
		uid = id
	}
	if uid == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	sources, err := s.sources.ListByUser(ctx, orgID, uid)
	if err != nil {
		return nil, fmt.Errorf("list sources by user: %w", err)
	}
	return sources, nil
}

// GetSourcesDueForCollection returns enabled, non-failing sources whose
// fetch interval has elapsed, never-collected sources first.
func (s *Service) GetSourcesDueForCollection(ctx context.Context, limit int) ([]*domain.Source, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultDueLimit
	}
	limit = min(limit, MaxDueLimit)

	sources, err := s.sources.ListDue(ctx, orgID, s.clock(), limit)
	if err != nil {
		return nil, fmt.Errorf("list due sources: %w", err)
	}
	return sources, nil
}

// GetSourceStats summarises the sources of the organisation.
func (s *Service) GetSourceStats(ctx context.Context) (*domain.SourceStats, error) {
	orgID, err := orgFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	sources, err := s.sources.List(ctx, orgID, domain.SourceFilter{})
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}

	stats := &domain.SourceStats{
		Total:    len(sources),
		ByStatus: make(map[domain.SourceStatus]int),
		ByType:   make(map[domain.SourceType]int),
	}
	var health float64
	for _, src := range sources {
		if src.IsActive {
			stats.Active++
		}
		stats.ByStatus[src.Status]++
		stats.ByType[src.Type]++
		health += src.HealthScore
	}
	if len(sources) > 0 {
		stats.AverageHealth = health / float64(len(sources))
	}
	return stats, nil
}

// GetSourceHealthStats reports source health over timeframe (default 24h).
func (s *Service) GetSourceHealthStats(ctx context.Context, timeframe domain.Timeframe) (*domain.SourceHealthStats, error) {
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

	sources, err := s.sources.List(ctx, orgID, domain.SourceFilter{})
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}

	stats := domain.NewSourceHealthStats(sources, timeframe, s.clock())
	return &stats, nil
}
