// Package source manages ingestion sources: configuration, refresh requests,
// health reports, rate limit accounting and universal source analysis.
package source

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/noah-vh/airbour-web-sub001/internal/domain"
	"github.com/noah-vh/airbour-web-sub001/pkg/ctxutil"
)

type sourceRepo interface {
	GetByID(ctx context.Context, orgID, id uuid.UUID) (*domain.Source, error)
	List(ctx context.Context, orgID uuid.UUID, filter domain.SourceFilter) ([]*domain.Source, error)
	ListByUser(ctx context.Context, orgID, userID uuid.UUID) ([]*domain.Source, error)
	ListDue(ctx context.Context, orgID uuid.UUID, now time.Time, limit int) ([]*domain.Source, error)
	Create(ctx context.Context, s *domain.Source) (*domain.Source, error)
	Update(ctx context.Context, orgID, id uuid.UUID, patch domain.SourcePatch, at time.Time) (*domain.Source, error)
	MarkPending(ctx context.Context, orgID, id uuid.UUID, at time.Time) (*domain.Source, error)
	MarkAllPending(ctx context.Context, orgID uuid.UUID, at time.Time) (int, error)
	ToggleActive(ctx context.Context, orgID, id uuid.UUID, at time.Time) (*domain.Source, error)
	UpdateHealth(ctx context.Context, orgID, id uuid.UUID, h domain.SourceHealthUpdate, at time.Time) (*domain.Source, error)
	UpdateCoverage(ctx context.Context, orgID, id uuid.UUID, coverage float64, at time.Time) (*domain.Source, error)
	AddRateLimitRequests(ctx context.Context, orgID, id uuid.UUID, requests int, now time.Time) (*domain.Source, error)
	UpdateAnalysis(ctx context.Context, orgID, id uuid.UUID, analysis *domain.SourceAnalysis, at time.Time) (*domain.Source, error)
	Delete(ctx context.Context, orgID, id uuid.UUID) error
}

const (
	DefaultHealthScore          = 100
	DefaultFetchIntervalMinutes = 60
	DefaultDueLimit             = 50
	MaxDueLimit                 = 500
	MaxNameLength               = 200
	MaxURLLength                = 2048
	MaxKeywords                 = 50
	MaxFetchIntervalMinutes     = 7 * 24 * 60
)

// Service provides source operations for the organisation on the context.
type Service struct {
	sources sourceRepo
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new source service.
func NewService(log *slog.Logger, sources sourceRepo) *Service {
	return &Service{
		sources: sources,
		log:     log.With("service", "source"),
		now:     time.Now,
	}
}

func orgFromCtx(ctx context.Context) (uuid.UUID, error) {
	orgID, ok := ctxutil.OrgIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return orgID, nil
}

func (s *Service) clock() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}
